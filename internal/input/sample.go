package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"game-sandbox/internal/camera"
)

// Frame is everything the simulation needs from the input system for one
// frame: the capture toggle edge, the held movement keys, and the pointer
// motion delta. Sampled once at the top of the frame so every system sees
// the same values.
type Frame struct {
	ToggleCapture bool
	Move          camera.MoveInput
	MouseDelta    [2]float32
	Dt            float32
}

// Sample reads raylib input state for the current frame. Left-Ctrl is the
// capture toggle (edge-triggered); W/A/S/D and Space are level-triggered
// movement keys.
func Sample() Frame {
	delta := rl.GetMouseDelta()
	return Frame{
		ToggleCapture: rl.IsKeyPressed(rl.KeyLeftControl),
		Move: camera.MoveInput{
			Forward: rl.IsKeyDown(rl.KeyW),
			Back:    rl.IsKeyDown(rl.KeyS),
			Left:    rl.IsKeyDown(rl.KeyA),
			Right:   rl.IsKeyDown(rl.KeyD),
			Up:      rl.IsKeyDown(rl.KeySpace),
		},
		MouseDelta: [2]float32{delta.X, delta.Y},
		Dt:         rl.GetFrameTime(),
	}
}
