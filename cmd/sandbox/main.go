package main

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"game-sandbox/internal/camera"
	"game-sandbox/internal/commands"
	"game-sandbox/internal/containment"
	"game-sandbox/internal/debug"
	"game-sandbox/internal/engineconfig"
	"game-sandbox/internal/env"
	"game-sandbox/internal/graphics"
	"game-sandbox/internal/ground"
	"game-sandbox/internal/input"
	"game-sandbox/internal/logger"
	"game-sandbox/internal/physics"
	"game-sandbox/internal/primitives"
	"game-sandbox/internal/scene"
	"game-sandbox/internal/settings"
	"game-sandbox/internal/terminal"
	"game-sandbox/internal/ui"
)

// Scene constants: ball spawn and size, boundary placement. The boundary is
// invisible to physics proper; containment holds the ball inside it after
// each step.
const (
	ballRadius      = 0.5
	ballRestitution = 1.0
)

var (
	ballSpawn      = [3]float32{0, 15, 0}
	boundaryCenter = [3]float32{0, 19, 0}
	cameraStart    = mgl32.Vec3{-1, 10, 30}
)

const boundaryRadius = 14

func main() {
	log := logger.New()
	defer log.Close()
	_ = env.Load(".env")
	prefs, _ := engineconfig.Load()

	// Shared settings: written by the panel and console, read by the
	// simulation every frame. Startup values come from the persisted prefs.
	store := settings.NewStore()
	store.SetVsync(prefs.Vsync)
	store.SetSensitivity(prefs.Sensitivity)

	// World: one dynamic ball, a boundary holding it, and the ground slab
	// (created by the first Sync below). Handles are established here once;
	// nothing searches the scene for them at runtime.
	world := physics.NewWorld()
	ball := physics.NewSphere(ballSpawn, ballRadius, 1, ballRestitution)
	world.AddBody(ball)
	contained := []*physics.Body{ball}
	boundary := containment.NewBoundary(boundaryCenter, boundaryRadius)

	cam := camera.New(cameraStart, mgl32.Vec3{0, 0, 0})

	reg := primitives.NewRegistry()
	groundSync := ground.NewSynchronizer(reg, world)
	scn := scene.New(reg)
	scn.SetGridVisible(prefs.GridVisible)

	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowMemAlloc(prefs.ShowMemAlloc)

	panel := ui.NewSettingsPanel(store)

	inspectorOn := true
	cmdReg := commands.NewRegistry()
	registerCommands(cmdReg, log, store, dbg, scn, &inspectorOn)
	term := terminal.New(log, cmdReg)

	capture := input.NewCaptureController(graphics.RaylibWindow{})
	var present graphics.PresentMode

	update := func() {
		frame := input.Sample()
		term.Update()
		if term.IsOpen() {
			// Console owns the keyboard; don't move the camera or toggle
			// capture while typing.
			frame.Move = camera.MoveInput{}
			frame.ToggleCapture = false
		}

		capture.Update(frame.ToggleCapture)

		cam.Move(frame.Move, frame.Dt)
		if capture.Captured() {
			delta := mgl32.Vec2{frame.MouseDelta[0], frame.MouseDelta[1]}
			cam.Look(delta, store.Sensitivity(), frame.Dt)
		}

		world.Step(frame.Dt)
		boundary.EnforceAll(contained)

		snap := store.Snapshot()
		groundSync.Sync(snap.GroundSize)
		present.ApplyVsync(snap.Vsync)
	}

	draw := func() {
		scn.Draw(cam, groundSync.Ground(), ball, boundary)

		speed := math32.Sqrt(ball.Velocity[0]*ball.Velocity[0] +
			ball.Velocity[1]*ball.Velocity[1] + ball.Velocity[2]*ball.Velocity[2])
		info := ui.BallInfo{
			Position:    ball.Position,
			Velocity:    ball.Velocity,
			Speed:       speed,
			Distance:    boundary.Distance(ball),
			MaxDistance: boundary.MaxDistance(ball.Radius),
		}
		panel.Draw(!capture.Captured() && !term.IsOpen(), inspectorOn, info)
		term.Draw()
		dbg.Draw()
	}

	graphics.Run(graphics.OptionsFromEnv(), update, draw)

	// Persist the live settings back into the prefs file.
	prefs.Vsync = store.Vsync()
	prefs.Sensitivity = store.Sensitivity()
	prefs.ShowFPS = dbg.ShowFPS
	prefs.ShowMemAlloc = dbg.ShowMemAlloc
	prefs.GridVisible = scn.GridVisible
	if err := engineconfig.Save(prefs); err != nil {
		log.Logf("save prefs: %v", err)
	}
}
