// Package scene draws the 3D world: editor grid, ground slab, ball, and the
// containment boundary wireframe. Simulation state lives elsewhere; the scene
// only reads it at draw time.
package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"game-sandbox/internal/camera"
	"game-sandbox/internal/containment"
	"game-sandbox/internal/ground"
	"game-sandbox/internal/physics"
	"game-sandbox/internal/primitives"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
)

// boundaryColor is the wireframe tint for the containment sphere. Faint so it
// reads as a guide, not geometry.
var boundaryColor = rl.NewColor(120, 200, 255, 90)

// boundaryRings and boundarySlices control the wireframe resolution.
const boundaryRings = 12
const boundarySlices = 16

// Scene holds the raylib camera and draws the world each frame between
// BeginMode3D and EndMode3D.
type Scene struct {
	Camera        rl.Camera3D
	GridVisible   bool
	BoundsVisible bool
	reg           *primitives.Registry
}

// New returns a scene with a perspective camera (fovy 45°, Y up) and the
// grid and boundary wireframe visible. The camera transform is overwritten
// every frame from the free-look controller.
func New(reg *primitives.Registry) *Scene {
	s := &Scene{reg: reg}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	s.GridVisible = true
	s.BoundsVisible = true
	return s
}

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Draw renders the 3D scene: grid, ground slab, ball, boundary wireframe.
// cam is projected into the raylib camera first; the registry gets the view
// position for lighting.
func (s *Scene) Draw(cam *camera.FreeLook, g *ground.Ground, ball *physics.Body, boundary *containment.Boundary) {
	cam.Apply(&s.Camera)
	s.reg.SetView([3]float32{cam.Position.X(), cam.Position.Y(), cam.Position.Z()}, [3]float32{0.5, 1, 0.5})

	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawEditorGrid()
	}
	if g != nil {
		s.reg.DrawBox(g.Mesh, [3]float32{0, ground.CenterY, 0})
	}
	if ball != nil {
		s.reg.DrawBall(ball.Position, ball.Radius)
	}
	if s.BoundsVisible && boundary != nil {
		center := rl.NewVector3(boundary.Center[0], boundary.Center[1], boundary.Center[2])
		rl.DrawSphereWires(center, boundary.Radius, boundaryRings, boundarySlices, boundaryColor)
	}
	rl.EndMode3D()
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines. Reuses
// start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}
}
