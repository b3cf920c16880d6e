// Package camera implements a free-look camera: WASD translation relative to
// the current orientation and mouse-look rotation while the cursor is
// captured. Orientation is a unit quaternion; yaw is composed around the
// world Y axis and pitch around the camera's local X axis, in that order, so
// no roll accumulates.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MoveSpeed is the translation speed in world units per second.
const MoveSpeed = 5.0

// MoveInput is the level state of the movement keys for one frame.
type MoveInput struct {
	Forward bool // W
	Back    bool // S
	Left    bool // A
	Right   bool // D
	Up      bool // Space: ascend along the camera's local up axis
}

// FreeLook is the camera state: world position and a unit orientation
// quaternion. Exactly one instance exists, held by the frame loop.
type FreeLook struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
}

// New returns a camera at position looking at target, with Y up and no roll.
// The orientation is built as yaw around world Y then pitch around local X,
// the same decomposition Look composes incrementally.
func New(position, target mgl32.Vec3) *FreeLook {
	dir := target.Sub(position)
	if dir.Len() == 0 {
		dir = mgl32.Vec3{0, 0, -1}
	}
	dir = dir.Normalize()
	yaw := math32.Atan2(-dir.X(), -dir.Z())
	pitch := math32.Asin(dir.Y())
	q := mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0}).Mul(mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0}))
	return &FreeLook{
		Position:    position,
		Orientation: q.Normalize(),
	}
}

// Forward returns the camera's forward direction in world space (-Z local).
func (c *FreeLook) Forward() mgl32.Vec3 {
	return c.Orientation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Right returns the camera's right direction in world space (+X local).
func (c *FreeLook) Right() mgl32.Vec3 {
	return c.Orientation.Rotate(mgl32.Vec3{1, 0, 0})
}

// Up returns the camera's up direction in world space (+Y local).
func (c *FreeLook) Up() mgl32.Vec3 {
	return c.Orientation.Rotate(mgl32.Vec3{0, 1, 0})
}

// Move translates the camera from the held movement keys. Directions are
// derived from the current orientation, summed, and renormalized before
// scaling by MoveSpeed and dt, so diagonal movement is no faster than
// axis-aligned movement.
func (c *FreeLook) Move(in MoveInput, dt float32) {
	var dir mgl32.Vec3
	if in.Forward {
		dir = dir.Add(c.Forward())
	}
	if in.Back {
		dir = dir.Sub(c.Forward())
	}
	if in.Left {
		dir = dir.Sub(c.Right())
	}
	if in.Right {
		dir = dir.Add(c.Right())
	}
	if in.Up {
		dir = dir.Add(c.Up())
	}
	if dir.LenSqr() == 0 {
		return
	}
	c.Position = c.Position.Add(dir.Normalize().Mul(MoveSpeed * dt))
}

// Look applies one frame of mouse rotation. delta is the accumulated pointer
// motion; the caller only calls Look while the cursor is captured. Yaw
// (negated delta X, around world Y) is pre-multiplied onto the normalized
// orientation, then pitch (negated delta Y, around local X) is
// post-multiplied. Normalizing after each composition counters float drift,
// so the orientation stays a unit quaternion over any number of frames.
func (c *FreeLook) Look(delta mgl32.Vec2, sensitivity, dt float32) {
	yawAngle := -delta.X() * sensitivity * dt
	pitchAngle := -delta.Y() * sensitivity * dt

	yaw := mgl32.QuatRotate(yawAngle, mgl32.Vec3{0, 1, 0})
	pitch := mgl32.QuatRotate(pitchAngle, mgl32.Vec3{1, 0, 0})

	c.Orientation = yaw.Mul(c.Orientation.Normalize())
	c.Orientation = c.Orientation.Normalize().Mul(pitch)
	c.Orientation = c.Orientation.Normalize()
}

// Apply writes the camera state into a raylib Camera3D for rendering.
func (c *FreeLook) Apply(cam *rl.Camera3D) {
	fwd := c.Forward()
	up := c.Up()
	cam.Position = rl.NewVector3(c.Position.X(), c.Position.Y(), c.Position.Z())
	cam.Target = rl.NewVector3(c.Position.X()+fwd.X(), c.Position.Y()+fwd.Y(), c.Position.Z()+fwd.Z())
	cam.Up = rl.NewVector3(up.X(), up.Y(), up.Z())
}
