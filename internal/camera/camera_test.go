package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLooksAtTarget(t *testing.T) {
	c := New(mgl32.Vec3{-1, 10, 30}, mgl32.Vec3{0, 0, 0})

	want := mgl32.Vec3{1, -10, -30}.Normalize()
	fwd := c.Forward()
	assert.InDelta(t, want.X(), fwd.X(), 1e-5)
	assert.InDelta(t, want.Y(), fwd.Y(), 1e-5)
	assert.InDelta(t, want.Z(), fwd.Z(), 1e-5)
	// No roll: the camera's right axis stays horizontal.
	assert.InDelta(t, 0, c.Right().Y(), 1e-5)
}

func TestMoveForward(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -10})

	c.Move(MoveInput{Forward: true}, 1)

	assert.InDelta(t, 0, c.Position.X(), 1e-5)
	assert.InDelta(t, 0, c.Position.Y(), 1e-5)
	assert.InDelta(t, -MoveSpeed, c.Position.Z(), 1e-5)
}

func TestMoveDiagonalNotFaster(t *testing.T) {
	straight := New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -10})
	diagonal := New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -10})

	straight.Move(MoveInput{Forward: true}, 0.016)
	diagonal.Move(MoveInput{Forward: true, Right: true}, 0.016)

	assert.InDelta(t, straight.Position.Len(), diagonal.Position.Len(), 1e-5)
}

func TestMoveOpposedKeysCancel(t *testing.T) {
	c := New(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 0, 0})

	c.Move(MoveInput{Forward: true, Back: true}, 0.016)

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, c.Position)
}

func TestMoveUpFollowsLocalUp(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -10})

	c.Move(MoveInput{Up: true}, 1)

	assert.InDelta(t, MoveSpeed, c.Position.Y(), 1e-5)
}

func TestLookStaysUnitQuaternion(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -10})

	for i := 0; i < 10000; i++ {
		c.Look(mgl32.Vec2{13.7, -4.2}, 0.73, 0.016)
	}

	assert.InDelta(t, 1, c.Orientation.Len(), 1e-3)
}

func TestLookYawTurnsRightForPositiveDeltaX(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -10})

	// Mouse moved right: the negated delta yaws clockwise, so forward swings
	// from -Z toward +X.
	c.Look(mgl32.Vec2{100, 0}, 1, 0.01)

	fwd := c.Forward()
	assert.Positive(t, fwd.X())
	assert.InDelta(t, 0, fwd.Y(), 1e-5)
}

func TestLookPitchNoRoll(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -10})

	// Alternate yaw and pitch heavily; the fixed composition order (world
	// yaw first, local pitch second) must not accumulate roll.
	for i := 0; i < 200; i++ {
		c.Look(mgl32.Vec2{5, 0}, 0.5, 0.016)
		c.Look(mgl32.Vec2{0, 3}, 0.5, 0.016)
		c.Look(mgl32.Vec2{-5, -3}, 0.5, 0.016)
	}

	// Right axis horizontal = no roll.
	assert.InDelta(t, 0, c.Right().Y(), 1e-3)
}

func TestLookRotationScalesWithSensitivity(t *testing.T) {
	slow := New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -10})
	fast := New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -10})

	slow.Look(mgl32.Vec2{50, 0}, 0.1, 0.016)
	fast.Look(mgl32.Vec2{50, 0}, 1.0, 0.016)

	slowDot := slow.Forward().Dot(mgl32.Vec3{0, 0, -1})
	fastDot := fast.Forward().Dot(mgl32.Vec3{0, 0, -1})
	require.Less(t, fastDot, slowDot, "higher sensitivity must rotate farther")
}
