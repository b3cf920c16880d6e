package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepAppliesGravity(t *testing.T) {
	w := NewWorld()
	b := NewSphere([3]float32{0, 10, 0}, 0.5, 1, 1)
	w.AddBody(b)

	w.Step(1)

	assert.InDelta(t, -9.8, b.Velocity[1], 1e-5)
	assert.InDelta(t, 10-9.8, b.Position[1], 1e-4)
}

func TestStepStaticBodyNeverMoves(t *testing.T) {
	w := NewWorld()
	slab := NewBox([3]float32{0, -2, 0}, [3]float32{20, 1, 15}, 1, true)
	ball := NewSphere([3]float32{0, -1.2, 0}, 0.5, 1, 1)
	ball.Velocity = [3]float32{0, -5, 0}
	w.AddBody(ball)
	w.AddBody(slab)

	for i := 0; i < 10; i++ {
		w.Step(0.016)
	}

	assert.Equal(t, [3]float32{0, -2, 0}, slab.Position)
	assert.Equal(t, [3]float32{0, 0, 0}, slab.Velocity)
}

func TestStepElasticBounceReflectsVelocity(t *testing.T) {
	w := NewWorld()
	slab := NewBox([3]float32{0, -2, 0}, [3]float32{20, 1, 15}, 1, true)
	ball := NewSphere([3]float32{0, -1.4, 0}, 0.5, 1, 1) // overlapping slab top
	ball.Velocity = [3]float32{0, -5, 0}
	w.AddBody(slab)
	w.AddBody(ball)

	w.Step(0.001) // tiny dt: gravity contribution negligible

	require.Positive(t, ball.Velocity[1], "ball should bounce upward")
	assert.InDelta(t, 5, ball.Velocity[1], 0.1)
	// Ball pushed out of the slab: bottom of ball at or above slab top.
	assert.GreaterOrEqual(t, ball.Position[1]-ball.Radius, float32(-1.5)-1e-4)
}

func TestStepRestitutionZeroStops(t *testing.T) {
	w := NewWorld()
	slab := NewBox([3]float32{0, -2, 0}, [3]float32{20, 1, 15}, 1, true)
	ball := NewSphere([3]float32{0, -1.4, 0}, 0.5, 1, 0)
	ball.Velocity = [3]float32{0, -5, 0}
	w.AddBody(slab)
	w.AddBody(ball)

	w.Step(0.001)

	assert.InDelta(t, 0, ball.Velocity[1], 1e-4)
}

func TestStepSeparatingBodyKeepsVelocity(t *testing.T) {
	w := NewWorld()
	slab := NewBox([3]float32{0, -2, 0}, [3]float32{20, 1, 15}, 1, true)
	ball := NewSphere([3]float32{0, -1.4, 0}, 0.5, 1, 1)
	ball.Velocity = [3]float32{0, 5, 0} // already moving away
	w.AddBody(slab)
	w.AddBody(ball)

	w.Step(0.001)

	// Still positive, not re-reflected downward.
	assert.Positive(t, ball.Velocity[1])
}

func TestRemoveBody(t *testing.T) {
	w := NewWorld()
	a := NewBox([3]float32{0, 0, 0}, [3]float32{1, 1, 1}, 1, true)
	b := NewBox([3]float32{5, 0, 0}, [3]float32{1, 1, 1}, 1, true)
	w.AddBody(a)
	w.AddBody(b)

	w.RemoveBody(a)

	require.Len(t, w.Bodies, 1)
	assert.Same(t, b, w.Bodies[0])

	// Removing an absent body is a no-op.
	w.RemoveBody(a)
	assert.Len(t, w.Bodies, 1)
}

func TestPenetrationPicksSmallestAxis(t *testing.T) {
	// Two unit boxes offset mostly on X: smallest overlap is X.
	aMin := [3]float32{0, 0, 0}
	aMax := [3]float32{1, 1, 1}
	bMin := [3]float32{0.9, 0.5, 0.5}
	bMax := [3]float32{1.9, 1.5, 1.5}

	depth, axis := penetration(aMin, aMax, bMin, bMax)

	assert.Equal(t, 0, axis)
	assert.InDelta(t, 0.1, depth, 1e-5)
}

func TestPenetrationDisjoint(t *testing.T) {
	aMin := [3]float32{0, 0, 0}
	aMax := [3]float32{1, 1, 1}
	bMin := [3]float32{2, 0, 0}
	bMax := [3]float32{3, 1, 1}

	_, axis := penetration(aMin, aMax, bMin, bMax)

	assert.Equal(t, -1, axis)
}
