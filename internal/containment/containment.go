// Package containment keeps dynamic bodies inside a fixed spherical boundary.
//
// This is positional and velocity correction, not rigid-body collision: the
// boundary never moves and never receives an impulse. The engine's normal
// integration (gravity, ground bounce) runs first; Enforce then clamps any
// body that escaped back onto the boundary shell and reflects its outward
// velocity elastically.
package containment

import (
	"github.com/chewxy/math32"

	"game-sandbox/internal/physics"
)

// DefaultMargin is the buffer subtracted from the permitted distance so a
// contained body stays strictly inside the boundary, never tangent to it.
const DefaultMargin = 0.2

// Boundary is a fixed containment sphere. Bodies corrected by Enforce are
// kept within Radius - body.Radius - Margin of Center.
type Boundary struct {
	Center [3]float32
	Radius float32
	Margin float32
}

// NewBoundary returns a boundary at center with the given radius and the
// default margin.
func NewBoundary(center [3]float32, radius float32) *Boundary {
	return &Boundary{Center: center, Radius: radius, Margin: DefaultMargin}
}

// MaxDistance returns the farthest a body of the given radius may sit from
// the boundary center.
func (b *Boundary) MaxDistance(bodyRadius float32) float32 {
	return b.Radius - bodyRadius - b.Margin
}

// Enforce clamps one body inside the boundary. If the body is within its
// permitted distance nothing happens. Otherwise it is repositioned onto the
// permitted shell and, when still moving outward, its velocity is reflected
// about the inward normal (elastic: speed magnitude is preserved).
//
// A body exactly at the boundary center has no defined outward direction;
// correction is skipped for that frame rather than dividing by zero. The next
// frame's integration moves it off center and the check applies again.
func (b *Boundary) Enforce(body *physics.Body) {
	offset := [3]float32{
		body.Position[0] - b.Center[0],
		body.Position[1] - b.Center[1],
		body.Position[2] - b.Center[2],
	}
	distance := math32.Sqrt(offset[0]*offset[0] + offset[1]*offset[1] + offset[2]*offset[2])
	maxDistance := b.MaxDistance(body.Radius)
	if distance <= maxDistance || distance == 0 {
		return
	}

	dir := [3]float32{offset[0] / distance, offset[1] / distance, offset[2] / distance}
	body.Position = [3]float32{
		b.Center[0] + dir[0]*maxDistance,
		b.Center[1] + dir[1]*maxDistance,
		b.Center[2] + dir[2]*maxDistance,
	}

	// Inward normal. Only reflect velocity still pointing out through the
	// boundary; a body already moving inward (or resting) is left alone so a
	// correction never double-reflects it.
	normal := [3]float32{-dir[0], -dir[1], -dir[2]}
	vDotN := body.Velocity[0]*normal[0] + body.Velocity[1]*normal[1] + body.Velocity[2]*normal[2]
	if vDotN >= 0 {
		return
	}
	body.Velocity = [3]float32{
		body.Velocity[0] - 2*vDotN*normal[0],
		body.Velocity[1] - 2*vDotN*normal[1],
		body.Velocity[2] - 2*vDotN*normal[2],
	}
}

// EnforceAll runs Enforce over every contained body. Collisions between the
// contained bodies themselves are not resolved here; that stays with the
// physics world.
func (b *Boundary) EnforceAll(bodies []*physics.Body) {
	for _, body := range bodies {
		b.Enforce(body)
	}
}

// Distance returns how far the body currently sits from the boundary center.
// Used by the inspector overlay.
func (b *Boundary) Distance(body *physics.Body) float32 {
	dx := body.Position[0] - b.Center[0]
	dy := body.Position[1] - b.Center[1]
	dz := body.Position[2] - b.Center[2]
	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}
