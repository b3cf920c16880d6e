package physics

// Shape selects how a body collides: as an axis-aligned box (from Scale) or
// as a sphere (from Radius).
type Shape int

const (
	ShapeBox Shape = iota
	ShapeSphere
)

// Body is a 3D rigid body with position, velocity, and either a box extent
// (Scale) or a sphere radius. Static bodies do not move and are not affected
// by gravity. Restitution scales the velocity reflected on impact: 0 = dead
// stop, 1 = perfectly elastic bounce.
type Body struct {
	Shape       Shape
	Position    [3]float32
	Velocity    [3]float32
	Scale       [3]float32 // box full extents; ignored for spheres
	Radius      float32    // sphere radius; ignored for boxes
	Mass        float32
	Restitution float32
	Static      bool
}

// NewBox returns a box body with the given position and full extents.
// Velocity is zero. mass is used for collision response; use 1 for default.
func NewBox(position, scale [3]float32, mass float32, static bool) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{
		Shape:    ShapeBox,
		Position: position,
		Scale:    scale,
		Mass:     mass,
		Static:   static,
	}
}

// NewSphere returns a dynamic sphere body with the given position, radius,
// and restitution.
func NewSphere(position [3]float32, radius, mass, restitution float32) *Body {
	if mass <= 0 {
		mass = 1
	}
	if radius <= 0 {
		radius = 0.5
	}
	return &Body{
		Shape:       ShapeSphere,
		Position:    position,
		Radius:      radius,
		Mass:        mass,
		Restitution: restitution,
	}
}

// aabb returns the body's axis-aligned bounds: half extents from Scale for
// boxes (zero components default to 1), Radius in every axis for spheres.
func (b *Body) aabb() (min, max [3]float32) {
	var half [3]float32
	if b.Shape == ShapeSphere {
		half = [3]float32{b.Radius, b.Radius, b.Radius}
	} else {
		sx, sy, sz := b.Scale[0], b.Scale[1], b.Scale[2]
		if sx == 0 {
			sx = 1
		}
		if sy == 0 {
			sy = 1
		}
		if sz == 0 {
			sz = 1
		}
		half = [3]float32{sx * 0.5, sy * 0.5, sz * 0.5}
	}
	for i := 0; i < 3; i++ {
		min[i] = b.Position[i] - half[i]
		max[i] = b.Position[i] + half[i]
	}
	return min, max
}
