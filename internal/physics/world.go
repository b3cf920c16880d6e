package physics

// World holds a set of bodies and runs a simple 3D physics step: gravity,
// integration, pairwise collision resolution. Containment correction runs
// after Step, outside this package.
type World struct {
	Gravity [3]float32
	Bodies  []*Body
}

// NewWorld returns a new physics world with default gravity (0, -9.8, 0).
// The scene is Y-up, so "down" is -Y.
func NewWorld() *World {
	return &World{
		Gravity: [3]float32{0, -9.8, 0},
	}
}

// SetGravity sets the gravity vector.
func (w *World) SetGravity(g [3]float32) {
	w.Gravity = g
}

// AddBody appends a body to the world. Order is preserved for syncing with
// scene objects.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// RemoveBody removes the given body from the world, comparing by pointer.
// Removing a body that is not present is a no-op. Used when the ground
// collider is destroyed and regenerated with new dimensions.
func (w *World) RemoveBody(b *Body) {
	for i, candidate := range w.Bodies {
		if candidate == b {
			w.Bodies = append(w.Bodies[:i], w.Bodies[i+1:]...)
			return
		}
	}
}

// penetration returns the overlap amount and axis index (0=X, 1=Y, 2=Z) for
// the minimum penetration between two AABBs. If no overlap, returns (0, -1).
func penetration(aMin, aMax, bMin, bMax [3]float32) (depth float32, axis int) {
	axis = -1
	for i := 0; i < 3; i++ {
		overlap := minf(aMax[i], bMax[i]) - maxf(aMin[i], bMin[i])
		if overlap <= 0 {
			return 0, -1
		}
		if axis < 0 || overlap < depth {
			depth = overlap
			axis = i
		}
	}
	return depth, axis
}

// Step advances the simulation by dt seconds: apply gravity, integrate, then
// resolve overlapping pairs along the minimum-penetration axis. On impact the
// velocity component on the hit axis is reflected scaled by the body's
// restitution (0 = stop, 1 = elastic). Static bodies never move.
func (w *World) Step(dt float32) {
	for _, b := range w.Bodies {
		if b.Static {
			continue
		}
		b.Velocity[0] += w.Gravity[0] * dt
		b.Velocity[1] += w.Gravity[1] * dt
		b.Velocity[2] += w.Gravity[2] * dt
		b.Position[0] += b.Velocity[0] * dt
		b.Position[1] += b.Velocity[1] * dt
		b.Position[2] += b.Velocity[2] * dt
	}

	for i := 0; i < len(w.Bodies); i++ {
		bi := w.Bodies[i]
		for j := i + 1; j < len(w.Bodies); j++ {
			bj := w.Bodies[j]
			if bi.Static && bj.Static {
				continue
			}
			iMin, iMax := bi.aabb()
			jMin, jMax := bj.aabb()
			depth, axis := penetration(iMin, iMax, jMin, jMax)
			if axis < 0 {
				continue
			}
			resolvePair(bi, bj, depth, axis)
		}
	}
}

// resolvePair pushes two overlapping bodies apart along the given axis and
// applies the impact response. Separation is split by mass for two dynamic
// bodies; a static body absorbs the whole correction on the other side.
func resolvePair(bi, bj *Body, depth float32, axis int) {
	// Push bi toward its own side of bj.
	dir := float32(1)
	if bi.Position[axis] < bj.Position[axis] {
		dir = -1
	}

	var moveI, moveJ float32
	switch {
	case bi.Static:
		moveJ = -dir * depth
	case bj.Static:
		moveI = dir * depth
	default:
		total := bi.Mass + bj.Mass
		moveI = dir * depth * (bj.Mass / total)
		moveJ = -dir * depth * (bi.Mass / total)
	}
	bi.Position[axis] += moveI
	bj.Position[axis] += moveJ

	if !bi.Static {
		bi.Velocity[axis] = bounce(bi.Velocity[axis], dir, bi.Restitution)
	}
	if !bj.Static {
		bj.Velocity[axis] = bounce(bj.Velocity[axis], -dir, bj.Restitution)
	}
}

// bounce returns the post-impact velocity on the hit axis. dir is the
// direction the body was pushed; only velocity moving against the push (into
// the contact) is reflected, so a body already separating keeps its velocity.
func bounce(v, dir, restitution float32) float32 {
	if v*dir >= 0 {
		return v
	}
	return -v * restitution
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
