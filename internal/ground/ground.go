// Package ground owns the resizable ground slab: one visual mesh and one
// static box collider, regenerated together whenever the slab dimensions in
// the settings panel change.
package ground

import (
	"game-sandbox/internal/physics"
)

// CenterY is the fixed vertical offset of the slab center below the origin.
const CenterY = -2.0

// MeshID identifies an allocated box mesh. 0 is never a valid ID.
type MeshID uint32

// MeshAllocator creates and destroys box meshes. The scene implements it with
// raylib GenMeshCube/UnloadMesh; tests use a counting fake so no GPU context
// is needed.
type MeshAllocator interface {
	AllocBox(size [3]float32) MeshID
	Free(id MeshID)
}

// Ground is the current slab: its dimensions, its mesh handle, and its
// collider in the physics world. At most one Ground exists at a time.
type Ground struct {
	Size     [3]float32
	Mesh     MeshID
	Collider *physics.Body
}

// Synchronizer regenerates the ground when the slab dimensions change. It
// compares the current settings value against the last applied one every
// frame (a level-triggered diff, not an event): equal means no-op, so running
// it twice with unchanged settings causes zero churn.
type Synchronizer struct {
	alloc  MeshAllocator
	world  *physics.World
	ground *Ground
	prev   [3]float32
}

// NewSynchronizer returns a synchronizer with no ground applied yet. The
// first Sync always builds the slab, since no stored size matches it.
func NewSynchronizer(alloc MeshAllocator, world *physics.World) *Synchronizer {
	return &Synchronizer{alloc: alloc, world: world}
}

// Ground returns the current slab, or nil before the first Sync.
func (s *Synchronizer) Ground() *Ground {
	return s.ground
}

// Sync applies the given slab dimensions. If they equal the last applied
// value nothing happens. Otherwise the existing mesh is freed and the
// collider removed, a new box mesh and static collider sized (x, y, z) are
// created centered at (0, CenterY, 0), and the applied value is recorded.
func (s *Synchronizer) Sync(size [3]float32) {
	if s.ground != nil && size == s.prev {
		return
	}
	s.destroy()
	s.ground = &Ground{
		Size:     size,
		Mesh:     s.alloc.AllocBox(size),
		Collider: physics.NewBox([3]float32{0, CenterY, 0}, size, 1, true),
	}
	s.world.AddBody(s.ground.Collider)
	s.prev = size
}

// destroy frees the current slab's mesh and removes its collider. No-op when
// no ground exists yet.
func (s *Synchronizer) destroy() {
	if s.ground == nil {
		return
	}
	s.alloc.Free(s.ground.Mesh)
	s.world.RemoveBody(s.ground.Collider)
	s.ground = nil
}
