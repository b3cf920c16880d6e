package ground

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-sandbox/internal/physics"
)

// fakeAllocator counts mesh churn so tests can assert on regeneration
// behavior without a GPU.
type fakeAllocator struct {
	next    MeshID
	allocs  int
	frees   int
	live    map[MeshID][3]float32
}

func newFakeAllocator() *fakeAllocator {
	return &fakeAllocator{next: 1, live: make(map[MeshID][3]float32)}
}

func (f *fakeAllocator) AllocBox(size [3]float32) MeshID {
	id := f.next
	f.next++
	f.allocs++
	f.live[id] = size
	return id
}

func (f *fakeAllocator) Free(id MeshID) {
	f.frees++
	delete(f.live, id)
}

func TestSyncFirstCallBuildsGround(t *testing.T) {
	alloc := newFakeAllocator()
	world := physics.NewWorld()
	s := NewSynchronizer(alloc, world)

	s.Sync([3]float32{20, 1, 15})

	g := s.Ground()
	require.NotNil(t, g)
	assert.Equal(t, [3]float32{20, 1, 15}, g.Size)
	assert.Equal(t, 1, alloc.allocs)
	assert.Equal(t, 0, alloc.frees)
	require.Len(t, world.Bodies, 1)
	assert.True(t, world.Bodies[0].Static)
	assert.Equal(t, [3]float32{0, CenterY, 0}, world.Bodies[0].Position)
}

func TestSyncUnchangedIsNoOp(t *testing.T) {
	alloc := newFakeAllocator()
	world := physics.NewWorld()
	s := NewSynchronizer(alloc, world)

	s.Sync([3]float32{20, 1, 15})
	g := s.Ground()
	for i := 0; i < 100; i++ {
		s.Sync([3]float32{20, 1, 15})
	}

	assert.Same(t, g, s.Ground(), "unchanged size must not rebuild")
	assert.Equal(t, 1, alloc.allocs)
	assert.Equal(t, 0, alloc.frees)
	assert.Len(t, world.Bodies, 1)
}

func TestSyncChangeRegenerates(t *testing.T) {
	alloc := newFakeAllocator()
	world := physics.NewWorld()
	s := NewSynchronizer(alloc, world)

	s.Sync([3]float32{20, 1, 15})
	old := s.Ground()
	s.Sync([3]float32{40, 1, 15})

	g := s.Ground()
	require.NotNil(t, g)
	assert.NotSame(t, old, g)
	assert.Equal(t, [3]float32{40, 1, 15}, g.Size)
	assert.Equal(t, 2, alloc.allocs)
	assert.Equal(t, 1, alloc.frees)
	// Old collider gone, new one present.
	require.Len(t, world.Bodies, 1)
	assert.Same(t, g.Collider, world.Bodies[0])
	assert.Equal(t, [3]float32{40, 1, 15}, world.Bodies[0].Scale)
}

func TestSyncExactlyOneLiveMesh(t *testing.T) {
	alloc := newFakeAllocator()
	world := physics.NewWorld()
	s := NewSynchronizer(alloc, world)

	sizes := [][3]float32{
		{20, 1, 15}, {20, 1, 15}, {30, 1, 15}, {30, 2, 15}, {30, 2, 15}, {10, 0.5, 10},
	}
	for _, size := range sizes {
		s.Sync(size)
	}

	assert.Len(t, alloc.live, 1, "exactly one mesh alive")
	assert.Equal(t, alloc.allocs-1, alloc.frees)
	assert.Len(t, world.Bodies, 1, "exactly one collider alive")
}

func TestSyncComponentwiseComparison(t *testing.T) {
	alloc := newFakeAllocator()
	world := physics.NewWorld()
	s := NewSynchronizer(alloc, world)

	s.Sync([3]float32{20, 1, 15})
	// Y-only change must regenerate too.
	s.Sync([3]float32{20, 1.5, 15})

	assert.Equal(t, 2, alloc.allocs)
	assert.Equal(t, [3]float32{20, 1.5, 15}, s.Ground().Size)
}
