package settings

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStoreDefaults(t *testing.T) {
	s := NewStore()

	snap := s.Snapshot()
	assert.False(t, snap.Vsync)
	assert.InDelta(t, DefaultSensitivity, snap.Sensitivity, 1e-6)
	assert.Equal(t, 0, snap.BallCounter)
	assert.Equal(t, [3]float32{DefaultGroundX, DefaultGroundY, DefaultGroundZ}, snap.GroundSize)
}

func TestSetSensitivityClamps(t *testing.T) {
	s := NewStore()

	s.SetSensitivity(0.5)
	assert.InDelta(t, 0.5, s.Sensitivity(), 1e-6)

	s.SetSensitivity(0)
	assert.InDelta(t, MinSensitivity, s.Sensitivity(), 1e-6)

	s.SetSensitivity(3)
	assert.InDelta(t, MaxSensitivity, s.Sensitivity(), 1e-6)
}

func TestSetBallCounterClamps(t *testing.T) {
	s := NewStore()

	s.SetBallCounter(42)
	assert.Equal(t, 42, s.BallCounter())

	s.SetBallCounter(-5)
	assert.Equal(t, MinBallCounter, s.BallCounter())

	s.SetBallCounter(500)
	assert.Equal(t, MaxBallCounter, s.BallCounter())
}

func TestSetGroundSizeClampsPerAxis(t *testing.T) {
	s := NewStore()

	s.SetGroundSize([3]float32{5, 10, 300})

	assert.Equal(t, [3]float32{MinGroundXZ, MaxGroundY, MaxGroundXZ}, s.GroundSize())
}

func TestSetGroundAxisLeavesOthers(t *testing.T) {
	s := NewStore()

	s.SetGroundX(40)
	s.SetGroundY(0.1) // clamps up to 0.5

	size := s.GroundSize()
	assert.InDelta(t, 40, size[0], 1e-6)
	assert.InDelta(t, MinGroundY, size[1], 1e-6)
	assert.InDelta(t, DefaultGroundZ, size[2], 1e-6)
}

func TestSnapshotIsConsistentUnderWrites(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			if i%2 == 0 {
				s.SetGroundSize([3]float32{20, 1, 15})
			} else {
				s.SetGroundSize([3]float32{50, 2, 50})
			}
		}
	}()

	// Every snapshot must be one of the two written values, never a mix.
	a := [3]float32{20, 1, 15}
	b := [3]float32{50, 2, 50}
	for i := 0; i < 1000; i++ {
		got := s.Snapshot().GroundSize
		assert.True(t, got == a || got == b, "torn ground size %v", got)
	}
	close(stop)
	wg.Wait()
}
