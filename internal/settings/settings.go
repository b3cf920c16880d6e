package settings

import "sync"

// Value ranges enforced by the store. Writers outside these ranges are clamped,
// so readers never need to re-check.
const (
	MinSensitivity = 0.1
	MaxSensitivity = 1.0
	MinBallCounter = 0
	MaxBallCounter = 100
	MinGroundXZ    = 10.0
	MaxGroundXZ    = 100.0
	MinGroundY     = 0.5
	MaxGroundY     = 2.0
)

// Defaults used at startup when no persisted preferences exist.
const (
	DefaultSensitivity = 0.1
	DefaultGroundX     = 20.0
	DefaultGroundY     = 1.0
	DefaultGroundZ     = 15.0
)

// Snapshot is a consistent copy of every setting, taken under the store lock.
// Simulation systems read one Snapshot per frame instead of locking per field.
type Snapshot struct {
	Vsync       bool
	Sensitivity float32
	BallCounter int
	GroundSize  [3]float32
}

// Store holds the shared sandbox settings: written by the settings panel and
// console, read every frame by the simulation. One mutex serializes all
// access so no reader observes a half-written multi-field value.
type Store struct {
	mu          sync.Mutex
	vsync       bool
	sensitivity float32
	ballCounter int
	groundSize  [3]float32
}

// NewStore returns a store with the default settings (vsync off,
// sensitivity 0.1, counter 0, ground 20×1×15).
func NewStore() *Store {
	return &Store{
		sensitivity: DefaultSensitivity,
		groundSize:  [3]float32{DefaultGroundX, DefaultGroundY, DefaultGroundZ},
	}
}

// Snapshot returns a consistent copy of all settings.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Vsync:       s.vsync,
		Sensitivity: s.sensitivity,
		BallCounter: s.ballCounter,
		GroundSize:  s.groundSize,
	}
}

// Vsync returns the current vsync flag.
func (s *Store) Vsync() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vsync
}

// SetVsync sets the vsync flag.
func (s *Store) SetVsync(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vsync = on
}

// Sensitivity returns the pointer sensitivity.
func (s *Store) Sensitivity() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sensitivity
}

// SetSensitivity sets the pointer sensitivity, clamped to [0.1, 1.0].
func (s *Store) SetSensitivity(v float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sensitivity = clamp(v, MinSensitivity, MaxSensitivity)
}

// BallCounter returns the UI ball counter.
func (s *Store) BallCounter() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ballCounter
}

// SetBallCounter sets the UI ball counter, clamped to [0, 100].
// The counter has no physical effect; it only exists on the panel.
func (s *Store) SetBallCounter(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < MinBallCounter {
		n = MinBallCounter
	}
	if n > MaxBallCounter {
		n = MaxBallCounter
	}
	s.ballCounter = n
}

// GroundSize returns the ground slab dimensions (x, y, z).
func (s *Store) GroundSize() [3]float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.groundSize
}

// SetGroundSize sets the ground slab dimensions. X and Z are clamped to
// [10, 100], Y to [0.5, 2]. All three components are written together.
func (s *Store) SetGroundSize(size [3]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groundSize = [3]float32{
		clamp(size[0], MinGroundXZ, MaxGroundXZ),
		clamp(size[1], MinGroundY, MaxGroundY),
		clamp(size[2], MinGroundXZ, MaxGroundXZ),
	}
}

// SetGroundX sets only the X dimension, clamped. Used by the panel sliders,
// which edit one axis at a time.
func (s *Store) SetGroundX(x float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groundSize[0] = clamp(x, MinGroundXZ, MaxGroundXZ)
}

// SetGroundY sets only the Y dimension, clamped.
func (s *Store) SetGroundY(y float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groundSize[1] = clamp(y, MinGroundY, MaxGroundY)
}

// SetGroundZ sets only the Z dimension, clamped.
func (s *Store) SetGroundZ(z float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groundSize[2] = clamp(z, MinGroundXZ, MaxGroundXZ)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
