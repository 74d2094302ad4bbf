package game

// RNG is a deterministic pseudo-random number generator using a 64-bit LCG.
// The simulation carries two independent instances: a layout generator with a
// fixed seed, so arena generation is reproducible regardless of prior
// gameplay draws, and a gameplay generator seeded per session.
type RNG struct {
	state uint64
}

// NewRNG creates a new generator with the given seed.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Seed resets the generator state to the given seed.
func (r *RNG) Seed(seed int64) {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	r.state = s
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}
