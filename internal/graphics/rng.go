package graphics

import "time"

// Source supplies the random channel for cosmetic jitter.
// Structure never depends on it, only colors and loop durations.
type Source interface {
	Float64() float64
}

// RNG is a small deterministic generator (LCG) suitable for seeding in tests
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
// A zero seed is replaced with the current time.
func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RNG{state: seed}
}

// Uint64 returns a pseudo-random uint64
func (r *RNG) Uint64() uint64 {
	// LCG parameters from Numerical Recipes
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a pseudo-random float64 in [0, 1)
func (r *RNG) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Fixed is a Source that always returns the same value
type Fixed float64

// Float64 implements Source
func (f Fixed) Float64() float64 { return float64(f) }
