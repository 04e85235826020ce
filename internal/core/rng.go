package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r    *rand.Rand
	seed int64
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0)), seed: seed}
}

// Seed returns the seed the generator was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Jitter returns a value in [-span/2, span/2).
func (r *RNG) Jitter(span float64) float64 {
	return (r.r.Float64() - 0.5) * span
}

// Band returns a value in [lo, lo+span).
func (r *RNG) Band(lo, span float64) float64 {
	return lo + r.r.Float64()*span
}

// IntN returns a value in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}
