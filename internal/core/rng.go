package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewClockRNG seeds from the wall clock for non-reproducible runs.
func NewClockRNG() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// IntN returns a uniform int in [0, n).
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}

// Between returns a uniform int in [lo, hi], both ends inclusive.
func (r *RNG) Between(lo, hi int) int {
	return lo + r.r.IntN(hi-lo+1)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
