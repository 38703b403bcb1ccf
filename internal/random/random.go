// Package random wraps a seeded generator so that every random draw in a game
// session comes from one injectable source.
package random

import (
	"math"
	"math/rand/v2"
	"time"
)

// Source is a deterministic random source. It is not safe for concurrent use;
// each session owns its own.
type Source struct {
	r    *rand.Rand
	seed uint64
}

// New returns a Source seeded with seed. Equal seeds produce equal sequences.
func New(seed uint64) *Source {
	return &Source{
		r:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// NewTimeSeeded returns a Source seeded from the wall clock.
func NewTimeSeeded() *Source {
	return New(uint64(time.Now().UnixNano()))
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() uint64 {
	return s.seed
}

// Float64 returns a value in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Uniform returns a value in [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}

// IntRange returns an integer in [lo, hi], both ends inclusive.
func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.IntN(hi-lo+1)
}

// IntN returns an integer in [0, n).
func (s *Source) IntN(n int) int {
	return s.r.IntN(n)
}

// Angle returns a heading in [0, 2π) radians.
func (s *Source) Angle() float64 {
	return s.r.Float64() * 2 * math.Pi
}
