package rng

import (
	"math/rand"
	"time"
)

// Source wraps math/rand for uniform, reproducible shuffles
type Source struct {
	rng *rand.Rand
}

// NewSource returns a Generator seeded with the provided seed.
// Two sources built from the same seed produce the same sequence.
func NewSource(seed int64) *Source {
	return &Source{
		rng: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// NewTimeSource returns a Generator seeded from the wall clock
func NewTimeSource() *Source {
	return NewSource(time.Now().UnixNano())
}

// Intn returns a random number from 0 up to but not including n
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}
