package rng

import (
	"math/rand"
	"time"
)

// seededSource implements Source with a deterministic generator.
// Same seed, same sequence - required for reproducible loot across
// save and replay.
type seededSource struct {
	r *rand.Rand
}

// NewSeeded creates a Source whose sequence is fully determined by seed
func NewSeeded(seed int64) Source {
	return &seededSource{r: rand.New(rand.NewSource(seed))}
}

// NewTimeSeeded creates a Source seeded from the wall clock
func NewTimeSeeded() Source {
	return NewSeeded(time.Now().UnixNano())
}

// Float64 implements Source.Float64
func (s *seededSource) Float64() float64 {
	return s.r.Float64()
}
