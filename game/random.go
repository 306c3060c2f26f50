package game

import "math/rand"

// RandomSource produces uniformly distributed floats in [0, 1).
// *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// globalRandom draws from the math/rand top-level source
type globalRandom struct{}

func (globalRandom) Float64() float64 {
	return rand.Float64()
}

// DefaultRandomSource returns the unseeded process-wide random source
func DefaultRandomSource() RandomSource {
	return globalRandom{}
}

// NewSeededRandomSource returns a reproducible source for the given seed
func NewSeededRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}
