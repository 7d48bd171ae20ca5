package paxos

import "math/rand/v2"

// Rand defines an interface for random number generation, allowing for testing.
// It abstracts away sources like `math/rand`.
type Rand interface {
	// IntN returns, as an int, a non-negative pseudo-random number in [0,n).
	// It panics if n <= 0.
	IntN(n int) int

	// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
	Float64() float64
}

// standardRand implements Rand using the standard math/rand/v2 package.
type standardRand struct{}

// NewStandardRand returns a Rand backed by the shared math/rand/v2 source,
// which is safe for concurrent use.
func NewStandardRand() Rand {
	return &standardRand{}
}

func (sr *standardRand) IntN(n int) int {
	return rand.IntN(n)
}

func (sr *standardRand) Float64() float64 {
	return rand.Float64()
}
