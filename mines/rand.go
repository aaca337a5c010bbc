package mines

import "math/rand/v2"

// Rand is the random source used for mine placement. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG backed source. The same seed always yields the same
// mine layout.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
