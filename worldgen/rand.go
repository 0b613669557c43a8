package worldgen

import "math/rand/v2"

// Rand is the random source generation draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
	Int64() int64
}

// NewRand returns a source for seed. Seed 0 picks a random seed, so two
// worlds generated that way will differ.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}
