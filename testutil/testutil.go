package testutil

import (
	"math/rand"

	"github.com/hupe1980/bitvec"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// RandomBitVector generates a random BitVector of width n.
func (r *RNG) RandomBitVector(n int) bitvec.BitVector {
	v := make(bitvec.BitVector, n)
	for i := range v {
		v[i] = bitvec.Bit(r.rand.Intn(2))
	}
	return v
}

// RandomBitVectors generates num random BitVectors of width n.
func (r *RNG) RandomBitVectors(num, n int) []bitvec.BitVector {
	vectors := make([]bitvec.BitVector, num)
	for i := range vectors {
		vectors[i] = r.RandomBitVector(n)
	}
	return vectors
}
