// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random number generator for reproducible
// bit-vector generation in property-style tests:
//
//	rng := testutil.NewRNG(seed)
//	v := rng.RandomBitVector(64)
//	vs := rng.RandomBitVectors(100, 64)
package testutil
