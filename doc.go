// Package bitvec implements bitwise and arithmetic operations on fixed-width,
// big-endian bit vectors.
//
// A BitVector is an ordered sequence of 0/1 values with index 0 as the most
// significant bit, interpreted as an unsigned binary magnitude. All operations
// are pure: inputs are never mutated, results are newly allocated and keep the
// operand width, and overflow or underflow wraps modulo 2^L.
//
// # Quick Start
//
//	a := bitvec.BitVector{1, 1, 0, 0, 0, 1, 0, 1}
//	b := bitvec.BitVector{0, 0, 0, 1, 0, 1, 1, 0}
//
//	sum, _ := bitvec.Add(a, b)  // (1,1,0,1,1,0,1,1)
//	x, _ := bitvec.Xor(a, b)    // (1,1,0,1,0,0,1,1)
//	n, _ := bitvec.Not(a)       // (0,0,1,1,1,0,1,0)
//
// # Validation
//
// Operands are validated at the call boundary: elements other than 0 or 1
// yield ErrInvalidBit, and operations requiring equal widths yield
// ErrLengthMismatch before any computation. Errors are plain values,
// matchable with errors.As.
//
// # Arithmetic
//
// Add and Sub are ripple carry/borrow scans from the least significant bit;
// Inc and Dec short-circuit as soon as the carry or borrow clears:
//
//	bitvec.Inc(bitvec.BitVector{1, 1, 1, 1})  // (0,0,0,0), wraps
//	bitvec.Dec(bitvec.BitVector{0, 0, 0, 0})  // (1,1,1,1), wraps
//
// # Interop
//
// The convert layer packs vectors into big-endian bytes (Bytes/FromBytes) and
// converts to and from bits-and-blooms and roaring set containers, indexed by
// sequence position.
//
// The package holds no state and performs no I/O; every function is safe for
// concurrent use.
package bitvec
