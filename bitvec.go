package bitvec

// Bit is a single binary digit. Only the values 0 and 1 are valid;
// anything else is rejected at the API boundary with ErrInvalidBit.
type Bit = uint8

// BitVector is a fixed-width, big-endian sequence of bits: index 0 is the
// most significant position, index Len()-1 the least significant. It
// represents an unsigned binary magnitude of width Len().
//
// BitVector is a value type. Operations validate their inputs, never mutate
// them, and return new vectors of the same width; overflow and underflow
// wrap modulo 2^Len().
type BitVector []Bit

// New returns an all-zero BitVector of width n.
func New(n int) BitVector {
	return make(BitVector, n)
}

// Ones returns an all-one BitVector of width n.
func Ones(n int) BitVector {
	v := make(BitVector, n)
	for i := range v {
		v[i] = 1
	}
	return v
}

// Len returns the width of the vector in bits.
func (v BitVector) Len() int {
	return len(v)
}

// Clone returns a copy of v that shares no storage with it.
func (v BitVector) Clone() BitVector {
	out := make(BitVector, len(v))
	copy(out, v)
	return out
}

// Validate checks that every element of v is 0 or 1.
func (v BitVector) Validate() error {
	for i, bit := range v {
		if bit > 1 {
			return &ErrInvalidBit{Index: i, Value: bit}
		}
	}
	return nil
}

// validateOperands checks that all operands are well-formed and share the
// width of the first. Lengths are checked before values so that a caller
// mixing both mistakes sees the structural one first.
func validateOperands(operands ...BitVector) error {
	width := len(operands[0])
	for _, v := range operands[1:] {
		if len(v) != width {
			return &ErrLengthMismatch{Expected: width, Actual: len(v)}
		}
	}
	for _, v := range operands {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
