package bitvec

// And returns the elementwise conjunction of its operands: output bit i is 1
// if every operand has a 1 at position i. All operands must share one width.
func And(a, b BitVector, more ...BitVector) (BitVector, error) {
	operands := gather(a, b, more)
	if err := validateOperands(operands...); err != nil {
		return nil, err
	}
	out := Ones(len(a))
	for _, v := range operands {
		for i, bit := range v {
			out[i] &= bit
		}
	}
	return out, nil
}

// Or returns the elementwise disjunction of its operands: output bit i is 1
// if any operand has a 1 at position i. All operands must share one width.
func Or(a, b BitVector, more ...BitVector) (BitVector, error) {
	operands := gather(a, b, more)
	if err := validateOperands(operands...); err != nil {
		return nil, err
	}
	out := New(len(a))
	for _, v := range operands {
		for i, bit := range v {
			out[i] |= bit
		}
	}
	return out, nil
}

// Xor returns the elementwise exclusive disjunction of its operands: output
// bit i is 1 if exactly one operand has a 1 at position i. For two operands
// this is ordinary XOR. All operands must share one width.
func Xor(a, b BitVector, more ...BitVector) (BitVector, error) {
	operands := gather(a, b, more)
	if err := validateOperands(operands...); err != nil {
		return nil, err
	}
	counts := make([]int, len(a))
	for _, v := range operands {
		for i, bit := range v {
			counts[i] += int(bit)
		}
	}
	out := New(len(a))
	for i, c := range counts {
		if c == 1 {
			out[i] = 1
		}
	}
	return out, nil
}

// Not returns the bitwise complement of v.
func Not(v BitVector) (BitVector, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	out := make(BitVector, len(v))
	for i, bit := range v {
		out[i] = 1 - bit
	}
	return out, nil
}

func gather(a, b BitVector, more []BitVector) []BitVector {
	operands := make([]BitVector, 0, 2+len(more))
	operands = append(operands, a, b)
	return append(operands, more...)
}
