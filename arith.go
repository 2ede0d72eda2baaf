package bitvec

// Add returns the sum of its operands at their common width. Addition is a
// ripple-carry scan from the least significant bit; a carry out of the most
// significant position is discarded, so the result wraps modulo 2^L.
func Add(a, b BitVector, more ...BitVector) (BitVector, error) {
	operands := gather(a, b, more)
	if err := validateOperands(operands...); err != nil {
		return nil, err
	}
	out := operands[0].Clone()
	for _, addend := range operands[1:] {
		out = addTwo(out, addend)
	}
	return out, nil
}

// Sub returns the difference of its operands at their common width: the sum
// of all operands after the first is subtracted from the first. Subtraction
// is a ripple-borrow scan from the least significant bit, equivalent to
// adding the two's complement; a borrow out of the most significant position
// is discarded, so b > a wraps modulo 2^L.
func Sub(a, b BitVector, more ...BitVector) (BitVector, error) {
	operands := gather(a, b, more)
	if err := validateOperands(operands...); err != nil {
		return nil, err
	}
	out := operands[0].Clone()
	for _, subtrahend := range operands[1:] {
		out = subTwo(out, subtrahend)
	}
	return out, nil
}

// Inc adds one to v at its width. The carry scan stops at the first 0 bit;
// an all-one input wraps to all zeros.
func Inc(v BitVector) (BitVector, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	out := v.Clone()
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] == 0 {
			out[i] = 1
			return out, nil
		}
		out[i] = 0
	}
	return out, nil
}

// Dec subtracts one from v at its width. The borrow scan stops at the first
// 1 bit; an all-zero input wraps to all ones.
func Dec(v BitVector) (BitVector, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	out := v.Clone()
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] == 1 {
			out[i] = 0
			return out, nil
		}
		out[i] = 1
	}
	return out, nil
}

// addTwo assumes validated, equal-width operands.
func addTwo(a, b BitVector) BitVector {
	out := make(BitVector, len(a))
	carry := Bit(0)
	for i := len(a) - 1; i >= 0; i-- {
		sum := a[i] + b[i] + carry
		out[i] = sum % 2
		carry = sum / 2
	}
	return out
}

// subTwo assumes validated, equal-width operands.
func subTwo(a, b BitVector) BitVector {
	out := make(BitVector, len(a))
	borrow := Bit(0)
	for i := len(a) - 1; i >= 0; i-- {
		diff := int8(a[i]) - int8(b[i]) - int8(borrow)
		if diff < 0 {
			diff += 2
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = Bit(diff)
	}
	return out
}
