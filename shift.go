package bitvec

// ShiftLeftZero shifts v left by n positions, dropping the n most significant
// bits and filling the vacated least significant positions with 0.
// The shift amount must be at least 1; n >= Len yields an all-zero vector.
func ShiftLeftZero(v BitVector, n int) (BitVector, error) {
	return shiftLeft(v, n, 0)
}

// ShiftLeftOne shifts v left by n positions, filling the vacated least
// significant positions with 1.
func ShiftLeftOne(v BitVector, n int) (BitVector, error) {
	return shiftLeft(v, n, 1)
}

// ShiftRightZero shifts v right by n positions, dropping the n least
// significant bits and filling the vacated most significant positions with 0.
// The shift amount must be at least 1; n >= Len yields an all-zero vector.
func ShiftRightZero(v BitVector, n int) (BitVector, error) {
	return shiftRight(v, n, 0)
}

// ShiftRightOne shifts v right by n positions, filling the vacated most
// significant positions with 1.
func ShiftRightOne(v BitVector, n int) (BitVector, error) {
	return shiftRight(v, n, 1)
}

func shiftLeft(v BitVector, n int, fill Bit) (BitVector, error) {
	if err := checkShift(v, n); err != nil {
		return nil, err
	}
	retain := max(len(v)-n, 0)
	out := fillVector(len(v), fill)
	copy(out[:retain], v[n:])
	return out, nil
}

func shiftRight(v BitVector, n int, fill Bit) (BitVector, error) {
	if err := checkShift(v, n); err != nil {
		return nil, err
	}
	retain := max(len(v)-n, 0)
	out := fillVector(len(v), fill)
	copy(out[len(v)-retain:], v[:retain])
	return out, nil
}

func checkShift(v BitVector, n int) error {
	if n < 1 {
		return &ErrInvalidShift{Shift: n}
	}
	return v.Validate()
}

func fillVector(n int, fill Bit) BitVector {
	if fill == 0 {
		return New(n)
	}
	return Ones(n)
}
