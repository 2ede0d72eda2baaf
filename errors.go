package bitvec

import "fmt"

// ErrInvalidBit indicates an input element that is neither 0 nor 1.
type ErrInvalidBit struct {
	Index int
	Value Bit
}

func (e *ErrInvalidBit) Error() string {
	return fmt.Sprintf("invalid bit %d at index %d (want 0 or 1)", e.Value, e.Index)
}

// ErrLengthMismatch indicates operands of differing widths passed to an
// operation that requires equal widths.
type ErrLengthMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: expected %d bits, got %d", e.Expected, e.Actual)
}

// ErrInvalidShift indicates a shift amount smaller than 1.
type ErrInvalidShift struct {
	Shift int
}

func (e *ErrInvalidShift) Error() string {
	return fmt.Sprintf("shift must be greater than 0 (given %d)", e.Shift)
}
