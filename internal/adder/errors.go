package adder

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching.
var (
	ErrOverflow     = errors.New("integer overflow")
	ErrInvalidInput = errors.New("invalid input")
)

// Operand positions reported by InvalidInputError.
const (
	OperandFirst  = "first"
	OperandSecond = "second"
)

// OverflowError reports a sum outside the int32 range.
type OverflowError struct {
	A     int32
	B     int32
	Exact int64 // the true mathematical sum
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s: %d + %d = %d does not fit in int32", ErrOverflow, e.A, e.B, e.Exact)
}

// Is reports whether target is ErrOverflow.
func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}

// InvalidInputError reports an absent operand.
type InvalidInputError struct {
	Operand string // OperandFirst or OperandSecond
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s operand is absent", ErrInvalidInput, e.Operand)
}

// Is reports whether target is ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// IsOverflow returns true if err is or wraps an overflow error.
func IsOverflow(err error) bool {
	var oe *OverflowError
	return errors.As(err, &oe)
}

// IsInvalidInput returns true if err is or wraps an invalid input error.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}
