package euclid

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDivisor is returned when the normalized divisor is zero.
	ErrZeroDivisor = errors.New("integer division or modulo by zero")

	// ErrInvalidLiteral is returned when an operand is not an integer literal.
	ErrInvalidLiteral = errors.New("invalid integer literal")

	// ErrOutOfRange is returned when an operand does not fit the computation.
	ErrOutOfRange = errors.New("integer out of range")
)

// SyntaxError reports an input line that is not an integer literal.
type SyntaxError struct {
	Input string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid literal for int: %q", e.Input)
}

func (e *SyntaxError) Unwrap() error {
	return ErrInvalidLiteral
}

// RangeError reports an operand outside the int64 domain of the algorithm.
type RangeError struct {
	Input string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("integer out of range: %s", e.Input)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// IsSyntaxError returns true if err is, or wraps, a SyntaxError.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}

// IsRangeError returns true if err is, or wraps, a RangeError.
func IsRangeError(err error) bool {
	var re *RangeError
	return errors.As(err, &re)
}
