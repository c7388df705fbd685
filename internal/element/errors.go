package element

import (
	"errors"
	"fmt"
)

// Domain errors for element lookups.
var (
	// ErrOutOfRange indicates an atomic number outside the table.
	ErrOutOfRange = errors.New("element: atomic number out of range")

	// ErrInvalidInput indicates text that is not a plain decimal number.
	ErrInvalidInput = errors.New("element: input is not a number")
)

// RangeError records the offending atomic number.
type RangeError struct {
	AtomicNumber int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("element: atomic number %d not in [%d,%d]", e.AtomicNumber, MinAtomicNumber, MaxAtomicNumber)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
