package element

import (
	"fmt"
	"strconv"
)

// ParseAtomicNumber accepts only plain decimal digits naming an atomic
// number inside the table. Signs, spaces and the empty string are rejected.
func ParseAtomicNumber(text string) (int, error) {
	if text == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidInput)
	}
	for _, c := range text {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidInput, text)
		}
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if n < MinAtomicNumber || n > MaxAtomicNumber {
		return 0, &RangeError{AtomicNumber: n}
	}
	return n, nil
}
