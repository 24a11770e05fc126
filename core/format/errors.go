package format

import (
	"errors"
	"fmt"
)

var (
	// ErrArgumentOutOfRange indicates a placeholder references an argument
	// that was not supplied.
	ErrArgumentOutOfRange = errors.New("argument index out of range")

	// ErrInvalidRange indicates the supplied ranges are unsorted, overlapping,
	// or fall outside the template.
	ErrInvalidRange = errors.New("invalid argument range")
)

// ArgumentIndexError reports a placeholder whose argument index is not covered
// by the supplied arguments.
type ArgumentIndexError struct {
	Index int
	Count int
}

// Error implements the error interface.
func (e *ArgumentIndexError) Error() string {
	return fmt.Sprintf("argument index %d out of range for %d arguments", e.Index, e.Count)
}

// Unwrap allows errors.Is(err, ErrArgumentOutOfRange).
func (e *ArgumentIndexError) Unwrap() error {
	return ErrArgumentOutOfRange
}
