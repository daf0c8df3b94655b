package colour

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when a nearest-colour lookup is given no candidates.
var ErrEmptyInput = errors.New("colour list is empty")

// ParseError represents a colour string that could not be parsed.
type ParseError struct {
	Input string
	Err   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid hex colour %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying parse failure.
func (e *ParseError) Unwrap() error {
	return e.Err
}
