package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatch is returned when a search completed without any matching line.
	ErrNoMatch = errors.New("no match found")

	// ErrInvalidPrefix is returned when the search root cannot be walked.
	ErrInvalidPrefix = errors.New("invalid search path")
)

// PatternError reports a pattern that could not be compiled.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
