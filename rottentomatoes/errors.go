package rottentomatoes

import (
	"errors"
	"fmt"
)

// ErrInvalidResponse indicates the API returned a body that is not valid JSON.
var ErrInvalidResponse = errors.New("invalid response from Rotten Tomatoes API")

// DecodeError describes a response body that could not be parsed as JSON.
type DecodeError struct {
	Path       string
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("rottentomatoes: %s: status %d: failed to decode response: %v", e.Path, e.StatusCode, e.Err)
}

// Unwrap returns the underlying JSON error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidResponse
func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidResponse
}
