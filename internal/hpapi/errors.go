package hpapi

import (
	"errors"
	"fmt"
)

// Remote failures
var (
	// ErrRemoteUnavailable wraps every transport failure, non-2xx status or
	// undecodable payload returned by the API.
	ErrRemoteUnavailable = errors.New("remote unavailable")
	// ErrNotFound reports a detail lookup that returned an empty array.
	ErrNotFound = errors.New("character not found")
)

// HTTPError represents a non-2xx HTTP response from the API.
type HTTPError struct {
	StatusCode int
	Path       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Path, e.StatusCode)
}

// Unwrap lets errors.Is match ErrRemoteUnavailable on status failures.
func (e *HTTPError) Unwrap() error {
	return ErrRemoteUnavailable
}

// IsStatus returns true if err (or any wrapped error) is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}
	return false
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrRemoteUnavailable, err)
}
