package nominatim

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup yields no result.
	ErrNotFound = errors.New("nominatim: location not found")

	// ErrTimeout is returned when the service does not answer in time.
	ErrTimeout = errors.New("nominatim: request timed out")
)

// Error represents a non-200 HTTP response from Nominatim.
type Error struct {
	StatusCode int
	Body       string
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("nominatim: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("nominatim: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Is allows errors.Is to match on status code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode
}
