package aladhan

import (
	"fmt"
	"net/http"
)

// Error represents an Aladhan API error.
//
// Code is the HTTP status code or, when the HTTP exchange succeeded, the
// code field reported in the response envelope.
type Error struct {
	Code    int    // HTTP status or envelope code
	Message string // Status text or error body from Aladhan
}

// Error returns the error message.
func (e *Error) Error() string {
	return fmt.Sprintf("aladhan: error %d: %s", e.Code, e.Message)
}

// Is checks if the target error is an Aladhan error with the same code.
//
// This allows errors.Is() to work with *Error types.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Temporary returns true if the request should be retried.
//
// Server errors and rate limiting are considered temporary. Client
// errors such as invalid coordinates or an unknown method are not.
func (e *Error) Temporary() bool {
	switch {
	case e.Code == http.StatusTooManyRequests:
		return true
	case e.Code >= 500:
		return true
	default:
		return false
	}
}
