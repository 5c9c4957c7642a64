package ruckus

import (
	"errors"
	"fmt"
)

var errMissingToken = errors.New("no access_token in response")

// AuthError reports a failed token exchange. The caller treats any
// AuthError as fatal to the run.
type AuthError struct {
	Status int    // HTTP status, 0 on transport error
	Body   string // response body, when one was received
	Err    error  // underlying error, when not an HTTP-status failure
}

func (e *AuthError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("authentication failed: %v", e.Err)
	case e.Status != 0:
		return fmt.Sprintf("authentication failed: status %d", e.Status)
	default:
		return "authentication failed"
	}
}

func (e *AuthError) Unwrap() error { return e.Err }

// APIError reports a non-2xx response to a configuration request. It is a
// per-row failure, not fatal to the run.
type APIError struct {
	Status int
	URL    string
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: status %d", e.URL, e.Status)
}
