package client

import (
	"errors"
	"net/http"
)

// ErrUnauthorized marks the session-expired path. By the time a caller sees
// it the session store has already been cleared and the expiry callback has
// fired, so the right reaction is to stop, not retry.
var ErrUnauthorized = errors.New("unauthorized")

// genericErrorDetail is the fallback message for error bodies that carry no
// usable detail.
const genericErrorDetail = "API error"

// Error is a classified non-success response.
type Error struct {
	// StatusCode is the HTTP status that produced this error.
	StatusCode int
	// Detail is the human-readable message, sourced from the server's
	// "detail" field when present.
	Detail string
	// Body holds the raw response body on the 401 path for best-effort
	// diagnostics; it is not required for correctness.
	Body string
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}
