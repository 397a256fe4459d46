package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized covers 401/403. On an authenticated call it means the
	// stored token went stale and the session must be torn down.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	// ErrServer collapses 5xx and malformed payloads; raw server output is
	// never shown to the user.
	ErrServer  = errors.New("server error")
	ErrNetwork = errors.New("no response from server")
)

// Error carries the HTTP status and, for client errors, the backend's
// message verbatim so callers can render it.
type Error struct {
	Status    int
	Operation string
	Message   string
	kind      error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s failed with status %d", e.Operation, e.Status)
}

func (e *Error) Unwrap() error {
	return e.kind
}
