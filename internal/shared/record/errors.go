package record

import (
	"errors"
	"fmt"
)

// Error kinds. Callers match them with errors.Is; the message shown to clients
// comes from the wrapping *Error.
var (
	// ErrNotFound is returned when a record does not exist, or exists but is
	// Inactive where an Active record was required.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState is returned when a referenced record exists but is Inactive.
	ErrInvalidState = errors.New("invalid state")

	// ErrAuthentication is returned by both login flows for any credential mismatch.
	ErrAuthentication = errors.New("authentication failed")

	// ErrConflict is returned when a write would break a uniqueness rule.
	ErrConflict = errors.New("conflict")
)

// Error carries a client-facing message on top of one of the error kinds.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

// NotFound returns an ErrNotFound with the given message.
func NotFound(format string, args ...any) error {
	return &Error{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

// InvalidState returns an ErrInvalidState with the given message.
func InvalidState(format string, args ...any) error {
	return &Error{kind: ErrInvalidState, msg: fmt.Sprintf(format, args...)}
}

// Conflict returns an ErrConflict with the given message.
func Conflict(format string, args ...any) error {
	return &Error{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

// Unauthenticated returns the single undifferentiated login failure.
func Unauthenticated() error {
	return &Error{kind: ErrAuthentication, msg: "invalid credentials"}
}
