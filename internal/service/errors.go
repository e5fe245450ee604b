package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a service matches exactly one of them with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal error")
)

// Specific failures, each carrying its kind.
var (
	ErrDuplicateIdentity = newError(ErrConflict, "User already exists", nil)
	ErrDuplicateEmail    = newError(ErrConflict, "Email already exists", nil)
	ErrBadCredential     = newError(ErrUnauthorized, "Invalid username or password", nil)
	ErrIdentityNotFound  = newError(ErrUnauthorized, "Invalid username or password", nil)
	ErrStudentNotFound   = newError(ErrNotFound, "Student not found", nil)
)

// Error is a service failure with a message that is safe to show to clients.
type Error struct {
	kind  error
	msg   string
	cause error
}

func newError(kind error, msg string, cause error) *Error {
	return &Error{kind: kind, msg: msg, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

// Message is the client-facing text.
func (e *Error) Message() string { return e.msg }

// Kind returns one of ErrValidation, ErrUnauthorized, ErrNotFound, ErrConflict, ErrInternal.
func (e *Error) Kind() error { return e.kind }

func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

// validation builds an ErrValidation with the given message.
func validation(msg string) error {
	return newError(ErrValidation, msg, nil)
}

// internal hides cause behind a generic message.
func internal(op string, cause error) error {
	return newError(ErrInternal, "Internal server error", fmt.Errorf("%s: %w", op, cause))
}

// conflict returns a copy of sentinel with its message replaced, still matching sentinel.
func conflict(sentinel *Error, msg string) error {
	return newError(ErrConflict, msg, sentinel)
}
