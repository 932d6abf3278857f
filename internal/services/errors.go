package services

import "errors"

// Error kinds. Every error a service returns either wraps one of these or is
// an unexpected store/hash failure.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUnknownUser  = errors.New("unknown user")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrNotFound     = errors.New("not found")
)

// Error carries a kind plus the message shown to the client.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func invalid(msg string, cause error) *Error {
	return &Error{Kind: ErrValidation, Message: msg, Cause: cause}
}
