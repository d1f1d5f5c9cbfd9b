// Package apperr defines the failure categories the service layer reports.
// Handlers map each kind to an HTTP status; services wrap a kind with a
// message describing what went wrong.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound - the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRequest - the request payload is malformed or violates a rule.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrConflict - the operation conflicts with existing state (duplicate
	// code, referenced entity).
	ErrConflict = errors.New("conflict")
	// ErrInvalidState - the entity is not in a state that permits the
	// operation (e.g. confirming a cancelled order).
	ErrInvalidState = errors.New("invalid state")
	// ErrForbidden - the caller is not allowed to touch this entity.
	ErrForbidden = errors.New("forbidden")
)

// Error carries a user-facing message together with its failure kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidRequest(format string, args ...interface{}) error {
	return &Error{Kind: ErrInvalidRequest, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func InvalidState(format string, args ...interface{}) error {
	return &Error{Kind: ErrInvalidState, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...interface{}) error {
	return &Error{Kind: ErrForbidden, Message: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool       { return errors.Is(err, ErrNotFound) }
func IsInvalidRequest(err error) bool { return errors.Is(err, ErrInvalidRequest) }
func IsConflict(err error) bool       { return errors.Is(err, ErrConflict) }
func IsInvalidState(err error) bool   { return errors.Is(err, ErrInvalidState) }
func IsForbidden(err error) bool      { return errors.Is(err, ErrForbidden) }
