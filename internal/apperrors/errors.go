// Package apperrors provides the error type shared by the domain,
// application and delivery layers.
package apperrors

import (
	"errors"
	"strings"
)

// Kind classifies an error for the transport layer.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindTooManyRequests
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindTooManyRequests:
		return "too_many_requests"
	default:
		return "internal"
	}
}

// Error is a classified error. Messages are safe to show to clients.
type Error struct {
	Kind     Kind
	Messages []string
	Cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := strings.Join(e.Messages, "; ")
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target has the same kind and messages.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Kind != e.Kind || len(t.Messages) != len(e.Messages) {
		return false
	}
	for i := range t.Messages {
		if t.Messages[i] != e.Messages[i] {
			return false
		}
	}
	return true
}

// New creates an error with a single client message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Messages: []string{message}}
}

// Wrap creates an error that wraps an underlying cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Messages: []string{message}, Cause: cause}
}

// Validation creates a validation error carrying every failed rule.
func Validation(messages ...string) *Error {
	return &Error{Kind: KindValidation, Messages: messages}
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
