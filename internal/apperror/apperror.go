// Package apperror defines the typed errors shared by all services. Handlers
// map the kind to an HTTP status; everything else is treated as internal.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindConflict
)

// Error is an application error carrying a kind and a client-safe message.
type Error struct {
	Kind    Kind
	Message string
}

// Error returns the client-safe message.
func (e *Error) Error() string {
	return e.Message
}

// New creates an application error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewValidationError creates a validation-kind error.
func NewValidationError(message string) *Error {
	return New(KindValidation, message)
}

// NewNotFoundError creates a not-found-kind error for the given resource.
func NewNotFoundError(resource, id string) *Error {
	return New(KindNotFound, fmt.Sprintf("%s %s not found", resource, id))
}

// NewForbiddenError creates a forbidden-kind error.
func NewForbiddenError(message string) *Error {
	return New(KindForbidden, message)
}

// NewConflictError creates a conflict-kind error.
func NewConflictError(message string) *Error {
	return New(KindConflict, message)
}

// KindOf extracts the kind from an error chain, or KindUnknown if the chain
// holds no application error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether the error chain holds a not-found error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsValidation reports whether the error chain holds a validation error.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}
