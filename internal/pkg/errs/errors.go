// Package errs holds the error kinds shared by services and the HTTP layer.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors. Services wrap them with %w so callers can match with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// ValidationError reports the first invalid field of an input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match a ValidationError
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Invalid builds a ValidationError for field
func Invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// kindError carries a client-facing message and the sentinel it belongs to
type kindError struct {
	message string
	kind    error
}

func (e *kindError) Error() string {
	return e.message
}

func (e *kindError) Unwrap() error {
	return e.kind
}

// NotFound builds a not-found error for a resource, e.g. "post with ID 42 not found"
func NotFound(resource, id string) error {
	return &kindError{message: fmt.Sprintf("%s with ID %s not found", resource, id), kind: ErrNotFound}
}

// Conflict builds a conflict error with a message
func Conflict(format string, args ...interface{}) error {
	return &kindError{message: fmt.Sprintf(format, args...), kind: ErrConflict}
}

// Unauthorized builds an unauthorized error with a message
func Unauthorized(message string) error {
	return &kindError{message: message, kind: ErrUnauthorized}
}

// Forbidden builds a forbidden error with a message
func Forbidden(message string) error {
	return &kindError{message: message, kind: ErrForbidden}
}

// Message returns the client-facing message of err: the innermost message built
// by this package, or the sentinel text when err only wraps a sentinel.
func Message(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.message
	}
	for _, sentinel := range []error{ErrNotFound, ErrConflict, ErrInvalidInput, ErrUnauthorized, ErrForbidden} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
