package apperr

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies a failure for callers and for HTTP status mapping.
type Kind string

const (
	KindValidation  Kind = "validation"
	KindNotFound    Kind = "not_found"
	KindConflict    Kind = "conflict"
	KindTimeout     Kind = "timeout"
	KindCancelled   Kind = "cancelled"
	KindPersistence Kind = "persistence"
)

// Error carries the failure kind plus the operation and key it happened on.
// Message is safe to return to callers; Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Op      string
	Key     string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s [%s]: %v", e.Op, e.Message, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s [%s]", e.Op, e.Message, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports a malformed or missing input field.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound reports that op could not resolve key to an existing record.
func NotFound(op, key string) *Error {
	return &Error{Kind: KindNotFound, Op: op, Key: key, Message: "record not found"}
}

// Conflict reports a state conflict (for example insufficient stock).
func Conflict(op, key, message string) *Error {
	return &Error{Kind: KindConflict, Op: op, Key: key, Message: message}
}

// Storage wraps a failure from the persistence boundary, translating context
// cancellation and deadline errors into their own kinds.
func Storage(op, key string, err error) *Error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &Error{Kind: KindTimeout, Op: op, Key: key, Message: "operation timed out", Err: err}
	case errors.Is(err, context.Canceled):
		return &Error{Kind: KindCancelled, Op: op, Key: key, Message: "operation cancelled", Err: err}
	default:
		return &Error{Kind: KindPersistence, Op: op, Key: key, Message: "storage operation failed", Err: err}
	}
}

// KindOf extracts the Kind from err, or KindPersistence for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindPersistence
}

// MessageOf returns the caller-safe message for err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}
