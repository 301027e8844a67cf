// Package apperr defines the typed error taxonomy returned by the domain
// packages. Transports map Code to their own status space; Cause is for logs
// only and must never be shown to callers.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Code is a stable error category.
type Code string

const (
	CodeValidation         Code = "VALIDATION_ERROR"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
	CodeForbidden          Code = "FORBIDDEN"
	CodeNotFound           Code = "NOT_FOUND"
	CodeConflict           Code = "CONFLICT"
	CodeTransactionFailure Code = "TRANSACTION_FAILURE"
	CodeInternal           Code = "INTERNAL_ERROR"
)

// Error is a categorized error.
type Error struct {
	Code    Code
	Message string

	// Fields holds field-level detail for validation errors (field -> problem).
	Fields map[string]string

	Cause error
}

// Sentinels for errors.Is; matching compares Code only.
var (
	ErrValidation         = &Error{Code: CodeValidation}
	ErrUnauthenticated    = &Error{Code: CodeUnauthenticated}
	ErrForbidden          = &Error{Code: CodeForbidden}
	ErrNotFound           = &Error{Code: CodeNotFound}
	ErrConflict           = &Error{Code: CodeConflict}
	ErrTransactionFailure = &Error{Code: CodeTransactionFailure}
	ErrInternal           = &Error{Code: CodeInternal}
)

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = strings.ToLower(strings.ReplaceAll(string(e.Code), "_", " "))
	}
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + e.Fields[k]
		}
		msg += " (" + strings.Join(parts, ", ") + ")"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// New creates an error with the given code and message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a new categorized error.
func Wrap(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Cause: err}
}

func Validation(fields map[string]string) *Error {
	return &Error{Code: CodeValidation, Message: "validation failed", Fields: fields}
}

func Unauthenticated(format string, args ...any) *Error {
	return New(CodeUnauthenticated, format, args...)
}

func Forbidden(format string, args ...any) *Error {
	return New(CodeForbidden, format, args...)
}

func NotFound(format string, args ...any) *Error {
	return New(CodeNotFound, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return New(CodeConflict, format, args...)
}

// TransactionFailure reports that an atomic write could not complete.
// Nothing was persisted; the caller may re-submit.
func TransactionFailure(cause error) *Error {
	return Wrap(cause, CodeTransactionFailure, "transaction could not be completed")
}

func Internal(cause error) *Error {
	return Wrap(cause, CodeInternal, "internal error")
}

// CodeOf returns the category of err, or CodeInternal for uncategorized errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// Retryable reports whether re-submitting the same request may succeed.
func Retryable(err error) bool {
	return CodeOf(err) == CodeTransactionFailure
}
