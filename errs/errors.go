// Package errs classifies domain failures so handlers can map them to
// HTTP status codes without inspecting driver errors.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a structured error classification.
type Code string

const (
	// CodeNotFound means the lookup target is absent.
	CodeNotFound Code = "NOT_FOUND"
	// CodeConflict means a unique constraint was violated on write.
	CodeConflict Code = "CONFLICT"
	// CodeInvalidInput means the payload was empty, malformed or unchanged.
	CodeInvalidInput Code = "INVALID_INPUT"
	// CodeUnauthorized means credentials were missing or wrong.
	CodeUnauthorized Code = "UNAUTHORIZED"
	// CodeInternal covers store and infrastructure failures.
	CodeInternal Code = "INTERNAL"
)

// Error carries a code, a message safe to show to clients, the underlying
// cause and optional debugging context.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Context map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf is New with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NewWithContext creates an Error carrying context information.
func NewWithContext(code Code, message string, context map[string]any) *Error {
	return &Error{Code: code, Message: message, Context: context}
}

// Wrap wraps cause with a code and message.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf returns the code of the first *Error in err's chain, or
// CodeInternal when there is none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// MessageOf returns the client-facing message of err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Code != CodeInternal {
		return e.Message
	}
	return "Internal server error"
}

// HTTPStatus maps err to a response status code.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
