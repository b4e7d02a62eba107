package booking

import (
	"errors"
	"fmt"
)

// Error codes surfaced to the HTTP layer.
const (
	CodeUnauthorized = "unauthorized"
	CodeForbidden    = "forbidden"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeInvalid      = "invalid"
	CodeInternal     = "internal"
)

// Error is a booking service error carrying a machine-readable code so the
// handlers can distinguish "pick different dates" from "this car no longer
// exists".
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ErrAlreadyCancelled signals a cancel call on a booking that is already in
// the cancelled state. Not retryable; no cleanup side effects run twice.
var ErrAlreadyCancelled = &Error{Code: CodeConflict, Message: "booking already cancelled"}

// ErrorCode extracts the service error code from err, or CodeInternal.
func ErrorCode(err error) string {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Code
	}
	return CodeInternal
}
