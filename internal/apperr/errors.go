// Package apperr defines the failures a service operation can report and the
// HTTP status each one is rendered with.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeBadRequest   Code = "bad_request"
	CodeUnauthorized Code = "unauthorized"
	CodeForbidden    Code = "forbidden"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeInternal     Code = "internal_error"
)

type Error struct {
	Code    Code
	Message string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same code, so errors.Is(err, apperr.ErrNotFound)
// works for every not-found failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func newError(code Code, status int, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Status: status}
}

func BadRequest(format string, args ...any) *Error {
	return newError(CodeBadRequest, http.StatusBadRequest, format, args...)
}

func Unauthorized(format string, args ...any) *Error {
	return newError(CodeUnauthorized, http.StatusUnauthorized, format, args...)
}

func Forbidden(format string, args ...any) *Error {
	return newError(CodeForbidden, http.StatusForbidden, format, args...)
}

func NotFound(format string, args ...any) *Error {
	return newError(CodeNotFound, http.StatusNotFound, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return newError(CodeConflict, http.StatusConflict, format, args...)
}

// Internal wraps an unexpected failure. The message shown to callers stays generic.
func Internal(err error, format string, args ...any) *Error {
	e := newError(CodeInternal, http.StatusInternalServerError, format, args...)
	e.Err = err
	return e
}

// Sentinels for errors.Is comparisons.
var (
	ErrBadRequest   = BadRequest("bad request")
	ErrUnauthorized = Unauthorized("unauthorized")
	ErrForbidden    = Forbidden("forbidden")
	ErrNotFound     = NotFound("resource not found")
	ErrConflict     = Conflict("resource already exists")
	ErrInternal     = Internal(nil, "internal server error")
)

// From returns err as an *Error, treating anything unclassified as internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err, "internal server error")
}
