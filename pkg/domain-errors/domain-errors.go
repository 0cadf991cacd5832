// Package domainerrors carries failure categories from stores and services
// to the transport layer without either side knowing about HTTP.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code is a transport-independent failure category.
type Code string

const (
	CodeNotFound      Code = "not_found"
	CodeBadRequest    Code = "bad_request"
	CodeValidation    Code = "validation_failed"
	CodeInternal      Code = "internal_error"
	CodeUnauthorized  Code = "unauthorized"
	CodeAlreadyExists Code = "already_exists"
	CodeGone          Code = "gone" // the record exists but its issuer invalidated it
	CodeUnavailable   Code = "unavailable"
)

// Error pairs a Code with a caller-facing message. Err keeps the cause for
// logs; it is never shown to clients.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by code, so errors.Is(err, New(CodeGone, "")) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Code == t.Code
}

func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a message to err. A code already present in the chain wins
// over the one supplied.
func Wrap(err error, code Code, msg string) error {
	if existing, ok := CodeOf(err); ok {
		code = existing
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// CodeOf returns the code of the outermost *Error in err's chain.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}

func HasCode(err error, code Code) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}
