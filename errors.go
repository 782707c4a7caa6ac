/*
Package hstore – error types.
*/
package hstore

import (
	"errors"
	"fmt"
)

// ErrorCode is a well-known error category string.
type ErrorCode string

const (
	ErrMalformedCount       ErrorCode = "MalformedCount"
	ErrMalformedKeyLength   ErrorCode = "MalformedKeyLength"
	ErrMalformedValueLength ErrorCode = "MalformedValueLength"
	ErrInvalidUTF8          ErrorCode = "InvalidUtf8"
	ErrTrailingData         ErrorCode = "TrailingData"
	ErrMalformedText        ErrorCode = "MalformedText"
	ErrUnexpectedNull       ErrorCode = "UnexpectedNull"
	ErrUnknownOID           ErrorCode = "UnknownOid"
)

// Error is the structured error for codec and registration failures. It
// carries a Code for programmatic handling and, for decode errors, the
// byte offset at which decoding stopped.
type Error struct {
	Code    ErrorCode
	Message string
	Offset  int // byte offset for decode errors, -1 when not applicable
	Cause   error
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("[%s] %s (at byte %d)", e.Code, e.Message, e.Offset)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func newError(code ErrorCode, msg string) *Error {
	return &Error{Code: code, Message: msg, Offset: -1}
}

func decodeErr(code ErrorCode, off int, msg string) *Error {
	return &Error{Code: code, Message: msg, Offset: off}
}

// CodeOf extracts the ErrorCode from err, or "" when err carries none.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
