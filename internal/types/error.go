package types

import (
	"errors"
	"net/http"
)

type ErrorCode string

func (e ErrorCode) String() string {
	return string(e)
}

const (
	// Build time
	ConfigError ErrorCode = "CONFIG_ERROR"
	// Caller input
	ValidationError ErrorCode = "VALIDATION_ERROR"
	AddressMismatch ErrorCode = "ADDRESS_MISMATCH"
	// Single attempt outcomes, consumed by the failover engine
	NetworkFailure ErrorCode = "NETWORK_FAILURE"
	DecodeFailure  ErrorCode = "DECODE_FAILURE"
	HttpStatus     ErrorCode = "HTTP_STATUS"
	// Terminal for one call
	ExhaustedAllEndpoints  ErrorCode = "EXHAUSTED_ALL_ENDPOINTS"
	UnrecoverableTransport ErrorCode = "UNRECOVERABLE_TRANSPORT"
	Canceled               ErrorCode = "CANCELED"
)

// Error represents an error with an application-specific error code and,
// when an upstream answered, the HTTP status code it answered with.
type Error struct {
	Err        error
	StatusCode int
	ErrorCode  ErrorCode
}

const UninitializedStatusCode = 0

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether the failover engine may try the request again.
func (e *Error) IsRetryable() bool {
	switch e.ErrorCode {
	case NetworkFailure, DecodeFailure, HttpStatus:
		return true
	default:
		return false
	}
}

// NewError creates a new Error with the provided status code, error code, and underlying error.
// If the error code is empty, it defaults to UNRECOVERABLE_TRANSPORT.
func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	if errorCode == "" {
		errorCode = UnrecoverableTransport
	}
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Err:        err,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return NewError(statusCode, errorCode, errors.New(msg))
}

func NewConfigError(err error) *Error {
	return NewError(UninitializedStatusCode, ConfigError, err)
}

func NewValidationError(err error) *Error {
	return &Error{
		StatusCode: http.StatusBadRequest,
		ErrorCode:  ValidationError,
		Err:        err,
	}
}

// HasErrorCode reports whether err is (or wraps) an *Error carrying code.
func HasErrorCode(err error, code ErrorCode) bool {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.ErrorCode == code
	}
	return false
}
