package httpclient

import (
	"errors"
	"fmt"
)

// ErrorCode classifies HTTP transport errors.
type ErrorCode int

const (
	// ErrCodeTimeout indicates a connect or read timeout.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeConnection indicates a connection failure (refused, DNS, etc).
	ErrCodeConnection
	// ErrCodeRequest indicates a request that could not be built.
	ErrCodeRequest
	// ErrCodeAuth indicates an authentication/authorization failure (401/403).
	ErrCodeAuth
	// ErrCodeNotFound indicates the resource was not found (404).
	ErrCodeNotFound
	// ErrCodeRateLimit indicates rate limiting (429).
	ErrCodeRateLimit
	// ErrCodeClient indicates any other 4xx status.
	ErrCodeClient
	// ErrCodeServer indicates a server-side error (5xx).
	ErrCodeServer
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeRequest:
		return "request"
	case ErrCodeAuth:
		return "auth"
	case ErrCodeNotFound:
		return "not_found"
	case ErrCodeRateLimit:
		return "rate_limit"
	case ErrCodeClient:
		return "client"
	case ErrCodeServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is a structured HTTP transport error with classification.
type Error struct {
	// StatusCode is the HTTP status code (0 for connection-level errors).
	StatusCode int
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Body is the raw response body (may be nil).
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("httpclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{Code: ErrCodeTimeout, Message: err.Error(), Err: err}
}

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error {
	return &Error{Code: ErrCodeConnection, Message: err.Error(), Err: err}
}

// NewRequestError creates an error for a request that could not be built.
func NewRequestError(err error) *Error {
	return &Error{Code: ErrCodeRequest, Message: err.Error(), Err: err}
}

func newStatusError(code ErrorCode, statusCode int, body []byte) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       code,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Body:       body,
	}
}

// ClassifyStatusCode converts an HTTP status code into a typed error.
// Returns nil for 2xx status codes.
func ClassifyStatusCode(statusCode int, body []byte) *Error {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode == 401 || statusCode == 403:
		return newStatusError(ErrCodeAuth, statusCode, body)
	case statusCode == 404:
		return newStatusError(ErrCodeNotFound, statusCode, body)
	case statusCode == 429:
		return newStatusError(ErrCodeRateLimit, statusCode, body)
	case statusCode >= 400 && statusCode < 500:
		return newStatusError(ErrCodeClient, statusCode, body)
	default:
		return newStatusError(ErrCodeServer, statusCode, body)
	}
}

// AsError extracts a *Error from err.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	e, ok := AsError(err)
	return ok && e.Code == ErrCodeTimeout
}

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool {
	e, ok := AsError(err)
	return ok && e.Code == ErrCodeConnection
}

// IsAuth checks if an error is an authentication error.
func IsAuth(err error) bool {
	e, ok := AsError(err)
	return ok && e.Code == ErrCodeAuth
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	e, ok := AsError(err)
	return ok && e.Code == ErrCodeNotFound
}

// IsServerError checks if an error is a server error.
func IsServerError(err error) bool {
	e, ok := AsError(err)
	return ok && e.Code == ErrCodeServer
}

// IsStatus reports whether err carries an HTTP status, i.e. the server answered.
func IsStatus(err error) bool {
	e, ok := AsError(err)
	return ok && e.StatusCode > 0
}
