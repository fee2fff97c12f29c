package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type raised by the client packages.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried by the caller.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// InvalidArgument creates an AppError for rejected configuration input.
func InvalidArgument(argument, reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidArgument, Message: reason,
		Details: map[string]any{"argument": argument},
	}
}

// Validation creates an AppError for a failed parameter precondition.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// MissingField creates an AppError for a missing required parameter.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		Details: map[string]any{"field": field},
	}
}

// ContentFormat creates an AppError for a response body of an unexpected shape.
func ContentFormat(reason string, cause error) *AppError {
	return &AppError{Code: ErrCodeContentFormat, Message: reason, Cause: cause}
}

// Encode creates an AppError for a request body that could not be serialized.
func Encode(cause error) *AppError {
	return &AppError{Code: ErrCodeEncode, Message: "Unable to encode request body.", Cause: cause}
}

// ConnectionFailed creates an AppError for a failed connection to a host.
func ConnectionFailed(host string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeConnectionFailed, Message: fmt.Sprintf("Unable to connect to %s.", host),
		Retryable: true, Details: map[string]any{"host": host}, Cause: cause,
	}
}

// Timeout creates an AppError for an exchange that timed out.
func Timeout(operation string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: "The request took too long.",
		Retryable: true, Details: map[string]any{"operation": operation}, Cause: cause,
	}
}

// ExternalServiceError creates an AppError for a failure status returned by a remote service.
func ExternalServiceError(service string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeExternalService, Message: fmt.Sprintf("The %s service returned an error.", service),
		Retryable: true, Details: map[string]any{"service": service}, Cause: cause,
	}
}

// Internal creates an AppError for library misuse.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err wraps an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}
