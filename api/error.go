package api

import (
	"errors"
	"fmt"

	apperrors "github.com/kbukum/untappd/errors"
	"github.com/kbukum/untappd/httpclient"
	"github.com/kbukum/untappd/util"
)

// ErrBuilderUsed is the cause reported when a builder is fired twice.
var ErrBuilderUsed = apperrors.Internal("Request builder has already been fired.")

// Error is the single error type returned by Builder.Fire and Builder.Print.
type Error struct {
	// URL is the normalized request URL.
	URL string
	// Body is the serialized POST body, nil for GET.
	Body []byte
	// Response is the server's error payload, when one could be decoded.
	Response *ErrorResponse
	// Err is the underlying cause.
	Err error
}

// Message returns the server's error message when present, otherwise the
// cause's message.
func (e *Error) Message() string {
	if e.Response != nil && e.Response.Message != "" {
		return e.Response.Message
	}
	if appErr, ok := apperrors.AsAppError(e.Err); ok {
		return appErr.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Error masks the API key in the URL.
func (e *Error) Error() string {
	return fmt.Sprintf("api: %s: %s", util.MaskQueryParam(e.URL, paramAPIKey, 4), e.Message())
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// AsError extracts an *Error from err.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsArgument reports whether err was caused by invalid configuration input.
func IsArgument(err error) bool {
	return apperrors.HasCode(err, apperrors.ErrCodeInvalidArgument)
}

// IsValidation reports whether err was raised by a validation hook.
func IsValidation(err error) bool {
	return apperrors.HasCode(err, apperrors.ErrCodeInvalidInput) ||
		apperrors.HasCode(err, apperrors.ErrCodeMissingField)
}

// IsContentFormat reports whether err was caused by a response body of an
// unexpected shape.
func IsContentFormat(err error) bool {
	return apperrors.HasCode(err, apperrors.ErrCodeContentFormat)
}

// IsTransport reports whether err was caused by the network exchange.
func IsTransport(err error) bool {
	if _, ok := httpclient.AsError(err); ok {
		return true
	}
	return apperrors.HasCode(err, apperrors.ErrCodeConnectionFailed) ||
		apperrors.HasCode(err, apperrors.ErrCodeTimeout) ||
		apperrors.HasCode(err, apperrors.ErrCodeExternalService)
}

// errorKind labels err for metrics.
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsValidation(err):
		return "validation"
	case IsContentFormat(err):
		return "content_format"
	case IsTransport(err):
		return "transport"
	case IsArgument(err):
		return "argument"
	case apperrors.HasCode(err, apperrors.ErrCodeEncode):
		return "encode"
	case errors.Is(err, ErrBuilderUsed):
		return "reuse"
	default:
		return "hook"
	}
}
