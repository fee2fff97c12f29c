package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeTimeout, "timed out")
	if !err.Retryable {
		t.Error("TIMEOUT should be retryable")
	}
	if New(ErrCodeInvalidArgument, "bad").Retryable {
		t.Error("INVALID_ARGUMENT should not be retryable")
	}
}

func TestAppError_InvalidArgument(t *testing.T) {
	err := InvalidArgument("username", "Username must not be empty.")
	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("expected INVALID_ARGUMENT, got %s", err.Code)
	}
	if err.Details["argument"] != "username" {
		t.Errorf("expected argument=username, got %v", err.Details["argument"])
	}
	if err.Retryable {
		t.Error("InvalidArgument should not be retryable")
	}
}

func TestAppError_ContentFormat_KeepsCause(t *testing.T) {
	cause := fmt.Errorf("unexpected token")
	err := ContentFormat("Unknown content found in response.", cause)
	if err.Code != ErrCodeContentFormat {
		t.Errorf("expected CONTENT_FORMAT, got %s", err.Code)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
	if !strings.Contains(err.Error(), "unexpected token") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := MissingField("q").WithDetails(map[string]any{"endpoint": "/v3/brewery_search"})
	if err.Details["endpoint"] != "/v3/brewery_search" {
		t.Errorf("expected endpoint detail to be merged")
	}
	if err.Details["field"] != "q" {
		t.Error("expected details to be preserved")
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{}
	err.WithDetail("key", "value")
	if err.Details["key"] != "value" {
		t.Errorf("expected key=value, got %v", err.Details["key"])
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	cause := fmt.Errorf("boom")
	tests := []struct {
		name      string
		err       *AppError
		code      ErrorCode
		retryable bool
	}{
		{"Validation", Validation("q is required"), ErrCodeInvalidInput, false},
		{"MissingField", MissingField("q"), ErrCodeMissingField, false},
		{"Encode", Encode(cause), ErrCodeEncode, false},
		{"ConnectionFailed", ConnectionFailed("api.untappd.com", cause), ErrCodeConnectionFailed, true},
		{"Timeout", Timeout("GET", cause), ErrCodeTimeout, true},
		{"ExternalServiceError", ExternalServiceError("untappd", cause), ErrCodeExternalService, true},
		{"Internal", Internal("fired twice"), ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, tt.err.Code)
			}
			if tt.err.Retryable != tt.retryable {
				t.Errorf("expected retryable=%v, got %v", tt.retryable, tt.err.Retryable)
			}
		})
	}
}

func TestAsAppError_Wrapped(t *testing.T) {
	inner := Validation("bad")
	wrapped := fmt.Errorf("outer: %w", inner)

	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to find the wrapped error")
	}
	if appErr != inner {
		t.Error("expected the same AppError instance")
	}
	if !IsAppError(wrapped) {
		t.Error("expected IsAppError=true")
	}
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("expected IsAppError=false for plain errors")
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("wrap: %w", ContentFormat("bad", nil))
	if !HasCode(err, ErrCodeContentFormat) {
		t.Error("expected HasCode to match CONTENT_FORMAT")
	}
	if HasCode(err, ErrCodeTimeout) {
		t.Error("expected HasCode not to match TIMEOUT")
	}
}
