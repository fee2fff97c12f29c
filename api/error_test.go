package api

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	apperrors "github.com/kbukum/untappd/errors"
)

func TestError_Message(t *testing.T) {
	cause := apperrors.ContentFormat("Unknown content found in response.", nil)

	e := &Error{URL: "http://api.example.com/v3/x?key=secretkey", Err: cause}
	if e.Message() != "Unknown content found in response." {
		t.Errorf("Message() = %q", e.Message())
	}

	e.Response = &ErrorResponse{HTTPCode: 500, Message: "Invalid API key."}
	if e.Message() != "Invalid API key." {
		t.Errorf("Message() = %q, want the server message", e.Message())
	}

	plain := &Error{Err: errors.New("boom")}
	if plain.Message() != "boom" {
		t.Errorf("Message() = %q", plain.Message())
	}
}

func TestError_MasksKey(t *testing.T) {
	e := &Error{URL: "http://api.example.com/v3/x?key=secretkey&q=stone", Err: errors.New("boom")}
	msg := e.Error()
	if strings.Contains(msg, "secretkey") {
		t.Errorf("Error() leaks the key: %q", msg)
	}
	if !strings.Contains(msg, "key=secr***") || !strings.Contains(msg, "q=stone") {
		t.Errorf("Error() = %q", msg)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := apperrors.Validation("q: is required")
	wrapped := fmt.Errorf("search: %w", &Error{Err: cause})

	apiErr, ok := AsError(wrapped)
	if !ok || apiErr.Err != cause {
		t.Fatal("AsError should find the envelope")
	}
	if !IsValidation(wrapped) || IsTransport(wrapped) || IsContentFormat(wrapped) || IsArgument(wrapped) {
		t.Error("predicate mismatch")
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{apperrors.MissingField("q"), "validation"},
		{apperrors.ContentFormat("x", nil), "content_format"},
		{apperrors.Timeout("GET", nil), "transport"},
		{apperrors.InvalidArgument("username", "empty"), "argument"},
		{apperrors.Encode(errors.New("x")), "encode"},
		{ErrBuilderUsed, "reuse"},
		{errors.New("post hook"), "hook"},
	}
	for _, tt := range tests {
		if got := errorKind(tt.err); got != tt.want {
			t.Errorf("errorKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
