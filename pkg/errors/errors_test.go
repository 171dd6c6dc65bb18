package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("chat", "chat_123")

	if got := err.Error(); got != "chat with ID chat_123 not found" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}
	if errors.Is(err, ErrInvalidInput) {
		t.Error("NotFoundError should not match ErrInvalidInput")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("api_key", "", "must not be empty")

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ValidationError should match ErrInvalidInput")
	}
	if !IsValidationError(err) {
		t.Error("IsValidationError should report true")
	}

	// Field-less message form
	bare := &ValidationError{Message: "bad input"}
	if got := bare.Error(); got != "validation failed: bad input" {
		t.Errorf("Error() = %q", got)
	}
}

func TestAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		target error
	}{
		{401, ErrAPIKeyInvalid},
		{403, ErrAPIKeyInvalid},
		{404, ErrNotFound},
		{429, ErrRateLimited},
		{500, ErrPlatformUnavailable},
		{503, ErrPlatformUnavailable},
	}

	for _, tt := range tests {
		err := NewAPIError("/chats", tt.status, "boom")
		if !errors.Is(err, tt.target) {
			t.Errorf("status %d should match %v", tt.status, tt.target)
		}
	}

	// A plain 400 maps to nothing
	err := NewAPIError("/chats", 400, "boom")
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrRateLimited) {
		t.Error("status 400 should not match a sentinel")
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	inner := errors.New("connection reset")
	err := WrapAPI("/user", 0, inner)

	if !errors.Is(err, inner) {
		t.Error("WrapAPI should preserve the wrapped error chain")
	}
}

func TestWrapHelpers_NilPassthrough(t *testing.T) {
	if WrapIO("read", "/tmp/x", nil) != nil {
		t.Error("WrapIO(nil) should be nil")
	}
	if WrapParse("json", "response", nil) != nil {
		t.Error("WrapParse(nil) should be nil")
	}
	if WrapValidation("field", nil) != nil {
		t.Error("WrapValidation(nil) should be nil")
	}
	if WrapAPI("/x", 500, nil) != nil {
		t.Error("WrapAPI(nil) should be nil")
	}
}

func TestWrappedChains(t *testing.T) {
	base := fmt.Errorf("open failed: %w", ErrNotFound)
	wrapped := WrapIO("read", "config.yaml", base)

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should see through IOError wrapping")
	}
}
