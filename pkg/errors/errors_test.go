package errors

import (
	stdErrors "errors"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		sentinel  bool
		retryable bool
		fallback  string
	}{
		{code: CodeValidation, fallback: "validation failed"},
		{code: CodeNotAuthenticated, fallback: "User not authenticated. Please log in to add items to cart."},
		{code: CodeNoCart, fallback: "no cart found"},
		{code: CodeNotFound, sentinel: true, fallback: "Resource not found"},
		{code: CodeBackend, retryable: true, fallback: "an error occurred while contacting the shop backend"},
		{code: CodeStorage, retryable: true, fallback: "local state unavailable"},
		{code: CodeInternal, fallback: "internal error"},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.Sentinel != tt.sentinel {
			t.Fatalf("code %s expected sentinel %v got %v", tt.code, tt.sentinel, meta.Sentinel)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
		if meta.FallbackMessage != tt.fallback {
			t.Fatalf("code %s expected fallback %q got %q", tt.code, tt.fallback, meta.FallbackMessage)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.FallbackMessage != "internal error" {
		t.Fatalf("expected internal fallback, got %q", meta.FallbackMessage)
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing quantity")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing quantity" {
		t.Fatalf("unexpected message %q", base.Message())
	}

	cause := stdErrors.New("boom")
	wrapped := Wrap(CodeBackend, cause, "fetch cart")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("Wrap did not preserve cause")
	}
	if wrapped.Code() != CodeBackend {
		t.Fatalf("unexpected code %s", wrapped.Code())
	}
}

func TestUserMessageFallsBack(t *testing.T) {
	if got := New(CodeBackend, "").UserMessage(); got != "an error occurred while contacting the shop backend" {
		t.Fatalf("unexpected fallback %q", got)
	}
	if got := New(CodeBackend, "stock exhausted").UserMessage(); got != "stock exhausted" {
		t.Fatalf("expected carried message, got %q", got)
	}
}

func TestSentinelDetection(t *testing.T) {
	if !New(CodeNotFound, "Resource not found").IsSentinel() {
		t.Fatalf("not-found should be a sentinel outcome")
	}
	if New(CodeBackend, "boom").IsSentinel() {
		t.Fatalf("backend errors are not sentinels")
	}
}

func TestAsReturnsTypedError(t *testing.T) {
	err := New(CodeNoCart, "nothing to clear")
	if got := As(err); got == nil || got.Code() != CodeNoCart {
		t.Fatalf("As failed to return typed error")
	}
	if As(nil) != nil {
		t.Fatalf("As(nil) should return nil")
	}
	if CodeOf(stdErrors.New("plain")) != CodeInternal {
		t.Fatalf("plain errors should map to internal")
	}
}
