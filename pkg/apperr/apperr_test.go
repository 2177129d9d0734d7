package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	verr := Invalid("title", "Title is required").Add("content", "Content is required")

	if !verr.HasErrors() {
		t.Fatalf("expected errors")
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(verr.Fields))
	}

	msg := verr.Error()
	if msg != "title: Title is required; content: Content is required" {
		t.Fatalf("unexpected message: %q", msg)
	}

	// errors.As 能识别包装后的校验错误
	wrapped := fmt.Errorf("create post: %w", verr)
	var target *ValidationError
	if !errors.As(wrapped, &target) {
		t.Fatalf("errors.As should unwrap validation error")
	}
}

func TestStoreErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := WrapStore("insert post", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("store error should unwrap to cause")
	}

	var serr *StoreError
	if !errors.As(err, &serr) {
		t.Fatalf("errors.As should find StoreError")
	}
	if serr.Op != "insert post" {
		t.Fatalf("unexpected op: %q", serr.Op)
	}

	if WrapStore("noop", nil) != nil {
		t.Fatalf("wrapping nil should return nil")
	}
}

func TestSentinelErrors(t *testing.T) {
	wrapped := fmt.Errorf("%w: connection refused", ErrFetchFailed)
	if !errors.Is(wrapped, ErrFetchFailed) {
		t.Fatalf("expected fetch failure sentinel")
	}
	if errors.Is(wrapped, ErrNotFound) {
		t.Fatalf("sentinels must not overlap")
	}
}
