package errors

import (
	"fmt"
	"testing"
)

func TestViewerError_Error(t *testing.T) {
	err := &ViewerError{
		Code:    ErrNotFound,
		Status:  404,
		Message: "Protein not found: abc",
	}

	expected := "NOT_FOUND: Protein not found: abc"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestNewInvalidRange(t *testing.T) {
	err := NewInvalidRange(5, 2)

	if err.Code != ErrInvalidRange {
		t.Errorf("Code = %q, want %q", err.Code, ErrInvalidRange)
	}
	if err.Status != 400 {
		t.Errorf("Status = %d, want 400", err.Status)
	}
	if err.Details["start_index"] != 5 || err.Details["end_index"] != 2 {
		t.Errorf("Details = %v, want start 5 end 2", err.Details)
	}
}

func TestNewStoreRejected(t *testing.T) {
	err := NewStoreRejected("duplicate range")
	if err.Code != ErrStoreRejected {
		t.Errorf("Code = %q, want %q", err.Code, ErrStoreRejected)
	}
	if err.Message != "duplicate range" {
		t.Errorf("Message = %q, want %q", err.Message, "duplicate range")
	}

	// Empty detail falls back to a generic description.
	err = NewStoreRejected("")
	if err.Message == "" {
		t.Error("expected non-empty fallback message")
	}
}

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("01J2ZK")

	if err.Status != 404 {
		t.Errorf("Status = %d, want 404", err.Status)
	}
	if err.Details["id"] != "01J2ZK" {
		t.Errorf("Details[id] = %v, want %q", err.Details["id"], "01J2ZK")
	}
}

func TestNewInternal_NilError(t *testing.T) {
	err := NewInternal(nil)
	if err.Message != "internal error" {
		t.Errorf("Message = %q, want %q", err.Message, "internal error")
	}

	err = NewInternal(fmt.Errorf("disk full"))
	if err.Message != "disk full" {
		t.Errorf("Message = %q, want %q", err.Message, "disk full")
	}
}

func TestIs(t *testing.T) {
	err := NewInvalidRange(0, -1)
	if !Is(err, ErrInvalidRange) {
		t.Error("Is should match the error's code")
	}
	if Is(err, ErrNotFound) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain"), ErrInternal) {
		t.Error("Is should be false for non-ViewerError")
	}
}
