package errors

import "fmt"

// ErrorCode represents a protanno error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrInvalidRange   ErrorCode = "INVALID_RANGE"   // 400
	ErrInvalidUpload  ErrorCode = "INVALID_UPLOAD"  // 400
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrStoreRejected  ErrorCode = "STORE_REJECTED"  // 502 (remote store refused a submission)
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// ViewerError represents a structured error with code, status, and details.
type ViewerError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *ViewerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *ViewerError {
	return &ViewerError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewInvalidRange creates a 400 error for an annotation range that fails
// validation (negative index, end before start, or past the sequence end).
func NewInvalidRange(start, end int) *ViewerError {
	return &ViewerError{
		Code:    ErrInvalidRange,
		Status:  400,
		Message: "Invalid index range",
		Details: map[string]any{"start_index": start, "end_index": end},
	}
}

// NewInvalidUpload creates a 400 error for a rejected structure upload.
func NewInvalidUpload(msg string) *ViewerError {
	return &ViewerError{
		Code:    ErrInvalidUpload,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for when a protein cannot be found.
func NewNotFound(id string) *ViewerError {
	return &ViewerError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("Protein not found: %s", id),
		Details: map[string]any{"id": id},
	}
}

// NewStoreRejected creates an error for a submission the annotation store
// refused. detail is the store's human-readable reason, which may be empty.
func NewStoreRejected(detail string) *ViewerError {
	if detail == "" {
		detail = "annotation store rejected the submission"
	}
	return &ViewerError{
		Code:    ErrStoreRejected,
		Status:  502,
		Message: detail,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *ViewerError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &ViewerError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a ViewerError with the given code.
func Is(err error, code ErrorCode) bool {
	if vErr, ok := err.(*ViewerError); ok {
		return vErr.Code == code
	}
	return false
}
