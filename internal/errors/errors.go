package errors

import (
	"errors"
	"fmt"
)

// This package defines the sentinel errors shared by every layer of the front-end.
// Services wrap them with fmt.Errorf("...: %w") and callers branch with errors.Is,
// so nothing above the backend client needs to know about HTTP status codes.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// This is typically mapped to a 404 Not Found HTTP status.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input data provided by a client failed
	// validation. This is typically mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that an operation could not be completed because
	// it conflicts with the current state (e.g. closing a modal mid-submit).
	// This is typically mapped to a 409 Conflict HTTP status.
	ErrConflict = errors.New("resource conflict")

	// ErrTransport signifies that the analytics backend could not be reached or
	// answered with something that could not be decoded (network error, timeout).
	ErrTransport = errors.New("backend unreachable")

	// ErrRejected signifies that the analytics backend answered but reported a
	// failure: a non-2xx status or a payload with success=false.
	ErrRejected = errors.New("backend rejected request")
)

// RejectedError carries the details of an application-level failure reported by
// the backend. It matches ErrRejected with errors.Is.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend rejected request with status %d", e.Status)
	}
	return fmt.Sprintf("backend rejected request with status %d: %s", e.Status, e.Message)
}

func (e *RejectedError) Is(target error) bool { return target == ErrRejected }

// RejectionMessage returns the backend-supplied message of a rejected request,
// or an empty string when err is not a rejection or carries no message.
func RejectionMessage(err error) string {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return rejected.Message
	}
	return ""
}
