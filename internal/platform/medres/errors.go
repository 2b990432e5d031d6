package medres

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport marks network failures and non-2xx replies without a
	// structured body. Callers surface a generic retry-able message.
	ErrTransport = errors.New("medres: transport failure")
	// ErrNotFound marks 404 replies; lookups treat the resource as unknown.
	ErrNotFound = errors.New("medres: resource not found")
	// ErrRejected marks structured backend rejections; the backend message is
	// carried verbatim by RejectionError.
	ErrRejected = errors.New("medres: request rejected")
)

// RejectionError wraps a non-2xx reply that carried a message/error field.
type RejectionError struct {
	StatusCode int
	Message    string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("medres: rejected with status %d: %s", e.StatusCode, e.Message)
}

func (e *RejectionError) Unwrap() error { return ErrRejected }

// RejectionMessage returns the backend-provided message when err is a
// rejection, or "" so callers can fall back to a generic text.
func RejectionMessage(err error) string {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return rejection.Message
	}
	return ""
}
