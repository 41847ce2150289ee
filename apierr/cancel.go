package apierr

import (
	"errors"
	"fmt"
)

// CancelError is the rejection value for calls aborted through
// identifier-scoped cancellation. It deliberately does not reuse the
// Error shape: cancellation is caller-initiated, bypasses the error
// factory, and must stay distinguishable from business and transport
// failures.
type CancelError struct {
	// RequestID is the identifier the canceled call was registered under.
	RequestID string

	// Reason is the caller-supplied cancellation reason, if any.
	Reason string
}

func (e *CancelError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Reason != "" {
		return fmt.Sprintf("request %q canceled: %s", e.RequestID, e.Reason)
	}
	return fmt.Sprintf("request %q canceled", e.RequestID)
}

// Canceled constructs a CancelError.
func Canceled(requestID, reason string) *CancelError {
	return &CancelError{RequestID: requestID, Reason: reason}
}

// AsCancel extracts a *CancelError from an error chain.
func AsCancel(err error) (*CancelError, bool) {
	var ce *CancelError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsCancel reports whether err is (or wraps) a *CancelError.
func IsCancel(err error) bool {
	_, ok := AsCancel(err)
	return ok
}
