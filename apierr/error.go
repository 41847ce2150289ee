package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
)

// CodeNoStatus is the sentinel code used when a failure carries no HTTP
// status (network failure, pre-send error, cancellation fallback).
const CodeNoStatus int64 = -1

// Error is the normalized error value produced for every failed call,
// whether the failure happened at the transport layer or inside a
// transport-successful response envelope.
//
// It is a plain data value: constructed once, never mutated, never shared
// across calls. Use As or IsError to recognize one rather than a type
// switch on concrete error chains.
type Error struct {
	// Code is the business or transport status identifier. Transport
	// failures use the HTTP status code; CodeNoStatus when none exists.
	Code int64

	// Message is the human-readable description shown by the default
	// error reporter.
	Message string

	// Payload carries the response body fragment associated with the
	// failure, if any. For business failures this is the envelope's data
	// field; for HTTP status failures it is the raw response body.
	Payload json.RawMessage

	// TransportStatus is the HTTP status code when a response was
	// received, 0 otherwise. Business failures keep the (2xx) status of
	// the response that carried the envelope.
	TransportStatus int

	// IsNetworkError is set when the transport could not establish or
	// complete a connection.
	IsNetworkError bool

	// IsTimeoutError is set when the transport aborted because a
	// deadline was exceeded.
	IsTimeoutError bool

	// Cause is the underlying transport error, if any.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.IsTimeoutError:
		return fmt.Sprintf("timeout: %s", e.Message)
	case e.IsNetworkError:
		return fmt.Sprintf("network: %s", e.Message)
	case e.TransportStatus != 0 && int64(e.TransportStatus) == e.Code:
		return fmt.Sprintf("http %d: %s", e.TransportStatus, e.Message)
	default:
		return fmt.Sprintf("code %d: %s", e.Code, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// As extracts an *Error from an error chain.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsError reports whether err is (or wraps) an *Error.
func IsError(err error) bool {
	_, ok := As(err)
	return ok
}

// IsHTTPStatus reports whether err is an *Error produced from the given
// HTTP status code.
func IsHTTPStatus(err error, status int) bool {
	ae, ok := As(err)
	return ok && ae.TransportStatus == status
}

// IsNetwork reports whether err is an *Error flagged as a network failure.
func IsNetwork(err error) bool {
	ae, ok := As(err)
	return ok && ae.IsNetworkError
}

// IsTimeout reports whether err is an *Error flagged as a timeout.
func IsTimeout(err error) bool {
	ae, ok := As(err)
	return ok && ae.IsTimeoutError
}

// IsBusiness reports whether err is an *Error signaled inside a
// transport-successful (2xx) response, i.e. a non-zero envelope code.
func IsBusiness(err error) bool {
	ae, ok := As(err)
	return ok && ae.TransportStatus >= 200 && ae.TransportStatus < 300
}
