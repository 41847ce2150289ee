package apierr

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"
)

// bodyMessageFields are checked in priority order when extracting a
// server-supplied message from an error response body.
var bodyMessageFields = []string{"message", "msg", "error"}

// FromTransportFailure normalizes a transport-layer failure into an *Error.
// Exactly one of the three branches applies, first match wins:
//
//  1. resp != nil: the server answered with a non-2xx status. Code and
//     TransportStatus are the status; the message comes from the body's
//     message/msg/error field when present, otherwise the status table.
//  2. cause is a *url.Error: the request was sent but no response arrived.
//  3. anything else: the request never left (pre-send error).
//
// Afterwards, independent of the branch taken, the cause is inspected for
// network and timeout conditions; a match forces the corresponding flag and
// replaces the message with the configured text (timeout wins when both
// match). The function is total: it never panics and never returns nil.
func FromTransportFailure(resp *http.Response, body []byte, cause error, msgs *Messages) *Error {
	if msgs == nil {
		msgs = DefaultMessages()
	}
	e := &Error{Code: CodeNoStatus, Cause: cause}

	switch {
	case resp != nil:
		e.Code = int64(resp.StatusCode)
		e.TransportStatus = resp.StatusCode
		e.Message = msgs.ForStatus(resp.StatusCode)
		if m := bodyMessage(body); m != "" {
			e.Message = m
		}
		if len(body) > 0 {
			e.Payload = json.RawMessage(body)
		}
	case isURLError(cause):
		e.Message = msgs.NoResponse
	case cause != nil:
		e.Message = cause.Error()
	default:
		e.Message = msgs.DefaultError
	}

	if isNetworkErr(cause) {
		e.IsNetworkError = true
		e.Message = msgs.NetworkError
	}
	if isTimeoutErr(cause) {
		e.IsTimeoutError = true
		e.Message = msgs.TimeoutError
	}
	return e
}

// FromBusinessFailure constructs an *Error from an envelope whose code is
// non-zero. The transport succeeded, so the network/timeout flags are
// always false. An empty message falls back to the generic failure text.
func FromBusinessFailure(code int64, message string, payload json.RawMessage, transportStatus int) *Error {
	if message == "" {
		message = DefaultMessages().DefaultError
	}
	return &Error{
		Code:            code,
		Message:         message,
		Payload:         payload,
		TransportStatus: transportStatus,
	}
}

// bodyMessage extracts a server-supplied message from a response body,
// honoring message > msg > error priority. Non-string fields are ignored.
func bodyMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	for _, field := range bodyMessageFields {
		r := gjson.GetBytes(body, field)
		if r.Exists() && r.Type == gjson.String && r.Str != "" {
			return r.Str
		}
	}
	return ""
}

func isURLError(err error) bool {
	var ue *url.Error
	return errors.As(err, &ue)
}

func isNetworkErr(err error) bool {
	if err == nil {
		return false
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

func isTimeoutErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
