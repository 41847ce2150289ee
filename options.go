package apiclient

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/wesleyorama2/apiclient/apierr"
	"github.com/wesleyorama2/apiclient/envelope"
)

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// WithBaseURL sets the base URL that relative request paths are resolved
// against.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the per-call timeout. The default is 10 seconds; zero
// disables the client-imposed deadline (the context's own deadline, if
// any, still applies).
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHeader adds a default header sent with every request. Per-request
// headers win on conflict.
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithHeaders adds multiple default headers.
func WithHeaders(headers map[string]string) ClientOption {
	return func(c *Client) {
		for key, value := range headers {
			c.headers[key] = value
		}
	}
}

// WithTransport sets the underlying RoundTripper, e.g. for connection
// tuning or test doubles.
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

// WithReturnData sets the instance default for response resolution: true
// (the default) unwraps the envelope's data field, false returns the full
// envelope. Overridable per call via Request.WithReturnData.
func WithReturnData(returnData bool) ClientOption {
	return func(c *Client) {
		c.returnData = returnData
	}
}

// WithRequestInterceptor installs a function that runs over every outgoing
// request before it is sent, e.g. to inject an auth token. The interceptor
// may do I/O; an error fails the call as a transport failure.
func WithRequestInterceptor(fn func(ctx context.Context, req *http.Request) error) ClientOption {
	return func(c *Client) {
		c.interceptor = fn
	}
}

// WithOnUnauthorized installs a callback invoked when a call fails with
// HTTP 401, before the error is dispatched. There is no default action:
// redirecting, refreshing tokens or clearing sessions is the caller's
// policy.
func WithOnUnauthorized(fn func(err *apierr.Error)) ClientOption {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

// WithParser sets the instance-wide envelope parser. The default matches
// the {code,data,message} convention.
func WithParser(p envelope.Parser) ClientOption {
	return func(c *Client) {
		if p != nil {
			c.parser = p
		}
	}
}

// WithErrorMessages overlays custom texts onto the default status-message
// table. Only non-empty fields and present status entries override.
func WithErrorMessages(msgs *apierr.Messages) ClientOption {
	return func(c *Client) {
		c.messages.Merge(msgs)
	}
}

// WithDefaultErrorHandler configures the chain's fallback reporting:
// whether an unclaimed error's message is shown at all, and through which
// function. A nil messageHandler keeps the console default.
func WithDefaultErrorHandler(showMessage bool, messageHandler func(string)) ClientOption {
	return func(c *Client) {
		c.showMessage = showMessage
		if messageHandler != nil {
			c.messageHandler = messageHandler
		}
	}
}

// WithLogger sets the structured logger. Logging is disabled by default.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}
