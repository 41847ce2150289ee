package apiclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/wesleyorama2/apiclient/apierr"
	"github.com/wesleyorama2/apiclient/envelope"
	"github.com/wesleyorama2/apiclient/internal/console"
)

// DefaultTimeout bounds each call unless overridden per instance or per
// call.
const DefaultTimeout = 10 * time.Second

// Client is an envelope-aware HTTP client facade. It delegates transport
// concerns to net/http and adds response unwrapping, error normalization,
// a pluggable error-handler chain, and identifier-scoped cancellation.
//
// Construct one explicitly and pass it to the code that needs it; there is
// no package-level default instance. Client is safe for concurrent use by
// multiple goroutines.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
	timeout    time.Duration
	returnData bool

	interceptor    func(ctx context.Context, req *http.Request) error
	onUnauthorized func(err *apierr.Error)

	parser   envelope.Parser
	messages *apierr.Messages
	logger   zerolog.Logger

	// chain construction inputs, consumed by NewClient.
	showMessage    bool
	messageHandler func(string)

	chain   *handlerChain
	pending *pendingRequests
}

// NewClient creates a client with the given options.
//
// Example:
//
//	client := apiclient.NewClient(
//	    apiclient.WithBaseURL("https://api.example.com"),
//	    apiclient.WithTimeout(5*time.Second),
//	    apiclient.WithRequestInterceptor(injectToken),
//	)
func NewClient(options ...ClientOption) *Client {
	client := &Client{
		httpClient:     &http.Client{},
		headers:        make(map[string]string),
		timeout:        DefaultTimeout,
		returnData:     true,
		parser:         envelope.NewJSONParser(),
		messages:       apierr.DefaultMessages(),
		logger:         zerolog.Nop(),
		showMessage:    true,
		messageHandler: console.ReportError,
		pending:        newPendingRequests(),
	}

	// Apply options
	for _, option := range options {
		option(client)
	}

	client.chain = newHandlerChain(client.showMessage, client.messageHandler)
	return client
}

// RegisterErrorHandler appends a handler to the error-handler chain and
// returns its unregister function. Handlers run in registration order; the
// returned function is idempotent.
func (c *Client) RegisterErrorHandler(h ErrorHandler) func() {
	return c.chain.register(h)
}

// UpdateErrorReporting changes the chain's default-message behavior at
// runtime without touching registered handlers. A nil messageHandler keeps
// the current one.
func (c *Client) UpdateErrorReporting(showMessage bool, messageHandler func(string)) {
	c.chain.updateConfig(showMessage, messageHandler)
}

// Cancel aborts the in-flight call registered under requestID, if any, and
// evicts it. The canceled call fails with a *apierr.CancelError carrying
// the reason. Other in-flight calls are unaffected.
func (c *Client) Cancel(requestID, reason string) bool {
	return c.pending.cancel(requestID, reason)
}

// Get performs a GET request. params may be nil. For per-call overrides
// use Do with a Request built via NewRequest.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodGet, path).WithQuery(params))
}

// Post performs a POST request with the given body (see Request.WithBody
// for body handling).
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodPost, path).WithBody(body))
}

// Put performs a PUT request with the given body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodPut, path).WithBody(body))
}

// Patch performs a PATCH request with the given body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodPatch, path).WithBody(body))
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodDelete, path))
}

// Do executes a request. On success it returns the resolved Response; on
// any failure it returns a non-nil error: *apierr.Error for transport and
// business failures, *apierr.CancelError for identifier-scoped
// cancellation. Reporting (handler chain, default message) can be
// suppressed per call with Request.WithHideErrorTip, but the error itself
// is always returned.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	timeout := c.timeout
	if req.timeout > 0 {
		timeout = req.timeout
	}
	if timeout > 0 {
		tctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		ctx = tctx
	}

	if req.requestID != "" {
		cctx, cancel := context.WithCancelCause(ctx)
		ctx = cctx
		call := c.pending.register(req.requestID, cancel, req.cancelPrevious)
		// Eviction must happen on every settle path, crash included.
		defer c.pending.release(call)
		defer cancel(nil)
	}

	httpReq, err := req.build(ctx, c.baseURL)
	if err != nil {
		return nil, c.failTransport(ctx, req, nil, nil, err)
	}
	for key, value := range c.headers {
		if httpReq.Header.Get(key) == "" {
			httpReq.Header.Set(key, value)
		}
	}

	if c.interceptor != nil {
		if err := c.interceptor(ctx, httpReq); err != nil {
			return nil, c.failTransport(ctx, req, nil, nil, err)
		}
	}

	c.logger.Debug().
		Str("method", httpReq.Method).
		Str("url", httpReq.URL.String()).
		Msg("sending request")

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	duration := time.Since(start)

	if err != nil {
		if cancelErr, ok := apierr.AsCancel(context.Cause(ctx)); ok {
			c.logger.Debug().
				Str("request_id", cancelErr.RequestID).
				Msg("request canceled")
			return nil, cancelErr
		}
		return nil, c.failTransport(ctx, req, nil, nil, err)
	}

	body, readErr := io.ReadAll(httpResp.Body)
	_ = httpResp.Body.Close()
	if readErr != nil {
		if cancelErr, ok := apierr.AsCancel(context.Cause(ctx)); ok {
			return nil, cancelErr
		}
		return nil, c.failTransport(ctx, req, nil, nil, readErr)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, c.failTransport(ctx, req, httpResp, body, nil)
	}

	if req.schema != nil {
		if err := req.schema.Validate(body); err != nil {
			e := &apierr.Error{
				Code:            apierr.CodeNoStatus,
				Message:         "response validation failed: " + err.Error(),
				Payload:         body,
				TransportStatus: httpResp.StatusCode,
				Cause:           err,
			}
			c.logFailure(httpReq, httpResp.StatusCode, e)
			c.chain.dispatch(ctx, e, req.hideErrorTip)
			return nil, e
		}
	}

	parser := c.parser
	if req.parser != nil {
		parser = req.parser
	}

	if !req.skipBusinessCheck && !parser.IsSuccess(body) {
		e := apierr.FromBusinessFailure(parser.Code(body), parser.Message(body), parser.Data(body), httpResp.StatusCode)
		c.logFailure(httpReq, httpResp.StatusCode, e)
		c.chain.dispatch(ctx, e, req.hideErrorTip)
		return nil, e
	}

	returnData := effectiveReturnData(req.returnData, c.returnData)

	c.logger.Debug().
		Str("method", httpReq.Method).
		Str("url", httpReq.URL.String()).
		Int("status", httpResp.StatusCode).
		Dur("duration", duration).
		Msg("request completed")

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    httpResp.Header,
		Body:       resolveBody(body, parser, req.skipBusinessCheck, returnData),
		Envelope:   body,
		Duration:   duration,
	}, nil
}

// failTransport normalizes a transport-layer failure, fires the
// unauthorized callback when applicable, dispatches the error through the
// chain and returns it.
func (c *Client) failTransport(ctx context.Context, req *Request, httpResp *http.Response, body []byte, cause error) error {
	e := apierr.FromTransportFailure(httpResp, body, cause, c.messages)
	if e.TransportStatus == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized(e)
	}
	status := 0
	if httpResp != nil {
		status = httpResp.StatusCode
	}
	c.logTransportFailure(req, status, e)
	c.chain.dispatch(ctx, e, req.hideErrorTip)
	return e
}

func (c *Client) logTransportFailure(req *Request, status int, e *apierr.Error) {
	ev := c.logger.Error()
	if status != 0 && status < 500 {
		ev = c.logger.Warn()
	}
	ev.Str("method", req.Method).
		Str("path", req.Path).
		Int("status", status).
		Bool("network_error", e.IsNetworkError).
		Bool("timeout_error", e.IsTimeoutError).
		Msg(e.Message)
}

func (c *Client) logFailure(httpReq *http.Request, status int, e *apierr.Error) {
	c.logger.Warn().
		Str("method", httpReq.Method).
		Str("url", httpReq.URL.String()).
		Int("status", status).
		Int64("code", e.Code).
		Msg(e.Message)
}
