package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wesleyorama2/apiclient/envelope"
	"github.com/wesleyorama2/apiclient/pkg/jsonschema"
)

// Request describes one call: method, target, payload, and the per-call
// overrides of the client's resolution and reporting behavior. Build one
// with NewRequest and the fluent With* methods, then pass it to Client.Do.
//
// A Request is not safe for concurrent mutation; build it, send it, drop it.
type Request struct {
	Method      string
	Path        string
	QueryParams url.Values
	Headers     map[string]string
	Body        interface{}

	returnData        *bool
	hideErrorTip      bool
	skipBusinessCheck bool
	requestID         string
	cancelPrevious    bool
	timeout           time.Duration
	parser            envelope.Parser
	schema            *jsonschema.Validator
}

// NewRequest creates a request for the given method and path. The path is
// resolved against the client's base URL unless it is already absolute.
func NewRequest(method, path string) *Request {
	return &Request{
		Method:      method,
		Path:        path,
		QueryParams: make(url.Values),
		Headers:     make(map[string]string),
	}
}

// WithHeader sets a header on the request. Request headers win over the
// client's default headers.
func (r *Request) WithHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

// WithQueryParam adds a query parameter.
func (r *Request) WithQueryParam(key, value string) *Request {
	r.QueryParams.Add(key, value)
	return r
}

// WithQueryParams adds multiple query parameters.
func (r *Request) WithQueryParams(params map[string]string) *Request {
	for key, value := range params {
		r.QueryParams.Add(key, value)
	}
	return r
}

// WithQuery merges url.Values into the query parameters. A nil values is a
// no-op.
func (r *Request) WithQuery(params url.Values) *Request {
	for key, values := range params {
		for _, value := range values {
			r.QueryParams.Add(key, value)
		}
	}
	return r
}

// WithBody sets the request body. Strings, byte slices and io.Readers are
// sent as-is; anything else is JSON-encoded with a JSON content type.
func (r *Request) WithBody(body interface{}) *Request {
	r.Body = body
	return r
}

// WithReturnData overrides the client's returnData default for this call:
// true resolves to the envelope's data field, false to the full envelope.
func (r *Request) WithReturnData(returnData bool) *Request {
	r.returnData = &returnData
	return r
}

// WithHideErrorTip suppresses all failure reporting for this call: neither
// the registered error handlers nor the default message handler run. The
// call still fails with the same error; only the reporting is silenced.
func (r *Request) WithHideErrorTip() *Request {
	r.hideErrorTip = true
	return r
}

// WithSkipBusinessCheck bypasses envelope interpretation entirely, for
// endpoints that do not follow the {code,data,message} convention. The
// response body is returned verbatim and a non-zero code is not an error.
func (r *Request) WithSkipBusinessCheck() *Request {
	r.skipBusinessCheck = true
	return r
}

// WithRequestID registers this call in the client's pending-request
// registry under id, making it cancelable via Client.Cancel.
func (r *Request) WithRequestID(id string) *Request {
	r.requestID = id
	return r
}

// WithCancelPrevious cancels any in-flight call registered under the same
// request ID before this one is sent. Requires WithRequestID.
func (r *Request) WithCancelPrevious() *Request {
	r.cancelPrevious = true
	return r
}

// WithTimeout overrides the client's timeout for this call.
func (r *Request) WithTimeout(d time.Duration) *Request {
	r.timeout = d
	return r
}

// WithParser overrides the client's envelope parser for this call.
func (r *Request) WithParser(p envelope.Parser) *Request {
	r.parser = p
	return r
}

// WithSchema validates the raw response body against a compiled JSON
// Schema before envelope interpretation. A violation fails the call.
func (r *Request) WithSchema(v *jsonschema.Validator) *Request {
	r.schema = v
	return r
}

// build constructs the underlying http.Request.
func (r *Request) build(ctx context.Context, baseURL string) (*http.Request, error) {
	reqURL, err := r.resolveURL(baseURL)
	if err != nil {
		return nil, err
	}

	// Prepare the body
	var bodyReader io.Reader
	contentType := ""
	if r.Body != nil {
		switch body := r.Body.(type) {
		case string:
			bodyReader = strings.NewReader(body)
		case []byte:
			bodyReader = bytes.NewReader(body)
		case io.Reader:
			bodyReader = body
		default:
			// Assume JSON for other types
			jsonBody, err := json.Marshal(body)
			if err != nil {
				return nil, err
			}
			bodyReader = bytes.NewReader(jsonBody)
			contentType = "application/json"
		}
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, reqURL.String(), bodyReader)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for key, value := range r.Headers {
		req.Header.Set(key, value)
	}
	return req, nil
}

// resolveURL joins the request path with the base URL and encodes the
// query parameters. Absolute paths bypass the base URL.
func (r *Request) resolveURL(baseURL string) (*url.URL, error) {
	target, err := url.Parse(r.Path)
	if err != nil {
		return nil, err
	}

	var reqURL *url.URL
	if target.IsAbs() {
		reqURL = target
	} else {
		reqURL, err = url.Parse(baseURL)
		if err != nil {
			return nil, err
		}
		// Join the base URL path with the request path
		if reqURL.Path == "" {
			reqURL.Path = target.Path
		} else {
			reqURL.Path = strings.TrimRight(reqURL.Path, "/") + "/" + strings.TrimLeft(target.Path, "/")
		}
		reqURL.RawQuery = target.RawQuery
	}

	query := reqURL.Query()
	for key, values := range r.QueryParams {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	reqURL.RawQuery = query.Encode()
	return reqURL, nil
}
