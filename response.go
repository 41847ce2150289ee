package apiclient

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/wesleyorama2/apiclient/pkg/jsonpath"
)

// Response is the result of a successful call.
//
// Body holds the resolved payload: the envelope's data field when the
// effective returnData is true, the full envelope otherwise (and always the
// raw body for skipBusinessCheck calls). Envelope always holds the body
// exactly as received, regardless of resolution.
type Response struct {
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
	Envelope   []byte
	Duration   time.Duration
}

// Decode unmarshals the resolved payload into v. Callers choose the target
// shape per call: with returnData true v receives the data field, with
// returnData false v receives the full envelope.
func (r *Response) Decode(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// String returns the resolved payload as a string.
func (r *Response) String() string {
	return string(r.Body)
}

// GetHeader returns the value of the named response header.
func (r *Response) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// Extract evaluates a JSONPath expression (e.g. "$.data.items[0].id")
// against the raw envelope.
func (r *Response) Extract(path string) (string, error) {
	return jsonpath.Extract(string(r.Envelope), path)
}
