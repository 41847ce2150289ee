package envelope

import (
	"github.com/tidwall/gjson"
)

// Parser interprets a response body as a business envelope. Implementations
// must be pure: no I/O, no mutation of the body, deterministic results for
// the same input.
//
// The facade consults IsSuccess first; Code, Message and Data are only
// meaningful interpretations of the same body, so implementations should
// tolerate being called on any input IsSuccess was called on.
type Parser interface {
	// IsSuccess reports whether the body signals business success.
	// Bodies that do not follow the envelope convention at all must be
	// treated as successful (permissive passthrough for third-party APIs).
	IsSuccess(body []byte) bool

	// Code returns the business status code, 0 when absent.
	Code(body []byte) int64

	// Message returns the envelope's human-readable message, "" when absent.
	Message(body []byte) string

	// Data returns the payload fragment. When the body carries no envelope
	// there is nothing to unwrap, so the whole body is returned verbatim.
	Data(body []byte) []byte
}

// JSONParser is the default Parser for the conventional JSON envelope
//
//	{"code": 0, "data": ..., "message": "..."}
//
// where code 0 means success. Field names are configurable for APIs that
// use the same convention under different keys.
type JSONParser struct {
	CodeField    string
	DataField    string
	MessageField string
}

// NewJSONParser returns a JSONParser for the {code,data,message} convention.
func NewJSONParser() *JSONParser {
	return &JSONParser{
		CodeField:    "code",
		DataField:    "data",
		MessageField: "message",
	}
}

// IsSuccess treats a missing or non-numeric code field as success: many
// third-party endpoints are proxied through the same client without
// envelope support, and they must pass through untouched.
func (p *JSONParser) IsSuccess(body []byte) bool {
	r := gjson.GetBytes(body, p.CodeField)
	if !r.Exists() || r.Type != gjson.Number {
		return true
	}
	return r.Int() == 0
}

func (p *JSONParser) Code(body []byte) int64 {
	return gjson.GetBytes(body, p.CodeField).Int()
}

func (p *JSONParser) Message(body []byte) string {
	return gjson.GetBytes(body, p.MessageField).String()
}

func (p *JSONParser) Data(body []byte) []byte {
	r := gjson.GetBytes(body, p.DataField)
	if !r.Exists() {
		return body
	}
	return []byte(r.Raw)
}
