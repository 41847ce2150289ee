package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/apiclient/apierr"
	"github.com/wesleyorama2/apiclient/pkg/jsonschema"
)

var envelopeSchema = jsonschema.MustCompile(`{
  "type": "object",
  "required": ["code", "data"],
  "properties": {
    "code": {"type": "integer"},
    "data": {
      "type": "object",
      "required": ["id"],
      "properties": {"id": {"type": "integer"}}
    }
  }
}`)

func TestClient_SchemaValidation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/good" {
			_, _ = w.Write([]byte(`{"code":0,"data":{"id":7},"message":"ok"}`))
			return
		}
		_, _ = w.Write([]byte(`{"code":0,"data":{"id":"not-an-int"},"message":"ok"}`))
	}))
	defer server.Close()

	rec := &messageRecorder{}
	client := newTestClient(server.URL, rec)

	resp, err := client.Do(context.Background(), NewRequest(http.MethodGet, "/good").WithSchema(envelopeSchema))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7}`, string(resp.Body))

	_, err = client.Do(context.Background(), NewRequest(http.MethodGet, "/bad").WithSchema(envelopeSchema))
	require.Error(t, err)

	ae, ok := apierr.As(err)
	require.True(t, ok, "schema violations are normalized errors")
	assert.Equal(t, apierr.CodeNoStatus, ae.Code)
	assert.Contains(t, ae.Message, "response validation failed")
	assert.Len(t, rec.all(), 1, "schema violations are reported like any failure")
}
