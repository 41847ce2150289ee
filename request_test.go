package apiclient

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestRequest_BuildJoinsBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		path     string
		expected string
	}{
		{"simple join", "https://api.example.com", "/users", "https://api.example.com/users"},
		{"base path prefix", "https://api.example.com/v1", "/users", "https://api.example.com/v1/users"},
		{"trailing slash on base", "https://api.example.com/v1/", "users", "https://api.example.com/v1/users"},
		{"absolute path bypasses base", "https://api.example.com", "https://other.example.com/ping", "https://other.example.com/ping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewRequest(http.MethodGet, tt.path).build(context.Background(), tt.baseURL)
			if err != nil {
				t.Fatalf("build failed: %v", err)
			}
			if req.URL.String() != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, req.URL.String())
			}
		})
	}
}

func TestRequest_BuildQueryParams(t *testing.T) {
	req, err := NewRequest(http.MethodGet, "/search?page=2").
		WithQueryParam("q", "term").
		WithQueryParams(map[string]string{"limit": "10"}).
		build(context.Background(), "https://api.example.com")
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	q := req.URL.Query()
	if q.Get("q") != "term" || q.Get("limit") != "10" {
		t.Errorf("missing added params in %s", req.URL.RawQuery)
	}
	if q.Get("page") != "2" {
		t.Errorf("params embedded in the path must survive, got %s", req.URL.RawQuery)
	}
}

func TestRequest_BuildBodyKinds(t *testing.T) {
	readBody := func(t *testing.T, req *http.Request) string {
		t.Helper()
		if req.Body == nil {
			return ""
		}
		b, err := io.ReadAll(req.Body)
		if err != nil {
			t.Fatalf("reading body: %v", err)
		}
		return string(b)
	}

	t.Run("string body sent verbatim", func(t *testing.T) {
		req, err := NewRequest(http.MethodPost, "/x").
			WithBody("grant_type=client_credentials").
			build(context.Background(), "https://api.example.com")
		if err != nil {
			t.Fatal(err)
		}
		if got := readBody(t, req); got != "grant_type=client_credentials" {
			t.Errorf("unexpected body %q", got)
		}
		if ct := req.Header.Get("Content-Type"); ct != "" {
			t.Errorf("no content type must be forced for strings, got %q", ct)
		}
	})

	t.Run("bytes body sent verbatim", func(t *testing.T) {
		req, err := NewRequest(http.MethodPost, "/x").
			WithBody([]byte(`raw`)).
			build(context.Background(), "https://api.example.com")
		if err != nil {
			t.Fatal(err)
		}
		if got := readBody(t, req); got != "raw" {
			t.Errorf("unexpected body %q", got)
		}
	})

	t.Run("reader body sent verbatim", func(t *testing.T) {
		req, err := NewRequest(http.MethodPost, "/x").
			WithBody(strings.NewReader("streamed")).
			build(context.Background(), "https://api.example.com")
		if err != nil {
			t.Fatal(err)
		}
		if got := readBody(t, req); got != "streamed" {
			t.Errorf("unexpected body %q", got)
		}
	})

	t.Run("struct body JSON encoded", func(t *testing.T) {
		req, err := NewRequest(http.MethodPost, "/x").
			WithBody(map[string]int{"qty": 2}).
			build(context.Background(), "https://api.example.com")
		if err != nil {
			t.Fatal(err)
		}
		if got := readBody(t, req); got != `{"qty":2}` {
			t.Errorf("unexpected body %q", got)
		}
		if ct := req.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
	})

	t.Run("explicit content type wins", func(t *testing.T) {
		req, err := NewRequest(http.MethodPost, "/x").
			WithBody(map[string]int{"qty": 2}).
			WithHeader("Content-Type", "application/vnd.api+json").
			build(context.Background(), "https://api.example.com")
		if err != nil {
			t.Fatal(err)
		}
		if ct := req.Header.Get("Content-Type"); ct != "application/vnd.api+json" {
			t.Errorf("request header must win, got %q", ct)
		}
	})
}

func TestRequest_FluentSettersChain(t *testing.T) {
	req := NewRequest(http.MethodGet, "/x").
		WithReturnData(false).
		WithHideErrorTip().
		WithSkipBusinessCheck().
		WithRequestID("id-1").
		WithCancelPrevious()

	if req.returnData == nil || *req.returnData {
		t.Error("WithReturnData(false) not applied")
	}
	if !req.hideErrorTip || !req.skipBusinessCheck || !req.cancelPrevious {
		t.Error("boolean flags not applied")
	}
	if req.requestID != "id-1" {
		t.Error("request id not applied")
	}
}
