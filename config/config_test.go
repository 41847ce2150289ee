package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "client.yaml", `
baseUrl: https://api.example.com
timeout: 5s
returnData: false
headers:
  X-App: storefront
errorMessages:
  status:
    404: "nothing here"
  timeoutError: "still waiting"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.BaseURL != "https://api.example.com" {
		t.Errorf("unexpected baseUrl %q", cfg.BaseURL)
	}
	if cfg.Timeout != "5s" {
		t.Errorf("unexpected timeout %q", cfg.Timeout)
	}
	if cfg.ReturnData == nil || *cfg.ReturnData {
		t.Error("returnData not parsed")
	}
	if cfg.Headers["X-App"] != "storefront" {
		t.Error("headers not parsed")
	}
	if cfg.ErrorMessages == nil || cfg.ErrorMessages.Status[404] != "nothing here" {
		t.Error("errorMessages.status not parsed")
	}
	if cfg.ErrorMessages.TimeoutError != "still waiting" {
		t.Error("errorMessages.timeoutError not parsed")
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "client.json", `{
  "baseUrl": "https://api.example.com",
  "timeout": "2500"
}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.BaseURL != "https://api.example.com" {
		t.Errorf("unexpected baseUrl %q", cfg.BaseURL)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := writeFile(t, "bad.yaml", "baseUrl: [unclosed")
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected []string // paths of expected errors
	}{
		{
			name:   "valid",
			config: Config{BaseURL: "https://api.example.com", Timeout: "5s"},
		},
		{
			name:     "missing baseUrl",
			config:   Config{},
			expected: []string{"baseUrl"},
		},
		{
			name:     "relative baseUrl",
			config:   Config{BaseURL: "/api/v1"},
			expected: []string{"baseUrl"},
		},
		{
			name:     "bad timeout",
			config:   Config{BaseURL: "https://api.example.com", Timeout: "soon"},
			expected: []string{"timeout"},
		},
		{
			name: "bad status code",
			config: Config{
				BaseURL:       "https://api.example.com",
				ErrorMessages: &Messages{Status: map[int]string{9000: "??"}},
			},
			expected: []string{"errorMessages.status.9000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(&tt.config)
			if len(errs) != len(tt.expected) {
				t.Fatalf("expected %d errors, got %v", len(tt.expected), errs)
			}
			for i, path := range tt.expected {
				if errs[i].Path != path {
					t.Errorf("expected error at %s, got %s", path, errs[i].Path)
				}
			}
		})
	}
}

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"5s", 5 * time.Second, false},
		{"1m30s", 90 * time.Second, false},
		{"250", 250 * time.Millisecond, false}, // bare integers are milliseconds
		{"0", 0, false},
		{"-5s", 0, true},
		{"soon", 0, true},
	}

	for _, tt := range tests {
		d, err := parseTimeout(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseTimeout(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseTimeout(%q): %v", tt.input, err)
			continue
		}
		if d != tt.expected {
			t.Errorf("parseTimeout(%q) = %v, expected %v", tt.input, d, tt.expected)
		}
	}
}

func TestOptions(t *testing.T) {
	returnData := false
	cfg := &Config{
		BaseURL:    "https://api.example.com",
		Timeout:    "5s",
		ReturnData: &returnData,
		Headers:    map[string]string{"X-App": "storefront"},
	}

	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("options failed: %v", err)
	}
	if len(opts) != 4 {
		t.Errorf("expected 4 options, got %d", len(opts))
	}
}

func TestOptions_BadTimeout(t *testing.T) {
	cfg := &Config{BaseURL: "https://api.example.com", Timeout: "soon"}
	if _, err := cfg.Options(); err == nil {
		t.Error("expected an error for an invalid timeout")
	}
}
