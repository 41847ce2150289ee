package jsonpath

import "testing"

const doc = `{
  "users": [
    {"id": 1, "name": "alice", "tags": ["admin"]},
    {"id": 2, "name": "bob"}
  ],
  "total": 2,
  "next": null,
  "meta": {"page size": 20}
}`

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
		wantErr  bool
	}{
		{"simple field", "$.total", "2", false},
		{"nested array field", "$.users[0].name", "alice", false},
		{"deep array", "$.users[0].tags[0]", "admin", false},
		{"without dollar", "users.1.name", "bob", false},
		{"null value", "$.next", "null", false},
		{"bracket quoted", "$['users'][1]['id']", "2", false},
		{"key with space", `$.meta['page size']`, "20", false},
		{"missing path", "$.users[5].name", "", true},
		{"empty path", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(doc, tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("Extract(%q): %v", tt.path, err)
			}
			if got != tt.expected {
				t.Errorf("Extract(%q) = %q, expected %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestExtract_Root(t *testing.T) {
	got, err := Extract(`{"a":1}`, "$")
	if err != nil {
		t.Fatalf("Extract($): %v", err)
	}
	if got != `{"a":1}` {
		t.Errorf("unexpected root extraction %q", got)
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	if _, err := Extract("", "$.a"); err == nil {
		t.Error("expected error for empty document")
	}
}

func TestExists(t *testing.T) {
	if !Exists(doc, "$.users[0].id") {
		t.Error("expected path to exist")
	}
	if Exists(doc, "$.users[9]") {
		t.Error("expected path to be absent")
	}
	if Exists("", "$.a") || Exists(doc, "") {
		t.Error("empty inputs never exist")
	}
}
