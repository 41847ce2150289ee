// Package jsonpath extracts values from JSON documents using JSONPath-style
// expressions, translated onto gjson's path syntax.
//
// Supported forms:
//
//	$                    whole document
//	$.users[0].name      dot and bracket navigation
//	$['user name'].id    quoted bracket notation
//	$[2]                 root-level array index
package jsonpath

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Extract returns the value at path as a string. JSON null extracts as
// "null"; a missing path is an error.
func Extract(doc, path string) (string, error) {
	if doc == "" {
		return "", fmt.Errorf("empty JSON document")
	}
	if path == "" {
		return "", fmt.Errorf("empty JSONPath expression")
	}

	r := gjson.Get(doc, toGjsonPath(path))
	if !r.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}
	if r.Type == gjson.Null {
		return "null", nil
	}
	return r.String(), nil
}

// Exists reports whether path resolves to a value in doc.
func Exists(doc, path string) bool {
	if doc == "" || path == "" {
		return false
	}
	return gjson.Get(doc, toGjsonPath(path)).Exists()
}

// toGjsonPath converts a JSONPath expression to gjson syntax:
// $.users[0].name becomes users.0.name. Filters and wildcards are not
// supported.
func toGjsonPath(path string) string {
	path = strings.TrimPrefix(path, "$")
	path = strings.TrimPrefix(path, ".")
	if path == "" {
		return "@this"
	}

	// Quoted bracket notation: ['name'] / ["name"] -> [name]
	replacer := strings.NewReplacer("['", "[", "']", "]", `["`, "[", `"]`, "]")
	path = replacer.Replace(path)

	// Bracket navigation: [n] -> .n (also covers names unquoted above).
	path = strings.ReplaceAll(path, "[", ".")
	path = strings.ReplaceAll(path, "]", "")

	return strings.TrimPrefix(path, ".")
}
