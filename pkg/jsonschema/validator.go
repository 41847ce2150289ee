// Package jsonschema validates JSON documents against JSON Schema,
// compiling each schema once so it can be reused across many responses.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validator is a compiled JSON Schema. A Validator is immutable and safe
// for concurrent use.
type Validator struct {
	schema *jsonschema.Schema
}

// Compile parses and compiles a JSON Schema document.
func Compile(schemaJSON string) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// MustCompile is like Compile but panics on error. Intended for schemas
// defined as package-level constants.
func MustCompile(schemaJSON string) *Validator {
	v, err := Compile(schemaJSON)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks doc against the schema. It returns nil when the document
// conforms, a ValidationErrors listing every violation when it does not,
// and a plain error when doc is not valid JSON.
func (v *Validator) Validate(doc []byte) error {
	var data interface{}
	if err := json.Unmarshal(doc, &data); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	err := v.schema.Validate(data)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if ok := asValidationError(err, &ve); ok {
		return flatten(ve)
	}
	return err
}

func asValidationError(err error, target **jsonschema.ValidationError) bool {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return false
	}
	*target = ve
	return true
}

// ValidationErrors is the flat list of violations found in one document.
type ValidationErrors []error

func (ve ValidationErrors) Error() string {
	var sb strings.Builder
	for i, err := range ve {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// flatten walks the cause tree of a validation error and collects every
// leaf message with its instance location.
func flatten(err *jsonschema.ValidationError) ValidationErrors {
	var errs ValidationErrors
	if err.Message != "" {
		errs = append(errs, fmt.Errorf("validation error at %s: %s", err.InstanceLocation, err.Message))
	}
	for _, cause := range err.Causes {
		errs = append(errs, flatten(cause)...)
	}
	return errs
}
