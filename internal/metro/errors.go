package metro

import (
	"fmt"
	"net/http"
)

// ParseError reports a required field that is missing or cannot be converted
// to its target type.
type ParseError struct {
	// Field is the JSON field name. Fields inside list elements are
	// reported as items[i].field.
	Field    string
	Expected string
	// Value is the raw JSON text that failed to convert, empty when the
	// field was absent.
	Value string
}

func (e *ParseError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("metro: field %q: expected %s, field missing", e.Field, e.Expected)
	}
	return fmt.Sprintf("metro: field %q: expected %s, got %s", e.Field, e.Expected, e.Value)
}

// TransportError reports a failed HTTP request, either because no response was
// received or because the response status was not 2xx.
type TransportError struct {
	Method string
	URL    string
	// StatusCode is 0 when no response was received.
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("metro: %s %s: unexpected status %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("metro: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NotFound reports whether the upstream API answered 404.
func (e *TransportError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// withPrefix returns a copy of err with its field name qualified by prefix.
// Errors other than *ParseError are returned unchanged.
func withPrefix(err error, prefix string) error {
	pe, ok := err.(*ParseError)
	if !ok {
		return err
	}
	qualified := *pe
	qualified.Field = prefix + pe.Field
	return &qualified
}
