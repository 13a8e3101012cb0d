package metro

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const itemsField = "items"

// Document is a decoded JSON object from the Metro API. Field values are kept
// as raw JSON until a conversion asks for them with a concrete type.
type Document struct {
	fields map[string]json.RawMessage
}

// ParseDocument decodes body, which must hold a JSON object.
func ParseDocument(body []byte) (Document, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Document{}, &ParseError{Field: "$", Expected: "object", Value: excerpt(trimmed)}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return Document{}, &ParseError{Field: "$", Expected: "object", Value: excerpt(trimmed)}
	}
	return Document{fields: fields}, nil
}

// Raw returns the raw JSON of the named field. The boolean is false when the
// field is absent or JSON null.
func (d Document) Raw(name string) (json.RawMessage, bool) {
	raw, ok := d.fields[name]
	if !ok {
		return nil, false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, false
	}
	return raw, true
}

// IsNull reports whether the named field is absent or JSON null.
func (d Document) IsNull(name string) bool {
	_, ok := d.Raw(name)
	return !ok
}

// Len returns the number of fields in the document, null fields included.
func (d Document) Len() int {
	return len(d.fields)
}

// Items returns the elements of the list field "items". An absent or null
// field yields no elements and no error.
func (d Document) Items() ([]Document, error) {
	raw, ok := d.Raw(itemsField)
	if !ok {
		return nil, nil
	}
	if raw[0] != '[' {
		return nil, &ParseError{Field: itemsField, Expected: "array", Value: excerpt(raw)}
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, &ParseError{Field: itemsField, Expected: "array", Value: excerpt(raw)}
	}

	items := make([]Document, 0, len(elements))
	for i, element := range elements {
		item, err := ParseDocument(element)
		if err != nil {
			return nil, &ParseError{Field: fmt.Sprintf("%s[%d]", itemsField, i), Expected: "object", Value: excerpt(element)}
		}
		items = append(items, item)
	}
	return items, nil
}

// scalarText returns the text of a JSON scalar: the unquoted value of a
// string, or the literal text of a number or boolean.
func scalarText(raw json.RawMessage) (string, bool) {
	switch raw[0] {
	case '{', '[':
		return "", false
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	default:
		return string(raw), true
	}
}

func excerpt(raw []byte) string {
	const limit = 64
	if len(raw) > limit {
		return string(raw[:limit]) + "..."
	}
	return string(raw)
}
