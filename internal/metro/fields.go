package metro

import (
	"math"
	"strconv"
)

const (
	typeString  = "string"
	typeInteger = "integer"
	typeNumber  = "number"
	typeBoolean = "boolean"
)

func requiredScalar(d Document, name, expected string) (string, error) {
	raw, ok := d.Raw(name)
	if !ok {
		return "", &ParseError{Field: name, Expected: expected}
	}
	text, ok := scalarText(raw)
	if !ok {
		return "", &ParseError{Field: name, Expected: expected, Value: excerpt(raw)}
	}
	return text, nil
}

func requiredString(d Document, name string) (string, error) {
	return requiredScalar(d, name, typeString)
}

func requiredInt(d Document, name string) (int, error) {
	text, err := requiredScalar(d, name, typeInteger)
	if err != nil {
		return 0, err
	}
	raw, _ := d.Raw(name)
	return parseInt(name, text, raw[0] != '"')
}

func requiredFloat(d Document, name string) (float64, error) {
	text, err := requiredScalar(d, name, typeNumber)
	if err != nil {
		return 0, err
	}
	return parseFloat(name, text)
}

// requiredBool is true only when the field is the JSON string "true". The
// Metro API encodes flags as strings. Every other value means false,
// including "True", "1" and the JSON literal true.
func requiredBool(d Document, name string) (bool, error) {
	text, err := requiredScalar(d, name, typeBoolean)
	if err != nil {
		return false, err
	}
	raw, _ := d.Raw(name)
	return raw[0] == '"' && text == "true", nil
}

// optionalString returns "" for an absent or null field.
func optionalString(d Document, name string) (string, error) {
	if d.IsNull(name) {
		return "", nil
	}
	return requiredString(d, name)
}

func optionalInt(d Document, name string) (*int, error) {
	if d.IsNull(name) {
		return nil, nil
	}
	v, err := requiredInt(d, name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalFloat(d Document, name string) (*float64, error) {
	if d.IsNull(name) {
		return nil, nil
	}
	v, err := requiredFloat(d, name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parseInt accepts integer text. A JSON number may also be integral float
// text such as 5.0 or 7.2e2. Fractions are always rejected.
func parseInt(name, text string, number bool) (int, error) {
	if v, err := strconv.Atoi(text); err == nil {
		return v, nil
	}
	if !number {
		return 0, &ParseError{Field: name, Expected: typeInteger, Value: strconv.Quote(text)}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, &ParseError{Field: name, Expected: typeInteger, Value: strconv.Quote(text)}
	}
	return int(f), nil
}

func parseFloat(name, text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &ParseError{Field: name, Expected: typeNumber, Value: strconv.Quote(text)}
	}
	return v, nil
}
