// Package jsonbody parses JSON request bodies into a field map and offers
// composable typed accessors. Each accessor returns a validation AppError
// carrying the exact message the API contract specifies for that field, so
// handlers compose checks instead of repeating them.
package jsonbody

import (
	"encoding/json"
	"io"
	"math"
	"strings"

	"larder/internal/shared/errors"
)

// Body holds the raw fields of a parsed JSON object.
type Body struct {
	fields map[string]json.RawMessage
}

// Parse reads and parses a request body. Malformed JSON maps to
// "Invalid JSON body", a valid non-object payload (null, number, string)
// to "Body must be an object".
func Parse(r io.Reader) (*Body, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewValidationError("Invalid JSON body")
	}
	return ParseBytes(data)
}

// ParseBytes parses an already-read payload.
func ParseBytes(data []byte) (*Body, error) {
	if !json.Valid(data) {
		return nil, errors.NewValidationError("Invalid JSON body")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, errors.NewValidationError("Body must be an object")
	}
	return &Body{fields: fields}, nil
}

// Has reports whether the field was present in the request body.
// A JSON null counts as present.
func (b *Body) Has(field string) bool {
	_, ok := b.fields[field]
	return ok
}

// Empty reports whether the body carried no fields at all.
func (b *Body) Empty() bool {
	return len(b.fields) == 0
}

func (b *Body) raw(field string) (json.RawMessage, bool) {
	raw, ok := b.fields[field]
	return raw, ok
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

// String returns a string field without trimming. Absent, null or
// non-string values yield "<name> must be a string". The name parameter is
// the label used in the message, allowing nested paths such as
// "ingredients[].ingredientId".
func (b *Body) String(field, name string) (string, error) {
	raw, ok := b.raw(field)
	if !ok || isNull(raw) {
		return "", errors.NewValidationError(name + " must be a string")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", errors.NewValidationError(name + " must be a string")
	}
	return s, nil
}

// TrimmedString returns a required string field, trimmed, rejecting values
// that are empty after trimming with "<name> cannot be empty".
func (b *Body) TrimmedString(field, name string) (string, error) {
	s, err := b.String(field, name)
	if err != nil {
		return "", err
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", errors.NewValidationError(name + " cannot be empty")
	}
	return trimmed, nil
}

// NullableText handles optional free-text fields: null maps to nil, a
// string is trimmed with empty-after-trim coerced to nil, anything else is
// rejected with "<name> must be a string". Absence must be checked by the
// caller with Has.
func (b *Body) NullableText(field, name string) (*string, error) {
	raw, ok := b.raw(field)
	if !ok || isNull(raw) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, errors.NewValidationError(name + " must be a string")
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, nil
	}
	return &trimmed, nil
}

// Number returns a numeric field, rejecting non-numbers with
// "<name> must be a finite number".
func (b *Body) Number(field, name string) (float64, error) {
	raw, ok := b.raw(field)
	if !ok || isNull(raw) {
		return 0, errors.NewValidationError(name + " must be a finite number")
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, errors.NewValidationError(name + " must be a finite number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.NewValidationError(name + " must be a finite number")
	}
	return v, nil
}

// PositiveNumber returns a numeric field constrained to > 0, with the
// contract message "<name> must be a finite number > 0".
func (b *Body) PositiveNumber(field, name string) (float64, error) {
	raw, ok := b.raw(field)
	if !ok || isNull(raw) {
		return 0, errors.NewValidationError(name + " must be a finite number > 0")
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, errors.NewValidationError(name + " must be a finite number > 0")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, errors.NewValidationError(name + " must be a finite number > 0")
	}
	return v, nil
}

// Enum returns a string field checked against a closed set. Any absent,
// null, non-string or out-of-set value yields the given message, which
// is expected to list the valid values.
func (b *Body) Enum(field, message string, allowed ...string) (string, error) {
	raw, ok := b.raw(field)
	if !ok || isNull(raw) {
		return "", errors.NewValidationError(message)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", errors.NewValidationError(message)
	}
	for _, a := range allowed {
		if s == a {
			return s, nil
		}
	}
	return "", errors.NewValidationError(message)
}

// Objects returns an array-of-objects field, rejecting non-arrays with
// "<name> must be an array". Elements that are not objects come back as
// empty bodies, so their field accessors produce the per-field messages.
func (b *Body) Objects(field, name string) ([]*Body, error) {
	raw, ok := b.raw(field)
	if !ok || isNull(raw) {
		return nil, errors.NewValidationError(name + " must be an array")
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, errors.NewValidationError(name + " must be an array")
	}
	out := make([]*Body, 0, len(elems))
	for _, elem := range elems {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(elem, &fields); err != nil || fields == nil {
			out = append(out, &Body{fields: map[string]json.RawMessage{}})
			continue
		}
		out = append(out, &Body{fields: fields})
	}
	return out, nil
}
