// Package schema defines the writable column allow-lists for every API
// resource. Caller-supplied field names are validated against these lists
// before any SQL is built, so request bodies can never smuggle identifiers
// into a statement.
package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Kind describes how a column's values are coerced on write.
type Kind int

const (
	Text Kind = iota
	Flag      // stored as 0/1; accepts JSON booleans and the numbers 0/1
	Int
	Number
	Date // accepts YYYY-MM-DD or a full RFC 3339 timestamp
)

// Column is one writable column of a resource.
type Column struct {
	Name string
	Kind Kind
}

// Resource describes one API resource's table shape.
type Resource struct {
	Table      string
	Key        string
	ForeignKey string // empty when the resource has no parent
	OrderBy    string // default listing order, already quoted
	Columns    []Column
}

// Field is a validated column/value pair ready for positional binding.
type Field struct {
	Column Column
	Value  any
}

// ColumnNames returns the allow-listed column names in declaration order.
func (r *Resource) ColumnNames() []string {
	names := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		names[i] = c.Name
	}
	return names
}

func (r *Resource) column(name string) (Column, bool) {
	for _, c := range r.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ValidateAll validates a request body for full-overwrite semantics: every
// allow-listed column is returned, with nil values for keys the caller did
// not send. Unknown keys are rejected; the resource's own key column is
// ignored when present.
func (r *Resource) ValidateAll(body []byte) ([]Field, error) {
	raw, err := r.parseBody(body)
	if err != nil {
		return nil, err
	}

	fields := make([]Field, len(r.Columns))
	for i, col := range r.Columns {
		fields[i] = Field{Column: col}
		if rawValue, ok := raw[col.Name]; ok {
			value, err := coerce(col, rawValue)
			if err != nil {
				return nil, err
			}
			fields[i].Value = value
		}
	}
	return fields, nil
}

// ValidatePartial validates a request body for partial-write semantics:
// exactly the columns the caller sent, in allow-list order. An empty field
// set is an error.
func (r *Resource) ValidatePartial(body []byte) ([]Field, error) {
	raw, err := r.parseBody(body)
	if err != nil {
		return nil, err
	}

	var fields []Field
	for _, col := range r.Columns {
		rawValue, ok := raw[col.Name]
		if !ok {
			continue
		}
		value, err := coerce(col, rawValue)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Column: col, Value: value})
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields")
	}
	return fields, nil
}

func (r *Resource) parseBody(body []byte) (map[string]json.RawMessage, error) {
	// a missing body reads as an empty object
	if len(body) == 0 {
		return map[string]json.RawMessage{}, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON body")
	}

	for name := range raw {
		if name == r.Key {
			// identity is taken from the URL, never the body
			delete(raw, name)
			continue
		}
		if _, ok := r.column(name); !ok {
			return nil, fmt.Errorf("unknown field %q", name)
		}
	}
	return raw, nil
}

func coerce(col Column, raw json.RawMessage) (any, error) {
	if string(raw) == "null" {
		return nil, nil
	}

	switch col.Kind {
	case Flag:
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil {
			if b {
				return int64(1), nil
			}
			return int64(0), nil
		}
		var n float64
		if err := json.Unmarshal(raw, &n); err == nil && (n == 0 || n == 1) {
			return int64(n), nil
		}
		return nil, fmt.Errorf("field %q must be a boolean or 0/1", col.Name)

	case Int:
		var n float64
		if err := json.Unmarshal(raw, &n); err == nil && n == float64(int64(n)) {
			return int64(n), nil
		}
		return nil, fmt.Errorf("field %q must be an integer", col.Name)

	case Number:
		var n float64
		if err := json.Unmarshal(raw, &n); err == nil {
			return n, nil
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if n, err := strconv.ParseFloat(s, 64); err == nil {
				return n, nil
			}
		}
		return nil, fmt.Errorf("field %q must be a number", col.Name)

	case Date:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("field %q must be a date string", col.Name)
		}
		if t, err := time.Parse("2006-01-02", s); err == nil {
			return t, nil
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, nil
		}
		return nil, fmt.Errorf("field %q must be YYYY-MM-DD or RFC 3339", col.Name)

	default: // Text
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("field %q must be a string", col.Name)
		}
		return s, nil
	}
}
