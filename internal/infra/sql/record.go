package sql

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field is one column/value pair of a Record.
type Field struct {
	Column string
	Value  any
}

// Record is an ordered list of fields. The order is the order columns are listed in
// generated statements, so columns and bound values always line up.
type Record []Field

func (r Record) Get(column string) (any, bool) {
	for _, f := range r {
		if f.Column == column {
			return f.Value, true
		}
	}
	return nil, false
}

// Set replaces the value of column, or appends it when absent.
func (r Record) Set(column string, value any) Record {
	for i := range r {
		if r[i].Column == column {
			r[i].Value = value
			return r
		}
	}
	return append(r, Field{Column: column, Value: value})
}

func (r Record) Columns() []string {
	columns := make([]string, len(r))
	for i, f := range r {
		columns[i] = f.Column
	}
	return columns
}

func (r Record) Values() []any {
	values := make([]any, len(r))
	for i, f := range r {
		values[i] = f.Value
	}
	return values
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Column)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("encoding column %s: %w", f.Column, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a flat JSON object keeping the key order of the document.
// Nested objects and arrays are rejected.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if tok == nil {
		*r = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: record must be a JSON object", ErrInvalidArgument)
	}

	record := Record{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		column, _ := keyTok.(string)

		valueTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}

		switch v := valueTok.(type) {
		case json.Delim:
			return fmt.Errorf("%w: column %s must hold a scalar value", ErrInvalidArgument, column)
		case json.Number:
			record = record.Set(column, numberValue(v))
		default:
			record = record.Set(column, v)
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	*r = record
	return nil
}

func numberValue(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	return f
}

// normalizeValue converts driver values to JSON friendly ones. Drivers speaking a
// text protocol hand back numbers as bytes, so the column type decides how they
// are parsed.
func normalizeValue(value any, databaseType string) any {
	raw, ok := value.([]byte)
	if !ok {
		return value
	}

	text := string(raw)
	switch kind := strings.ToUpper(databaseType); {
	case strings.Contains(kind, "INT"):
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return i
		}
	case strings.Contains(kind, "DECIMAL"), strings.Contains(kind, "NUMERIC"),
		strings.Contains(kind, "FLOAT"), strings.Contains(kind, "DOUBLE"), strings.Contains(kind, "REAL"):
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return f
		}
	}

	return text
}

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case float64:
		return int64(v), true
	case string:
		i, err := strconv.ParseInt(v, 10, 64)
		return i, err == nil
	case []byte:
		i, err := strconv.ParseInt(string(v), 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}
