package processor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Record is one input line. Fields keep their input order and unknown
// fields pass through unchanged; fields set later are appended.
type Record struct {
	keys   []string
	fields map[string]json.RawMessage
}

// ParseRecord decodes one JSON object line.
func ParseRecord(line []byte) (*Record, error) {
	dec := json.NewDecoder(bytes.NewReader(line))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid JSON record: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("record is not a JSON object")
	}

	r := &Record{fields: make(map[string]json.RawMessage)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid JSON record: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("invalid JSON record: unexpected %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("invalid JSON record: field %s: %w", key, err)
		}
		r.Set(key, value)
	}

	if tok, err := dec.Token(); err != nil || tok != json.Delim('}') {
		if err == nil || errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("invalid JSON record: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid JSON record: trailing data after object")
	}
	return r, nil
}

// Get returns the raw value of a field.
func (r *Record) Get(name string) (json.RawMessage, bool) {
	value, ok := r.fields[name]
	return value, ok
}

// Set replaces a field in place, or appends it when it is new.
func (r *Record) Set(name string, value json.RawMessage) {
	if _, ok := r.fields[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.fields[name] = value
}

// Keys returns the field names in output order.
func (r *Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

// MarshalJSON writes the fields in order, compacted, with non-ASCII and
// HTML characters left verbatim.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := marshalRaw(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		if err := json.Compact(&buf, r.fields[key]); err != nil {
			return nil, fmt.Errorf("failed to encode field %s: %w", key, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
