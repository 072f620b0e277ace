package awserr

import (
	"bytes"
	"encoding/json"
)

// Field is a single name/value pair of an error body.
type Field struct {
	Name  string
	Value string
}

// Body is a flat, order-preserving JSON object. Field order follows the
// catalog (Type, then the message field, then extra fields) so that rendered
// bodies are byte-for-byte reproducible.
type Body struct {
	fields []Field
}

// Get returns the value of the named field and whether it is present.
// Tests and callers should look fields up by key rather than by position.
func (b Body) Get(name string) (string, bool) {
	for _, f := range b.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Fields returns the body fields in wire order.
func (b Body) Fields() []Field {
	out := make([]Field, len(b.fields))
	copy(out, b.fields)
	return out
}

// Len returns the number of fields.
func (b Body) Len() int {
	return len(b.fields)
}

// MarshalJSON encodes the body as a compact JSON object, preserving field
// order. Values pass through encoding/json so quotes and unicode survive
// round trips unchanged.
func (b Body) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range b.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
