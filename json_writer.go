package netbook

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter helps construct a JSON object with a specific field order.
// Its zero value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a "key": value pair to the object being built.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	data, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal field %q: %w", key, err)
		return w
	}
	fmt.Fprintf(w, "%q:%s,", key, data)
	return w
}

// Optional adds a "key": value pair only when the value is not the empty string.
func (w *jsonObjectWriter) Optional(key string, value string) *jsonObjectWriter {
	if value == "" {
		return w
	}
	return w.Append(key, value)
}

// Embed appends the fields from a raw JSON object into the current object,
// stripping its outer braces.
func (w *jsonObjectWriter) Embed(rawJSON []byte) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	trimmed := bytes.TrimSpace(rawJSON)
	if len(trimmed) > 2 && trimmed[0] == '{' && trimmed[len(trimmed)-1] == '}' {
		trimmed = trimmed[1 : len(trimmed)-1]
	}
	if len(trimmed) > 0 {
		w.Write(trimmed)
		w.WriteString(",")
	}
	return w
}

// EmbedFrom marshals the given value into a JSON object and embeds its fields
// into the current object.
func (w *jsonObjectWriter) EmbedFrom(v any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	rawJSON, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal for embedding: %w", err)
		return w
	}
	return w.Embed(rawJSON)
}

// MarshalJSON terminates and returns the object built so far.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	inner := bytes.TrimSuffix(w.Bytes(), []byte(","))
	var out bytes.Buffer
	out.WriteByte('{')
	out.Write(inner)
	out.WriteByte('}')
	return out.Bytes(), nil
}
