// Package prettyjson renders JSON byte slices for human reading.
package prettyjson

import (
	"bytes"
	"encoding/json"
)

// Placeholder is returned by String when the input is not a JSON object or array.
const Placeholder = "Json can not converted"

// String returns data re-encoded as indented JSON. It never fails: input that
// is not a valid JSON object or array yields Placeholder.
func String(data []byte) string {
	if !json.Valid(data) {
		return Placeholder
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Placeholder
	}
	switch v.(type) {
	case map[string]any, []any:
	default:
		return Placeholder
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return Placeholder
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
