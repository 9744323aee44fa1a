// Package json provides a JSON codec implementation.
// Importing it registers the codec with devkit under "json".
package json

import (
	"bytes"
	"encoding/json"

	"github.com/zoobzio/devkit"
)

func init() {
	devkit.RegisterCodec("json", New())
}

// jsonCodec implements devkit.Codec for JSON.
type jsonCodec struct {
	indent string
}

// New returns a compact JSON codec.
func New() devkit.Codec {
	return &jsonCodec{}
}

// NewIndented returns a JSON codec that indents nested values.
func NewIndented(indent string) devkit.Codec {
	return &jsonCodec{indent: indent}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON without escaping <, > and &.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if c.indent != "" {
		enc.SetIndent("", c.indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
