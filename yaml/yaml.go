// Package yaml provides a YAML codec implementation.
// Importing it registers the codec with devkit under "yaml" and "yml".
package yaml

import (
	"bytes"

	"github.com/zoobzio/devkit"
	"gopkg.in/yaml.v3"
)

// DefaultIndent is the indent width of encoded mappings and sequences.
const DefaultIndent = 2

func init() {
	c := New()
	devkit.RegisterCodec("yaml", c)
	devkit.RegisterCodec("yml", c)
}

// yamlCodec implements devkit.Codec for YAML.
type yamlCodec struct {
	indent int
}

// New returns a YAML codec with two-space indentation.
func New() devkit.Codec {
	return &yamlCodec{indent: DefaultIndent}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as a single YAML document.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(c.indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes the first YAML document in data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
