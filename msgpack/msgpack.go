// Package msgpack provides a MessagePack codec implementation.
// Importing it registers the codec with devkit under "msgpack".
package msgpack

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/devkit"
)

func init() {
	devkit.RegisterCodec("msgpack", New())
}

// msgpackCodec implements devkit.Codec for MessagePack.
// Structs without msgpack tags fall back to their json tags.
type msgpackCodec struct{}

// New returns a MessagePack codec with deterministic map ordering.
func New() devkit.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack with map keys sorted.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}
