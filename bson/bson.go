// Package bson provides a BSON codec implementation.
// Importing it registers the codec with devkit under "bson".
package bson

import (
	"github.com/zoobzio/devkit"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
)

func init() {
	devkit.RegisterCodec("bson", New())
}

// bsonCodec implements devkit.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec. Documents decoded into an untyped value
// become bson.M so they re-encode as plain maps.
func New() devkit.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as a BSON document. v must be a struct or map.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes a BSON document into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	dec, err := bson.NewDecoder(bsonrw.NewBSONDocumentReader(data))
	if err != nil {
		return err
	}
	dec.DefaultDocumentM()

	// A BSON payload is always a document, so an untyped target gets a map.
	if p, ok := v.(*any); ok {
		var doc bson.M
		if err := dec.Decode(&doc); err != nil {
			return err
		}
		*p = doc
		return nil
	}
	return dec.Decode(v)
}
