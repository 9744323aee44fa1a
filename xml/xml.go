// Package xml provides an XML codec implementation.
// Importing it registers the codec with devkit under "xml".
//
// XML needs element names, so only typed values (structs with xml tags)
// encode. Generic map trees produced by devkit.ConvertDocument fail with
// ErrUntyped.
package xml

import (
	"encoding/xml"
	"errors"
	"reflect"

	"github.com/zoobzio/devkit"
)

// ErrUntyped is returned when Marshal receives a map or an untyped tree.
var ErrUntyped = errors.New("xml: value has no element names; use a typed struct")

func init() {
	devkit.RegisterCodec("xml", New())
}

// xmlCodec implements devkit.Codec for XML.
type xmlCodec struct {
	indent string
}

// New returns an XML codec that writes an XML declaration and indents
// nested elements by two spaces.
func New() devkit.Codec {
	return &xmlCodec{indent: "  "}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as an XML document.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	if isUntyped(reflect.TypeOf(v)) {
		return nil, ErrUntyped
	}
	body, err := xml.MarshalIndent(v, "", c.indent)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}

func isUntyped(t reflect.Type) bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Map || t.Kind() == reflect.Interface
}
