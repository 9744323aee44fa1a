package devkit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// MaxIndent bounds the indent width accepted by FormatJSON.
const MaxIndent = 8

// FormatJSON re-indents a JSON document with indent spaces per level,
// keeping key order. An indent of 0 produces the compact form.
func FormatJSON(input string, indent int) (string, error) {
	start := time.Now()
	if indent < 0 || indent > MaxIndent {
		err := newConversionError(ErrInvalidFormat, "document.format",
			fmt.Errorf("indent %d outside [0,%d]", indent, MaxIndent))
		observe(SignalDocument, "document.format", len(input), 0, start, err)
		return "", err
	}
	if err := checkJSON("document.format", input); err != nil {
		observe(SignalDocument, "document.format", len(input), 0, start, err)
		return "", err
	}

	var buf bytes.Buffer
	var err error
	if indent == 0 {
		err = json.Compact(&buf, []byte(input))
	} else {
		err = json.Indent(&buf, []byte(input), "", strings.Repeat(" ", indent))
	}
	if err != nil {
		err = newConversionError(ErrInvalidFormat, "document.format", err)
		observe(SignalDocument, "document.format", len(input), 0, start, err)
		return "", err
	}
	out := buf.String()
	observe(SignalDocument, "document.format", len(input), len(out), start, nil)
	return out, nil
}

// MinifyJSON strips insignificant whitespace from a JSON document.
func MinifyJSON(input string) (string, error) {
	return FormatJSON(input, 0)
}

// ValidateJSON reports whether input is a single well-formed JSON value.
// The error carries the decoder message and byte offset.
func ValidateJSON(input string) error {
	start := time.Now()
	err := checkJSON("document.validate", input)
	observe(SignalDocument, "document.validate", len(input), 0, start, err)
	return err
}

func checkJSON(op, input string) error {
	if json.Valid([]byte(input)) {
		return nil
	}
	var v any
	err := json.Unmarshal([]byte(input), &v)
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		err = fmt.Errorf("%w (offset %d)", err, syntaxErr.Offset)
	}
	if err == nil {
		err = errors.New("malformed JSON")
	}
	return newConversionError(ErrInvalidFormat, op, err)
}

// ConvertDocument decodes input with from and re-encodes it with to.
// The document passes through a generic tree, so only data representable
// as maps, slices and scalars survives.
func ConvertDocument(input []byte, from, to Codec) ([]byte, error) {
	start := time.Now()
	var tree any
	if err := from.Unmarshal(input, &tree); err != nil {
		err = newConversionError(ErrInvalidFormat, "document.convert",
			fmt.Errorf("decode %s: %w", from.ContentType(), err))
		observe(SignalDocument, "document.convert", len(input), 0, start, err)
		return nil, err
	}
	out, err := to.Marshal(tree)
	if err != nil {
		err = newConversionError(ErrInvalidFormat, "document.convert",
			fmt.Errorf("encode %s: %w", to.ContentType(), err))
		observe(SignalDocument, "document.convert", len(input), 0, start, err)
		return nil, err
	}
	observe(SignalDocument, "document.convert", len(input), len(out), start, nil)
	return out, nil
}

// ConvertDocumentByName resolves both codecs with DocumentCodec and converts.
func ConvertDocumentByName(input []byte, from, to string) ([]byte, error) {
	src, err := DocumentCodec(from)
	if err != nil {
		return nil, err
	}
	dst, err := DocumentCodec(to)
	if err != nil {
		return nil, err
	}
	return ConvertDocument(input, src, dst)
}
