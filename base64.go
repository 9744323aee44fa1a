package devkit

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// The text codec is UTF-8 aware: EncodeText encodes the UTF-8 bytes of its
// input and DecodeText requires the decoded bytes to be valid UTF-8.
// Binary payloads go through EncodeBinary/DecodeBinary.

var (
	errNotUTF8       = errors.New("input is not valid UTF-8")
	errDecodedBinary = errors.New("decoded bytes are not valid UTF-8 text")
)

// dataURLPattern is the exact data URL grammar: data:<type>/<subtype>;base64,<payload>
var dataURLPattern = regexp.MustCompile(`^data:([A-Za-z0-9][A-Za-z0-9!#$&^_.+-]*/[A-Za-z0-9][A-Za-z0-9!#$&^_.+-]*);base64,([A-Za-z0-9+/]*={0,2})$`)

// payloadPattern is the payload part of dataURLPattern.
var payloadPattern = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)

// mimeTypePattern validates the type/subtype part of a data URL.
var mimeTypePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9!#$&^_.+-]*/[A-Za-z0-9][A-Za-z0-9!#$&^_.+-]*$`)

// DataURL is a parsed data:<mime>;base64,<payload> string.
type DataURL struct {
	MimeType string
	Base64   string
}

// String renders the data URL.
func (d DataURL) String() string {
	return "data:" + d.MimeType + ";base64," + d.Base64
}

// EncodeText encodes the UTF-8 bytes of s as standard padded Base64.
func EncodeText(s string) (string, error) {
	start := time.Now()
	if !utf8.ValidString(s) {
		err := newConversionError(ErrInvalidEncoding, "base64.encode", errNotUTF8)
		observe(SignalBase64, "base64.encode", len(s), 0, start, err)
		return "", err
	}
	out := base64.StdEncoding.EncodeToString([]byte(s))
	observe(SignalBase64, "base64.encode", len(s), len(out), start, nil)
	return out, nil
}

// DecodeText decodes standard padded Base64 into UTF-8 text.
// ASCII whitespace in the input is ignored.
func DecodeText(s string) (string, error) {
	start := time.Now()
	raw, err := decodeStrict("base64.decode", s)
	if err == nil && !utf8.Valid(raw) {
		err = newConversionError(ErrInvalidEncoding, "base64.decode", errDecodedBinary)
	}
	if err != nil {
		observe(SignalBase64, "base64.decode", len(s), 0, start, err)
		return "", err
	}
	observe(SignalBase64, "base64.decode", len(s), len(raw), start, nil)
	return string(raw), nil
}

// DecodeBinary decodes standard padded Base64 into raw bytes.
// ASCII whitespace in the input is ignored.
func DecodeBinary(s string) ([]byte, error) {
	start := time.Now()
	raw, err := decodeStrict("base64.decode_binary", s)
	observe(SignalBase64, "base64.decode_binary", len(s), len(raw), start, err)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// EncodeBinary encodes arbitrary bytes as standard padded Base64.
func EncodeBinary(b []byte) string {
	start := time.Now()
	out := base64.StdEncoding.EncodeToString(b)
	observe(SignalBase64, "base64.encode_binary", len(b), len(out), start, nil)
	return out
}

// BuildDataURL validates that payload is compact standard Base64 and wraps
// it as a data URL. The payload is embedded unchanged, so any whitespace is
// an InvalidEncoding error and ParseDataURL returns payload as given.
func BuildDataURL(payload, mimeType string) (string, error) {
	start := time.Now()

	if !mimeTypePattern.MatchString(mimeType) {
		err := newConversionError(ErrInvalidFormat, "dataurl.build", fmt.Errorf("malformed mime type %q", mimeType))
		observe(SignalBase64, "dataurl.build", len(payload), 0, start, err)
		return "", err
	}
	if !payloadPattern.MatchString(payload) {
		err := newConversionError(ErrInvalidEncoding, "dataurl.build", errors.New("payload is not compact standard Base64"))
		observe(SignalBase64, "dataurl.build", len(payload), 0, start, err)
		return "", err
	}
	if _, err := decodeStrictCompact("dataurl.build", payload); err != nil {
		observe(SignalBase64, "dataurl.build", len(payload), 0, start, err)
		return "", err
	}

	out := DataURL{MimeType: mimeType, Base64: payload}.String()
	observe(SignalBase64, "dataurl.build", len(payload), len(out), start, nil)
	return out, nil
}

// ParseDataURL splits a data URL into its mime type and Base64 payload.
func ParseDataURL(s string) (DataURL, error) {
	start := time.Now()
	m := dataURLPattern.FindStringSubmatch(s)
	if m == nil {
		err := newConversionError(ErrInvalidFormat, "dataurl.parse", errors.New("expected data:<mime>;base64,<payload>"))
		observe(SignalBase64, "dataurl.parse", len(s), 0, start, err)
		return DataURL{}, err
	}
	observe(SignalBase64, "dataurl.parse", len(s), len(m[2]), start, nil)
	return DataURL{MimeType: m[1], Base64: m[2]}, nil
}

// EncodeDataURL encodes a file payload as a data URL.
// An empty mimeType is sniffed from the content.
func EncodeDataURL(b []byte, mimeType string) string {
	if mimeType == "" {
		mimeType = sniffMimeType(b)
	}
	return DataURL{MimeType: mimeType, Base64: EncodeBinary(b)}.String()
}

// sniffMimeType detects a bare type/subtype for b, dropping parameters.
func sniffMimeType(b []byte) string {
	detected := http.DetectContentType(b)
	if i := strings.IndexByte(detected, ';'); i >= 0 {
		detected = detected[:i]
	}
	return strings.TrimSpace(detected)
}

// decodeStrict strips ASCII whitespace and decodes s.
func decodeStrict(op, s string) ([]byte, error) {
	return decodeStrictCompact(op, stripASCIIWhitespace(s))
}

// decodeStrictCompact decodes s, which must already be free of whitespace.
func decodeStrictCompact(op, s string) ([]byte, error) {
	if len(s)%4 != 0 {
		return nil, newConversionError(ErrInvalidEncoding, op,
			fmt.Errorf("length %d is not a multiple of 4", len(s)))
	}
	raw, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, newConversionError(ErrInvalidEncoding, op, err)
	}
	return raw, nil
}

func stripASCIIWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			return -1
		}
		return r
	}, s)
}
