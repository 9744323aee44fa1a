// Package devkit provides the text and data transformations behind a
// developer utility toolbox.
//
// Every operation is a pure function from input to output or a typed error,
// and reports completion through capitan signals.
//
// # Tools
//
//   - Base64 text, binary and data URL encoding (EncodeText, ParseDataURL)
//   - Color conversion between HEX, RGB and HSL (HexToRGB, RGBToHSL, Color)
//   - Identifier case conversion (ToCamelCase, ConvertCase)
//   - Regular expression evaluation and highlighting (Evaluate, Highlight)
//   - Digest computation and formatting (Digest, HashText)
//   - Token and UUID generation (GenerateToken, GenerateUUIDv4)
//   - URI component encoding (EncodeURIComponent)
//   - JSON formatting and document conversion (FormatJSON, ConvertDocument)
//
// # Errors
//
// Failures are *ConversionError values wrapping one of ErrInvalidEncoding,
// ErrInvalidPattern, ErrInvalidColorInput or ErrInvalidFormat:
//
//	if _, err := devkit.DecodeText(s); errors.Is(err, devkit.ErrInvalidEncoding) {
//	    // reject input
//	}
//
// # Field Processing
//
// Processor applies the same tools to struct fields declared by tags:
//
//	type Record struct {
//	    Key      string `json:"key" case:"snake"`
//	    Note     string `json:"note" encode:"base64"`
//	    Checksum string `json:"checksum" digest:"sha256"`
//	}
//
//	func (r Record) Clone() Record { return r }
//
//	proc, _ := devkit.NewProcessor[Record](json.New())
//	out, _ := proc.Render(ctx, &rec)
//
// Valid tag values:
//
//	case:   camel, pascal, snake, kebab, upper, lower
//	encode: base64, url
//	digest: md5, sha1, sha256, sha384, sha512, sha3-256, blake2b-256
//
// # Document Codecs
//
// The json, yaml, msgpack, bson and xml subpackages implement Codec and
// register themselves by name on import:
//
//	import _ "github.com/zoobzio/devkit/yaml"
//
//	out, err := devkit.ConvertDocumentByName(input, "json", "yaml")
package devkit
