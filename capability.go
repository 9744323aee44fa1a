package devkit

// CaseStyle represents a supported text case style.
// Use these constants in struct tags: `case:"snake"`
type CaseStyle string

const (
	CaseCamel  CaseStyle = "camel"  // helloWorld
	CasePascal CaseStyle = "pascal" // HelloWorld
	CaseSnake  CaseStyle = "snake"  // hello_world
	CaseKebab  CaseStyle = "kebab"  // hello-world
	CaseUpper  CaseStyle = "upper"  // HELLO WORLD
	CaseLower  CaseStyle = "lower"  // hello world
)

// EncodeType represents a supported text encoding.
// Use these constants in struct tags: `encode:"base64"`
type EncodeType string

const (
	// EncodeBase64 encodes UTF-8 text as standard padded Base64.
	EncodeBase64 EncodeType = "base64"

	// EncodeURL percent-encodes text as a URI component.
	EncodeURL EncodeType = "url"
)

// DigestAlgo represents a supported digest algorithm.
// Use these constants in struct tags: `digest:"sha256"`
type DigestAlgo string

const (
	// DigestMD5 is cryptographically broken. Use for checksums only.
	DigestMD5 DigestAlgo = "md5"

	// DigestSHA1 is cryptographically weak. Use for checksums only.
	DigestSHA1 DigestAlgo = "sha1"

	DigestSHA256 DigestAlgo = "sha256"
	DigestSHA384 DigestAlgo = "sha384"
	DigestSHA512 DigestAlgo = "sha512"

	// DigestSHA3256 is SHA3-256 (FIPS 202).
	DigestSHA3256 DigestAlgo = "sha3-256"

	// DigestBLAKE2b256 is unkeyed BLAKE2b with a 32-byte output.
	DigestBLAKE2b256 DigestAlgo = "blake2b-256"
)

// DigestFormat represents a digest output rendering.
type DigestFormat string

const (
	DigestHex    DigestFormat = "hex"
	DigestBase64 DigestFormat = "base64"
)

// Charset represents a token alphabet.
type Charset string

const (
	CharsetAlphanumeric Charset = "alphanumeric"
	CharsetHex          Charset = "hex"
	CharsetNumeric      Charset = "numeric"
	CharsetSymbols      Charset = "symbols"
)

// validCaseStyles contains all valid case styles for tag validation.
var validCaseStyles = map[CaseStyle]bool{
	CaseCamel:  true,
	CasePascal: true,
	CaseSnake:  true,
	CaseKebab:  true,
	CaseUpper:  true,
	CaseLower:  true,
}

// validEncodeTypes contains all valid encodings for tag validation.
var validEncodeTypes = map[EncodeType]bool{
	EncodeBase64: true,
	EncodeURL:    true,
}

// validDigestFormats contains all valid digest renderings.
var validDigestFormats = map[DigestFormat]bool{
	DigestHex:    true,
	DigestBase64: true,
}

// IsValidCaseStyle returns true if the style is a known case style.
func IsValidCaseStyle(style CaseStyle) bool {
	return validCaseStyles[style]
}

// IsValidEncodeType returns true if the type is a known encoding.
func IsValidEncodeType(et EncodeType) bool {
	return validEncodeTypes[et]
}

// IsValidDigestAlgo returns true if the algorithm is a known digest algorithm.
func IsValidDigestAlgo(algo DigestAlgo) bool {
	_, ok := digestAlgorithms[algo]
	return ok
}

// IsValidDigestFormat returns true if the format is a known digest rendering.
func IsValidDigestFormat(format DigestFormat) bool {
	return validDigestFormats[format]
}

// IsValidCharset returns true if the charset is a known token alphabet.
func IsValidCharset(cs Charset) bool {
	_, ok := charsets[cs]
	return ok
}
