package devkit

import (
	"crypto/md5"  //nolint:gosec // exposed for checksums, documented as weak
	"crypto/sha1" //nolint:gosec // exposed for checksums, documented as weak
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// digestAlgorithms maps every supported algorithm to its constructor.
var digestAlgorithms = map[DigestAlgo]func() hash.Hash{
	DigestMD5:     md5.New,
	DigestSHA1:    sha1.New,
	DigestSHA256:  sha256.New,
	DigestSHA384:  sha512.New384,
	DigestSHA512:  sha512.New,
	DigestSHA3256: sha3.New256,
	DigestBLAKE2b256: func() hash.Hash {
		h, _ := blake2b.New256(nil) // unkeyed never fails
		return h
	},
}

// digestAliases maps display names to algorithms.
var digestAliases = map[string]DigestAlgo{
	"md5":         DigestMD5,
	"sha1":        DigestSHA1,
	"sha-1":       DigestSHA1,
	"sha256":      DigestSHA256,
	"sha-256":     DigestSHA256,
	"sha384":      DigestSHA384,
	"sha-384":     DigestSHA384,
	"sha512":      DigestSHA512,
	"sha-512":     DigestSHA512,
	"sha3-256":    DigestSHA3256,
	"sha3_256":    DigestSHA3256,
	"blake2b-256": DigestBLAKE2b256,
	"blake2b":     DigestBLAKE2b256,
}

// ParseDigestAlgo resolves names such as "SHA-256" or "sha256".
func ParseDigestAlgo(name string) (DigestAlgo, error) {
	algo, ok := digestAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", newConversionError(ErrInvalidFormat, "digest.parse", fmt.Errorf("unknown digest algorithm %q", name))
	}
	return algo, nil
}

func newDigest(op string, algo DigestAlgo) (hash.Hash, error) {
	ctor, ok := digestAlgorithms[algo]
	if !ok {
		return nil, newConversionError(ErrInvalidFormat, op, fmt.Errorf("unknown digest algorithm %q", algo))
	}
	return ctor(), nil
}

// Digest returns the raw digest of data.
// MD5 and SHA-1 are weak. Use them for checksums, NOT for security.
func Digest(algo DigestAlgo, data []byte) ([]byte, error) {
	start := time.Now()
	h, err := newDigest("digest.sum", algo)
	if err != nil {
		observe(SignalDigest, "digest.sum", len(data), 0, start, err)
		return nil, err
	}
	h.Write(data)
	sum := h.Sum(nil)
	observe(SignalDigest, "digest.sum", len(data), len(sum), start, nil)
	return sum, nil
}

// DigestReader streams r through the algorithm, for file contents.
func DigestReader(algo DigestAlgo, r io.Reader) ([]byte, error) {
	start := time.Now()
	h, err := newDigest("digest.reader", algo)
	if err != nil {
		observe(SignalDigest, "digest.reader", 0, 0, start, err)
		return nil, err
	}
	n, err := io.Copy(h, r)
	if err != nil {
		err = fmt.Errorf("digest.reader: read input: %w", err)
		observe(SignalDigest, "digest.reader", int(n), 0, start, err)
		return nil, err
	}
	sum := h.Sum(nil)
	observe(SignalDigest, "digest.reader", int(n), len(sum), start, nil)
	return sum, nil
}

// FormatDigest renders sum as lowercase hex (uppercased on request) or
// standard padded Base64. uppercase is ignored for Base64.
func FormatDigest(sum []byte, format DigestFormat, uppercase bool) (string, error) {
	switch format {
	case DigestHex:
		out := hex.EncodeToString(sum)
		if uppercase {
			out = strings.ToUpper(out)
		}
		return out, nil
	case DigestBase64:
		return base64.StdEncoding.EncodeToString(sum), nil
	default:
		return "", newConversionError(ErrInvalidFormat, "digest.format", fmt.Errorf("unknown digest format %q", format))
	}
}

// HashText digests the UTF-8 bytes of text and formats the result.
func HashText(algo DigestAlgo, text string, format DigestFormat, uppercase bool) (string, error) {
	if !IsValidDigestFormat(format) {
		return "", newConversionError(ErrInvalidFormat, "digest.format", fmt.Errorf("unknown digest format %q", format))
	}
	sum, err := Digest(algo, []byte(text))
	if err != nil {
		return "", err
	}
	return FormatDigest(sum, format, uppercase)
}
