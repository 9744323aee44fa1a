package devkit

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Token length limits.
const (
	MinTokenLength = 1
	MaxTokenLength = 256
)

const (
	alphanumericChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	symbolChars       = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// charsets maps every token alphabet to its characters.
var charsets = map[Charset]string{
	CharsetAlphanumeric: alphanumericChars,
	CharsetHex:          "0123456789abcdef",
	CharsetNumeric:      "0123456789",
	CharsetSymbols:      alphanumericChars + symbolChars,
}

// TokenSpec describes a random token.
type TokenSpec struct {
	Length  int
	Charset Charset
}

// Generator produces tokens and UUIDs from a random source.
type Generator struct {
	rand io.Reader
}

// NewGenerator creates a generator reading from r.
// A nil reader selects crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

var defaultGenerator = NewGenerator(nil)

// GenerateToken draws a token from crypto/rand.
func GenerateToken(spec TokenSpec) (string, error) {
	return defaultGenerator.Token(spec)
}

// GenerateUUIDv4 returns a random RFC 4122 version 4 UUID.
func GenerateUUIDv4() (string, error) {
	return defaultGenerator.UUIDv4()
}

// GenerateUUIDv1Simulated returns a random UUID-shaped string with the
// version nibble forced to 1. It is NOT a conformant version 1 UUID:
// it carries no timestamp, clock sequence or node.
func GenerateUUIDv1Simulated() (string, error) {
	return defaultGenerator.UUIDv1Simulated()
}

// GenerateUUIDv1 returns a conformant time-based version 1 UUID.
func GenerateUUIDv1() (string, error) {
	start := time.Now()
	id, err := uuid.NewUUID()
	if err != nil {
		err = fmt.Errorf("token.uuid_v1: %w", err)
		observe(SignalToken, "token.uuid_v1", 0, 0, start, err)
		return "", err
	}
	out := id.String()
	observe(SignalToken, "token.uuid_v1", 0, len(out), start, nil)
	return out, nil
}

// Token draws spec.Length characters from the charset.
//
// Each character consumes one big-endian uint32 from the random source and
// picks charset[v % len(charset)]. When the charset size does not divide
// 2^32 the distribution carries a small modulo bias.
func (g *Generator) Token(spec TokenSpec) (string, error) {
	start := time.Now()
	chars, ok := charsets[spec.Charset]
	if !ok {
		err := newConversionError(ErrInvalidFormat, "token.generate", fmt.Errorf("unknown charset %q", spec.Charset))
		observe(SignalToken, "token.generate", spec.Length, 0, start, err)
		return "", err
	}
	if spec.Length < MinTokenLength || spec.Length > MaxTokenLength {
		err := newConversionError(ErrInvalidFormat, "token.generate",
			fmt.Errorf("length %d outside [%d,%d]", spec.Length, MinTokenLength, MaxTokenLength))
		observe(SignalToken, "token.generate", spec.Length, 0, start, err)
		return "", err
	}

	buf := make([]byte, 4*spec.Length)
	if _, err := io.ReadFull(g.rand, buf); err != nil {
		err = fmt.Errorf("token.generate: read random source: %w", err)
		observe(SignalToken, "token.generate", spec.Length, 0, start, err)
		return "", err
	}

	out := make([]byte, spec.Length)
	n := uint32(len(chars))
	for i := range out {
		v := binary.BigEndian.Uint32(buf[i*4:])
		out[i] = chars[v%n]
	}
	observe(SignalToken, "token.generate", spec.Length, len(out), start, nil)
	return string(out), nil
}

// UUIDv4 returns a random RFC 4122 version 4 UUID.
func (g *Generator) UUIDv4() (string, error) {
	start := time.Now()
	id, err := uuid.NewRandomFromReader(g.rand)
	if err != nil {
		err = fmt.Errorf("token.uuid_v4: %w", err)
		observe(SignalToken, "token.uuid_v4", 0, 0, start, err)
		return "", err
	}
	out := id.String()
	observe(SignalToken, "token.uuid_v4", 0, len(out), start, nil)
	return out, nil
}

// UUIDv1Simulated returns random bytes formatted as a UUID with version 1
// and the RFC 4122 variant. It is NOT a conformant version 1 UUID.
func (g *Generator) UUIDv1Simulated() (string, error) {
	start := time.Now()
	var id uuid.UUID
	if _, err := io.ReadFull(g.rand, id[:]); err != nil {
		err = fmt.Errorf("token.uuid_v1_simulated: read random source: %w", err)
		observe(SignalToken, "token.uuid_v1_simulated", 0, 0, start, err)
		return "", err
	}
	id[6] = (id[6] & 0x0f) | 0x10
	id[8] = (id[8] & 0x3f) | 0x80
	out := id.String()
	observe(SignalToken, "token.uuid_v1_simulated", 0, len(out), start, nil)
	return out, nil
}
