package devkit

import (
	"bytes"
	"encoding/binary"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-([0-9a-f])[0-9a-f]{3}-([0-9a-f])[0-9a-f]{3}-[0-9a-f]{12}$`)

// sequenceReader yields big-endian uint32 values 0, 1, 2, ...
func sequenceReader(n int) *bytes.Reader {
	buf := make([]byte, 4*n)
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint32(buf[i*4:], uint32(i))
	}
	return bytes.NewReader(buf)
}

func TestCharsets(t *testing.T) {
	tests := []struct {
		cs   Charset
		size int
	}{
		{CharsetAlphanumeric, 62},
		{CharsetHex, 16},
		{CharsetNumeric, 10},
		{CharsetSymbols, 88},
	}

	for _, tt := range tests {
		t.Run(string(tt.cs), func(t *testing.T) {
			if got := len(charsets[tt.cs]); got != tt.size {
				t.Errorf("len(charsets[%q]) = %d, want %d", tt.cs, got, tt.size)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	for cs, chars := range charsets {
		t.Run(string(cs), func(t *testing.T) {
			got, err := GenerateToken(TokenSpec{Length: 32, Charset: cs})
			if err != nil {
				t.Fatalf("GenerateToken() error: %v", err)
			}
			if len(got) != 32 {
				t.Errorf("len = %d, want 32", len(got))
			}
			for _, r := range got {
				if !strings.ContainsRune(chars, r) {
					t.Errorf("token %q contains %q outside charset", got, r)
				}
			}
		})
	}
}

func TestGenerator_Token_Deterministic(t *testing.T) {
	g := NewGenerator(sequenceReader(12))

	got, err := g.Token(TokenSpec{Length: 12, Charset: CharsetHex})
	if err != nil {
		t.Fatalf("Token() error: %v", err)
	}
	if got != "0123456789ab" {
		t.Errorf("Token() = %q, want %q", got, "0123456789ab")
	}
}

func TestGenerator_Token_ModuloIndex(t *testing.T) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint32(buf[0:], 10)
	binary.BigEndian.PutUint32(buf[4:], 23)
	g := NewGenerator(bytes.NewReader(buf))

	got, err := g.Token(TokenSpec{Length: 2, Charset: CharsetNumeric})
	if err != nil {
		t.Fatalf("Token() error: %v", err)
	}
	if got != "03" {
		t.Errorf("Token() = %q, want %q", got, "03")
	}
}

func TestGenerateToken_InvalidSpec(t *testing.T) {
	tests := []struct {
		name string
		spec TokenSpec
	}{
		{"zero length", TokenSpec{Length: 0, Charset: CharsetHex}},
		{"negative length", TokenSpec{Length: -1, Charset: CharsetHex}},
		{"too long", TokenSpec{Length: MaxTokenLength + 1, Charset: CharsetHex}},
		{"unknown charset", TokenSpec{Length: 8, Charset: "emoji"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateToken(tt.spec)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("GenerateToken() error = %v, want ErrInvalidFormat", err)
			}
		})
	}
}

func TestGenerator_Token_ShortSource(t *testing.T) {
	g := NewGenerator(bytes.NewReader([]byte{1, 2}))
	if _, err := g.Token(TokenSpec{Length: 4, Charset: CharsetHex}); err == nil {
		t.Error("expected error from exhausted random source")
	}
}

func TestGenerateUUIDv4(t *testing.T) {
	got, err := GenerateUUIDv4()
	if err != nil {
		t.Fatalf("GenerateUUIDv4() error: %v", err)
	}
	m := uuidPattern.FindStringSubmatch(got)
	if m == nil {
		t.Fatalf("GenerateUUIDv4() = %q, not canonical", got)
	}
	if m[1] != "4" {
		t.Errorf("version nibble = %q, want 4", m[1])
	}
	if !strings.ContainsAny(m[2], "89ab") {
		t.Errorf("variant nibble = %q, want one of 89ab", m[2])
	}
}

func TestGenerator_UUIDv4_Deterministic(t *testing.T) {
	g := NewGenerator(bytes.NewReader(make([]byte, 16)))
	got, err := g.UUIDv4()
	if err != nil {
		t.Fatalf("UUIDv4() error: %v", err)
	}
	if want := "00000000-0000-4000-8000-000000000000"; got != want {
		t.Errorf("UUIDv4() = %q, want %q", got, want)
	}
}

func TestGenerateUUIDv1Simulated(t *testing.T) {
	got, err := GenerateUUIDv1Simulated()
	if err != nil {
		t.Fatalf("GenerateUUIDv1Simulated() error: %v", err)
	}
	m := uuidPattern.FindStringSubmatch(got)
	if m == nil {
		t.Fatalf("GenerateUUIDv1Simulated() = %q, not canonical", got)
	}
	if m[1] != "1" {
		t.Errorf("version nibble = %q, want 1", m[1])
	}
	if !strings.ContainsAny(m[2], "89ab") {
		t.Errorf("variant nibble = %q, want one of 89ab", m[2])
	}
}

func TestGenerator_UUIDv1Simulated_Deterministic(t *testing.T) {
	g := NewGenerator(bytes.NewReader(bytes.Repeat([]byte{0xff}, 16)))
	got, err := g.UUIDv1Simulated()
	if err != nil {
		t.Fatalf("UUIDv1Simulated() error: %v", err)
	}
	if want := "ffffffff-ffff-1fff-bfff-ffffffffffff"; got != want {
		t.Errorf("UUIDv1Simulated() = %q, want %q", got, want)
	}
}

func TestGenerateUUIDv1(t *testing.T) {
	got, err := GenerateUUIDv1()
	if err != nil {
		t.Fatalf("GenerateUUIDv1() error: %v", err)
	}
	id, err := uuid.Parse(got)
	if err != nil {
		t.Fatalf("uuid.Parse() error: %v", err)
	}
	if id.Version() != 1 {
		t.Errorf("Version() = %d, want 1", id.Version())
	}
	if id.Variant() != uuid.RFC4122 {
		t.Errorf("Variant() = %v, want RFC4122", id.Variant())
	}
}

func TestGenerateUUIDv4_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := GenerateUUIDv4()
		if err != nil {
			t.Fatalf("GenerateUUIDv4() error: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate UUID %q", id)
		}
		seen[id] = true
	}
}
