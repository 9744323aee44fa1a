package devkit

import (
	"errors"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

const upperHex = "0123456789ABCDEF"

// shouldEscape reports whether b is outside the unreserved URI component set
// A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func shouldEscape(b byte) bool {
	switch {
	case 'A' <= b && b <= 'Z', 'a' <= b && b <= 'z', '0' <= b && b <= '9':
		return false
	}
	switch b {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return false
	}
	return true
}

// EncodeURIComponent percent-encodes every UTF-8 byte of s outside the
// unreserved set, using uppercase hex digits.
func EncodeURIComponent(s string) (string, error) {
	start := time.Now()
	if !utf8.ValidString(s) {
		err := newConversionError(ErrInvalidEncoding, "url.encode", errNotUTF8)
		observe(SignalURL, "url.encode", len(s), 0, start, err)
		return "", err
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperHex[c>>4])
			b.WriteByte(upperHex[c&15])
			continue
		}
		b.WriteByte(c)
	}
	out := b.String()
	observe(SignalURL, "url.encode", len(s), len(out), start, nil)
	return out, nil
}

// DecodeURIComponent reverses %XX escapes. '+' is left untouched.
// A malformed escape or a result that is not UTF-8 is an InvalidEncoding error.
func DecodeURIComponent(s string) (string, error) {
	start := time.Now()
	out, err := url.PathUnescape(s)
	if err != nil {
		err = newConversionError(ErrInvalidEncoding, "url.decode", err)
		observe(SignalURL, "url.decode", len(s), 0, start, err)
		return "", err
	}
	if !utf8.ValidString(out) {
		err = newConversionError(ErrInvalidEncoding, "url.decode", errors.New("decoded bytes are not valid UTF-8"))
		observe(SignalURL, "url.decode", len(s), 0, start, err)
		return "", err
	}
	observe(SignalURL, "url.decode", len(s), len(out), start, nil)
	return out, nil
}
