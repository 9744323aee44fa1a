package devkit

import "testing"

func TestIsValidCaseStyle(t *testing.T) {
	tests := []struct {
		style CaseStyle
		want  bool
	}{
		{CaseCamel, true},
		{CasePascal, true},
		{CaseSnake, true},
		{CaseKebab, true},
		{CaseUpper, true},
		{CaseLower, true},
		{"title", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			if got := IsValidCaseStyle(tt.style); got != tt.want {
				t.Errorf("IsValidCaseStyle(%q) = %v, want %v", tt.style, got, tt.want)
			}
		})
	}
}

func TestIsValidEncodeType(t *testing.T) {
	tests := []struct {
		et   EncodeType
		want bool
	}{
		{EncodeBase64, true},
		{EncodeURL, true},
		{"rot13", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.et), func(t *testing.T) {
			if got := IsValidEncodeType(tt.et); got != tt.want {
				t.Errorf("IsValidEncodeType(%q) = %v, want %v", tt.et, got, tt.want)
			}
		})
	}
}

func TestIsValidDigestAlgo(t *testing.T) {
	tests := []struct {
		algo DigestAlgo
		want bool
	}{
		{DigestMD5, true},
		{DigestSHA1, true},
		{DigestSHA256, true},
		{DigestSHA384, true},
		{DigestSHA512, true},
		{DigestSHA3256, true},
		{DigestBLAKE2b256, true},
		{"crc32", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.algo), func(t *testing.T) {
			if got := IsValidDigestAlgo(tt.algo); got != tt.want {
				t.Errorf("IsValidDigestAlgo(%q) = %v, want %v", tt.algo, got, tt.want)
			}
		})
	}
}

func TestIsValidDigestFormat(t *testing.T) {
	tests := []struct {
		format DigestFormat
		want   bool
	}{
		{DigestHex, true},
		{DigestBase64, true},
		{"base32", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := IsValidDigestFormat(tt.format); got != tt.want {
				t.Errorf("IsValidDigestFormat(%q) = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestIsValidCharset(t *testing.T) {
	tests := []struct {
		cs   Charset
		want bool
	}{
		{CharsetAlphanumeric, true},
		{CharsetHex, true},
		{CharsetNumeric, true},
		{CharsetSymbols, true},
		{"emoji", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.cs), func(t *testing.T) {
			if got := IsValidCharset(tt.cs); got != tt.want {
				t.Errorf("IsValidCharset(%q) = %v, want %v", tt.cs, got, tt.want)
			}
		})
	}
}
