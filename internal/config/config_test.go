package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 32, cfg.Token.Length)
	assert.Equal(t, "alphanumeric", cfg.Token.Charset)
	assert.Equal(t, "sha256", cfg.Digest.Algorithm)
	assert.Equal(t, "hex", cfg.Digest.Format)
	assert.False(t, cfg.Digest.Uppercase)
	assert.Equal(t, 2*time.Second, cfg.Regex.Timeout.Duration)
	assert.Equal(t, 2, cfg.Document.Indent)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestDecode(t *testing.T) {
	cfg, err := Decode(`
[token]
length = 16
charset = "hex"

[digest]
algorithm = "sha512"
format = "base64"
uppercase = true

[regex]
timeout = "500ms"

[document]
indent = 4

[log]
level = "debug"
`)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Token.Length)
	assert.Equal(t, "hex", cfg.Token.Charset)
	assert.Equal(t, "sha512", cfg.Digest.Algorithm)
	assert.Equal(t, "base64", cfg.Digest.Format)
	assert.True(t, cfg.Digest.Uppercase)
	assert.Equal(t, 500*time.Millisecond, cfg.Regex.Timeout.Duration)
	assert.Equal(t, 4, cfg.Document.Indent)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestDecode_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Decode("[token]\nlength = 8\n")
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Token.Length)
	assert.Equal(t, "alphanumeric", cfg.Token.Charset)
	assert.Equal(t, "sha256", cfg.Digest.Algorithm)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[token\n"},
		{"length", "[token]\nlength = 300\n"},
		{"charset", "[token]\ncharset = \"emoji\"\n"},
		{"algorithm", "[digest]\nalgorithm = \"crc32\"\n"},
		{"format", "[digest]\nformat = \"binary\"\n"},
		{"timeout", "[regex]\ntimeout = \"soon\"\n"},
		{"indent", "[document]\nindent = 12\n"},
		{"level", "[log]\nlevel = \"loud\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devkit.toml")
	require.NoError(t, os.WriteFile(path, []byte("[digest]\nalgorithm = \"md5\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "md5", cfg.Digest.Algorithm)
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_MissingDefaultPath(t *testing.T) {
	t.Setenv(EnvPath, "")
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[token]\ncharset = \"numeric\"\n"), 0o600))
	t.Setenv(EnvPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "numeric", cfg.Token.Charset)
}
