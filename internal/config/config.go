// Package config loads the devkit CLI configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/zoobzio/devkit"
	"github.com/zoobzio/devkit/internal/logging"
)

// DefaultPath is read when no path is given and DEVKIT_CONFIG is unset.
const DefaultPath = "devkit.toml"

// EnvPath names the environment variable holding a config path.
const EnvPath = "DEVKIT_CONFIG"

// Config holds the complete CLI configuration.
type Config struct {
	Token    TokenConfig    `toml:"token"`
	Digest   DigestConfig   `toml:"digest"`
	Regex    RegexConfig    `toml:"regex"`
	Document DocumentConfig `toml:"document"`
	Log      LogConfig      `toml:"log"`
}

// TokenConfig holds token generator defaults.
type TokenConfig struct {
	Length  int    `toml:"length"`
	Charset string `toml:"charset"`
}

// DigestConfig holds hash command defaults.
type DigestConfig struct {
	Algorithm string `toml:"algorithm"`
	Format    string `toml:"format"`
	Uppercase bool   `toml:"uppercase"`
}

// RegexConfig holds regex evaluator settings.
type RegexConfig struct {
	Timeout Duration `toml:"timeout"`
}

// DocumentConfig holds JSON formatting defaults.
type DocumentConfig struct {
	Indent int `toml:"indent"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// Duration wraps time.Duration for TOML parsing.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the config at path. An empty path falls back to DEVKIT_CONFIG
// and then DefaultPath; a missing file at a fallback path yields defaults,
// while a missing explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvPath)
		explicit = path != ""
	}
	if path == "" {
		path = DefaultPath
	}
	path = os.ExpandEnv(path)

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return nil, fmt.Errorf("config file not found: %s", path)
			}
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Decode parses TOML text into a validated Config.
func Decode(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults sets default values for missing configuration.
func (c *Config) applyDefaults() {
	if c.Token.Length == 0 {
		c.Token.Length = 32
	}
	if c.Token.Charset == "" {
		c.Token.Charset = string(devkit.CharsetAlphanumeric)
	}
	if c.Digest.Algorithm == "" {
		c.Digest.Algorithm = string(devkit.DigestSHA256)
	}
	if c.Digest.Format == "" {
		c.Digest.Format = string(devkit.DigestHex)
	}
	if c.Regex.Timeout.Duration == 0 {
		c.Regex.Timeout.Duration = devkit.DefaultRegexTimeout
	}
	if c.Document.Indent == 0 {
		c.Document.Indent = 2
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks every value against the library's accepted ranges.
func (c *Config) Validate() error {
	if c.Token.Length < devkit.MinTokenLength || c.Token.Length > devkit.MaxTokenLength {
		return fmt.Errorf("token.length %d outside [%d,%d]", c.Token.Length, devkit.MinTokenLength, devkit.MaxTokenLength)
	}
	if !devkit.IsValidCharset(devkit.Charset(c.Token.Charset)) {
		return fmt.Errorf("token.charset %q unknown", c.Token.Charset)
	}
	if _, err := devkit.ParseDigestAlgo(c.Digest.Algorithm); err != nil {
		return fmt.Errorf("digest.algorithm: %w", err)
	}
	if !devkit.IsValidDigestFormat(devkit.DigestFormat(c.Digest.Format)) {
		return fmt.Errorf("digest.format %q unknown", c.Digest.Format)
	}
	if c.Regex.Timeout.Duration < 0 {
		return fmt.Errorf("regex.timeout %s is negative", c.Regex.Timeout.Duration)
	}
	if c.Document.Indent < 0 || c.Document.Indent > devkit.MaxIndent {
		return fmt.Errorf("document.indent %d outside [0,%d]", c.Document.Indent, devkit.MaxIndent)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
