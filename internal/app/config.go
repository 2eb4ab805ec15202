package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/shhac/postie/internal/storage"
)

// EnvPrefix is prepended to every configuration key when read from the
// environment (debug becomes POSTIE_DEBUG).
const EnvPrefix = "POSTIE"

// DefaultListenAddr is where the browser shell listens unless configured.
const DefaultListenAddr = "127.0.0.1:8787"

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and additional diagnostics
	Debug bool

	// StoragePath is the directory where saved environment URLs are stored
	// by the file store. Empty means storage.DefaultStoragePath().
	StoragePath string

	// ListenAddr is the address the browser shell binds to
	ListenAddr string

	// RequestTimeout bounds each request. Zero means no timeout.
	RequestTimeout time.Duration

	// CORSOrigins are the origins allowed to call the browser shell's API
	// from another page. Empty disables CORS.
	CORSOrigins []string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:          false,
		StoragePath:    "", // Will use DefaultStoragePath() from storage package
		ListenAddr:     DefaultListenAddr,
		RequestTimeout: 0,
	}
}

// LoadConfig reads configuration from POSTIE_* environment variables and,
// when path is non-empty, from the YAML or JSON file at path. Environment
// variables win over the file.
func LoadConfig(path string) (*Config, error) {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("storage_path", defaults.StoragePath)
	v.SetDefault("listen_addr", defaults.ListenAddr)
	v.SetDefault("request_timeout", defaults.RequestTimeout.String())
	v.SetDefault("cors_origins", "")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	timeout, err := parseTimeout(v.GetString("request_timeout"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Debug:          v.GetBool("debug"),
		StoragePath:    v.GetString("storage_path"),
		ListenAddr:     v.GetString("listen_addr"),
		RequestTimeout: timeout,
		CORSOrigins:    splitList(v.GetStringSlice("cors_origins")),
	}, nil
}

// ConfigFromEnv creates a configuration from environment variables only.
// Invalid values fall back to the defaults.
func ConfigFromEnv() *Config {
	cfg, err := LoadConfig("")
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// ResolveStoragePath returns StoragePath with a leading ~ expanded, or the
// platform default when unset.
func (c *Config) ResolveStoragePath() (string, error) {
	if c.StoragePath != "" {
		path, err := homedir.Expand(c.StoragePath)
		if err != nil {
			return "", fmt.Errorf("failed to expand storage path: %w", err)
		}
		return path, nil
	}
	path, err := storage.DefaultStoragePath()
	if err != nil {
		return "", fmt.Errorf("failed to determine storage path: %w", err)
	}
	return path, nil
}

// parseTimeout accepts a Go duration ("30s", "1m") or a bare number of
// seconds ("30", "1.5"), the unit the Preferences dialog uses.
func parseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return 0, nil
	}
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("invalid request_timeout %q: must not be negative", s)
		}
		return time.Duration(secs * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid request_timeout %q: use a duration like 30s or a number of seconds: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid request_timeout %q: must not be negative", s)
	}
	return d, nil
}

// splitList flattens comma-separated entries, as POSTIE_CORS_ORIGINS
// arrives as a single string.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
