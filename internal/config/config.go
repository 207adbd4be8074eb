// Package config loads and validates the sentry-mcp configuration.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/universal-mcp/sentry/internal/common"
)

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// SentryConfig holds the remote Sentry API settings.
type SentryConfig struct {
	BaseURL        string `toml:"base_url"`
	APIKey         string `toml:"api_key"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Config holds all sentry-mcp configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	Sentry  SentryConfig         `toml:"sentry"`
	Logging common.LoggingConfig `toml:"logging"`
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "Sentry-MCP",
			Port: "4280",
		},
		Sentry: SentryConfig{
			BaseURL:        "https://sentry.io",
			TimeoutSeconds: 30,
		},
		Logging: common.LoggingConfig{
			Level:   "info",
			Outputs: []string{"console"},
		},
	}
}

// Load loads configuration with priority: defaults -> file -> env.
// A missing config file is not an error; missing credentials are caught
// later by Validate.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
			// File not found — use defaults
		} else {
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides applies SENTRY_* environment variable overrides to config.
func applyEnvOverrides(cfg *Config) {
	if key := os.Getenv("SENTRY_API_KEY"); key != "" {
		cfg.Sentry.APIKey = key
	}
	if base := os.Getenv("SENTRY_BASE_URL"); base != "" {
		cfg.Sentry.BaseURL = base
	}
	if timeout := os.Getenv("SENTRY_TIMEOUT_SECONDS"); timeout != "" {
		if t, err := strconv.Atoi(timeout); err == nil {
			cfg.Sentry.TimeoutSeconds = t
		}
	}
	if port := os.Getenv("SENTRY_MCP_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if level := os.Getenv("SENTRY_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}

// Validate checks the configuration the process cannot serve without.
// A failure here is fatal at startup: no invocations are served.
func (c *Config) Validate() error {
	if c.Sentry.APIKey == "" {
		return fmt.Errorf("missing Sentry API key: set sentry.api_key in the config file or the SENTRY_API_KEY environment variable")
	}
	u, err := url.Parse(c.Sentry.BaseURL)
	if err != nil {
		return fmt.Errorf("malformed base URL %q: %w", c.Sentry.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("malformed base URL %q: scheme must be http or https", c.Sentry.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("malformed base URL %q: missing host", c.Sentry.BaseURL)
	}
	if c.Sentry.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid timeout_seconds %d: must be positive", c.Sentry.TimeoutSeconds)
	}
	return nil
}
