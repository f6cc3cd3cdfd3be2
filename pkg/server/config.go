package server

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default timeouts applied when the config leaves them unset.
const (
	DefaultDialTimeout = 5 * time.Second
	DefaultCallTimeout = 10 * time.Second
)

// Config is the top-level server configuration.
type Config struct {
	BlendyDir string `yaml:"-"` // Set by CLI, not from YAML.

	// Name and Version identify the MCP server to clients.
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	Host    HostConfig    `yaml:"host"`
	Tools   []string      `yaml:"tools"` // Empty means all tools.
	History HistoryConfig `yaml:"history"`
}

// HostConfig describes how to reach the Blender addon.
type HostConfig struct {
	// URL is the addon's WebSocket endpoint, e.g. ws://localhost:7520/mcp.
	URL string `yaml:"url"`
	// DialTimeout bounds the connection handshake as a duration string
	// (e.g. "5s").
	DialTimeout string `yaml:"dial_timeout"`
	// CallTimeout bounds each scripting call as a duration string.
	CallTimeout string `yaml:"call_timeout"`
}

// HistoryConfig controls the local creation journal.
type HistoryConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoadConfig reads a YAML file and returns a Config.
// Environment variables referenced as ${VAR} or $VAR in the YAML are expanded
// before parsing. This allows host endpoints to vary per machine (e.g. loaded
// from a .env file) rather than committed in the config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("server: load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("server: parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.Host.URL == "" {
		return fmt.Errorf("server: config: host url is required")
	}

	if !strings.HasPrefix(c.Host.URL, "ws://") && !strings.HasPrefix(c.Host.URL, "wss://") {
		return fmt.Errorf("server: config: host url %q must use ws:// or wss://", c.Host.URL)
	}

	if _, err := c.DialTimeout(); err != nil {
		return err
	}

	if _, err := c.CallTimeout(); err != nil {
		return err
	}

	return nil
}

// DialTimeout returns the configured dial timeout, or DefaultDialTimeout when
// unset.
func (c Config) DialTimeout() (time.Duration, error) {
	return parseTimeout("dial_timeout", c.Host.DialTimeout, DefaultDialTimeout)
}

// CallTimeout returns the configured per-call timeout, or DefaultCallTimeout
// when unset.
func (c Config) CallTimeout() (time.Duration, error) {
	return parseTimeout("call_timeout", c.Host.CallTimeout, DefaultCallTimeout)
}

func parseTimeout(field, value string, def time.Duration) (time.Duration, error) {
	if value == "" {
		return def, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("server: config: %s: %w", field, err)
	}

	if d <= 0 {
		return 0, fmt.Errorf("server: config: %s must be positive", field)
	}

	return d, nil
}
