// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlaxSwum/focus-cli/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// FileName is the config file name under the focus config directory.
const FileName = "config.toml"

// Config is the application configuration.
type Config struct {
	Remote RemoteConfig `toml:"remote"`
	Log    LogConfig    `toml:"log"`
	Notify NotifyConfig `toml:"notify"`
}

// RemoteConfig holds the remote task store settings.
type RemoteConfig struct {
	URL    string `toml:"url"`     // Base URL of the backend
	APIKey string `toml:"api_key"` // Caller identity credential
	UserID string `toml:"user_id"` // User whose tables are synced
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
	File  string `toml:"file"`  // Log file path; empty logs to stderr
}

// NotifyConfig holds notification scheduler settings.
type NotifyConfig struct {
	LeadMinutes int `toml:"lead_minutes"` // How far ahead "upcoming" reaches
}

// Configured reports whether the remote store settings are complete.
func (c *Config) Configured() bool {
	return c.Remote.URL != "" && c.Remote.APIKey != "" && c.Remote.UserID != ""
}

// NewDefault returns the built-in defaults.
func NewDefault() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Notify: NotifyConfig{LeadMinutes: 10},
	}
}

// DefaultPath returns the standard config file location
// (~/.config/focus/config.toml, honoring XDG_CONFIG_HOME).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "focus", FileName), nil
}

// Loader loads configuration from a TOML file.
type Loader struct {
	path string
}

// NewLoader creates a Loader for the given file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load returns the configuration merged over the defaults. A missing
// file yields the defaults without error.
func (l *Loader) Load() (*Config, error) {
	cfg := NewDefault()
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", l.path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", l.path, err)
	}
	if cfg.Notify.LeadMinutes <= 0 {
		cfg.Notify.LeadMinutes = NewDefault().Notify.LeadMinutes
	}
	return cfg, nil
}

// defaultFile is the commented template written by WriteDefault.
const defaultFile = `# focus configuration

[remote]
# Base URL of the Focus backend, e.g. https://xyz.supabase.co
url = ""
# API key sent as the caller identity credential
api_key = ""
# Your user id
user_id = ""

[log]
# debug, info, warn, error
level = "info"
# Log file path; leave empty to log to stderr
file = ""

[notify]
# How many minutes ahead "focus next" looks
lead_minutes = 10
`

// WriteDefault writes the commented default config, refusing to
// overwrite an existing file.
func (l *Loader) WriteDefault() error {
	if _, err := os.Stat(l.path); err == nil {
		return fmt.Errorf("%s: %w", l.path, domain.ErrConfigExists)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("check config %s: %w", l.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(l.path, []byte(defaultFile), 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", l.path, err)
	}
	return nil
}

// Path returns the file location this loader reads.
func (l *Loader) Path() string {
	return l.path
}
