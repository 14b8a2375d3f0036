// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for neuOS.
//
// Configuration lives in TOML, with sensible defaults, environment
// variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - $NEUOS_CONFIG (explicit path)
//   - ~/.neuos/config.toml
//   - Built-in defaults
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/neuos/neuos-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete neuOS configuration.
type Config struct {
	Version string `toml:"version"`

	Terminal TerminalConfig `toml:"terminal"`
	UI       UIConfig       `toml:"ui"`
	Audio    AudioConfig    `toml:"audio"`
	Storage  StorageConfig  `toml:"storage"`
}

// TerminalConfig tunes the command engine.
type TerminalConfig struct {
	// HistoryCapacity is the maximum number of remembered commands.
	HistoryCapacity int `toml:"history_capacity"`
	// QueueLimit caps submissions queued behind a running chain.
	QueueLimit int `toml:"queue_limit"`
	// LogCapacity is the maximum number of retained output entries.
	LogCapacity int `toml:"log_capacity"`
	// Hostname shows up in the prompt.
	Hostname string `toml:"hostname"`
}

// UIConfig contains display configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme"`
	// Particles enables the particle background effect.
	Particles bool `toml:"particles"`
	// Glass enables the glassmorphism panel effect.
	Glass bool `toml:"glass"`
	// CompactMode uses a more compact layout.
	CompactMode bool `toml:"compact_mode"`
}

// AudioConfig contains the simulated audio state defaults.
type AudioConfig struct {
	// Volume is the startup volume, 0-100.
	Volume int `toml:"volume"`
	// Muted starts the session muted.
	Muted bool `toml:"muted"`
}

// StorageConfig locates persistent state.
type StorageConfig struct {
	// StatePath is the SQLite database path (empty = ~/.neuos/state.db).
	StatePath string `toml:"state_path"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Terminal: TerminalConfig{
			HistoryCapacity: 100,
			QueueLimit:      64,
			LogCapacity:     500,
			Hostname:        "neuos",
		},

		UI: UIConfig{
			Theme:       "dark",
			Particles:   true,
			Glass:       true,
			CompactMode: false,
		},

		Audio: AudioConfig{
			Volume: 70,
			Muted:  false,
		},

		Storage: StorageConfig{
			StatePath: "",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the neuOS configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".neuos"), nil
}

// ConfigPath returns the path to the TOML config file, honoring the
// NEUOS_CONFIG override.
func ConfigPath() (string, error) {
	if p := os.Getenv("NEUOS_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ResolveStatePath returns the SQLite state database path.
func (c *Config) ResolveStatePath() (string, error) {
	if c.Storage.StatePath != "" {
		return c.Storage.StatePath, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.db"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file, falling back to
// defaults when the file is absent. Environment overrides are applied
// last, then defaults are filled and the result validated.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific file path with full
// validation. A missing file is not an error; defaults apply.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, statErr := os.Stat(path); statErr == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults fills in any missing or zero values with defaults.
func (c *Config) fillDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Terminal.HistoryCapacity == 0 {
		c.Terminal.HistoryCapacity = defaults.Terminal.HistoryCapacity
	}
	if c.Terminal.QueueLimit == 0 {
		c.Terminal.QueueLimit = defaults.Terminal.QueueLimit
	}
	if c.Terminal.LogCapacity == 0 {
		c.Terminal.LogCapacity = defaults.Terminal.LogCapacity
	}
	if c.Terminal.Hostname == "" {
		c.Terminal.Hostname = defaults.Terminal.Hostname
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - NEUOS_THEME: overrides ui.theme
//   - NEUOS_HISTORY_CAPACITY: overrides terminal.history_capacity
//   - NEUOS_QUEUE_LIMIT: overrides terminal.queue_limit
//   - NEUOS_STATE_PATH: overrides storage.state_path
//   - NEUOS_NO_EFFECTS: "1" or "true" disables particles and glass
func (c *Config) ApplyEnvOverrides() {
	if theme := os.Getenv("NEUOS_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if v := os.Getenv("NEUOS_HISTORY_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Terminal.HistoryCapacity = n
		}
	}

	if v := os.Getenv("NEUOS_QUEUE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Terminal.QueueLimit = n
		}
	}

	if p := os.Getenv("NEUOS_STATE_PATH"); p != "" {
		c.Storage.StatePath = p
	}

	if v := os.Getenv("NEUOS_NO_EFFECTS"); v != "" {
		if v == "1" || strings.EqualFold(v, "true") {
			c.UI.Particles = false
			c.UI.Glass = false
		}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for invalid values. Out-of-range
// numerics are clamped rather than rejected; only unusable values
// error out.
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case "dark", "light", "auto":
	default:
		return ValidationError{Field: "ui.theme", Message: fmt.Sprintf("unknown theme %q", c.UI.Theme)}
	}

	if c.Terminal.HistoryCapacity < 1 {
		return ValidationError{Field: "terminal.history_capacity", Message: "must be at least 1"}
	}
	if c.Terminal.QueueLimit < 1 {
		return ValidationError{Field: "terminal.queue_limit", Message: "must be at least 1"}
	}
	if c.Terminal.LogCapacity < 10 {
		return ValidationError{Field: "terminal.log_capacity", Message: "must be at least 10"}
	}
	if util.RuneLen(c.Terminal.Hostname) > 32 {
		return ValidationError{Field: "terminal.hostname", Message: "must be 32 characters or fewer"}
	}

	if c.Audio.Volume < 0 {
		c.Audio.Volume = 0
	}
	if c.Audio.Volume > 100 {
		c.Audio.Volume = 100
	}

	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file. The write is atomic
// and the file is created with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("# neuOS configuration file\n")
	buf.WriteString("# Generated by neuos - edit with care\n\n")

	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
