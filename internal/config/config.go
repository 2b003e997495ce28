// Package config holds the tool's YAML configuration: which editor
// binary to drive, default operation parameters, and logging level.
// Values resolve in order: built-in defaults, config file, environment
// variables, command-line flags (applied by the cmd layer).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all pathops configuration.
type Config struct {
	// Editor configures the external vector editor.
	Editor EditorConfig `yaml:"editor"`

	// Defaults configures per-run operation defaults.
	Defaults DefaultsConfig `yaml:"defaults"`

	// Logging configures log output.
	Logging LoggingConfig `yaml:"logging"`
}

// EditorConfig configures the external editor invocation.
type EditorConfig struct {
	// Binary is the editor executable, looked up on PATH when not
	// absolute.
	Binary string `yaml:"binary"`

	// Timeout bounds a single editor invocation ("0" disables).
	// Large batches replay hundreds of verbs, so the default is off.
	Timeout string `yaml:"timeout"`
}

// DefaultsConfig configures operation defaults used when flags are
// not given.
type DefaultsConfig struct {
	Operation string `yaml:"operation"`
	MaxCount  int    `yaml:"max_count"`
	Recursive bool   `yaml:"recursive"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Editor: EditorConfig{
			Binary:  "inkscape",
			Timeout: "0",
		},
		Defaults: DefaultsConfig{
			Operation: "difference",
			MaxCount:  500,
			Recursive: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields
// the defaults; environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, cfg.Validate()
}

// applyEnvOverrides applies PATHOPS_* environment variables on top of
// the loaded values.
func (c *Config) applyEnvOverrides() {
	if bin := os.Getenv("PATHOPS_INKSCAPE"); bin != "" {
		c.Editor.Binary = bin
	}
	if op := os.Getenv("PATHOPS_OP"); op != "" {
		c.Defaults.Operation = op
	}
	if count := os.Getenv("PATHOPS_MAX_COUNT"); count != "" {
		if n, err := strconv.Atoi(count); err == nil {
			c.Defaults.MaxCount = n
		}
	}
	if timeout := os.Getenv("PATHOPS_TIMEOUT"); timeout != "" {
		c.Editor.Timeout = timeout
	}
}

// Validate checks the configuration for values no run could use.
func (c *Config) Validate() error {
	if c.Defaults.MaxCount < 1 {
		return fmt.Errorf("defaults.max_count must be positive, got %d", c.Defaults.MaxCount)
	}
	if c.Editor.Binary == "" {
		return fmt.Errorf("editor.binary must not be empty")
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}
	return nil
}

// Timeout parses the editor timeout. Zero means no limit.
func (c *Config) Timeout() (time.Duration, error) {
	if c.Editor.Timeout == "" || c.Editor.Timeout == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Editor.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid editor.timeout %q: %w", c.Editor.Timeout, err)
	}
	return d, nil
}

// Save writes the configuration to a YAML file, creating the parent
// directory when needed.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
