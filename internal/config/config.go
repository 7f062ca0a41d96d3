package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level myclips.yaml configuration.
type Config struct {
	// Module is the module name of the scope the CLI evaluates in.
	// Defaults to MAIN.
	Module string `yaml:"module,omitempty"`

	// LogLevel is one of debug, info, warn, error. Defaults to warn.
	LogLevel string `yaml:"log_level,omitempty"`

	// Color controls colored output: auto (only on a terminal), always or never.
	Color string `yaml:"color,omitempty"`

	Builtins BuiltinsConfig `yaml:"builtins,omitempty"`
}

// BuiltinsConfig selects which system functions are bootstrapped.
type BuiltinsConfig struct {
	// Disabled lists system function names that are not registered.
	Disabled []string `yaml:"disabled,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// LoadConfig reads and parses a myclips.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses myclips.yaml content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.setDefaults()
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FindConfig searches for myclips.yaml starting from dir and walking up to
// parent directories. It returns an empty path and nil error if none is found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (c *Config) setDefaults() {
	if c.Module == "" {
		c.Module = DefaultModuleName
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.Color == "" {
		c.Color = "auto"
	}
}

func (c *Config) validate(path string) error {
	if strings.ContainsAny(c.Module, " \t\n:") {
		return fmt.Errorf("%s: module %q is not a valid module name", path, c.Module)
	}
	if c.Module == SystemModuleName {
		return fmt.Errorf("%s: module %s is reserved", path, SystemModuleName)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%s: color must be auto, always or never, got %q", path, c.Color)
	}
	for i, name := range c.Builtins.Disabled {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%s: builtins.disabled[%d]: empty function name", path, i)
		}
	}
	return nil
}

// Level converts LogLevel to a slog level.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
}
