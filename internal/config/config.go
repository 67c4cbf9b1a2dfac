// Package config provides configuration management for ecc.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/go-ecc/internal/fileutil"
)

// Config represents the application configuration.
type Config struct {
	Version int           `yaml:"version"`
	Home    string        `yaml:"home"`
	Code    CodeConfig    `yaml:"code"`
	Inner   InnerConfig   `yaml:"inner"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// CodeConfig defines the outer Reed-Solomon code parameters.
type CodeConfig struct {
	// FieldSize is the extension degree m of GF(2^m).
	FieldSize int `yaml:"field_size"`
	// Distance is the code's minimum distance d.
	Distance int `yaml:"distance"`
	// Modulus optionally pins the field's irreducible polynomial as a
	// bit-vector; zero lets the field pick one.
	Modulus uint32 `yaml:"modulus,omitempty"`
	// Generator optionally pins the primitive element; zero lets the
	// field probe for the smallest one.
	Generator uint32 `yaml:"generator,omitempty"`
}

// InnerConfig defines the inner BCH code used by concatenated encoding.
type InnerConfig struct {
	FieldSize int `yaml:"field_size"`
	Distance  int `yaml:"distance"`
}

// OutputConfig defines output formatting settings.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Verbose       bool   `yaml:"verbose"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads configuration from the specified file.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is from validated user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to the specified file.
func Save(cfg *Config, path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return fileutil.WriteAtomic(path, data, 0o600)
}

// Path returns the default config file path.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// GetHome returns the ecc home directory path.
func (c *Config) GetHome() string {
	return c.Home
}

// GetLoggingLevel returns the configured logging level.
func (c *Config) GetLoggingLevel() string {
	return c.Logging.Level
}

// GetLoggingFile returns the configured log file path.
func (c *Config) GetLoggingFile() string {
	return c.Logging.File
}

// GetOutputFormat returns the default output format.
func (c *Config) GetOutputFormat() string {
	return c.Output.DefaultFormat
}

// IsVerbose returns true if verbose output is enabled.
func (c *Config) IsVerbose() bool {
	return c.Output.Verbose
}

// DefaultHome returns the default ecc home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ecc"
	}
	return filepath.Join(home, ".ecc")
}
