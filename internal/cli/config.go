package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/go-ecc/internal/config"
	"github.com/mrz1836/go-ecc/internal/output"
	eccerr "github.com/mrz1836/go-ecc/pkg/errors"
)

// configCmd is the parent command for configuration operations.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and modify ecc configuration settings.`,
}

// configInitCmd initializes the configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long: `Create a default configuration file at ~/.ecc/config.yaml.

If a configuration file already exists, this command will not overwrite it
unless --force is specified.

Example:
  ecc config init
  ecc config init --force`,
	RunE: runConfigInit,
}

// configShowCmd shows the current configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display the current configuration settings.

Example:
  ecc config show
  ecc config show -o json`,
	RunE: runConfigShow,
}

// configGetCmd gets a specific configuration value.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Get a configuration value",
	Long: `Get a specific configuration value by its path.

The path uses dot notation to navigate the configuration tree.

Examples:
  ecc config get code.field_size
  ecc config get output.default_format
  ecc config get logging.level`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configSetCmd sets a configuration value.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configSetCmd = &cobra.Command{
	Use:   "set <path> <value>",
	Short: "Set a configuration value",
	Long: `Set a specific configuration value by its path.

The path uses dot notation to navigate the configuration tree.
The configuration file will be updated immediately.

Examples:
  ecc config set code.field_size 8
  ecc config set code.distance 33
  ecc config set logging.level debug`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var configForce bool

// configKeys lists every settable path, for suggestions on unknown keys.
//
//nolint:gochecknoglobals // Static key list shared by get/set
var configKeys = []string{
	"home",
	"code.field_size",
	"code.distance",
	"code.modulus",
	"code.generator",
	"inner.field_size",
	"inner.distance",
	"output.default_format",
	"output.verbose",
	"logging.level",
	"logging.file",
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite existing configuration")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	configPath := config.Path(cfg.Home)

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil && !configForce {
		return eccerr.WithSuggestion(
			eccerr.ErrGeneral,
			fmt.Sprintf("configuration already exists at %s. Use --force to overwrite.", configPath),
		)
	}

	// Ensure directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Create default config
	defaultCfg := config.Defaults()
	defaultCfg.Home = cfg.Home

	// Write config file
	if err := config.Save(defaultCfg, configPath); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	output.Successf("Configuration initialized at %s", configPath)
	w := cmd.OutOrStdout()
	outln(w)
	outln(w, "Edit this file to configure:")
	outln(w, "  - code.field_size: Extension degree m of GF(2^m)")
	outln(w, "  - code.distance: Minimum distance of the Reed-Solomon code")
	outln(w, "  - inner.*: Inner BCH code for concatenated encoding")
	outln(w, "  - output.default_format: Output format (text/json)")
	outln(w, "  - logging.level: Log level (off/error/debug)")

	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	if formatter.Format() == output.FormatJSON {
		return displayConfigJSON(w, cfg)
	}
	return displayConfigText(w, cfg)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	path := args[0]

	value, err := getConfigValue(cfg, path)
	if err != nil {
		return unknownKeyError(path)
	}

	w := cmd.OutOrStdout()
	outln(w, value)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	path := args[0]
	value := args[1]

	// Validate the path exists
	if _, err := getConfigValue(cfg, path); err != nil {
		return unknownKeyError(path)
	}

	// Load current config from file
	configPath := config.Path(cfg.Home)
	currentCfg, err := config.Load(configPath)
	if err != nil {
		// If file doesn't exist, start with defaults
		currentCfg = config.Defaults()
	}

	// Update the value
	if err := setConfigValue(currentCfg, path, value); err != nil {
		return err
	}

	// Save updated config
	if err := config.Save(currentCfg, configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	w := cmd.OutOrStdout()
	out(w, "Set %s = %s\n", path, value)

	return nil
}

// unknownKeyError builds an unknown-key error with a closest-match
// suggestion.
func unknownKeyError(path string) error {
	return eccerr.WithSuggestion(
		eccerr.WithDetails(eccerr.ErrUnknownConfigKey, map[string]string{"key": path}),
		fmt.Sprintf("did you mean '%s'?", closest(path, configKeys)),
	)
}

// getConfigValue retrieves a value from the config using dot notation.
func getConfigValue(c *config.Config, path string) (string, error) {
	switch path {
	case "home":
		return c.Home, nil
	case "code.field_size":
		return strconv.Itoa(c.Code.FieldSize), nil
	case "code.distance":
		return strconv.Itoa(c.Code.Distance), nil
	case "code.modulus":
		return strconv.FormatUint(uint64(c.Code.Modulus), 10), nil
	case "code.generator":
		return strconv.FormatUint(uint64(c.Code.Generator), 10), nil
	case "inner.field_size":
		return strconv.Itoa(c.Inner.FieldSize), nil
	case "inner.distance":
		return strconv.Itoa(c.Inner.Distance), nil
	case "output.default_format":
		return c.Output.DefaultFormat, nil
	case "output.verbose":
		return strconv.FormatBool(c.Output.Verbose), nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.file":
		return c.Logging.File, nil
	default:
		return "", eccerr.WithDetails(
			eccerr.ErrUnknownConfigKey,
			map[string]string{"key": path},
		)
	}
}

// setConfigValue sets a value in the config using dot notation.
func setConfigValue(c *config.Config, path, value string) error {
	switch path {
	case "home":
		c.Home = value
		return nil
	case "code.field_size":
		return setIntValue(&c.Code.FieldSize, path, value)
	case "code.distance":
		return setIntValue(&c.Code.Distance, path, value)
	case "code.modulus":
		return setUint32Value(&c.Code.Modulus, path, value)
	case "code.generator":
		return setUint32Value(&c.Code.Generator, path, value)
	case "inner.field_size":
		return setIntValue(&c.Inner.FieldSize, path, value)
	case "inner.distance":
		return setIntValue(&c.Inner.Distance, path, value)
	case "output.default_format":
		if value != "text" && value != "json" && value != "auto" {
			return eccerr.WithDetails(
				eccerr.ErrInvalidFormat,
				map[string]string{"value": value, "valid": "text, json, or auto"},
			)
		}
		c.Output.DefaultFormat = value
		return nil
	case "output.verbose":
		c.Output.Verbose = value == "true"
		return nil
	case "logging.level":
		switch value {
		case "off", "error", "debug":
			c.Logging.Level = value
			return nil
		}
		return eccerr.WithDetails(
			eccerr.ErrInvalidFormat,
			map[string]string{"value": value, "valid": "off, error, or debug"},
		)
	case "logging.file":
		c.Logging.File = value
		return nil
	default:
		return eccerr.WithDetails(
			eccerr.ErrUnknownConfigKey,
			map[string]string{"key": path},
		)
	}
}

// setIntValue parses and stores a positive integer config value.
func setIntValue(dst *int, path, value string) error {
	v, err := strconv.Atoi(value)
	if err != nil || v < 0 {
		return eccerr.WithDetails(
			eccerr.ErrInvalidFormat,
			map[string]string{"key": path, "value": value, "valid": "non-negative integer"},
		)
	}
	*dst = v
	return nil
}

// setUint32Value parses and stores an unsigned config value, accepting
// decimal or 0x-prefixed hex.
func setUint32Value(dst *uint32, path, value string) error {
	v, err := strconv.ParseUint(value, 0, 32)
	if err != nil {
		return eccerr.WithDetails(
			eccerr.ErrInvalidFormat,
			map[string]string{"key": path, "value": value, "valid": "non-negative integer"},
		)
	}
	*dst = uint32(v)
	return nil
}

// displayConfigText shows the config in text format.
func displayConfigText(w io.Writer, c *config.Config) error {
	outln(w, "Configuration:")
	outln(w)
	out(w, "  Home: %s\n", c.Home)
	outln(w)
	outln(w, "  Code:")
	out(w, "    field_size: %d\n", c.Code.FieldSize)
	out(w, "    distance: %d\n", c.Code.Distance)
	if c.Code.Modulus != 0 {
		out(w, "    modulus: %#x\n", c.Code.Modulus)
	}
	if c.Code.Generator != 0 {
		out(w, "    generator: %d\n", c.Code.Generator)
	}
	outln(w)
	outln(w, "  Inner:")
	out(w, "    field_size: %d\n", c.Inner.FieldSize)
	out(w, "    distance: %d\n", c.Inner.Distance)
	outln(w)
	outln(w, "  Output:")
	out(w, "    default_format: %s\n", c.Output.DefaultFormat)
	out(w, "    verbose: %t\n", c.Output.Verbose)
	outln(w)
	outln(w, "  Logging:")
	out(w, "    level: %s\n", c.Logging.Level)
	out(w, "    file: %s\n", c.Logging.File)

	return nil
}

// displayConfigJSON shows the config in JSON format.
func displayConfigJSON(w io.Writer, c *config.Config) error {
	type configJSON struct {
		Version int    `json:"version"`
		Home    string `json:"home"`
		Code    struct {
			FieldSize int    `json:"field_size"`
			Distance  int    `json:"distance"`
			Modulus   uint32 `json:"modulus,omitempty"`
			Generator uint32 `json:"generator,omitempty"`
		} `json:"code"`
		Inner struct {
			FieldSize int `json:"field_size"`
			Distance  int `json:"distance"`
		} `json:"inner"`
		Output struct {
			DefaultFormat string `json:"default_format"`
			Verbose       bool   `json:"verbose"`
		} `json:"output"`
		Logging struct {
			Level string `json:"level"`
			File  string `json:"file"`
		} `json:"logging"`
	}

	outCfg := configJSON{
		Version: c.Version,
		Home:    c.Home,
	}
	outCfg.Code.FieldSize = c.Code.FieldSize
	outCfg.Code.Distance = c.Code.Distance
	outCfg.Code.Modulus = c.Code.Modulus
	outCfg.Code.Generator = c.Code.Generator
	outCfg.Inner.FieldSize = c.Inner.FieldSize
	outCfg.Inner.Distance = c.Inner.Distance
	outCfg.Output.DefaultFormat = c.Output.DefaultFormat
	outCfg.Output.Verbose = c.Output.Verbose
	outCfg.Logging.Level = c.Logging.Level
	outCfg.Logging.File = c.Logging.File

	return writeJSON(w, outCfg)
}
