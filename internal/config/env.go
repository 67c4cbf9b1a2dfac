package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvHome         = "ECC_HOME"
	EnvFieldSize    = "ECC_FIELD_SIZE"
	EnvDistance     = "ECC_DISTANCE"
	EnvOutputFormat = "ECC_OUTPUT_FORMAT"
	EnvVerbose      = "ECC_VERBOSE"
	EnvLogLevel     = "ECC_LOG_LEVEL"
)

// ApplyEnvironment applies environment variable overrides to the configuration.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = v
	}

	if v := os.Getenv(EnvFieldSize); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m > 0 {
			cfg.Code.FieldSize = m
		}
	}

	if v := os.Getenv(EnvDistance); v != "" {
		if d, err := strconv.Atoi(v); err == nil && d > 0 {
			cfg.Code.Distance = d
		}
	}

	if v := os.Getenv(EnvOutputFormat); v != "" {
		cfg.Output.DefaultFormat = strings.ToLower(v)
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		cfg.Output.Verbose = parseBool(v)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
}

// parseBool parses a boolean string value.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "1" || s == "true" || s == "yes" || s == "on" {
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}
