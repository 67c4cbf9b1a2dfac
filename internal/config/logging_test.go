package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want LogLevel
	}{
		{"off", LogLevelOff},
		{"none", LogLevelOff},
		{"error", LogLevelError},
		{"DEBUG", LogLevelDebug},
		{" debug ", LogLevelDebug},
		{"unknown", LogLevelError},
		{"", LogLevelError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLogLevel(tt.in), "input %q", tt.in)
	}
}

func TestLogLevelString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "off", LogLevelOff.String())
	assert.Equal(t, "error", LogLevelError.String())
	assert.Equal(t, "debug", LogLevelDebug.String())
}

func TestLoggerWritesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "ecc.log")
	logger, err := NewLogger(LogLevelDebug, path)
	require.NoError(t, err)

	logger.Debug("decoding %d symbols", 15)
	logger.Error("uncorrectable word")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path) //nolint:gosec // G304: Test path from t.TempDir()
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] decoding 15 symbols")
	assert.Contains(t, string(data), "[ERROR] uncorrectable word")
}

func TestLoggerLevelFiltering(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ecc.log")
	logger, err := NewLogger(LogLevelError, path)
	require.NoError(t, err)

	logger.Debug("should not appear")
	logger.Error("should appear")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path) //nolint:gosec // G304: Test path from t.TempDir()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "should not appear")
	assert.Contains(t, string(data), "should appear")
}

func TestLoggerOffCreatesNoFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ecc.log")
	logger, err := NewLogger(LogLevelOff, path)
	require.NoError(t, err)
	require.NoError(t, logger.Close())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestLoggerSetLevel(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ecc.log")
	logger, err := NewLogger(LogLevelError, path)
	require.NoError(t, err)
	defer func() { _ = logger.Close() }()

	assert.Equal(t, LogLevelError, logger.Level())
	logger.SetLevel(LogLevelDebug)
	assert.Equal(t, LogLevelDebug, logger.Level())
}

func TestLoggerWriter(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ecc.log")
	logger, err := NewLogger(LogLevelDebug, path)
	require.NoError(t, err)

	w := logger.Writer(LogLevelDebug)
	_, err = w.Write([]byte("piped line\n"))
	require.NoError(t, err)
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path) //nolint:gosec // G304: Test path from t.TempDir()
	require.NoError(t, err)
	assert.Contains(t, string(data), "piped line")
}

func TestNullLogger(t *testing.T) {
	t.Parallel()

	logger := NullLogger()
	logger.Debug("dropped")
	logger.Error("dropped")
	require.NoError(t, logger.Close())
	assert.Equal(t, LogLevelOff, logger.Level())
}
