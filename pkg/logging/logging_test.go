package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{input: "debug", expected: slog.LevelDebug},
		{input: "DEBUG", expected: slog.LevelDebug},
		{input: "info", expected: slog.LevelInfo},
		{input: "warn", expected: slog.LevelWarn},
		{input: "warning", expected: slog.LevelWarn},
		{input: "Error", expected: slog.LevelError},
		{input: "  error  ", expected: slog.LevelError},
		{input: "", expected: slog.LevelInfo},
		{input: "bogus", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestNewStructuredLogger(t *testing.T) {
	logger := NewStructuredLogger("test-module", "v1.0.0", "debug")
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))

	logger = NewStructuredLogger("test-module", "v1.0.0", "error")
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelError))
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	assert.Equal(t, slog.LevelWarn, levelFromEnv())

	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, slog.LevelInfo, levelFromEnv())
}

func TestNewLogLogger(t *testing.T) {
	logger := NewLogLogger(slog.LevelInfo)
	require.NotNil(t, logger)
}
