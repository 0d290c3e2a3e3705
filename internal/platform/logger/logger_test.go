// Package logger_test contains tests for the logger package
package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/roman-api/internal/config"
	"github.com/phrazzld/roman-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeEntries parses newline-delimited JSON log output.
func decodeEntries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var entries []map[string]interface{}
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "log line should be JSON: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

func restoreDefault(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestSetupWithWriter_Levels(t *testing.T) {
	restoreDefault(t)

	tests := []struct {
		name        string
		level       string
		wantDebug   bool
		wantInfo    bool
		wantWarning bool
	}{
		{name: "debug", level: "debug", wantDebug: true, wantInfo: true, wantWarning: true},
		{name: "info", level: "info", wantInfo: true, wantWarning: true},
		{name: "warn upper case", level: "WARN", wantWarning: true},
		{name: "error", level: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: tt.level}, &buf)
			require.NoError(t, err)
			require.NotNil(t, l)

			l.Debug("debug message")
			l.Info("info message")
			l.Warn("warn message")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "debug message"))
			assert.Equal(t, tt.wantInfo, strings.Contains(out, "info message"))
			assert.Equal(t, tt.wantWarning, strings.Contains(out, "warn message"))
		})
	}
}

func TestSetupWithWriter_InvalidLevel(t *testing.T) {
	restoreDefault(t)
	before := slog.Default()

	var buf bytes.Buffer
	l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "verbose"}, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"verbose"`)
	assert.Nil(t, l)
	assert.Same(t, before, slog.Default(), "default logger should be left alone")
	assert.Empty(t, buf.String())
}

func TestSetupWithWriter_JSONAndDefault(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	_, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "info"}, &buf)
	require.NoError(t, err)

	// Setup installs the logger as the process default.
	slog.Info("conversion served", "direction", "a2r", "value", 1994)

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "conversion served", entries[0]["msg"])
	assert.Equal(t, "a2r", entries[0]["direction"])
	assert.Equal(t, float64(1994), entries[0]["value"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input     string
		wantLevel slog.Level
		wantOK    bool
	}{
		{input: " Debug ", wantLevel: slog.LevelDebug, wantOK: true},
		{input: "info", wantLevel: slog.LevelInfo, wantOK: true},
		{input: "WARN", wantLevel: slog.LevelWarn, wantOK: true},
		{input: "error", wantLevel: slog.LevelError, wantOK: true},
		{input: "fatal", wantLevel: slog.LevelInfo},
		{input: "", wantLevel: slog.LevelInfo},
	}

	for _, tt := range tests {
		level, ok := logger.ParseLevel(tt.input)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.input)
		assert.Equal(t, tt.wantLevel, level, "input %q", tt.input)
	}
}

func TestFromContextOrDefault(t *testing.T) {
	defaultLogger := slog.Default()
	customLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "nil_context_returns_default",
			ctx:      nil,
			expected: defaultLogger,
		},
		{
			name:     "context_without_logger_returns_default",
			ctx:      context.Background(),
			expected: defaultLogger,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      logger.WithLogger(context.Background(), customLogger),
			expected: customLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := logger.FromContextOrDefault(tt.ctx, defaultLogger)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Run("valid_logger", func(t *testing.T) {
		customLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
		ctx := logger.WithLogger(context.Background(), customLogger)

		assert.Equal(t, customLogger, logger.FromContext(ctx))
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}
