// Package logger_test contains tests for the logger package
package logger_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/scry-flashgen/internal/config"
	"github.com/phrazzld/scry-flashgen/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		ok       bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"Error", slog.LevelError, true},
		{"fatal", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			level, ok := logger.ParseLevel(tc.input)
			assert.Equal(t, tc.expected, level)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestNewRespectsLevel(t *testing.T) {
	buf := &logger.TestLogBuffer{}
	log := logger.New(buf, "warn")

	log.Info("hidden message")
	log.Warn("visible message", "key", "value")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "visible message", entries[0]["msg"])
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "value", entries[0]["key"])
}

func TestNewInvalidLevelWarns(t *testing.T) {
	buf := &logger.TestLogBuffer{}
	log := logger.New(buf, "verbose")

	logger.AssertLogContains(t, buf, "invalid log level configured")
	logger.AssertLogContains(t, buf, `"configured_level":"verbose"`)

	log.Debug("debug is below the info fallback")
	logger.AssertLogNotContains(t, buf, "debug is below")
}

func TestSetupSetsDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	log, err := logger.Setup(config.ServerConfig{LogLevel: "debug"})
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.Same(t, log, slog.Default())
	assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestContextLogger(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, logger.FromContext(ctx))

	fallback, _ := logger.GetTestLogger(t)
	assert.Same(t, fallback, logger.FromContextOrDefault(ctx, fallback))
	assert.Same(t, slog.Default(), logger.FromContextOrDefault(ctx, nil))

	scoped, buf := logger.GetTestLogger(t)
	ctx = logger.WithLogger(ctx, scoped.With("trace_id", "abc"))
	logger.FromContextOrDefault(ctx, fallback).Info("scoped")

	line := strings.TrimSpace(buf.String())
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "abc", entry["trace_id"])
}

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, logger.RequestIDFromContext(ctx))

	ctx = logger.WithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", logger.RequestIDFromContext(ctx))
}
