package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), "ParseLevel(%q)", tt.input)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatJSON, slog.LevelInfo)

	logger.Info("run finished", "rows", 3)

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m), "output: %s", buf.String())
	assert.Equal(t, "run finished", m["msg"])
	assert.Equal(t, float64(3), m["rows"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatText, slog.LevelInfo)

	logger.Info("run finished", "rows", 3)

	assert.Contains(t, buf.String(), `msg="run finished"`)
	assert.Contains(t, buf.String(), "rows=3")
}

func TestNewAutoNonTerminalFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatAuto, slog.LevelInfo)

	logger.Info("hello", "key", "value")

	assert.Contains(t, buf.String(), "key=value")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatText, slog.LevelWarn)

	logger.Info("hidden")
	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
