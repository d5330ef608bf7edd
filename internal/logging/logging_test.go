package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"verbose", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestNew_TextFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "text", "warn")

	logger.Info("hidden")
	logger.Warn("kubectl failed", Verb("logs"), ExitCode(1))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "kubectl failed")
	assert.Contains(t, out, "verb=logs")
	assert.Contains(t, out, "exit_code=1")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "json", "debug")

	logger.Debug("query", Namespace(""), Args([]string{"get", "pods"}))

	out := buf.String()
	assert.Contains(t, out, `"namespace":"*"`)
	assert.Contains(t, out, `"args":"get pods"`)
}

func TestErr(t *testing.T) {
	assert.Equal(t, "", Err(nil).Value.String())
	assert.Equal(t, "boom", Err(errors.New("boom")).Value.String())
}
