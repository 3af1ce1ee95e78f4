package log_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colorpeek/colorpeek/internal/log"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	prev := log.GetLevel()
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(prev)
	})
	return buf
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)
	log.SetLevel(log.LevelWarn)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestMessageFormat(t *testing.T) {
	buf := capture(t)
	log.SetLevel(log.LevelDebug)

	log.Info("indexed %d files", 3)
	assert.Equal(t, "[colorpeek] indexed 3 files\n", buf.String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  log.Level
	}{
		{"debug", log.LevelDebug},
		{"info", log.LevelInfo},
		{"warn", log.LevelWarn},
		{"warning", log.LevelWarn},
		{"error", log.LevelError},
		{"ERROR", log.LevelError},
		{" debug ", log.LevelDebug},
		{"", log.LevelInfo},
		{"verbose", log.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, log.ParseLevel(tt.input), tt.input)
	}
}

func TestSetLevelRoundTrip(t *testing.T) {
	prev := log.GetLevel()
	defer log.SetLevel(prev)

	log.SetLevel(log.LevelError)
	assert.Equal(t, log.LevelError, log.GetLevel())
}
