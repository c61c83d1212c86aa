package logger

import (
	"log/slog"
	"os"
	"testing"

	"catedra-calendar/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, parseLevel(tc.in), tc.in)
	}
}

func TestOutputSelection(t *testing.T) {
	// nothing configured still logs somewhere
	assert.Equal(t, os.Stdout, output(config.LogConfig{}))
	assert.Equal(t, os.Stdout, output(config.LogConfig{Console: true}))

	file := output(config.LogConfig{File: t.TempDir() + "/app.log"})
	assert.NotEqual(t, os.Stdout, file)

	both := output(config.LogConfig{Console: true, File: t.TempDir() + "/app.log"})
	assert.NotEqual(t, os.Stdout, both)
	assert.NotEqual(t, file, both)
}
