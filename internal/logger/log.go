// Package logger configures the process-wide slog default: JSON lines,
// rotated on disk, tagged with the service name.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"catedra-calendar/internal/config"

	"gopkg.in/lumberjack.v2"
)

const serviceName = "catedra-calendar"

func Init(cfg config.LogConfig) {
	h := slog.NewJSONHandler(output(cfg), &slog.HandlerOptions{Level: parseLevel(cfg.Level)})
	slog.SetDefault(slog.New(h).With("service", serviceName))
	Info("logger initialized", "level", cfg.Level, "file", cfg.File)
}

// output combines console and rotated-file sinks; with neither configured it
// falls back to stdout so nothing is ever silently dropped.
func output(cfg config.LogConfig) io.Writer {
	var writers []io.Writer
	if cfg.Console {
		writers = append(writers, os.Stdout)
	}
	if cfg.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		})
	}
	switch len(writers) {
	case 0:
		return os.Stdout
	case 1:
		return writers[0]
	default:
		return io.MultiWriter(writers...)
	}
}

func Info(msg string, args ...any)  { slog.Info(msg, args...) }
func Warn(msg string, args ...any)  { slog.Warn(msg, args...) }
func Error(msg string, args ...any) { slog.Error(msg, args...) }
func Debug(msg string, args ...any) { slog.Debug(msg, args...) }

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
