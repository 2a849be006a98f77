// Package logger holds the process-wide structured logger used by dtskit
// internals and dtsctl.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger instance. It discards all output until Init is
// called.
var L = discard()

const (
	logPrefix     = "dtsctl-"
	logSuffix     = ".log"
	retentionDays = 30
)

// Format selects the handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Options configures the logger.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Level   slog.Level // Minimum level. The zero value is LevelInfo
	Format  Format     // text (default) or json
	Writer  io.Writer  // Destination. Default: os.Stderr
	LogDir  string     // When set, log to a dated file in this directory instead of Writer
}

// Init configures logging. Call from main before any log calls.
func Init(opts Options) error {
	if !opts.Enabled {
		L = discard()
		return nil
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if opts.LogDir != "" {
		f, err := openLogFile(opts.LogDir)
		if err != nil {
			return err
		}
		w = f
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.Level}
	switch opts.Format {
	case FormatJSON:
		L = slog.New(slog.NewJSONHandler(w, handlerOpts))
	case FormatText, "":
		L = slog.New(slog.NewTextHandler(w, handlerOpts))
	default:
		return fmt.Errorf("logger: unknown format %q", opts.Format)
	}
	return nil
}

// ParseLevel maps debug, info, warn and error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logger: unknown level %q", s)
	}
	return level, nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openLogFile(logDir string) (*os.File, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	// Best effort.
	cleanOldLogs(logDir, time.Now())

	filename := filepath.Join(logDir, logPrefix+time.Now().Format(time.DateOnly)+logSuffix)
	return os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// cleanOldLogs removes log files older than retentionDays.
func cleanOldLogs(logDir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}

		// dtsctl-2026-01-05.log
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			continue
		}

		if logDate.Before(cutoff) {
			os.Remove(filepath.Join(logDir, name))
		}
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
