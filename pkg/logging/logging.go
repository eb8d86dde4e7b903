// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.SetupWithLevel(os.Stderr, logging.ParseLevel(os.Getenv("LOG_LEVEL")))
//
// Levels: debug, info, warn, error (default: info)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// SetupWithLevel configures colored logging on w at the given level and
// installs it as the slog default.
func SetupWithLevel(w io.Writer, level slog.Level) *slog.Logger {
	l := New(w, level)
	slog.SetDefault(l)
	return l
}

// New builds a tint logger writing to w. Output is never colored when w is not
// stderr so captured logs stay readable.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  level == slog.LevelDebug,
		NoColor:    w != os.Stderr,
	}))
}

// ParseLevel maps debug, info, warn and error (any case) to slog levels.
// Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
