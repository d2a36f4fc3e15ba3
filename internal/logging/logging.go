// Package logging builds the structured logger used by the command line
// tools.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a text logger writing to w at the named level. An unknown level
// falls back to INFO and is reported as a warning through the new logger.
func New(w io.Writer, level string) *slog.Logger {
	lvl, err := ParseLevel(level)

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	}))
	if err != nil {
		logger.Warn(err.Error())
	}
	return logger
}

// Open returns a logger writing to stderr and, when path is not empty, also
// appending to the file at path. The returned function closes the file.
func Open(path, level string) (*slog.Logger, func() error, error) {
	if path == "" {
		return New(os.Stderr, level), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o666)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(io.MultiWriter(os.Stderr, f), level), f.Close, nil
}

// ParseLevel converts DEBUG, INFO, WARN or ERROR to a [slog.Level].
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO", "":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q, using INFO", level)
	}
}
