// Package iologger provides slog-based logging initialization and configuration.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/egytrade/tradedb/pkg/config"
)

// LogFile is the name of the log file inside the log directory.
const LogFile = "tradedb.log"

// Init sets the global slog logger and returns a function that closes
// the log file. With the "file" destination the log goes to LogFile in
// logDir, appended to previous runs when append is true.
func Init(
	logDir string,
	cfg config.LogConfig,
	append bool,
) (func() error, error) {
	noop := func() error { return nil }

	var writer io.Writer
	closer := noop

	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if append {
			flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}
		file, err := os.OpenFile(logPath, flags, 0644)
		if err != nil {
			return noop, CreateLogFileError(logPath, err)
		}
		writer = file
		closer = file.Close
	default:
		writer = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	switch cfg.Format {
	case "text", "tint":
		handler = slog.NewTextHandler(writer, opts)
	default:
		handler = slog.NewJSONHandler(writer, opts)
	}

	slog.SetDefault(slog.New(handler))
	return closer, nil
}

// parseLevel converts string level to slog.Level, unknown levels are
// treated as info.
func parseLevel(level string) slog.Level {
	var res slog.Level
	if err := res.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return res
}
