// Package logger builds charmbracelet/log loggers for the rest of the program.
// The TUI owns the terminal, so loggers normally write to a file.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a charm logger writing to w with the global level
func New(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// OpenFile opens (or creates) the log file at path in append mode and routes
// the default charm logger to it. The returned closer must be called on exit.
func OpenFile(path string, level string) (io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetLevel(lvl)
	log.SetDefault(New(f, "mentionbox"))
	return f, nil
}
