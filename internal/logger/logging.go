// Package logger configures charmbracelet/log's default logger and hands out prefixed children.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/bastiangx/wordglob/internal/utils"
	"github.com/charmbracelet/log"
)

// Setup configures the default charm logger.
// Output always goes to stderr so stdout stays free for IPC frames and CLI panels;
// a non-empty file additionally receives every line.
// debug forces DebugLevel with timestamps, otherwise level is parsed from its name.
// The returned func closes the log file, if any.
func Setup(level string, file string, debug bool) (func(), error) {
	lvl := log.WarnLevel
	if debug {
		lvl = log.DebugLevel
	} else if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return func() {}, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	var out io.Writer = os.Stderr
	closer := func() {}
	if file != "" {
		f, err := utils.OpenAppendFile(file)
		if err != nil {
			return closer, fmt.Errorf("failed to open log file: %w", err)
		}
		out = io.MultiWriter(os.Stderr, f)
		closer = func() { f.Close() }
	}

	log.SetDefault(NewWithConfig(out, "", lvl, false, debug || file != "", log.TextFormatter))
	return closer, nil
}

// New returns a child of the default logger with the given prefix.
func New(prefix string) *log.Logger {
	return log.Default().WithPrefix(prefix)
}

// NewWithConfig creates a new charm log with custom config
func NewWithConfig(w io.Writer, prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}
