package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/matzehuels/isbnkit/internal/config"
	errs "github.com/matzehuels/isbnkit/pkg/errors"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// configureLogging applies the configured level, forced to debug by
// verbose, and tees output into a rotated file when lc.File is set.
func (c *CLI) configureLogging(lc config.LogConfig, verbose bool) error {
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "invalid log level %q", lc.Level)
	}
	if verbose {
		level = log.DebugLevel
	}
	c.SetLogLevel(level)

	if lc.File == "" {
		return nil
	}
	if err := c.Close(); err != nil {
		return err
	}
	c.logFile = &lumberjack.Logger{
		Filename:   lc.File,
		MaxSize:    lc.MaxSizeMB,
		MaxBackups: lc.MaxBackups,
	}
	c.Logger.SetOutput(io.MultiWriter(c.errOut, c.logFile))
	return nil
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
