package gen

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with soagen-specific helpers so that every
// message carries the same field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable
	}))
}

// WithPackage adds a package field to the logger.
func (l *Logger) WithPackage(pkg string) *Logger {
	return &Logger{Logger: l.Logger.With("package", pkg)}
}

// WithType adds a type field to the logger.
func (l *Logger) WithType(name string) *Logger {
	return &Logger{Logger: l.Logger.With("type", name)}
}

// LogGenerated logs a record whose companion types were rendered.
func (l *Logger) LogGenerated(pkg, record string, fields int, derive Derive) {
	l.Debug("record generated",
		"package", pkg,
		"type", record,
		"fields", fields,
		"derive", derive.String(),
	)
}

// LogSkipped logs a struct that was looked at and not selected.
func (l *Logger) LogSkipped(pkg, name, reason string) {
	l.Debug("type skipped",
		"package", pkg,
		"type", name,
		"reason", reason,
	)
}

// LogWritten logs an output file.
func (l *Logger) LogWritten(path string, records int, err error) {
	if err != nil {
		l.Error("write failed",
			"file", path,
			"error", err,
		)
		return
	}
	l.Info("file written",
		"file", path,
		"records", records,
	)
}
