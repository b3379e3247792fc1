package logging

import (
	"context"
	"log/slog"
)

// Debug, Info and Warn drop the entry when no logger is configured, so
// stores built without a logger in tests stay quiet.

// Debug logs at debug level when a logger is configured.
func Debug(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

// Info logs an info message when a logger is configured.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs a warning when a logger is configured.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs msg with err under FieldError. A nil err is omitted.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, FieldError, err)
	}
	logger.Error(msg, args...)
}

// Enabled reports whether logger would emit at level; nil loggers emit nothing.
func Enabled(ctx context.Context, logger *slog.Logger, level slog.Level) bool {
	return logger != nil && logger.Enabled(ctx, level)
}
