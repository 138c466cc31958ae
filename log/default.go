package log

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// DefaultContextProvider returns the context used by logging functions that
// do not take one.
var DefaultContextProvider = context.Background

var defaultLogger atomic.Pointer[Logger]

func init() {
	l := Make(os.Stderr)
	defaultLogger.Store(&l)
}

// Default returns the process-wide default logger.
func Default() Logger { return *defaultLogger.Load() }

// Config applies opts to the default logger.
func Config(opts ...Option) {
	l := Default().Wrap(opts...)
	defaultLogger.Store(&l)
}

// SetDefault replaces the default logger.
func SetDefault(l Logger) { defaultLogger.Store(&l) }

// With returns the default logger with attrs added to every record.
func With(attrs ...slog.Attr) Logger { return Default().With(attrs...) }

// skipDefault skips runtime.Callers, logAt and the package-level function.
const skipDefault = 3

// TraceContext logs msg at [LevelTrace] using the default logger.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logAt(ctx, skipDefault, LevelTrace, msg, attrs)
}

// DebugContext logs msg at [LevelDebug] using the default logger.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logAt(ctx, skipDefault, LevelDebug, msg, attrs)
}

// InfoContext logs msg at [LevelInfo] using the default logger.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logAt(ctx, skipDefault, LevelInfo, msg, attrs)
}

// WarnContext logs msg at [LevelWarn] using the default logger.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logAt(ctx, skipDefault, LevelWarn, msg, attrs)
}

// ErrorContext logs msg at [LevelError] using the default logger.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logAt(ctx, skipDefault, LevelError, msg, attrs)
}

// Trace logs msg at [LevelTrace] using the default logger.
func Trace(msg string, attrs ...slog.Attr) {
	Default().logAt(DefaultContextProvider(), skipDefault, LevelTrace, msg, attrs)
}

// Debug logs msg at [LevelDebug] using the default logger.
func Debug(msg string, attrs ...slog.Attr) {
	Default().logAt(DefaultContextProvider(), skipDefault, LevelDebug, msg, attrs)
}

// Info logs msg at [LevelInfo] using the default logger.
func Info(msg string, attrs ...slog.Attr) {
	Default().logAt(DefaultContextProvider(), skipDefault, LevelInfo, msg, attrs)
}

// Warn logs msg at [LevelWarn] using the default logger.
func Warn(msg string, attrs ...slog.Attr) {
	Default().logAt(DefaultContextProvider(), skipDefault, LevelWarn, msg, attrs)
}

// Error logs msg at [LevelError] using the default logger.
func Error(msg string, attrs ...slog.Attr) {
	Default().logAt(DefaultContextProvider(), skipDefault, LevelError, msg, attrs)
}
