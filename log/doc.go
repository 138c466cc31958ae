// Package log provides a simplified leveled logging interface based on
// [log/slog].
//
// Output format, minimum level, timestamp layout, caller information and
// colorized output are chosen when a [Logger] is made, using functional
// options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("RFC3339Nano"),
//	)
//	logger.Info("loaded settings", slog.Int("count", n))
//
// A process-wide default logger backs the package-level functions. It writes
// to [os.Stderr] and is reconfigured with [Config]:
//
//	log.Config(log.WithLevel(log.LevelTrace))
//	log.Warn("unknown value type", slog.String("type", "float64"))
//
// Each level has a context-aware variant (e.g. [Logger.WarnContext]).
// The plain variants use [DefaultContextProvider].
//
// The zero [Logger] discards everything.
package log
