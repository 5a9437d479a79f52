// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Loggers are configured at creation time using functional options and are
// immutable afterward. The zero [Logger] discards everything.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("sheet loaded", slog.Int("rows", 12))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// [Logger.Wrap] derives a logger with further options applied. The
// package-level functions ([Info], [Debug], and so on) log through a default
// logger writing to standard error, reconfigured with [Config].
//
// # Levels
//
// In addition to the [slog] levels, [LevelTrace] sits below [LevelDebug] and
// is used for per-token and per-lookup diagnostics.
//
// # Output Formats
//
// [FormatText] (default) and [FormatJSON] are supported. Pretty printing,
// enabled by default, colorizes text output and indents JSON output using
// [github.com/fatih/color]; colors are disabled automatically when the
// destination is not a terminal.
//
// # Time Formatting
//
// [WithTimeLayout] accepts any named layout from the [time] package (such as
// "RFC3339" or "Kitchen") or a custom layout string. The layout "none"
// omits timestamps.
package log
