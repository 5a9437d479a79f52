package log_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/calcsheet/log"
)

// plain produces deterministic output for examples.
func plain(opts ...log.Option) []log.Option {
	return append([]log.Option{log.WithTimeLayout("none"), log.WithPretty(false)}, opts...)
}

func Example_basic() {
	logger := log.Make(os.Stdout, plain()...)
	logger.Info("sheet loaded", slog.Int("rows", 3))
	// Output:
	// level=INFO msg="sheet loaded" rows=3
}

func Example_levels() {
	logger := log.Make(os.Stdout, plain(log.WithLevel(log.LevelWarn))...)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("row has errors", slog.Int("row", 2))
	// Output:
	// level=WARN msg="row has errors" row=2
}

func Example_jsonFormat() {
	logger := log.Make(os.Stdout, plain(log.WithFormat(log.FormatJSON))...)
	logger.Info("evaluated", slog.String("result", "3/4"))
	// Output:
	// {"level":"INFO","msg":"evaluated","result":"3/4"}
}

func Example_withAttributes() {
	logger := log.Make(os.Stdout, plain(log.WithLevel(log.LevelTrace))...).
		With(slog.String("sheet", "budget")).
		WithGroup("row")

	logger.Trace("recalculated", slog.Int("index", 0))
	// Output:
	// level=TRACE msg=recalculated sheet=budget row.index=0
}

func Example_withContext() {
	type requestIDKey struct{}

	ctx := context.WithValue(context.Background(), requestIDKey{}, "req-789")

	logger := log.Make(os.Stdout, plain()...)
	logger.InfoContext(ctx, "processing request with context")
	// Output:
	// level=INFO msg="processing request with context"
}
