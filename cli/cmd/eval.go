package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/calcsheet/log"
)

// Eval evaluates a worksheet and prints the result of every row.
type Eval struct {
	Rows  []string `arg:"" help:"Formulas evaluated as consecutive rows (default: read sources)" name:"row" optional:""`
	Table bool     `       help:"Print each formula alongside its result"                                              short:"t"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	s, err := loadSheet(ctx, e.Rows)
	if err != nil {
		return err
	}

	w, opts := outputFrom(ctx), formatFrom(ctx)

	if e.Table {
		return s.WriteText(w, opts)
	}

	for _, row := range s.Snapshot(opts) {
		if len(row.Errors) > 0 {
			log.WarnContext(ctx, "row has errors",
				slog.Int("row", row.Index+1),
				slog.String("input", row.Input),
				slog.Any("errors", row.Errors))
		}

		if _, err := fmt.Fprintln(w, row.Result); err != nil {
			return err
		}
	}

	return nil
}
