package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/ardnew/calcsheet/lang"
)

var (
	locationColor = color.New(color.Bold)
	messageColor  = color.New(color.FgRed, color.Bold)
	caretColor    = color.New(color.FgGreen, color.Bold)
)

// Check reports the diagnostics of every row of a worksheet.
type Check struct {
	Quiet bool `help:"Report nothing; only set the exit status" short:"q"`
}

// Run executes the check command. It returns [ErrDiagnostics] if any row has
// errors.
func (c *Check) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	s, err := loadSheet(ctx, nil)
	if err != nil {
		return err
	}

	var rows, count int

	w := outputFrom(ctx)

	for _, row := range s.Snapshot(formatFrom(ctx)) {
		if len(row.Errors) == 0 {
			continue
		}

		rows++
		count += len(row.Errors)

		if c.Quiet {
			continue
		}

		for _, d := range row.Errors {
			if err := writeDiagnostic(w, row.Index+1, row.Input, d); err != nil {
				return err
			}
		}
	}

	if count > 0 {
		return ErrDiagnostics.With(
			slog.Int("rows", rows),
			slog.Int("errors", count),
		)
	}

	return nil
}

// writeDiagnostic writes d as a "line:column: message" header followed by
// the row's formula and a caret line underlining the diagnostic's span.
// Spans reaching past the end of the formula are drawn just after it.
func writeDiagnostic(w io.Writer, line int, input string, d lang.Diagnostic) error {
	pos := d.Position.Clamp(utf8.RuneCountInString(input))

	_, err := fmt.Fprintf(w, "%s %s\n    %s\n    %s%s\n",
		locationColor.Sprintf("%d:%d:", line, pos.Start+1),
		messageColor.Sprint(d.Message),
		input,
		strings.Repeat(" ", pos.Start),
		caretColor.Sprint(strings.Repeat("^", max(pos.End-pos.Start+1, 1))),
	)

	return err
}
