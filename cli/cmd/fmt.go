package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/calcsheet/sheet"
)

// Fmt writes a worksheet and its results in the chosen format.
type Fmt struct {
	Text Text `cmd:"" default:"withargs" help:"Format as an aligned table of formulas and results (default)."`
	JSON JSON `cmd:""                    help:"Format as JSON."`
	YAML YAML `cmd:""                    help:"Format as YAML."`
	AST  AST  `cmd:""                    help:"Format as abstract syntax trees."`
}

// Text formats a worksheet as a two-column table.
type Text struct{}

// Run executes the text command.
func (*Text) Run(ctx context.Context) error {
	return writeSheet(ctx, "text", func(s *sheet.Worksheet) error {
		return s.WriteText(outputFrom(ctx), formatFrom(ctx))
	})
}

// JSON formats a worksheet as a JSON array of rows.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output (0 for compact)" short:"i"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) error {
	return writeSheet(ctx, "json", func(s *sheet.Worksheet) error {
		return s.WriteJSON(outputFrom(ctx), formatFrom(ctx), j.Indent)
	})
}

// YAML formats a worksheet as a YAML sequence of rows.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output (0 for flow style)" short:"i"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) error {
	return writeSheet(ctx, "yaml", func(s *sheet.Worksheet) error {
		return s.WriteYAML(ctx, outputFrom(ctx), formatFrom(ctx), y.Indent)
	})
}

// AST formats the expression tree of every row.
type AST struct {
	Indent int `default:"2" help:"Indent width for nested nodes" short:"i"`
}

// Run executes the ast command.
func (a *AST) Run(ctx context.Context) error {
	return writeSheet(ctx, "ast", func(s *sheet.Worksheet) error {
		return s.WriteAST(outputFrom(ctx), a.Indent)
	})
}

func writeSheet(
	ctx context.Context,
	format string,
	write func(*sheet.Worksheet) error,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	s, err := loadSheet(ctx, nil)
	if err != nil {
		return err
	}

	if err := write(s); err != nil {
		return ErrEncode.
			With(slog.String("format", format)).
			Wrap(err)
	}

	return nil
}
