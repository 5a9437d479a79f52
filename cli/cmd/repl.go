package cmd

import (
	"context"

	"github.com/ardnew/calcsheet/cli/cmd/repl"
	"github.com/ardnew/calcsheet/log"
	"github.com/ardnew/calcsheet/sheet"
)

// Repl starts an interactive worksheet session.
type Repl struct {
	Load bool `help:"Start from the rows of the given sources" short:"l"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	s := sheet.New(sheet.WithContext(ctx), sheet.WithLogger(log.Default()))

	if r.Load {
		s, err = loadSheet(ctx, nil)
		if err != nil {
			return err
		}
	}

	return repl.Run(ctx, s, kongVar(ctx, CacheIdentifier), log.Default(), formatFrom(ctx))
}
