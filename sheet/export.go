package sheet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/calcsheet/lang"
)

// FormatOptions control how row results are rendered.
type FormatOptions struct {
	// ShowFractions renders fractions as n/d. When false they are widened
	// to reals first.
	ShowFractions bool
}

// DefaultFormat shows exact fractions.
var DefaultFormat = FormatOptions{ShowFractions: true}

// Format renders v for display. Absent values and [lang.Error] render as
// the empty string; the row's diagnostics explain them.
func (o FormatOptions) Format(v lang.Value) string {
	switch {
	case v == nil || v.Kind() == lang.KindError:
		return ""
	case v.Kind() == lang.KindFraction && !o.ShowFractions:
		return lang.AsReal(v).String()
	default:
		return v.String()
	}
}

// RowResult is the exported state of one row.
type RowResult struct {
	ID     RowID             `json:"id"               yaml:"id"`
	Input  string            `json:"input"            yaml:"input"`
	Result string            `json:"result"           yaml:"result"`
	Kind   string            `json:"kind,omitempty"   yaml:"kind,omitempty"`
	Name   string            `json:"name,omitempty"   yaml:"name,omitempty"`
	Errors []lang.Diagnostic `json:"errors,omitempty" yaml:"errors,omitempty"`
	Index  int               `json:"index"            yaml:"index"`
}

// Snapshot returns the up-to-date state of every row in order.
func (s *Worksheet) Snapshot(opts FormatOptions) []RowResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recompute(len(s.rows) - 1)

	out := make([]RowResult, len(s.rows))

	for i, r := range s.rows {
		res := RowResult{
			ID:     r.id,
			Index:  i,
			Input:  r.input,
			Name:   r.calc.Evaluation.AssignedName,
			Errors: r.calc.Diagnostics(),
		}

		if v, ok := r.calc.Result(); ok {
			res.Result = opts.Format(v)
			res.Kind = v.Kind().String()
		}

		out[i] = res
	}

	return out
}

// WriteJSON writes the snapshot of s to w as a JSON array. An indent
// greater than zero selects indented output.
func (s *Worksheet) WriteJSON(w io.Writer, opts FormatOptions, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(s.Snapshot(opts), "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(s.Snapshot(opts))
	}

	if err != nil {
		return ErrEncode.Wrap(err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// WriteYAML writes the snapshot of s to w as a YAML sequence. An indent of
// zero selects flow style.
func (s *Worksheet) WriteYAML(
	ctx context.Context,
	w io.Writer,
	opts FormatOptions,
	indent int,
) error {
	var enc []yaml.EncodeOption
	if indent > 0 {
		enc = append(enc, yaml.Indent(indent))
	} else {
		enc = append(enc, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, s.Snapshot(opts), enc...)
	if err != nil {
		return ErrEncode.Wrap(err)
	}

	_, err = w.Write(data)

	return err
}

// WriteText writes s to w as a two-column table of inputs and results.
func (s *Worksheet) WriteText(w io.Writer, opts FormatOptions) error {
	rows := s.Snapshot(opts)

	width := 0
	for _, r := range rows {
		width = max(width, utf8.RuneCountInString(r.Input))
	}

	for _, r := range rows {
		line := fmt.Sprintf("%-*s │ %s", width, r.Input, r.Result)

		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}

	return nil
}

// WriteAST writes the expression tree of every row to w, each preceded by
// a header naming the row.
func (s *Worksheet) WriteAST(w io.Writer, indent int) error {
	for i, c := range s.Calculations() {
		if _, err := fmt.Fprintf(w, "# %d: %s\n", i, c.Input); err != nil {
			return err
		}

		if err := lang.FormatTree(w, c.Parse.Expression, indent); err != nil {
			return err
		}
	}

	return nil
}
