package sheet

import (
	"log/slog"

	"github.com/ardnew/calcsheet/lang"
)

// Row is a handle to one row of a [Worksheet]. Handles identify rows by
// [RowID], so a handle keeps referring to the same row as rows are inserted
// or removed around it. Once its row is removed, accessors return zero
// values and SetInput fails with [ErrRowGone].
//
// The zero Row refers to no row.
type Row struct {
	s  *Worksheet
	id RowID
}

// ID returns the stable identity of the row.
func (r Row) ID() RowID { return r.id }

// Index returns the current position of the row, or -1 if it was removed.
func (r Row) Index() int {
	if r.s == nil {
		return -1
	}

	return r.s.IndexOf(r.id)
}

// Input returns the formula of the row.
func (r Row) Input() string {
	var input string

	r.with(func(i int) { input = r.s.rows[i].input })

	return input
}

// SetInput replaces the formula of the row.
func (r Row) SetInput(input string) error {
	ok := r.with(func(i int) { r.s.setInput(i, input) })
	if !ok {
		return ErrRowGone.With(slog.String("id", r.id.String()))
	}

	return nil
}

// Calculation returns the up-to-date parse and evaluation of the row.
func (r Row) Calculation() lang.Calculation {
	var calc lang.Calculation

	r.with(func(i int) {
		r.s.recompute(i)
		calc = r.s.rows[i].calc
	})

	return calc
}

// Parse returns the parse result of the row's formula.
func (r Row) Parse() lang.ParseResult { return r.Calculation().Parse }

// Evaluation returns the evaluation of the row's formula in the context of
// the rows above it.
func (r Row) Evaluation() lang.EvaluationResult { return r.Calculation().Evaluation }

// Result returns the value of the row, or false if the formula has no
// expression (it is empty or could not be parsed into one).
func (r Row) Result() (lang.Value, bool) { return r.Calculation().Result() }

// Errors returns the parse errors of the row followed by its evaluation
// errors, each group ordered by position.
func (r Row) Errors() []lang.Diagnostic { return r.Calculation().Diagnostics() }

// with calls fn with the row's current index while holding the worksheet
// lock. It reports false if the row no longer exists.
func (r Row) with(fn func(i int)) bool {
	if r.s == nil {
		return false
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.s.indexOf(r.id)
	if i < 0 {
		return false
	}

	fn(i)

	return true
}
