package sheet

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/ardnew/calcsheet/lang"
	"github.com/ardnew/calcsheet/log"
)

// Worksheet is an ordered list of rows, each holding one formula. A row is
// evaluated in the context of the rows above it: a name refers to the value
// assigned by the nearest earlier row that assigns it.
//
// Results are computed lazily. An edit marks the edited row and every row
// below it stale; reading a row recomputes the stale rows above it, top to
// bottom, before the row itself.
//
// A Worksheet is safe for concurrent use.
type Worksheet struct {
	mu    sync.Mutex
	id    uuid.UUID
	seq   uint64
	rows  []*row
	fresh int // rows[:fresh] hold current results
	opts  options
}

type row struct {
	id    RowID
	input string
	calc  lang.Calculation
}

type options struct {
	ctx     context.Context
	logger  log.Logger
	noCache bool
}

// Option configures a [Worksheet].
type Option func(*options)

// WithLogger sets the logger used for trace-level recalculation events.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithContext sets the context passed to the logger and parser.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// WithCache controls whether formulas are parsed through the shared parse
// cache of [lang.ParseString]. The cache is enabled by default.
func WithCache(enable bool) Option {
	return func(o *options) { o.noCache = !enable }
}

// New returns a worksheet holding a single empty row.
func New(opts ...Option) *Worksheet { return FromInputs(nil, opts...) }

// FromInputs returns a worksheet with one row per input, in order. With no
// inputs the worksheet holds a single empty row.
func FromInputs(inputs []string, opts ...Option) *Worksheet {
	s := &Worksheet{id: uuid.New()}

	for _, opt := range opts {
		opt(&s.opts)
	}

	if s.opts.ctx == nil {
		s.opts.ctx = log.DefaultContextProvider()
	}

	for _, input := range inputs {
		r := s.newRow()
		r.input = input
		s.rows = append(s.rows, r)
	}

	s.ensureRow()

	s.opts.logger.TraceContext(s.opts.ctx, "sheet created",
		slog.String("sheet", s.id.String()),
		slog.Int("rows", len(s.rows)))

	return s
}

// ID returns the identity shared by every row ID of s.
func (s *Worksheet) ID() uuid.UUID { return s.id }

// Len returns the number of rows, which is always at least one.
func (s *Worksheet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.rows)
}

// Row returns a handle to the row at index i.
func (s *Worksheet) Row(i int) (Row, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.rows) {
		return Row{}, false
	}

	return Row{s: s, id: s.rows[i].id}, true
}

// Rows returns handles to every row in order. The slice is a snapshot of
// the current order; the handles follow their rows through later edits.
func (s *Worksheet) Rows() []Row {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Row, len(s.rows))
	for i, r := range s.rows {
		out[i] = Row{s: s, id: r.id}
	}

	return out
}

// Inputs returns the formula of every row in order.
func (s *Worksheet) Inputs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.rows))
	for i, r := range s.rows {
		out[i] = r.input
	}

	return out
}

// IndexOf returns the current index of the row with the given ID, or -1 if
// no such row exists.
func (s *Worksheet) IndexOf(id RowID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.indexOf(id)
}

// InsertRowAt inserts an empty row at index i, shifting the row previously
// at i and all rows after it down by one. If i is at or past the end, empty
// rows are appended until index i exists.
func (s *Worksheet) InsertRowAt(i int) (Row, error) {
	if i < 0 {
		return Row{}, ErrRowIndex.With(slog.Int("index", i))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i >= len(s.rows) {
		s.grow(i)
	} else {
		s.rows = slices.Insert(s.rows, i, s.newRow())
		s.invalidate(i)
	}

	return Row{s: s, id: s.rows[i].id}, nil
}

// RemoveRowAt removes the row at index i, shifting later rows up. It reports
// false if i is out of range. Removing the last remaining row leaves a
// single empty row in its place.
func (s *Worksheet) RemoveRowAt(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.rows) {
		return false
	}

	s.rows = slices.Delete(s.rows, i, i+1)
	s.invalidate(i)
	s.ensureRow()

	return true
}

// SetInput replaces the formula of the row at index i, first appending
// empty rows if i is past the end.
func (s *Worksheet) SetInput(i int, input string) (Row, error) {
	if i < 0 {
		return Row{}, ErrRowIndex.With(slog.Int("index", i))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.grow(i)
	s.setInput(i, input)

	return Row{s: s, id: s.rows[i].id}, nil
}

// Append adds a row holding input after the last row. If the worksheet
// holds only a single empty row, that row is reused.
func (s *Worksheet) Append(input string) Row {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := len(s.rows)
	if i == 1 && s.rows[0].input == "" {
		i = 0
	}

	s.grow(i)
	s.setInput(i, input)

	return Row{s: s, id: s.rows[i].id}
}

// Calculations returns the parse and evaluation of every row in order,
// recomputing stale rows first.
func (s *Worksheet) Calculations() []lang.Calculation {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recompute(len(s.rows) - 1)

	out := make([]lang.Calculation, len(s.rows))
	for i, r := range s.rows {
		out[i] = r.calc
	}

	return out
}

// Names returns the names assigned by rows above index i, nearest first,
// without duplicates.
func (s *Worksheet) Names(i int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	i = min(i, len(s.rows))
	s.recompute(i - 1)

	var names []string

	for j := i - 1; j >= 0; j-- {
		if name := s.rows[j].calc.Evaluation.AssignedName; name != "" &&
			!slices.Contains(names, name) {
			names = append(names, name)
		}
	}

	return names
}

func (s *Worksheet) newRow() *row {
	s.seq++

	return &row{id: RowID{Sheet: s.id, Seq: s.seq}}
}

func (s *Worksheet) ensureRow() {
	if len(s.rows) == 0 {
		s.rows = append(s.rows, s.newRow())
		s.fresh = 0
	}
}

// grow appends empty rows until index i exists.
func (s *Worksheet) grow(i int) {
	for len(s.rows) <= i {
		s.rows = append(s.rows, s.newRow())
	}
}

func (s *Worksheet) setInput(i int, input string) {
	if s.rows[i].input == input {
		return
	}

	s.rows[i].input = input
	s.invalidate(i)
}

// invalidate marks rows at index i and below stale.
func (s *Worksheet) invalidate(i int) {
	if i < s.fresh {
		s.fresh = i
	}
}

func (s *Worksheet) indexOf(id RowID) int {
	return slices.IndexFunc(s.rows, func(r *row) bool { return r.id == id })
}

// recompute brings rows up to and including index i up to date.
func (s *Worksheet) recompute(i int) {
	for ; s.fresh <= i && s.fresh < len(s.rows); s.fresh++ {
		s.calculate(s.fresh)
	}
}

func (s *Worksheet) calculate(i int) {
	r := s.rows[i]

	p := lang.ParseString(s.opts.ctx, r.input,
		lang.WithLogger(s.opts.logger),
		lang.WithCache(!s.opts.noCache))

	r.calc = lang.Calculation{
		Input:      r.input,
		Parse:      p,
		Evaluation: lang.Evaluate(p.Expression, s.context(i)),
	}

	s.opts.logger.TraceContext(s.opts.ctx, "row calculated",
		slog.Int("index", i),
		slog.String("id", r.id.String()),
		slog.Int("diagnostics", len(r.calc.Parse.Errors)+len(r.calc.Evaluation.Errors)))
}

// context resolves names against the rows above index i. Those rows are
// always fresh when row i is calculated.
func (s *Worksheet) context(i int) lang.Context {
	return lang.ContextFunc(func(name string) (lang.Value, bool) {
		for j := i - 1; j >= 0; j-- {
			if v, ok := s.rows[j].calc.Lookup(name); ok {
				return v, true
			}
		}

		return nil, false
	})
}
