package lang

import (
	"errors"
	"log/slog"
	"slices"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrReadInput = NewFault("failed to read input")
)

// Fault is an operational failure (I/O and the like) with optional
// structured logging attributes. Malformed formulas are never a Fault; they
// are reported as [ParseError] and [EvaluationError] values.
type Fault struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// NewFault creates a new Fault with a message.
func NewFault(msg string) *Fault {
	return &Fault{msg: msg}
}

// WrapFault wraps a standard error into a Fault.
func WrapFault(err error) *Fault {
	ff := &Fault{}
	if errors.As(err, &ff) {
		return ff
	}

	return &Fault{err: err}
}

// Error implements the error interface as "<msg>: <cause>", omitting
// whichever part is empty.
func (e *Fault) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Fault) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Fault) Is(target error) bool {
	t, ok := target.(*Fault)

	return ok && t.msg == e.msg && t.err == nil && len(t.attrs) == 0
}

// LogValue implements slog.LogValuer.
func (e *Fault) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Fault wrapping another error.
func (e *Fault) Wrap(err error) *Fault {
	return &Fault{msg: e.msg, err: err, attrs: e.attrs}
}

// With returns a copy of e with attrs appended.
func (e *Fault) With(attrs ...slog.Attr) *Fault {
	return &Fault{msg: e.msg, err: e.err, attrs: append(slices.Clip(e.attrs), attrs...)}
}

// ParseErrorKind classifies a [ParseError].
type ParseErrorKind int

const (
	ExpectedName       ParseErrorKind = iota // EXPECTED_NAME
	ExpectedExpression                       // EXPECTED_EXPRESSION
	ExpectedOperator                         // EXPECTED_OPERATOR
)

// Message returns the human-readable description of k.
func (k ParseErrorKind) Message() string {
	switch k {
	case ExpectedName:
		return "Expected a name"
	case ExpectedExpression:
		return "Expected expression"
	case ExpectedOperator:
		return "Expected an operator"
	default:
		return k.String()
	}
}

// EvaluationErrorKind classifies an [EvaluationError].
type EvaluationErrorKind int

const (
	UndefinedName EvaluationErrorKind = iota // UNDEFINED_NAME
	NameError                                // NAME_ERROR
)

// Message returns the human-readable description of k.
func (k EvaluationErrorKind) Message() string {
	switch k {
	case UndefinedName:
		return "Name is not defined"
	case NameError:
		return "Name evaluated to an error"
	default:
		return k.String()
	}
}

// ParseError is a syntax error located in the formula. ParseErrors are
// comparable; equal errors are duplicates.
type ParseError struct {
	Kind     ParseErrorKind
	Position Position
}

// EvaluationError is a semantic error located in the formula.
// EvaluationErrors are comparable; equal errors are duplicates.
type EvaluationError struct {
	Kind     EvaluationErrorKind
	Position Position
}

func (e ParseError) Error() string      { return e.Kind.Message() + " at " + e.Position.String() }
func (e EvaluationError) Error() string { return e.Kind.Message() + " at " + e.Position.String() }

// Diagnostic converts e for display.
func (e ParseError) Diagnostic() Diagnostic {
	return Diagnostic{Message: e.Kind.Message(), Position: e.Position}
}

// Diagnostic converts e for display.
func (e EvaluationError) Diagnostic() Diagnostic {
	return Diagnostic{Message: e.Kind.Message(), Position: e.Position}
}

// Diagnostic is a message attached to a range of a formula, suitable for
// inline highlighting.
type Diagnostic struct {
	Message  string   `json:"message"  yaml:"message"`
	Position Position `json:"position" yaml:"position"`
}

// LogValue implements slog.LogValuer.
func (d Diagnostic) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("message", d.Message),
		slog.Any("position", d.Position),
	)
}

func (d Diagnostic) String() string { return d.Message + " at " + d.Position.String() }

// set is an insertion-ordered collection of distinct errors, sorted on
// output by position then kind.
type set[E interface {
	comparable
	compare(E) int
}] struct {
	seen  map[E]struct{}
	items []E
}

func (s *set[E]) add(items ...E) {
	for _, e := range items {
		if s.seen == nil {
			s.seen = make(map[E]struct{})
		}

		if _, ok := s.seen[e]; ok {
			continue
		}

		s.seen[e] = struct{}{}
		s.items = append(s.items, e)
	}
}

// sorted returns the distinct items in order, or nil if there are none.
func (s *set[E]) sorted() []E {
	if len(s.items) == 0 {
		return nil
	}

	out := slices.Clone(s.items)
	slices.SortFunc(out, func(a, b E) int { return a.compare(b) })

	return out
}

func (e ParseError) compare(o ParseError) int {
	if c := e.Position.compare(o.Position); c != 0 {
		return c
	}

	return int(e.Kind) - int(o.Kind)
}

func (e EvaluationError) compare(o EvaluationError) int {
	if c := e.Position.compare(o.Position); c != 0 {
		return c
	}

	return int(e.Kind) - int(o.Kind)
}
