package lang

import (
	"cmp"
	"log/slog"
	"math"
	"strconv"
)

// Unbounded is the End of a [Position] that extends past the end of input.
const Unbounded = math.MaxInt

// Position is an inclusive range of character (rune) indices in a formula.
type Position struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end"   yaml:"end"`
}

// At returns the single-character Position at index i.
func At(i int) Position { return Position{Start: i, End: i} }

// Span returns the Position covering start through end inclusive.
func Span(start, end int) Position { return Position{Start: start, End: end} }

// Union returns the smallest Position covering both p and q.
func (p Position) Union(q Position) Position {
	return Position{Start: min(p.Start, q.Start), End: max(p.End, q.End)}
}

// Contains reports whether index i lies within p.
func (p Position) Contains(i int) bool { return p.Start <= i && i <= p.End }

// Clamp limits p to a formula of n runes. An unbounded or past-the-end range
// is clamped to the single column just after the last rune.
func (p Position) Clamp(n int) Position {
	if p.Start > n {
		p.Start = n
	}

	if p.End >= n {
		p.End = max(p.Start, n)
	}

	return p
}

func (p Position) String() string {
	if p.End == Unbounded {
		return strconv.Itoa(p.Start) + "..∞"
	}

	return strconv.Itoa(p.Start) + ".." + strconv.Itoa(p.End)
}

// LogValue implements slog.LogValuer.
func (p Position) LogValue() slog.Value {
	return slog.GroupValue(slog.Int("start", p.Start), slog.Int("end", p.End))
}

// compare orders positions by Start, then End.
func (p Position) compare(q Position) int {
	return cmp.Or(cmp.Compare(p.Start, q.Start), cmp.Compare(p.End, q.End))
}
