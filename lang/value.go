package lang

//go:generate go tool stringer --linecomment --type Kind,Operator,ParseErrorKind,EvaluationErrorKind --output value_string.go

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Kind identifies the variant of a [Value].
type Kind int

const (
	KindInteger  Kind = iota // integer
	KindFraction             // fraction
	KindReal                 // real
	KindError                // error
)

// ErrorText is the rendering of the [Error] value.
const ErrorText = "!ERROR!"

// Value is a number produced by a formula.
//
// The set of implementations is closed: [Integer], [Fraction], [Real], and
// the absorbing [Error] value. Every Value implements [fmt.Formatter] and
// honors width, precision, and the '-', '+', ' ', '0' flags.
type Value interface {
	fmt.Formatter
	fmt.Stringer

	Kind() Kind

	value()
}

// Integer is a signed 64-bit integer value.
type Integer int64

// Fraction is an exact rational value. Fractions produced by this package
// are fully reduced, have a positive denominator, and never have a
// denominator of 1; construct them with [NewFraction].
type Fraction struct {
	Numerator   int64 `json:"numerator"   yaml:"numerator"`
	Denominator int64 `json:"denominator" yaml:"denominator"`
}

// Real is a floating-point value.
type Real float64

type errorValue struct{}

// Error is the value of an invalid computation. Any arithmetic involving
// Error yields Error.
var Error Value = errorValue{}

func (Integer) Kind() Kind    { return KindInteger }
func (Fraction) Kind() Kind   { return KindFraction }
func (Real) Kind() Kind       { return KindReal }
func (errorValue) Kind() Kind { return KindError }

func (Integer) value()    {}
func (Fraction) value()   {}
func (Real) value()       {}
func (errorValue) value() {}

func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }

func (f Fraction) String() string {
	return strconv.FormatInt(f.Numerator, 10) + "/" +
		strconv.FormatInt(f.Denominator, 10)
}

// String returns the shortest fixed-point decimal that reads back as r.
// Integral reals keep a trailing ".0" to stay distinguishable from
// [Integer].
func (r Real) String() string {
	f := float64(r)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := decimal.NewFromFloat(f).String()
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}

func (errorValue) String() string { return ErrorText }

// Format implements fmt.Formatter. The verbs v, s, and d print the decimal
// integer; floating-point verbs print the integer widened to a float.
func (i Integer) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprintf(f, fmt.FormatString(f, 'd'), int64(i))
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(f, fmt.FormatString(f, verb), float64(i))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), int64(i))
	}
}

// Format implements fmt.Formatter. The verbs v, s, and d apply the same
// integer conversion to both components of "numerator/denominator";
// floating-point verbs print the quotient.
func (f Fraction) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's', 'd':
		spec := fmt.FormatString(s, 'd')
		fmt.Fprintf(s, spec+"/"+spec, f.Numerator, f.Denominator)
	default:
		fmt.Fprintf(s, fmt.FormatString(s, verb), f.Float64())
	}
}

// Format implements fmt.Formatter. The verbs v and s print fixed-point
// notation, rounded to the precision if one is given; other verbs follow
// float64 formatting.
func (r Real) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		s := r.String()
		if prec, ok := f.Precision(); ok && !math.IsNaN(float64(r)) &&
			!math.IsInf(float64(r), 0) {
			s = decimal.NewFromFloat(float64(r)).StringFixed(int32(prec))
		}

		pad(f, sign(f, s))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), float64(r))
	}
}

// Format implements fmt.Formatter. Error always prints [ErrorText].
func (errorValue) Format(f fmt.State, _ rune) { _, _ = io.WriteString(f, ErrorText) }

// Float64 returns the quotient of f as a float64.
func (f Fraction) Float64() float64 {
	return float64(f.Numerator) / float64(f.Denominator)
}

// Format renders v with a printf-style specification built from flags (any
// of "-+ 0#"), width, and precision. Width and precision are ignored when
// negative.
func Format(v Value, flags string, width, precision int) string {
	var spec strings.Builder

	spec.WriteByte('%')
	spec.WriteString(flags)

	if width >= 0 {
		spec.WriteString(strconv.Itoa(width))
	}

	if precision >= 0 {
		spec.WriteByte('.')
		spec.WriteString(strconv.Itoa(precision))
	}

	spec.WriteByte('v')

	return fmt.Sprintf(spec.String(), v)
}

// AsReal widens Integer and Fraction values to Real. Real and Error are
// returned unchanged.
func AsReal(v Value) Value {
	if r, ok := toReal(v); ok {
		return r
	}

	return v
}

func sign(f fmt.State, s string) string {
	if strings.HasPrefix(s, "-") {
		return s
	}

	switch {
	case f.Flag('+'):
		return "+" + s
	case f.Flag(' '):
		return " " + s
	default:
		return s
	}
}

func pad(f fmt.State, s string) {
	width, ok := f.Width()
	if n := utf8.RuneCountInString(s); ok && n < width {
		switch fill := strings.Repeat(" ", width-n); {
		case f.Flag('-'):
			s += fill
		case f.Flag('0'):
			s = zeroPad(s, width-n)
		default:
			s = fill + s
		}
	}

	_, _ = io.WriteString(f, s)
}

func zeroPad(s string, n int) string {
	digits := strings.TrimLeft(s, "+- ")

	return s[:len(s)-len(digits)] + strings.Repeat("0", n) + digits
}
