package lang

import "math"

var negativeOne Value = Integer(-1)

// NewFraction returns n/d reduced to lowest terms. The sign is carried by
// the numerator, a denominator that divides n evenly yields an [Integer],
// and a zero denominator yields [Error].
func NewFraction(n, d int64) Value {
	return Fraction{Numerator: n, Denominator: d}.reduce()
}

// Apply combines a and b with the arithmetic operator op. [OpAssign] is not
// arithmetic and yields [Error].
func Apply(op Operator, a, b Value) Value {
	switch op {
	case OpAdd:
		return Add(a, b)
	case OpSubtract:
		return Sub(a, b)
	case OpMultiply:
		return Mul(a, b)
	case OpDivide:
		return Div(a, b)
	default:
		return Error
	}
}

// Add returns a + b.
func Add(a, b Value) Value {
	if isError(a) || isError(b) {
		return Error
	}

	if l, ok := a.(Integer); ok {
		if r, ok := b.(Integer); ok {
			return l + r
		}
	}

	if isReal(a) || isReal(b) {
		return real2(a, b, func(l, r float64) float64 { return l + r })
	}

	l, lok := toFraction(a)
	r, rok := toFraction(b)

	if !lok || !rok {
		return Error
	}

	return NewFraction(
		l.Numerator*r.Denominator+r.Numerator*l.Denominator,
		l.Denominator*r.Denominator,
	)
}

// Sub returns a - b, computed as a + (-1 * b).
func Sub(a, b Value) Value { return Add(a, Mul(negativeOne, b)) }

// Mul returns a * b.
func Mul(a, b Value) Value {
	if isError(a) || isError(b) {
		return Error
	}

	if l, ok := a.(Integer); ok {
		if r, ok := b.(Integer); ok {
			return l * r
		}
	}

	if isReal(a) || isReal(b) {
		return real2(a, b, func(l, r float64) float64 { return l * r })
	}

	l, lok := toFraction(a)
	r, rok := toFraction(b)

	if !lok || !rok {
		return Error
	}

	return NewFraction(
		l.Numerator*r.Numerator,
		l.Denominator*r.Denominator,
	)
}

// Div returns a / b. Division by any zero value yields [Error]; dividing
// two integers yields an exact [Fraction] or [Integer].
func Div(a, b Value) Value {
	if isError(a) || isError(b) || isZero(b) {
		return Error
	}

	if l, ok := a.(Integer); ok {
		if r, ok := b.(Integer); ok {
			return NewFraction(int64(l), int64(r))
		}
	}

	if isReal(a) || isReal(b) {
		return real2(a, b, func(l, r float64) float64 { return l / r })
	}

	l, lok := toFraction(a)
	r, rok := toFraction(b)

	if !lok || !rok {
		return Error
	}

	// a/b ÷ c/d = a/b × d/c
	return NewFraction(
		l.Numerator*r.Denominator,
		l.Denominator*r.Numerator,
	)
}

// reduce divides out the greatest common divisor of f.
func (f Fraction) reduce() Value {
	n, d := f.Numerator, f.Denominator
	if d == 0 {
		return Error
	}

	if d < 0 {
		// -MinInt64 overflows.
		if n == math.MinInt64 || d == math.MinInt64 {
			return Error
		}

		n, d = -n, -d
	}

	switch g := gcd(abs(n), d); g {
	case d:
		return Integer(n / g)
	case 1:
		return Fraction{Numerator: n, Denominator: d}
	default:
		return Fraction{Numerator: n / g, Denominator: d / g}
	}
}

// gcd is Euclid's algorithm; gcd(n, 0) = n.
func gcd(a, b int64) int64 {
	if b == 0 {
		return a
	}

	return gcd(b, a%b)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}

func isError(v Value) bool { return v == nil || v.Kind() == KindError }

func isReal(v Value) bool {
	_, ok := v.(Real)

	return ok
}

func isZero(v Value) bool {
	switch v := v.(type) {
	case Integer:
		return v == 0
	case Real:
		return v == 0
	case Fraction:
		return v.Numerator == 0
	default:
		return false
	}
}

func toReal(v Value) (Real, bool) {
	switch v := v.(type) {
	case Integer:
		return Real(v), true
	case Fraction:
		return Real(v.Float64()), true
	case Real:
		return v, true
	default:
		return 0, false
	}
}

func toFraction(v Value) (Fraction, bool) {
	switch v := v.(type) {
	case Integer:
		return Fraction{Numerator: int64(v), Denominator: 1}, true
	case Fraction:
		return v, true
	default:
		return Fraction{}, false
	}
}

// real2 widens both operands and applies fn. A NaN or infinite result is
// [Error].
func real2(a, b Value, fn func(l, r float64) float64) Value {
	l, lok := toReal(a)
	r, rok := toReal(b)

	if !lok || !rok {
		return Error
	}

	x := fn(float64(l), float64(r))
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Error
	}

	return Real(x)
}
