package lang

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		fn   func(a, b Value) Value
		a, b Value
		want Value
	}{
		{"int+int", Add, Integer(1), Integer(2), Integer(3)},
		{"int-int", Sub, Integer(1), Integer(2), Integer(-1)},
		{"int*int", Mul, Integer(6), Integer(7), Integer(42)},
		{"int/int whole", Div, Integer(6), Integer(2), Integer(3)},
		{"int/int fraction", Div, Integer(3), Integer(2), Fraction{3, 2}},
		{"int/int reduced", Div, Integer(4), Integer(6), Fraction{2, 3}},
		{"int/int negative divisor", Div, Integer(1), Integer(-2), Fraction{-1, 2}},
		{"int/fraction", Div, Integer(3), Fraction{5, 2}, Fraction{6, 5}},
		{"fraction-fraction", Sub, Fraction{1, 3}, Fraction{1, 2}, Fraction{-1, 6}},
		{"fraction+fraction whole", Add, Fraction{1, 2}, Fraction{1, 2}, Integer(1)},
		{"unreduced fraction+zero", Add, Fraction{10, 8}, Fraction{0, 1}, Fraction{5, 4}},
		{"fraction*int", Mul, Fraction{2, 3}, Integer(3), Integer(2)},
		{"fraction/fraction", Div, Fraction{1, 2}, Fraction{3, 4}, Fraction{2, 3}},
		{"fraction with zero denominator", Div, Fraction{1, 0}, Integer(1), Error},
		{"real*int", Mul, Real(1.5), Integer(2), Real(3)},
		{"fraction+real", Add, Fraction{1, 2}, Real(0.25), Real(0.75)},
		{"int/real", Div, Integer(1), Real(4), Real(0.25)},
		{"real overflow", Mul, Real(1e308), Real(10), Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.a, tt.b))
		})
	}
}

func TestDiv_ByZero(t *testing.T) {
	for _, lhs := range []Value{Integer(1), Fraction{1, 2}, Real(1)} {
		for _, rhs := range []Value{Integer(0), Fraction{0, 1}, Real(0)} {
			t.Run(fmt.Sprintf("%v/%v", lhs, rhs), func(t *testing.T) {
				assert.Equal(t, Error, Div(lhs, rhs))
			})
		}
	}
}

func TestApply_ErrorAbsorbs(t *testing.T) {
	values := []Value{Integer(2), Fraction{1, 2}, Real(2.5), Error}
	ops := []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide}

	for _, op := range ops {
		for _, x := range values {
			t.Run(fmt.Sprintf("%v %v", op, x), func(t *testing.T) {
				assert.Equal(t, Error, Apply(op, Error, x))
				assert.Equal(t, Error, Apply(op, x, Error))
			})
		}
	}

	assert.Equal(t, Error, Apply(OpAssign, Integer(1), Integer(2)))
	assert.Equal(t, Error, Add(nil, Integer(1)))
}

func TestNewFraction_Normalized(t *testing.T) {
	for n := int64(-12); n <= 12; n++ {
		for d := int64(-12); d <= 12; d++ {
			got := NewFraction(n, d)

			if d == 0 {
				assert.Equal(t, Error, got, "%d/%d", n, d)

				continue
			}

			switch v := got.(type) {
			case Integer:
				require.Zero(t, n%d, "%d/%d", n, d)
				assert.Equal(t, Integer(n/d), v)
			case Fraction:
				require.NotZero(t, n%d, "%d/%d", n, d)
				assert.Greater(t, v.Denominator, int64(1))
				assert.Equal(t, int64(1), gcd(abs(v.Numerator), v.Denominator))
				assert.InDelta(t, float64(n)/float64(d), v.Float64(), 1e-12)
			default:
				t.Fatalf("%d/%d: unexpected %T", n, d, got)
			}
		}
	}
}

func TestNewFraction_DenominatorOne(t *testing.T) {
	for _, k := range []int64{-7, -1, 0, 1, 7, 1 << 40} {
		assert.Equal(t, Integer(k), NewFraction(k, 1))
	}
}

func TestNewFraction_NegatedMinInt64(t *testing.T) {
	assert.Equal(t, Error, NewFraction(1, math.MinInt64))
	assert.Equal(t, Error, NewFraction(math.MinInt64, -3))
	assert.Equal(t, Error, Div(Integer(1), Integer(math.MinInt64)))

	calc := Calculate("1/m", Bindings{"m": Integer(math.MinInt64)})
	v, ok := calc.Result()
	require.True(t, ok)
	assert.Equal(t, KindError, v.Kind())
}

func TestGCD(t *testing.T) {
	assert.Equal(t, int64(5), gcd(5, 0))
	assert.Equal(t, int64(6), gcd(12, 18))
	assert.Equal(t, int64(1), gcd(7, 13))
	assert.Equal(t, int64(4), gcd(0, 4))
}

func TestAsReal(t *testing.T) {
	assert.Equal(t, Real(2), AsReal(Integer(2)))
	assert.Equal(t, Real(0.5), AsReal(Fraction{1, 2}))
	assert.Equal(t, Real(1.25), AsReal(Real(1.25)))
	assert.Equal(t, Error, AsReal(Error))
}

func TestValue_Kind(t *testing.T) {
	assert.Equal(t, "integer", Integer(1).Kind().String())
	assert.Equal(t, "fraction", Fraction{1, 2}.Kind().String())
	assert.Equal(t, "real", Real(1).Kind().String())
	assert.Equal(t, "error", Error.Kind().String())
}
