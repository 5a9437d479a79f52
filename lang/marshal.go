package lang

import (
	"encoding/json"
	"math"
)

// ToNative converts a Value to its native Go type: int64 for [Integer],
// float64 for [Real], the "n/d" string for [Fraction], and nil for [Error].
func ToNative(v Value) any {
	switch v := v.(type) {
	case Integer:
		return int64(v)
	case Real:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return v.String()
		}

		return float64(v)
	case Fraction:
		return v.String()
	default:
		return nil
	}
}

// ToMap converts an expression tree to nested maps keyed by node role.
func ToMap(e Expr) map[string]any {
	var m map[string]any

	switch e := e.(type) {
	case Literal:
		m = map[string]any{
			"literal": ToNative(e.Value),
			"kind":    e.Value.Kind().String(),
		}
	case NameReference:
		m = map[string]any{"name": e.Name}
	case Assignment:
		m = map[string]any{
			"assign": ToMap(e.Target),
			"value":  ToMap(e.Value),
		}
	case Operation:
		m = map[string]any{
			"operator": e.Operator.String(),
			"left":     ToMap(e.Left),
			"right":    ToMap(e.Right),
		}
	default:
		return nil
	}

	pos := e.Pos()
	m["position"] = map[string]any{"start": pos.Start, "end": pos.End}

	return m
}

// MarshalJSON implements json.Marshaler for ParseResult.
func (r ParseResult) MarshalJSON() ([]byte, error) {
	errs := make([]Diagnostic, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e.Diagnostic()
	}

	return json.Marshal(struct {
		Expression map[string]any `json:"expression"`
		Errors     []Diagnostic   `json:"errors,omitempty"`
	}{ToMap(r.Expression), errs})
}
