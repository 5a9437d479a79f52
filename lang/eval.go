package lang

// Context resolves names to the values assigned by earlier rows.
type Context interface {
	// Lookup returns the value bound to name, or false if name is not
	// defined.
	Lookup(name string) (Value, bool)
}

// ContextFunc adapts a function to a [Context].
type ContextFunc func(name string) (Value, bool)

// Lookup implements [Context].
func (f ContextFunc) Lookup(name string) (Value, bool) { return f(name) }

// Bindings is a [Context] backed by a map.
type Bindings map[string]Value

// Lookup implements [Context].
func (b Bindings) Lookup(name string) (Value, bool) {
	v, ok := b[name]

	return v, ok
}

// Empty is a [Context] in which no name is defined.
var Empty Context = Bindings(nil)

// EvaluationResult is the outcome of evaluating an expression.
type EvaluationResult struct {
	// Value is the result, or nil if there was no expression.
	Value Value
	// AssignedName is the target of a top-level assignment, empty otherwise.
	// It is set even when the assigned value is [Error].
	AssignedName string
	// Errors are distinct and ordered by position.
	Errors []EvaluationError
}

// Evaluate interprets e against ctx. Evaluate is total: failures produce the
// [Error] value along with positioned errors. A nil e yields a zero result.
func Evaluate(e Expr, ctx Context) EvaluationResult {
	if e == nil {
		return EvaluationResult{}
	}

	if ctx == nil {
		ctx = Empty
	}

	var errs set[EvaluationError]

	v := evaluate(e, ctx, &errs)

	res := EvaluationResult{Value: v, Errors: errs.sorted()}
	if a, ok := e.(Assignment); ok {
		res.AssignedName = a.Target.Name
	}

	return res
}

func evaluate(e Expr, ctx Context, errs *set[EvaluationError]) Value {
	switch e := e.(type) {
	case Literal:
		return e.Value

	case NameReference:
		v, ok := ctx.Lookup(e.Name)

		switch {
		case !ok:
			errs.add(EvaluationError{Kind: UndefinedName, Position: e.Position})

			return Error
		case isError(v):
			errs.add(EvaluationError{Kind: NameError, Position: e.Position})

			return Error
		default:
			return v
		}

	case Assignment:
		return evaluate(e.Value, ctx, errs)

	case Operation:
		// Both operands are always evaluated so every error is collected.
		l := evaluate(e.Left, ctx, errs)
		r := evaluate(e.Right, ctx, errs)

		return Apply(e.Operator, l, r)

	default:
		return Error
	}
}

// Calculation is a formula that has been parsed and evaluated.
type Calculation struct {
	Input      string
	Parse      ParseResult
	Evaluation EvaluationResult
}

// Calculate parses input and evaluates it against ctx.
func Calculate(input string, ctx Context) Calculation {
	p := Parse(input)

	return Calculation{Input: input, Parse: p, Evaluation: Evaluate(p.Expression, ctx)}
}

// Result returns the value of the formula, or false if it did not parse.
func (c Calculation) Result() (Value, bool) {
	if c.Evaluation.Value == nil {
		return nil, false
	}

	return c.Evaluation.Value, true
}

// Diagnostics returns the parse errors followed by the evaluation errors.
func (c Calculation) Diagnostics() []Diagnostic {
	n := len(c.Parse.Errors) + len(c.Evaluation.Errors)
	if n == 0 {
		return nil
	}

	out := make([]Diagnostic, 0, n)
	for _, e := range c.Parse.Errors {
		out = append(out, e.Diagnostic())
	}

	for _, e := range c.Evaluation.Errors {
		out = append(out, e.Diagnostic())
	}

	return out
}

// Lookup resolves name against the calculation's own assignment: the value
// if the formula assigned name, false otherwise.
func (c Calculation) Lookup(name string) (Value, bool) {
	if c.Evaluation.AssignedName == "" || c.Evaluation.AssignedName != name {
		return nil, false
	}

	return c.Evaluation.Value, true
}
