package lang

// ParseResult is the outcome of parsing a formula.
//
// Expression is nil whenever the formula does not reduce to exactly one
// expression, regardless of how many Errors were found. Errors are
// distinct and ordered by position.
type ParseResult struct {
	Expression Expr
	Errors     []ParseError
}

// OK reports whether the formula parsed to an expression without errors.
func (r ParseResult) OK() bool { return r.Expression != nil && len(r.Errors) == 0 }

// Parse tokenizes and parses a formula. Parse is total: malformed input
// yields errors and, where possible, a partial expression.
func Parse(input string) ParseResult {
	return ParseTokens(Tokenize(input))
}

// ParseTokens parses a token sequence with operator precedence.
//
// All operators are left-associative. Assignment has the lowest precedence
// and its left operand must be a name.
func ParseTokens(tokens []Token) ParseResult {
	var p parser

	for _, tok := range tokens {
		switch t := tok.(type) {
		case NameToken:
			p.push(item{expr: NameReference{Name: t.Name, Position: t.Position}})
		case LiteralToken:
			p.push(item{expr: Literal{Value: t.Value, Position: t.Position}})
		case OperatorToken:
			p.operator(t)
		}
	}

	p.reduce(LowestPrecedence)
	p.cleanup()

	var root Expr
	if len(p.stack) == 1 {
		root = p.stack[0].expr
	}

	return ParseResult{Expression: root, Errors: p.errs.sorted()}
}

// item is an element of the parser's lookbehind stack: an expression, or an
// operator token when expr is nil. Operators pushed in error positions act
// as placeholders so later checks still see something there.
type item struct {
	expr Expr
	op   OperatorToken
}

func (it item) isExpr() bool { return it.expr != nil }

func (it item) isAssign() bool { return it.expr == nil && it.op.Operator == OpAssign }

func (it item) pos() Position {
	if it.expr != nil {
		return it.expr.Pos()
	}

	return it.op.Position
}

type parser struct {
	stack []item
	errs  set[ParseError]
}

func (p *parser) push(it item) { p.stack = append(p.stack, it) }

func (p *parser) pop() (item, bool) {
	if len(p.stack) == 0 {
		return item{}, false
	}

	it := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]

	return it, true
}

func (p *parser) fail(kind ParseErrorKind, pos Position) {
	p.errs.add(ParseError{Kind: kind, Position: pos})
}

// operator handles an operator token given the two items beneath it.
func (p *parser) operator(t OperatorToken) {
	n := len(p.stack)

	switch {
	case n == 0:
		if t.Operator == OpAssign {
			p.fail(ExpectedName, t.Position)
		} else {
			p.fail(ExpectedExpression, t.Position)
		}
	case !p.stack[n-1].isExpr():
		p.fail(ExpectedExpression, t.Position)
	case n == 1:
		// First operator.
	case p.stack[n-2].isExpr():
		p.fail(ExpectedOperator, t.Position)
	default:
		p.reduce(t.Operator.Precedence())
	}

	p.push(item{op: t})
}

// reduce combines (lhs, op, rhs) triples from the top of the stack while the
// pending operator binds at least as tightly as prec. Equal precedence
// reduces, which makes every operator left-associative.
//
// A malformed stack has already been reported, so reduce stops at the first
// triple that is not expression-operator-expression and discards what it
// popped.
func (p *parser) reduce(prec int) {
	for len(p.stack) > 1 {
		if op := p.stack[len(p.stack)-2]; op.isExpr() || op.op.Operator.Precedence() < prec {
			return
		}

		rhs, _ := p.pop()
		if !rhs.isExpr() {
			return
		}

		op, _ := p.pop()

		lhs, ok := p.pop()
		if !ok || !lhs.isExpr() {
			return
		}

		if op.op.Operator != OpAssign {
			p.push(item{expr: Operation{Left: lhs.expr, Operator: op.op.Operator, Right: rhs.expr}})

			continue
		}

		name, ok := lhs.expr.(NameReference)
		if !ok {
			p.fail(ExpectedName, lhs.pos())

			continue
		}

		p.push(item{expr: Assignment{Target: name, Value: rhs.expr}})
	}
}

// cleanup reports the structure left over after the final reduction: a
// dangling operator at either end, and adjacent expressions with no
// operator between them. A leading "=" was already reported as
// [ExpectedName]; a trailing "=" is not reported, leaving the row with no
// expression and no errors.
func (p *parser) cleanup() {
	if len(p.stack) == 0 {
		return
	}

	if first := p.stack[0]; !first.isExpr() && !first.isAssign() {
		p.fail(ExpectedExpression, Span(0, first.pos().Start))
	}

	if last := p.stack[len(p.stack)-1]; !last.isExpr() && !last.isAssign() {
		p.fail(ExpectedExpression, Span(last.pos().End+1, Unbounded))
	}

	for i := 1; i < len(p.stack); i++ {
		prev, next := p.stack[i-1], p.stack[i]
		if prev.isExpr() && next.isExpr() {
			p.fail(ExpectedOperator, Span(prev.pos().End+1, next.pos().Start-1))
		}
	}
}
