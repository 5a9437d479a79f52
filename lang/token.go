package lang

import "strconv"

// Operator is one of the binary operators of the formula language.
type Operator int

const (
	OpAssign   Operator = iota // =
	OpAdd                      // +
	OpSubtract                 // -
	OpMultiply                 // *
	OpDivide                   // /
)

// LowestPrecedence is the precedence of [OpAssign]; reducing at this
// precedence flushes every pending operation.
const LowestPrecedence = 0

// Precedence returns the binding strength of op. Higher binds tighter.
func (op Operator) Precedence() int {
	switch op {
	case OpAdd, OpSubtract:
		return 1
	case OpMultiply, OpDivide:
		return 2
	default:
		return LowestPrecedence
	}
}

// Rune returns the character that spells op.
func (op Operator) Rune() rune {
	if s := op.String(); len(s) == 1 {
		return rune(s[0])
	}

	return 0
}

// operatorOf returns the Operator spelled by r.
func operatorOf(r rune) (Operator, bool) {
	switch r {
	case '=':
		return OpAssign, true
	case '+':
		return OpAdd, true
	case '-':
		return OpSubtract, true
	case '*':
		return OpMultiply, true
	case '/':
		return OpDivide, true
	default:
		return 0, false
	}
}

// Token is a lexical unit of a formula. The set of implementations is
// closed: [OperatorToken], [LiteralToken], and [NameToken].
type Token interface {
	// Pos returns the characters of the formula the token was read from.
	Pos() Position
	String() string

	token()
}

// OperatorToken is a single-character operator.
type OperatorToken struct {
	Operator Operator
	Position Position
}

// LiteralToken is a numeric literal.
type LiteralToken struct {
	Value    Value
	Position Position
}

// NameToken is an identifier.
type NameToken struct {
	Name     string
	Position Position
}

func (t OperatorToken) Pos() Position { return t.Position }
func (t LiteralToken) Pos() Position  { return t.Position }
func (t NameToken) Pos() Position     { return t.Position }

func (OperatorToken) token() {}
func (LiteralToken) token()  {}
func (NameToken) token()     {}

func (t OperatorToken) String() string {
	return "Operator(" + t.Operator.String() + ")@" + t.Position.String()
}

func (t LiteralToken) String() string {
	return "Literal(" + t.Value.String() + ")@" + t.Position.String()
}

func (t NameToken) String() string {
	return "Name(" + strconv.Quote(t.Name) + ")@" + t.Position.String()
}
