// Package lang implements the formula language of a calculation sheet.
//
// A formula is a single line of text such as
//
//	total = price * 3/2
//
// that is tokenized by [Tokenize], parsed by [Parse] into an [Expr] tree,
// and evaluated by [Evaluate] against a [Context] that resolves names
// assigned by earlier rows.
//
// # Grammar
//
// There are no parentheses, functions, or unary operators:
//
//	Formula    → Name '=' Expression | Expression
//	Expression → Operand (Operator Operand)*
//	Operand    → Name | Number
//	Operator   → '+' | '-' | '*' | '/'
//	Name       → Letter (Letter | Digit)*
//	Number     → Digit* ('.' Digit*)?
//
// '*' and '/' bind tighter than '+' and '-'; all operators associate to the
// left. Characters outside the grammar, including whitespace, are ignored.
//
// # Values
//
// Arithmetic is exact wherever it can be. Integer division produces a
// reduced [Fraction] unless the result is whole:
//
//	6/2     → 3
//	3/2     → 3/2
//	1/3+1/6 → 1/2
//	1.5*2   → 3.0
//	1/0     → !ERROR!
//
// Any operation on a [Real] yields a Real, and any operation on the
// [Error] value yields Error.
//
// # Errors
//
// Nothing in this package panics or fails on malformed input. Parse and
// Evaluate always return a best-effort result together with every
// [ParseError] and [EvaluationError] found, each located by a [Position]
// of inclusive rune indices.
package lang
