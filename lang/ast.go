package lang

import (
	"fmt"
	"io"
)

// Expr is a node of a parsed formula. The set of implementations is closed:
// [Literal], [NameReference], [Assignment], and [Operation]. Trees are
// immutable once parsed, and each node owns its children.
//
// Every Expr renders canonical formula text with String. As a
// [fmt.Formatter], width and precision are applied to names and to the
// operands of operations but never to literal values.
type Expr interface {
	fmt.Formatter

	// Pos returns the characters of the formula the node spans.
	Pos() Position
	String() string

	expr()
}

// Literal is a numeric constant.
type Literal struct {
	Value    Value
	Position Position
}

// NameReference is a use of a name defined by an earlier row, or the target
// of an [Assignment].
type NameReference struct {
	Name     string
	Position Position
}

// Assignment binds the value of an expression to a name.
type Assignment struct {
	Target NameReference
	Value  Expr
}

// Operation applies an arithmetic operator to two operands. Operator is
// never [OpAssign].
type Operation struct {
	Left     Expr
	Operator Operator
	Right    Expr
}

func (e Literal) Pos() Position       { return e.Position }
func (e NameReference) Pos() Position { return e.Position }
func (e Assignment) Pos() Position    { return e.Target.Position.Union(e.Value.Pos()) }
func (e Operation) Pos() Position     { return e.Left.Pos().Union(e.Right.Pos()) }

func (Literal) expr()       {}
func (NameReference) expr() {}
func (Assignment) expr()    {}
func (Operation) expr()     {}

func (e Literal) String() string       { return e.Value.String() }
func (e NameReference) String() string { return e.Name }
func (e Assignment) String() string    { return e.Target.Name + "=" + e.Value.String() }

func (e Operation) String() string {
	return e.Left.String() + e.Operator.String() + e.Right.String()
}

func (e Literal) Format(f fmt.State, _ rune) { _, _ = io.WriteString(f, e.Value.String()) }

func (e NameReference) Format(f fmt.State, _ rune) {
	fmt.Fprintf(f, fmt.FormatString(f, 's'), e.Name)
}

func (e Assignment) Format(f fmt.State, _ rune) {
	fmt.Fprintf(f, "%s="+fmt.FormatString(f, 'v'), e.Target.Name, e.Value)
}

func (e Operation) Format(f fmt.State, _ rune) {
	spec := fmt.FormatString(f, 'v')
	fmt.Fprintf(f, spec+"%s"+spec, e.Left, e.Operator, e.Right)
}

// Inspect traverses e in depth-first, left-to-right order, calling fn for
// each node. Children of a node are skipped when fn returns false.
func Inspect(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}

	switch e := e.(type) {
	case Assignment:
		Inspect(e.Target, fn)
		Inspect(e.Value, fn)
	case Operation:
		Inspect(e.Left, fn)
		Inspect(e.Right, fn)
	}
}

// Names returns the names referenced by e in source order, excluding the
// target of an assignment. Duplicates are kept.
func Names(e Expr) []string {
	var (
		names []string
		visit func(Expr) bool
	)

	visit = func(x Expr) bool {
		switch x := x.(type) {
		case Assignment:
			Inspect(x.Value, visit)

			return false
		case NameReference:
			names = append(names, x.Name)
		}

		return true
	}

	Inspect(e, visit)

	return names
}
