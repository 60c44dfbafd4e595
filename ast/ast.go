// Package ast defines the node shapes produced by the scarpet parser, as a
// closed set of variants. Offsets are UTF-16 code units into the original
// source, matching tokenizer positions.
package ast

// Node is implemented by every AST node variant. The variant set is closed:
// consumers dispatch with an exhaustive type switch.
type Node interface {
	Pos() int // offset of the first code unit of the node
	End() int // offset one past the last code unit
	node()
}

// Span locates a node in the source. Embedded by every variant.
type Span struct {
	Start int
	Stop  int
}

func (s Span) Pos() int { return s.Start }
func (s Span) End() int { return s.Stop }

// BinaryExpression is an infix operation, including assignments ("=", "+=",
// "<>") and the ";" sequencing operator.
type BinaryExpression struct {
	Span
	Op     string
	Lvalue Node
	Rvalue Node
}

// UnaryExpression is a prefix operation.
type UnaryExpression struct {
	Span
	Op    string
	Value Node
}

// ParenthesisedExpression wraps a single grouped expression.
type ParenthesisedExpression struct {
	Span
	Value Node
}

// FunctionExpression is a function literal; Params holds the parameter
// expressions, which may include defaulted ("p = expr") patterns.
type FunctionExpression struct {
	Span
	Params []Node
}

// MapLiteral is a {...} literal; Params holds the entry expressions.
type MapLiteral struct {
	Span
	Params []Node
}

// ListLiteral is a [...] literal; Params holds the element expressions.
type ListLiteral struct {
	Span
	Params []Node
}

// Variable is a plain variable reference.
type Variable struct {
	Span
	Name string
}

// FunctionCall is a named call.
type FunctionCall struct {
	Span
	Name string
	Args []Node
}

// NumberLiteral is a numeric literal; Value is *big.Int or float64 as
// decoded by the tokenizer.
type NumberLiteral struct {
	Span
	Value any
}

// StringLiteral is a decoded string literal.
type StringLiteral struct {
	Span
	Value string
}

// FunctionDeclaration is a "name(params) -> body" definition. It is the
// scope unit: enclosing-scope lookups resolve to the innermost chain of
// these.
type FunctionDeclaration struct {
	Span
	Name   string
	Params []Node
	Body   Node
}

func (*BinaryExpression) node()        {}
func (*UnaryExpression) node()         {}
func (*ParenthesisedExpression) node() {}
func (*FunctionExpression) node()      {}
func (*MapLiteral) node()              {}
func (*ListLiteral) node()             {}
func (*Variable) node()                {}
func (*FunctionCall) node()            {}
func (*NumberLiteral) node()           {}
func (*StringLiteral) node()           {}
func (*FunctionDeclaration) node()     {}

// Children returns a node's direct children in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *BinaryExpression:
		return []Node{n.Lvalue, n.Rvalue}
	case *UnaryExpression:
		return []Node{n.Value}
	case *ParenthesisedExpression:
		return []Node{n.Value}
	case *FunctionExpression:
		return n.Params
	case *MapLiteral:
		return n.Params
	case *ListLiteral:
		return n.Params
	case *FunctionCall:
		return n.Args
	case *FunctionDeclaration:
		out := make([]Node, 0, len(n.Params)+1)
		out = append(out, n.Params...)
		if n.Body != nil {
			out = append(out, n.Body)
		}
		return out
	}
	return nil
}

// Walk calls fn for n and every descendant in pre-order, pruning the
// subtree when fn returns false. Trees have no cycles, so depth bounds the
// recursion.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}
