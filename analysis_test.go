// analysis_test.go
package scarpet

import (
	"math/big"
	"reflect"
	"testing"

	"github.com/FedericoCarboni/scarpet-parser/ast"
)

func vr(name string) *ast.Variable { return &ast.Variable{Name: name} }

func num(n int64) *ast.NumberLiteral { return &ast.NumberLiteral{Value: big.NewInt(n)} }

func bin(op string, l, r ast.Node) *ast.BinaryExpression {
	return &ast.BinaryExpression{Op: op, Lvalue: l, Rvalue: r}
}

func parens(n ast.Node) *ast.ParenthesisedExpression {
	return &ast.ParenthesisedExpression{Value: n}
}

func list(elems ...ast.Node) *ast.ListLiteral { return &ast.ListLiteral{Params: elems} }

func call(name string, args ...ast.Node) *ast.FunctionCall {
	return &ast.FunctionCall{Name: name, Args: args}
}

// seq folds expressions with the ';' sequencing operator, left-associated.
func seq(exprs ...ast.Node) ast.Node {
	n := exprs[0]
	for _, e := range exprs[1:] {
		n = bin(";", n, e)
	}
	return n
}

func fdecl(name string, body ast.Node, params ...ast.Node) *ast.FunctionDeclaration {
	return &ast.FunctionDeclaration{Name: name, Params: params, Body: body}
}

func Test_Analysis_CompoundOnly(t *testing.T) {
	plain := bin("=", vr("x"), num(1))
	compound := bin("=", list(vr("a"), vr("b")), call("f"))
	viaParens := bin("=", vr("y"), parens(bin(",", vr("a"), vr("b"))))
	decl := fdecl("main", seq(plain, compound, viaParens))

	got := FindVariableNames(decl, plain)
	want := []ast.Node{compound}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want only the destructuring assignment, got %v", got)
	}
}

func Test_Analysis_AllAssignmentOperators(t *testing.T) {
	assign := bin("=", list(vr("a")), call("f"))
	addAssign := bin("+=", list(vr("b")), num(1))
	swap := bin("<>", list(vr("c"), vr("d")), vr("e"))
	decl := fdecl("main", seq(assign, addAssign, swap))

	got := FindVariableNames(decl, assign)
	want := []ast.Node{assign, addAssign, swap}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want all three compound assignments in order, got %d nodes", len(got))
	}
}

func Test_Analysis_ParenthesisedLvalue(t *testing.T) {
	// Parentheses around the target never change its classification.
	wrappedCompound := bin("=", parens(parens(list(vr("a")))), num(1))
	wrappedPlain := bin("=", parens(vr("x")), num(2))
	decl := fdecl("main", seq(wrappedCompound, wrappedPlain))

	got := FindVariableNames(decl, wrappedPlain)
	want := []ast.Node{wrappedCompound}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want the wrapped compound assignment only, got %v", got)
	}
}

func Test_Analysis_ChainedAssignment_RhsDescent(t *testing.T) {
	inner := bin("=", list(vr("c")), call("f"))
	outer := bin("=", list(vr("a"), vr("b")), parens(inner))
	decl := fdecl("main", outer)

	got := FindVariableNames(decl, outer)
	want := []ast.Node{outer, inner}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("chained assignment should be discovered via the RHS, got %d nodes", len(got))
	}
}

func Test_Analysis_PlainVariable_NoDescent(t *testing.T) {
	// A plain-variable assignment is skipped entirely: the walk must not
	// look inside its right-hand side.
	hidden := bin("=", list(vr("a")), num(1))
	plain := bin("=", vr("x"), parens(hidden))
	decl := fdecl("main", plain)

	if got := FindVariableNames(decl, plain); len(got) != 0 {
		t.Fatalf("nothing should be discovered beneath a plain assignment, got %v", got)
	}
}

func Test_Analysis_FunctionExpressionParams(t *testing.T) {
	nested := bin("=", list(vr("p")), num(4))
	fn := &ast.FunctionExpression{Params: []ast.Node{vr("a"), nested}}
	anchor := bin("=", vr("g"), fn)
	decl := fdecl("main", seq(anchor, num(0)))

	got := FindVariableNames(decl, anchor)
	if len(got) != 0 {
		t.Fatalf("plain assignment must hide its RHS, got %v", got)
	}

	// Reached when the literal is not behind a plain assignment.
	decl = fdecl("main", seq(fn, num(0)))
	got = FindVariableNames(decl, fn)
	want := []ast.Node{nested}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want the defaulted pattern inside the literal, got %v", got)
	}
}

func Test_Analysis_MapAndListLiterals(t *testing.T) {
	inMap := bin("=", list(vr("k")), num(1))
	inList := bin("+=", list(vr("v")), num(2))
	body := seq(
		&ast.MapLiteral{Params: []ast.Node{inMap}},
		&ast.ListLiteral{Params: []ast.Node{num(0), inList}},
	)
	decl := fdecl("main", body)

	got := FindVariableNames(decl, decl.Body)
	want := []ast.Node{inMap, inList}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("literal elements should be traversed, got %d nodes", len(got))
	}
}

func Test_Analysis_UnaryAndOtherBinary(t *testing.T) {
	compound := bin("<>", list(vr("a"), vr("b")), vr("c"))
	body := bin("+", &ast.UnaryExpression{Op: "-", Value: parens(compound)}, num(1))
	decl := fdecl("main", body)

	got := FindVariableNames(decl, body)
	want := []ast.Node{compound}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("walk should pass through unary and non-assignment binary nodes, got %v", got)
	}
}

func Test_Analysis_NoEnclosingScope(t *testing.T) {
	compound := bin("=", list(vr("a")), num(1))
	root := seq(compound, num(0))
	if got := FindVariableNames(root, compound); got != nil {
		t.Fatalf("no enclosing function scope should yield nil, got %v", got)
	}
}

func Test_Analysis_NearestScopeOnly(t *testing.T) {
	outerAssign := bin("=", list(vr("o")), num(1))
	innerAssign := bin("=", list(vr("i")), num(2))
	inner := fdecl("inner", innerAssign)
	outer := fdecl("outer", seq(outerAssign, inner))

	got := FindVariableNames(outer, innerAssign)
	want := []ast.Node{innerAssign}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("only the nearest scope's body should be walked, got %v", got)
	}
}

func Test_Scope_InnermostFirst(t *testing.T) {
	target := vr("x")
	inner := fdecl("inner", bin("=", target, num(1)))
	outer := fdecl("outer", inner)

	got := FindScope(outer, target)
	if len(got) != 2 || got[0] != inner || got[1] != outer {
		t.Fatalf("want [inner outer], got %v", got)
	}
}

func Test_Scope_TargetNotInTree(t *testing.T) {
	outer := fdecl("outer", num(1))
	if got := FindScope(outer, vr("ghost")); len(got) != 0 {
		t.Fatalf("unreachable target should yield no scopes, got %v", got)
	}
}

func Test_Scope_ResolveParenthesised(t *testing.T) {
	v := vr("x")
	if got := ResolveParenthesised(parens(parens(parens(v)))); got != v {
		t.Fatalf("want the innermost node, got %v", got)
	}
	if got := ResolveParenthesised(v); got != v {
		t.Fatalf("unwrapped node should pass through")
	}
}
