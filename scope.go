// scope.go: enclosing-scope resolution over the parser's AST.
package scarpet

import "github.com/FedericoCarboni/scarpet-parser/ast"

// FindScope returns the stack of function-declaration scopes enclosing
// target within root, innermost first. Target is located by node identity.
// The result is empty when target is not in the tree or has no enclosing
// function scope.
func FindScope(root, target ast.Node) []*ast.FunctionDeclaration {
	path := findPath(root, target)
	var stack []*ast.FunctionDeclaration
	for i := len(path) - 1; i >= 0; i-- {
		if fd, ok := path[i].(*ast.FunctionDeclaration); ok {
			stack = append(stack, fd)
		}
	}
	return stack
}

// findPath returns the chain of nodes from root to target, inclusive, or
// nil when target is not reachable.
func findPath(n, target ast.Node) []ast.Node {
	if n == nil {
		return nil
	}
	if n == target {
		return []ast.Node{n}
	}
	for _, c := range ast.Children(n) {
		if sub := findPath(c, target); sub != nil {
			return append([]ast.Node{n}, sub...)
		}
	}
	return nil
}

// ResolveParenthesised strips any chain of parenthesised-expression
// wrappers around n.
func ResolveParenthesised(n ast.Node) ast.Node {
	for {
		p, ok := n.(*ast.ParenthesisedExpression)
		if !ok {
			return n
		}
		n = p.Value
	}
}
