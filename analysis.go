// analysis.go: compound assignment discovery for editor tooling.
//
// Reference and definition lookups need to know every destructuring
// assignment in the scope around a given node. The discovery walk collects
// them in visit order without touching the AST; it is pure and reentrant.
package scarpet

import "github.com/FedericoCarboni/scarpet-parser/ast"

// assignmentOps are the operators whose left-hand side binds variables.
var assignmentOps = map[string]struct{}{
	"=":  {},
	"+=": {},
	"<>": {},
}

// FindVariableNames returns the compound-lvalue assignment expressions in
// the nearest function scope enclosing node, in pre-order left-to-right
// visit order. Assignments to a plain variable are deliberately not
// collected here: those targets are handled by the simpler declaration
// pass, and the walk does not descend into them either. Returns nil when
// node has no enclosing function scope.
func FindVariableNames(root, node ast.Node) []ast.Node {
	scopes := FindScope(root, node)
	if len(scopes) == 0 {
		return nil
	}
	var out []ast.Node
	collectAssignments(scopes[0].Body, &out)
	return out
}

func collectAssignments(n ast.Node, out *[]ast.Node) {
	switch n := n.(type) {
	case *ast.BinaryExpression:
		if _, isAssign := assignmentOps[n.Op]; isAssign {
			lhs := ResolveParenthesised(n.Lvalue)
			if _, plain := lhs.(*ast.Variable); plain {
				return
			}
			*out = append(*out, n)
			// Chained assignments live on the right.
			collectAssignments(n.Rvalue, out)
			return
		}
		collectAssignments(n.Lvalue, out)
		collectAssignments(n.Rvalue, out)
	case *ast.ParenthesisedExpression:
		collectAssignments(n.Value, out)
	case *ast.UnaryExpression:
		collectAssignments(n.Value, out)
	case *ast.FunctionExpression:
		for _, p := range n.Params {
			collectAssignments(p, out)
		}
	case *ast.MapLiteral:
		for _, p := range n.Params {
			collectAssignments(p, out)
		}
	case *ast.ListLiteral:
		for _, p := range n.Params {
			collectAssignments(p, out)
		}
	}
}
