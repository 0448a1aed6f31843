// Package frontend provides conversion of tokens and quadruples to Shape's AST.
package frontend

import (
	"github.com/shapestone/shape-core/pkg/ast"
)

// TokensNode converts tokens to an AST.
//
// Returns an *ast.ArrayDataNode with one element per token. Each element is
// an *ast.ArrayDataNode of two *ast.LiteralNode values: the kind name and
// the token text, positioned at the token.
func TokensNode(tokens []Token) ast.SchemaNode {
	records := make([]ast.SchemaNode, 0, len(tokens))
	for _, token := range tokens {
		pos := ast.NewPosition(0, token.Line, token.Column)
		records = append(records, ast.NewArrayDataNode([]ast.SchemaNode{
			ast.NewLiteralNode(token.Kind.String(), pos),
			ast.NewLiteralNode(token.Text, pos),
		}, pos))
	}
	return ast.NewArrayDataNode(records, ast.ZeroPosition())
}

// Node converts the generated quadruples to an AST.
//
// Returns an *ast.ArrayDataNode with one *ast.ArrayDataNode per quadruple,
// holding op, arg1, arg2 and result as *ast.LiteralNode values.
func (t *Translation) Node() ast.SchemaNode {
	records := make([]ast.SchemaNode, 0, len(t.Quads))
	for _, q := range t.Quads {
		pos := ast.ZeroPosition()
		records = append(records, ast.NewArrayDataNode([]ast.SchemaNode{
			ast.NewLiteralNode(q.Op, pos),
			ast.NewLiteralNode(q.Arg1, pos),
			ast.NewLiteralNode(q.Arg2, pos),
			ast.NewLiteralNode(q.Result, pos),
		}, pos))
	}
	return ast.NewArrayDataNode(records, ast.ZeroPosition())
}
