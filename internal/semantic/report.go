package semantic

import (
	"github.com/emberlang/emberc/internal/ast"
	"github.com/emberlang/emberc/internal/diagnostics"
)

// report emits one diagnostic located at node, with extra supplying
// the reporter's "(extra-context)" suffix (pass "" for none).
func report(ctx *Context, code diagnostics.Code, node *ast.Node, extra string) {
	if ctx.Reporter == nil {
		return
	}
	var loc *diagnostics.Location
	if node != nil {
		loc = diagnostics.LocationFromPos(ctx.File, node.Pos, spanLength(node))
	}
	ctx.Reporter.Report(code, loc, extra)
}

// spanLength picks the column width of node's offending token for the
// caret underline: its Name span (an identifier or struct/field name)
// when one is set, else its own Span (a literal or operator), else 1.
func spanLength(node *ast.Node) int {
	if node.Name.Length > 0 {
		return node.Name.Length
	}
	if node.Span.Length > 0 {
		return node.Span.Length
	}
	return 1
}
