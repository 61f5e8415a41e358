package semantic

import (
	"github.com/emberlang/emberc/internal/ast"
	"github.com/emberlang/emberc/internal/diagnostics"
	"github.com/emberlang/emberc/internal/types"
)

// checkAssignment handles plain `lhs = rhs;`.
func checkAssignment(node *ast.Node, ctx *Context) bool {
	lhs := node.FirstChild
	rhs := lhs.NextSibling
	return checkAssignmentLike(node, ctx, lhs, rhs, true)
}

// checkCompoundAssignment handles `lhs += rhs;` and friends. Compound
// assignment never (re)marks initialization the way plain `=` does,
// since it only makes sense once lhs already holds a value.
func checkCompoundAssignment(node *ast.Node, ctx *Context) bool {
	lhs := node.FirstChild
	rhs := lhs.NextSibling
	return checkAssignmentLike(node, ctx, lhs, rhs, false)
}

func checkAssignmentLike(node *ast.Node, ctx *Context, lhs, rhs *ast.Node, markInitialized bool) bool {
	if lhs.Kind != ast.KindVariable && lhs.Kind != ast.KindMemberAccess {
		report(ctx, diagnostics.InvalidAssignmentTarget, node, "")
		// Still evaluate both sides so any diagnostics they carry
		// surface, even though the assignment itself is invalid.
		typeOf(lhs, ctx)
		typeOf(rhs, ctx)
		return false
	}

	ok := true
	lType, lOK := typeOf(lhs, ctx)
	if !lOK {
		ok = false
	}
	rType, rOK := typeOf(rhs, ctx)
	if !rOK {
		ok = false
	}

	var sym *Symbol
	if markInitialized && lhs.Kind == ast.KindVariable {
		sym, _ = ctx.Current.LookupChain(lhs.NameText())
	}
	if !applyAssignCompat(ctx, node, lType, rType, sym) {
		ok = false
	}
	return ok
}

// checkIfConditional handles `if (cond) { ... } else { ... }`.
func checkIfConditional(node *ast.Node, ctx *Context) bool {
	cond := node.FirstChild
	ok := true

	condType, condOK := typeOf(cond, ctx)
	if !condOK {
		ok = false
	} else if condType.Kind != types.Bool && !condType.IsNumeric() && !condType.IsUnknown() {
		report(ctx, diagnostics.ConditionTypeMismatch, cond, condType.String())
		ok = false
	}

	for branch := cond.NextSibling; branch != nil; branch = branch.NextSibling {
		if !check(branch, ctx) {
			ok = false
		}
	}
	return ok
}

// checkLoopStatement handles the single generic loop node.
func checkLoopStatement(node *ast.Node, ctx *Context) bool {
	cond := node.FirstChild
	ok := true

	condType, condOK := typeOf(cond, ctx)
	if !condOK {
		ok = false
	} else if condType.Kind != types.Bool && !condType.IsNumeric() && !condType.IsUnknown() {
		report(ctx, diagnostics.ConditionTypeMismatch, cond, condType.String())
		ok = false
	}

	if body := cond.NextSibling; body != nil {
		if !check(body, ctx) {
			ok = false
		}
	}
	return ok
}

// checkReturnStatement handles `return [expr];`.
func checkReturnStatement(node *ast.Node, ctx *Context) bool {
	if ctx.CurrentFunction == nil {
		report(ctx, diagnostics.InvalidExpression, node, "")
		if node.FirstChild != nil {
			typeOf(node.FirstChild, ctx)
		}
		return false
	}

	expected := ctx.CurrentFunction.Type
	expr := node.FirstChild

	if expected.Kind == types.Void {
		if expr != nil {
			typeOf(expr, ctx)
			report(ctx, diagnostics.UnexpectedReturnValue, node, "")
			return false
		}
		return true
	}

	if expr == nil {
		report(ctx, diagnostics.MissingReturnValue, node, "")
		return false
	}

	actual, ok := typeOf(expr, ctx)
	if !ok {
		return false
	}
	if types.Compat(expected, actual) == types.ERR {
		report(ctx, diagnostics.ReturnTypeMismatch, node, "")
		return false
	}
	return true
}
