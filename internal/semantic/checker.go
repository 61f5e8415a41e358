// Package semantic implements the checker: the depth-first recursive
// walk that resolves names, infers expression types, validates
// declarations/assignments/calls/returns/struct shapes against the
// type system, and reports diagnostics through a Reporter.
package semantic

import (
	"github.com/emberlang/emberc/internal/ast"
	"github.com/emberlang/emberc/internal/diagnostics"
)

// Checker holds no state of its own beyond what a single Context
// carries; it exists to group the check* methods the way the teacher
// groups its analyzer's pass methods.
type Checker struct {
	ctx *Context
}

// NewChecker builds a Checker with a fresh global scope seeded with
// one function symbol per distinct built-in name, per §4.4: call-site
// validation goes through ResolveOverload, not these symbols'
// parameter lists, so each gets a sentinel empty parameter list.
func NewChecker(reporter *diagnostics.Reporter, source, file string) *Checker {
	global := NewRootScope()
	for _, name := range BuiltinNames() {
		global.Insert(&Symbol{Name: name, Kind: Function, Parameters: []Parameter{}})
	}
	return &Checker{
		ctx: &Context{
			Global:   global,
			Current:  global,
			Source:   source,
			File:     file,
			Reporter: reporter,
		},
	}
}

// Context returns the checker's root-level context, for callers that
// want to inspect the resulting global scope after Check returns.
func (c *Checker) Context() *Context {
	return c.ctx
}

// Check runs the checker over node, dispatching on its kind. It
// returns true iff no Error/Fatal diagnostic was produced while
// checking node or any of its descendants.
func (c *Checker) Check(node *ast.Node) bool {
	r := c.ctx.Reporter
	if r == nil {
		return check(node, c.ctx)
	}
	before := r.Errors() + r.Fatals()
	check(node, c.ctx)
	return r.Errors()+r.Fatals() == before
}

// check is the recursive walker proper: check(node, ctx) -> bool.
func check(node *ast.Node, ctx *Context) bool {
	if node == nil {
		return true
	}

	switch node.Kind {
	case ast.KindProgram:
		return checkChildren(node, ctx)

	case ast.KindBlockStatement, ast.KindBlockExpression:
		return checkBlock(node, ctx)

	case ast.KindIntVariableDefinition, ast.KindFloatVariableDefinition,
		ast.KindDoubleVariableDefinition, ast.KindBoolVariableDefinition,
		ast.KindStringVariableDefinition:
		return checkPrimitiveVariableDefinition(node, ctx)

	case ast.KindStructVariableDefinition:
		return checkStructVariableDefinition(node, ctx)

	case ast.KindAssignment:
		return checkAssignment(node, ctx)

	case ast.KindCompoundAddAssign, ast.KindCompoundSubAssign,
		ast.KindCompoundMulAssign, ast.KindCompoundDivAssign:
		return checkCompoundAssignment(node, ctx)

	case ast.KindIfConditional:
		return checkIfConditional(node, ctx)

	case ast.KindIfTrueBranch, ast.KindElseBranch:
		// Thin wrapper nodes around a branch's body (typically a single
		// BLOCK_STATEMENT child, which pushes its own scope); nothing
		// branch-specific to validate beyond visiting the child(ren).
		return checkChildren(node, ctx)

	case ast.KindLoopStatement:
		return checkLoopStatement(node, ctx)

	case ast.KindFunctionDefinition:
		return checkFunctionDefinition(node, ctx)

	case ast.KindReturnStatement:
		return checkReturnStatement(node, ctx)

	case ast.KindStructDefinition:
		return checkStructDefinition(node, ctx)

	case ast.KindFunctionCall:
		_, ok := typeOfFunctionCall(node, ctx)
		return ok

	default:
		// Anything reaching here is either a bare expression used as a
		// statement (a call, a cast, ...) or a malformed tree from the
		// external parser. typeOf already reports on malformed input;
		// a statement-position expression just needs its type computed
		// for side-effecting diagnostics.
		_, ok := typeOf(node, ctx)
		return ok
	}
}

// checkChildren visits every child of node, accumulating failure with
// logical AND but never short-circuiting, so every child's
// diagnostics surface.
func checkChildren(node *ast.Node, ctx *Context) bool {
	ok := true
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if !check(child, ctx) {
			ok = false
		}
	}
	return ok
}

// checkBlock pushes a new child scope, checks every statement, and
// pops the scope on the way out.
func checkBlock(node *ast.Node, ctx *Context) bool {
	prev := ctx.push()
	ok := checkChildren(node, ctx)
	ctx.pop(prev)
	return ok
}
