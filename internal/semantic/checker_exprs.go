package semantic

import (
	"github.com/emberlang/emberc/internal/ast"
	"github.com/emberlang/emberc/internal/diagnostics"
	"github.com/emberlang/emberc/internal/types"
)

// typeOf infers node's type, reporting diagnostics along the way, and
// returns (type, ok). ok is false whenever a diagnostic at Error or
// Fatal severity was produced for node or one of its children; the
// returned type is types.TypeUnknown in that case, per the
// Unknown-propagation rule: callers must not emit a second diagnostic
// for an already-Unknown operand.
func typeOf(node *ast.Node, ctx *Context) (types.DataType, bool) {
	if node == nil {
		return types.TypeUnknown, true
	}

	switch node.Kind {
	case ast.KindIntLit:
		return types.TypeInt, true
	case ast.KindFloatLit:
		return types.TypeFloat, true
	case ast.KindDoubleLit:
		return types.TypeDouble, true
	case ast.KindBoolLit:
		return types.TypeBool, true
	case ast.KindStringLit:
		return types.TypeString, true

	case ast.KindVariable:
		return typeOfVariable(node, ctx)

	case ast.KindAdd, ast.KindSub, ast.KindMul, ast.KindDiv, ast.KindMod:
		return typeOfBinaryArithmetic(node, ctx)

	case ast.KindEqual, ast.KindNotEqual, ast.KindLess, ast.KindLessEqual,
		ast.KindGreater, ast.KindGreaterEqual:
		return typeOfComparison(node, ctx)

	case ast.KindLogicalAnd, ast.KindLogicalOr:
		return typeOfLogical(node, ctx)

	case ast.KindUnaryPlus, ast.KindUnaryMinus,
		ast.KindPreIncrement, ast.KindPreDecrement,
		ast.KindPostIncrement, ast.KindPostDecrement:
		return typeOfUnaryArithmetic(node, ctx)

	case ast.KindLogicalNot:
		return typeOfUnaryNot(node, ctx)

	case ast.KindFunctionCall:
		return typeOfFunctionCall(node, ctx)

	case ast.KindCastExpression:
		return typeOfCastExpression(node, ctx)

	case ast.KindMemberAccess:
		return typeOfMemberAccess(node, ctx)

	case ast.KindBlockExpression:
		ok := checkBlock(node, ctx)
		return types.TypeVoid, ok

	default:
		report(ctx, diagnostics.InternalCompilerError, node, node.Kind.String())
		return types.TypeUnknown, false
	}
}

func typeOfVariable(node *ast.Node, ctx *Context) (types.DataType, bool) {
	name := node.NameText()
	sym, found := ctx.Current.LookupChain(name)
	if !found {
		report(ctx, diagnostics.UndefinedVariable, node, name)
		return types.TypeUnknown, false
	}
	if !sym.Initialized {
		report(ctx, diagnostics.VariableNotInitialized, node, name)
		return types.TypeUnknown, false
	}
	return sym.Type, true
}

func typeOfBinaryArithmetic(node *ast.Node, ctx *Context) (types.DataType, bool) {
	left, right := node.FirstChild, node.FirstChild.NextSibling
	lType, lOK := typeOf(left, ctx)
	rType, rOK := typeOf(right, ctx)
	if !lOK || !rOK {
		return types.TypeUnknown, false
	}
	result := types.BinaryArithmeticResult(lType, rType)
	if result.IsUnknown() {
		report(ctx, diagnostics.IncompatibleBinaryOperands, node, "")
		return types.TypeUnknown, false
	}
	return result, true
}

func typeOfComparison(node *ast.Node, ctx *Context) (types.DataType, bool) {
	left, right := node.FirstChild, node.FirstChild.NextSibling
	lType, lOK := typeOf(left, ctx)
	rType, rOK := typeOf(right, ctx)
	if !lOK || !rOK {
		return types.TypeUnknown, false
	}
	result := types.ComparisonResult(lType, rType)
	if result.IsUnknown() {
		report(ctx, diagnostics.IncompatibleBinaryOperands, node, "")
		return types.TypeUnknown, false
	}
	return result, true
}

func typeOfLogical(node *ast.Node, ctx *Context) (types.DataType, bool) {
	left, right := node.FirstChild, node.FirstChild.NextSibling
	lType, lOK := typeOf(left, ctx)
	rType, rOK := typeOf(right, ctx)
	if !lOK || !rOK {
		return types.TypeUnknown, false
	}
	result := types.LogicalResult(lType, rType)
	if result.IsUnknown() {
		report(ctx, diagnostics.IncompatibleBinaryOperands, node, "")
		return types.TypeUnknown, false
	}
	return result, true
}

func typeOfUnaryArithmetic(node *ast.Node, ctx *Context) (types.DataType, bool) {
	operand := node.FirstChild
	operandType, ok := typeOf(operand, ctx)
	if !ok {
		return types.TypeUnknown, false
	}
	result := types.UnaryArithmeticResult(operandType)
	if result.IsUnknown() {
		report(ctx, diagnostics.IncompatibleBinaryOperands, node, "")
		return types.TypeUnknown, false
	}
	return result, true
}

func typeOfUnaryNot(node *ast.Node, ctx *Context) (types.DataType, bool) {
	operand := node.FirstChild
	operandType, ok := typeOf(operand, ctx)
	if !ok {
		return types.TypeUnknown, false
	}
	result := types.UnaryNotResult(operandType)
	if result.IsUnknown() {
		report(ctx, diagnostics.IncompatibleBinaryOperands, node, "")
		return types.TypeUnknown, false
	}
	return result, true
}

// typeOfFunctionCall handles `name(args)`, dispatching to the
// built-in registry or a user-defined function symbol.
func typeOfFunctionCall(node *ast.Node, ctx *Context) (types.DataType, bool) {
	name := node.NameText()
	argList := node.FirstChild

	var argTypes []types.DataType
	ok := true
	for arg := argList.FirstChild; arg != nil; arg = arg.NextSibling {
		argType, argOK := typeOf(arg, ctx)
		if !argOK {
			ok = false
		}
		argTypes = append(argTypes, argType)
	}
	if !ok {
		return types.TypeUnknown, false
	}

	if IsBuiltin(name) {
		id, matched := ResolveOverload(name, argTypes)
		if !matched {
			report(ctx, diagnostics.NoMatchingOverload, node, name)
			return types.TypeUnknown, false
		}
		return builtinReturnType(id), true
	}

	sym, found := ctx.Current.LookupChain(name)
	if !found {
		report(ctx, diagnostics.UndefinedFunction, node, name)
		return types.TypeUnknown, false
	}
	if sym.Kind != Function {
		report(ctx, diagnostics.CallingNonFunction, node, name)
		return types.TypeUnknown, false
	}
	if len(sym.Parameters) != len(argTypes) {
		report(ctx, diagnostics.FunctionArgCountMismatch, node, name)
		return types.TypeUnknown, false
	}
	for i, param := range sym.Parameters {
		switch types.Compat(param.Type, argTypes[i]) {
		case types.ERR:
			report(ctx, types.MismatchCode(param.Type, argTypes[i]), node, name)
			return types.TypeUnknown, false
		case types.WARN:
			report(ctx, types.NarrowingCode, node, name)
		}
	}
	return sym.Type, true
}

func builtinReturnType(id BuiltinID) types.DataType {
	for _, e := range builtinTable {
		if e.ID == id {
			return e.ReturnType
		}
	}
	return types.TypeVoid
}

// typeOfCastExpression handles `expr as T`.
func typeOfCastExpression(node *ast.Node, ctx *Context) (types.DataType, bool) {
	expr := node.FirstChild
	targetRef := expr.NextSibling

	sourceType, exprOK := typeOf(expr, ctx)

	target, found := resolveTypeRef(targetRef, ctx)
	if !found {
		report(ctx, diagnostics.InvalidCastTarget, node, "")
		return types.TypeUnknown, false
	}
	if !exprOK {
		return types.TypeUnknown, false
	}

	switch types.CastAllowed(sourceType, target) {
	case types.ERR:
		report(ctx, diagnostics.ForbiddenCast, node, "")
		return types.TypeUnknown, false
	case types.WARN:
		report(ctx, diagnostics.CastPrecisionLoss, node, "")
		return target, true
	default:
		return target, true
	}
}

// typeOfMemberAccess handles `obj.field`.
func typeOfMemberAccess(node *ast.Node, ctx *Context) (types.DataType, bool) {
	obj := node.FirstChild
	fieldName := node.NameText()

	if obj.Kind != ast.KindVariable {
		report(ctx, diagnostics.InvalidAssignmentTarget, node, "")
		return types.TypeUnknown, false
	}

	objSym, found := ctx.Current.LookupChain(obj.NameText())
	if !found {
		report(ctx, diagnostics.UndefinedVariable, obj, obj.NameText())
		return types.TypeUnknown, false
	}
	objType := objSym.Type
	if objType.Kind != types.Struct {
		report(ctx, diagnostics.UndefinedVariable, node, fieldName)
		return types.TypeUnknown, false
	}

	structSym, found := ctx.Current.LookupChain(objType.StructName)
	if !found || structSym.Layout == nil {
		report(ctx, diagnostics.UndefinedVariable, node, fieldName)
		return types.TypeUnknown, false
	}

	field, found := structSym.Layout.FindField(fieldName)
	if !found {
		report(ctx, diagnostics.UndefinedVariable, node, fieldName)
		return types.TypeUnknown, false
	}
	return field.Type, true
}
