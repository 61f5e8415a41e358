package semantic

import (
	"github.com/emberlang/emberc/internal/ast"
	"github.com/emberlang/emberc/internal/diagnostics"
	"github.com/emberlang/emberc/internal/types"
)

// checkPrimitiveVariableDefinition handles `T x [= expr];` for the
// five primitive *_VARIABLE_DEFINITION kinds.
func checkPrimitiveVariableDefinition(node *ast.Node, ctx *Context) bool {
	declared, _ := declaredTypeForDefinitionKind(node.Kind)
	name := node.NameText()

	var sym *Symbol
	ok := true
	if ctx.Current.IsDeclaredLocally(name) {
		report(ctx, diagnostics.VariableRedeclared, node, name)
		ok = false
	} else {
		sym, _ = ctx.Current.Insert(&Symbol{Name: name, Kind: Variable, Type: declared, Pos: node.Pos})
	}

	if initExpr := node.FirstChild; initExpr != nil {
		exprType, exprOK := typeOf(initExpr, ctx)
		if !exprOK {
			ok = false
		}
		if !applyAssignCompat(ctx, node, declared, exprType, sym) {
			ok = false
		}
	}

	return ok
}

// applyAssignCompat applies compat(target, source) at a binding site
// (declaration initializer, plain or compound assignment): ERR fails
// and reports mismatchCode; WARN reports the generic narrowing code
// but still succeeds; OK marks sym initialized when sym is non-nil.
func applyAssignCompat(ctx *Context, at *ast.Node, target, source types.DataType, sym *Symbol) bool {
	switch types.Compat(target, source) {
	case types.ERR:
		report(ctx, types.MismatchCode(target, source), at, "")
		return false
	case types.WARN:
		report(ctx, types.NarrowingCode, at, "")
		if sym != nil {
			sym.Initialized = true
		}
		return true
	default: // types.OK
		if sym != nil {
			sym.Initialized = true
		}
		return true
	}
}

// checkStructVariableDefinition handles `StructName x [= expr];`.
func checkStructVariableDefinition(node *ast.Node, ctx *Context) bool {
	typeRef := node.FirstChild
	name := node.NameText()
	ok := true

	declared, found := resolveTypeRef(typeRef, ctx)
	if !found {
		report(ctx, diagnostics.UndefinedVariable, node, typeRef.NameText())
		ok = false
	}

	var layout *StructLayout
	if found {
		if typeSym, ok := ctx.Current.LookupChain(declared.StructName); ok {
			layout = typeSym.Layout
		}
	}

	var sym *Symbol
	if ctx.Current.IsDeclaredLocally(name) {
		report(ctx, diagnostics.VariableRedeclared, node, name)
		ok = false
	} else {
		sym, _ = ctx.Current.Insert(&Symbol{Name: name, Kind: Variable, Type: declared, Pos: node.Pos, Layout: layout})
	}

	if initExpr := typeRef.NextSibling; initExpr != nil {
		exprType, exprOK := typeOf(initExpr, ctx)
		if !exprOK {
			ok = false
		}
		if !applyAssignCompat(ctx, node, declared, exprType, sym) {
			ok = false
		}
	}

	return ok
}

// checkStructDefinition handles `struct Name { fields... }`.
func checkStructDefinition(node *ast.Node, ctx *Context) bool {
	name := node.NameText()
	ok := true

	if ctx.Current.IsDeclaredLocally(name) {
		report(ctx, diagnostics.VariableRedeclared, node, name)
		ok = false
	}

	layout := &StructLayout{Name: name}
	fieldList := node.FirstChild
	for field := fieldList.FirstChild; field != nil; field = field.NextSibling {
		fieldName := field.NameText()
		if _, dup := layout.FindField(fieldName); dup {
			report(ctx, diagnostics.VariableRedeclared, field, fieldName)
			ok = false
			continue
		}
		fieldType, found := resolveTypeRef(field.FirstChild, ctx)
		if !found {
			report(ctx, diagnostics.UndefinedVariable, field, field.FirstChild.NameText())
			ok = false
		}
		layout.AppendField(fieldName, fieldType)
	}

	if !ctx.Current.IsDeclaredLocally(name) || ok {
		ctx.Current.Insert(&Symbol{
			Name: name, Kind: Type, Type: types.StructType(name), Pos: node.Pos, Layout: layout,
		})
	}

	return ok
}

// checkFunctionDefinition handles `fn name(params) -> RT { body }`.
func checkFunctionDefinition(node *ast.Node, ctx *Context) bool {
	name := node.NameText()
	ok := true

	paramList := node.FirstChild
	returnTypeNode := paramList.NextSibling
	var body *ast.Node
	if returnTypeNode != nil && returnTypeNode.Kind == ast.KindReturnType {
		body = returnTypeNode.NextSibling
	} else {
		body = returnTypeNode
		returnTypeNode = nil
	}

	returnType := types.TypeVoid
	if returnTypeNode != nil && returnTypeNode.FirstChild != nil {
		if rt, found := resolveTypeRef(returnTypeNode.FirstChild, ctx); found {
			returnType = rt
		}
	}

	var params []Parameter
	for p := paramList.FirstChild; p != nil; p = p.NextSibling {
		pType, found := resolveTypeRef(p.FirstChild, ctx)
		if !found {
			report(ctx, diagnostics.UndefinedVariable, p, p.FirstChild.NameText())
			ok = false
		}
		params = append(params, Parameter{Name: p.NameText(), Type: pType})
	}
	if params == nil {
		params = []Parameter{}
	}

	if ctx.Current.IsDeclaredLocally(name) {
		report(ctx, diagnostics.VariableRedeclared, node, name)
		ok = false
	} else {
		ctx.Current.Insert(&Symbol{
			Name: name, Kind: Function, Type: returnType, Pos: node.Pos, Parameters: params,
		})
	}

	fnSym := &Symbol{Name: name, Kind: Function, Type: returnType, Parameters: params}

	prevScope := ctx.push()
	prevFn := ctx.CurrentFunction
	ctx.CurrentFunction = fnSym
	for _, p := range params {
		ctx.Current.Insert(&Symbol{Name: p.Name, Kind: Variable, Type: p.Type, Initialized: true})
	}
	if !check(body, ctx) {
		ok = false
	}
	ctx.CurrentFunction = prevFn
	ctx.pop(prevScope)

	return ok
}
