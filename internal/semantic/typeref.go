package semantic

import (
	"github.com/emberlang/emberc/internal/ast"
	"github.com/emberlang/emberc/internal/types"
)

// resolveTypeRef turns a REF_* node into a DataType. REF_CUSTOM
// resolves by lookupChain against ctx.Current; every other REF_* kind
// names a primitive directly. ok is false when ref is not a
// recognized type reference at all, or a REF_CUSTOM names a struct
// that was never declared.
func resolveTypeRef(ref *ast.Node, ctx *Context) (types.DataType, bool) {
	if ref == nil {
		return types.TypeUnknown, false
	}
	switch ref.Kind {
	case ast.KindRefInt:
		return types.TypeInt, true
	case ast.KindRefFloat:
		return types.TypeFloat, true
	case ast.KindRefDouble:
		return types.TypeDouble, true
	case ast.KindRefBool:
		return types.TypeBool, true
	case ast.KindRefString:
		return types.TypeString, true
	case ast.KindRefCustom:
		name := ref.NameText()
		sym, found := ctx.Current.LookupChain(name)
		if !found || sym.Kind != Type || sym.Type.Kind != types.Struct {
			return types.TypeUnknown, false
		}
		return sym.Type, true
	default:
		return types.TypeUnknown, false
	}
}

// declaredTypeForDefinitionKind maps the primitive *_VARIABLE_DEFINITION
// kinds directly to their DataType, uniformly including Double.
func declaredTypeForDefinitionKind(kind ast.Kind) (types.DataType, bool) {
	switch kind {
	case ast.KindIntVariableDefinition:
		return types.TypeInt, true
	case ast.KindFloatVariableDefinition:
		return types.TypeFloat, true
	case ast.KindDoubleVariableDefinition:
		return types.TypeDouble, true
	case ast.KindBoolVariableDefinition:
		return types.TypeBool, true
	case ast.KindStringVariableDefinition:
		return types.TypeString, true
	default:
		return types.TypeUnknown, false
	}
}
