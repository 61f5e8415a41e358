package ast

// Kind is the closed set of AST node kinds the external parser may
// produce. It is a discriminated union: every switch over Kind in this
// module must be exhaustive (see types.Kind for the same rule applied
// to data types).
type Kind int

const (
	KindInvalid Kind = iota

	// Program / containers
	KindProgram
	KindBlockStatement
	KindBlockExpression

	// Declarations
	KindIntVariableDefinition
	KindFloatVariableDefinition
	KindDoubleVariableDefinition
	KindBoolVariableDefinition
	KindStringVariableDefinition
	KindStructVariableDefinition
	KindFunctionDefinition
	KindParameterList
	KindParameter
	KindReturnType
	KindStructDefinition
	KindStructFieldList
	KindStructField

	// Statements
	KindAssignment
	KindCompoundAddAssign
	KindCompoundSubAssign
	KindCompoundMulAssign
	KindCompoundDivAssign
	KindIfConditional
	KindIfTrueBranch
	KindElseBranch
	KindLoopStatement
	KindReturnStatement

	// Expressions
	KindVariable
	KindIntLit
	KindFloatLit
	KindDoubleLit
	KindBoolLit
	KindStringLit
	KindFunctionCall
	KindArgumentList
	KindCastExpression
	KindMemberAccess

	// Binary operators
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindMod
	KindEqual
	KindNotEqual
	KindLess
	KindLessEqual
	KindGreater
	KindGreaterEqual
	KindLogicalAnd
	KindLogicalOr

	// Unary / postfix operators
	KindUnaryPlus
	KindUnaryMinus
	KindLogicalNot
	KindPreIncrement
	KindPreDecrement
	KindPostIncrement
	KindPostDecrement

	// Type references
	KindRefInt
	KindRefFloat
	KindRefDouble
	KindRefBool
	KindRefString
	KindRefCustom
)

var kindNames = map[Kind]string{
	KindInvalid:                   "INVALID",
	KindProgram:                   "PROGRAM",
	KindBlockStatement:            "BLOCK_STATEMENT",
	KindBlockExpression:           "BLOCK_EXPRESSION",
	KindIntVariableDefinition:     "INT_VARIABLE_DEFINITION",
	KindFloatVariableDefinition:   "FLOAT_VARIABLE_DEFINITION",
	KindDoubleVariableDefinition:  "DOUBLE_VARIABLE_DEFINITION",
	KindBoolVariableDefinition:    "BOOL_VARIABLE_DEFINITION",
	KindStringVariableDefinition:  "STRING_VARIABLE_DEFINITION",
	KindStructVariableDefinition:  "STRUCT_VARIABLE_DEFINITION",
	KindFunctionDefinition:        "FUNCTION_DEFINITION",
	KindParameterList:             "PARAMETER_LIST",
	KindParameter:                 "PARAMETER",
	KindReturnType:                "RETURN_TYPE",
	KindStructDefinition:          "STRUCT_DEFINITION",
	KindStructFieldList:           "STRUCT_FIELD_LIST",
	KindStructField:               "STRUCT_FIELD",
	KindAssignment:                "ASSIGNMENT",
	KindCompoundAddAssign:         "COMPOUND_ADD_ASSIGN",
	KindCompoundSubAssign:         "COMPOUND_SUB_ASSIGN",
	KindCompoundMulAssign:         "COMPOUND_MUL_ASSIGN",
	KindCompoundDivAssign:         "COMPOUND_DIV_ASSIGN",
	KindIfConditional:             "IF_CONDITIONAL",
	KindIfTrueBranch:              "IF_TRUE_BRANCH",
	KindElseBranch:                "ELSE_BRANCH",
	KindLoopStatement:             "LOOP_STATEMENT",
	KindReturnStatement:           "RETURN_STATEMENT",
	KindVariable:                  "VARIABLE",
	KindIntLit:                    "INT_LIT",
	KindFloatLit:                  "FLOAT_LIT",
	KindDoubleLit:                 "DOUBLE_LIT",
	KindBoolLit:                   "BOOL_LIT",
	KindStringLit:                 "STRING_LIT",
	KindFunctionCall:              "FUNCTION_CALL",
	KindArgumentList:              "ARGUMENT_LIST",
	KindCastExpression:            "CAST_EXPRESSION",
	KindMemberAccess:              "MEMBER_ACCESS",
	KindAdd:                       "ADD",
	KindSub:                       "SUB",
	KindMul:                       "MUL",
	KindDiv:                       "DIV",
	KindMod:                       "MOD",
	KindEqual:                     "EQUAL",
	KindNotEqual:                  "NOT_EQUAL",
	KindLess:                      "LESS",
	KindLessEqual:                 "LESS_EQUAL",
	KindGreater:                   "GREATER",
	KindGreaterEqual:              "GREATER_EQUAL",
	KindLogicalAnd:                "LOGICAL_AND",
	KindLogicalOr:                 "LOGICAL_OR",
	KindUnaryPlus:                 "UNARY_PLUS",
	KindUnaryMinus:                "UNARY_MINUS",
	KindLogicalNot:                "LOGICAL_NOT",
	KindPreIncrement:              "PRE_INCREMENT",
	KindPreDecrement:              "PRE_DECREMENT",
	KindPostIncrement:             "POST_INCREMENT",
	KindPostDecrement:             "POST_DECREMENT",
	KindRefInt:                    "REF_INT",
	KindRefFloat:                  "REF_FLOAT",
	KindRefDouble:                 "REF_DOUBLE",
	KindRefBool:                   "REF_BOOL",
	KindRefString:                 "REF_STRING",
	KindRefCustom:                 "REF_CUSTOM",
}

// String renders the kind's wire name, e.g. "FUNCTION_CALL".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN_KIND"
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// KindFromName resolves a wire name (e.g. "FUNCTION_CALL") back to its
// Kind, for decoding the JSON AST interchange format an external
// parser would emit. ok is false for any name the parser and checker
// have not agreed on.
func KindFromName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// IsVariableDefinition reports whether k declares a primitive-typed
// local (the INT/FLOAT/DOUBLE/BOOL/STRING_VARIABLE_DEFINITION family).
// Double is included uniformly alongside the other primitives, per
// spec.md §9's note that earlier switches dropped it inconsistently.
func (k Kind) IsVariableDefinition() bool {
	switch k {
	case KindIntVariableDefinition, KindFloatVariableDefinition,
		KindDoubleVariableDefinition, KindBoolVariableDefinition,
		KindStringVariableDefinition:
		return true
	default:
		return false
	}
}

// IsCompoundAssign reports whether k is one of the four compound
// assignment operators (+=, -=, *=, /=).
func (k Kind) IsCompoundAssign() bool {
	switch k {
	case KindCompoundAddAssign, KindCompoundSubAssign,
		KindCompoundMulAssign, KindCompoundDivAssign:
		return true
	default:
		return false
	}
}

// IsBinaryArithmetic reports whether k is one of {+,-,*,/,%}.
func (k Kind) IsBinaryArithmetic() bool {
	switch k {
	case KindAdd, KindSub, KindMul, KindDiv, KindMod:
		return true
	default:
		return false
	}
}

// IsComparison reports whether k is one of {==,!=,<,<=,>,>=}.
func (k Kind) IsComparison() bool {
	switch k {
	case KindEqual, KindNotEqual, KindLess, KindLessEqual, KindGreater, KindGreaterEqual:
		return true
	default:
		return false
	}
}

// IsLogical reports whether k is one of {&&, ||}.
func (k Kind) IsLogical() bool {
	switch k {
	case KindLogicalAnd, KindLogicalOr:
		return true
	default:
		return false
	}
}

// IsTypeReference reports whether k is one of the REF_* type nodes.
func (k Kind) IsTypeReference() bool {
	switch k {
	case KindRefInt, KindRefFloat, KindRefDouble, KindRefBool, KindRefString, KindRefCustom:
		return true
	default:
		return false
	}
}
