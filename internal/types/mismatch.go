package types

import "github.com/emberlang/emberc/internal/diagnostics"

// mismatchTable implements mismatchCode(target, source): it picks
// among the TYPE_MISMATCH_<SRC>_TO_<DST> codes for every (target,
// source) pair the language names explicitly. Any pair with a struct
// side gets StructTypeMismatch; other pairs not in the table (void
// combinations, or anything compat already accepts) fall back to
// IncompatibleBinaryOperands.
var mismatchTable = map[Kind]map[Kind]diagnostics.Code{
	Int: {
		Float:  diagnostics.TypeMismatchFloatToInt,
		Double: diagnostics.TypeMismatchDoubleToInt,
		Bool:   diagnostics.TypeMismatchBoolToInt,
		String: diagnostics.TypeMismatchStringToInt,
	},
	Float: {
		Bool:   diagnostics.TypeMismatchBoolToFloat,
		String: diagnostics.TypeMismatchStringToFloat,
	},
	Double: {
		Bool:   diagnostics.TypeMismatchBoolToDouble,
		String: diagnostics.TypeMismatchStringToDouble,
	},
	Bool: {
		Int:    diagnostics.TypeMismatchIntToBool,
		Float:  diagnostics.TypeMismatchFloatToBool,
		Double: diagnostics.TypeMismatchDoubleToBool,
		String: diagnostics.TypeMismatchStringToBool,
	},
	String: {
		Int:    diagnostics.TypeMismatchIntToString,
		Float:  diagnostics.TypeMismatchFloatToString,
		Double: diagnostics.TypeMismatchDoubleToString,
		Bool:   diagnostics.TypeMismatchBoolToString,
	},
}

// MismatchCode selects the diagnostic code for an ERR-level compat
// failure assigning source to target.
func MismatchCode(target, source DataType) diagnostics.Code {
	if target.Kind == Struct || source.Kind == Struct {
		return diagnostics.StructTypeMismatch
	}
	if row, ok := mismatchTable[target.Kind]; ok {
		if code, ok := row[source.Kind]; ok {
			return code
		}
	}
	return diagnostics.IncompatibleBinaryOperands
}

// NarrowingCode is the generic "narrowing conversion" diagnostic
// reused for WARN-level compat results on declaration and argument
// binding (Double→Float today; see the open question this resolves in
// DESIGN.md).
const NarrowingCode = diagnostics.TypeMismatchDoubleToFloat
