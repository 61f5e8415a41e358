package semantic

import "github.com/emberlang/emberc/internal/types"

// BuiltinID identifies one entry of the built-in function table.
// Several IDs may share a Name — that's the overload set resolveOverload
// disambiguates.
type BuiltinID int

const (
	BuiltinPrintInt BuiltinID = iota
	BuiltinPrintFloat
	BuiltinPrintDouble
	BuiltinPrintString
	BuiltinPrintBool
	BuiltinExit
)

// BuiltinEntry is one row of the built-in table: a name, an id, a
// return type, and an ordered parameter-type vector.
type BuiltinEntry struct {
	Name       string
	ID         BuiltinID
	ReturnType types.DataType
	ParamTypes []types.DataType
}

// builtinTable is the fixed built-in registry. print is overloaded
// per primitive type (Double reserved alongside the rest per the
// uniform-dispatch design note); exit takes a single Int status code.
var builtinTable = []BuiltinEntry{
	{Name: "print", ID: BuiltinPrintInt, ReturnType: types.TypeVoid, ParamTypes: []types.DataType{types.TypeInt}},
	{Name: "print", ID: BuiltinPrintFloat, ReturnType: types.TypeVoid, ParamTypes: []types.DataType{types.TypeFloat}},
	{Name: "print", ID: BuiltinPrintDouble, ReturnType: types.TypeVoid, ParamTypes: []types.DataType{types.TypeDouble}},
	{Name: "print", ID: BuiltinPrintString, ReturnType: types.TypeVoid, ParamTypes: []types.DataType{types.TypeString}},
	{Name: "print", ID: BuiltinPrintBool, ReturnType: types.TypeVoid, ParamTypes: []types.DataType{types.TypeBool}},
	{Name: "exit", ID: BuiltinExit, ReturnType: types.TypeVoid, ParamTypes: []types.DataType{types.TypeInt}},
}

// builtinNames is the set of distinct built-in names, used both by
// IsBuiltin and to seed one function symbol per name at module init.
var builtinNames = func() []string {
	seen := make(map[string]bool)
	var names []string
	for _, e := range builtinTable {
		if !seen[e.Name] {
			seen[e.Name] = true
			names = append(names, e.Name)
		}
	}
	return names
}()

// BuiltinNames returns the distinct built-in function names.
func BuiltinNames() []string {
	return append([]string(nil), builtinNames...)
}

// IsBuiltin reports whether name is a registered built-in function.
func IsBuiltin(name string) bool {
	for _, n := range builtinNames {
		if n == name {
			return true
		}
	}
	return false
}

// ResolveOverload implements resolveOverload(name, argTypes): collect
// candidates by exact name and matching arity whose every parameter
// accepts the corresponding argument with compat != ERR, then prefer
// a unique all-OK match over ones that only matched via a WARN
// conversion. When several candidates are all-OK (an Int argument
// widens silently to Float and Double), the unique one whose parameter
// types equal the argument types exactly wins. Any remaining
// ambiguity, or no candidates at all, resolves to (0, false) — the
// Unknown result.
func ResolveOverload(name string, argTypes []types.DataType) (BuiltinID, bool) {
	var allOK, warnOnly []BuiltinEntry

	for _, e := range builtinTable {
		if e.Name != name || len(e.ParamTypes) != len(argTypes) {
			continue
		}
		matched := true
		hasWarn := false
		for i, param := range e.ParamTypes {
			switch types.Compat(param, argTypes[i]) {
			case types.ERR:
				matched = false
			case types.WARN:
				hasWarn = true
			}
			if !matched {
				break
			}
		}
		if !matched {
			continue
		}
		if hasWarn {
			warnOnly = append(warnOnly, e)
		} else {
			allOK = append(allOK, e)
		}
	}

	if len(allOK) == 1 {
		return allOK[0].ID, true
	}
	if len(allOK) > 1 {
		var exact []BuiltinEntry
		for _, e := range allOK {
			same := true
			for i, param := range e.ParamTypes {
				if !param.Equals(argTypes[i]) {
					same = false
				}
			}
			if same {
				exact = append(exact, e)
			}
		}
		if len(exact) == 1 {
			return exact[0].ID, true
		}
		return 0, false
	}
	if len(warnOnly) == 1 {
		return warnOnly[0].ID, true
	}
	return 0, false
}
