package types

// CompatResult is the closed three-valued outcome of compat: silent
// acceptance, accepted-with-warning, or rejected. No default
// fallthrough is permitted when switching on it.
type CompatResult int

const (
	OK CompatResult = iota
	WARN
	ERR
)

func (c CompatResult) String() string {
	switch c {
	case OK:
		return "OK"
	case WARN:
		return "WARN"
	case ERR:
		return "ERR"
	}
	return "INVALID"
}

// compatTable[target][source] implements the table in the type
// system's compatibility relation. Struct and Unknown are handled
// outside the table, since Struct compatibility depends on the pair's
// struct names and Unknown must silently propagate as OK (it already
// carries a reported error, so compat must not pile another on top).
var compatTable = map[Kind]map[Kind]CompatResult{
	Int: {
		Int: OK, Float: ERR, Double: ERR, Bool: ERR, String: ERR,
	},
	Float: {
		Int: OK, Float: OK, Double: WARN, Bool: ERR, String: ERR,
	},
	Double: {
		Int: OK, Float: OK, Double: OK, Bool: ERR, String: ERR,
	},
	Bool: {
		Int: ERR, Float: ERR, Double: ERR, Bool: OK, String: ERR,
	},
	String: {
		Int: ERR, Float: ERR, Double: ERR, Bool: ERR, String: OK,
	},
}

// Compat implements compat(target, source) ∈ {OK, WARN, ERR}.
//
// Unknown on either side is always OK: it is a sentinel meaning "a
// type error was already reported along this path," and must not
// cause a second, cascading diagnostic.
func Compat(target, source DataType) CompatResult {
	if target.IsUnknown() || source.IsUnknown() {
		return OK
	}
	if target.Kind == Struct || source.Kind == Struct {
		if target.Kind != Struct || source.Kind != Struct {
			return ERR
		}
		if target.StructName == source.StructName {
			return OK
		}
		return ERR
	}
	if target.Kind == Void || source.Kind == Void {
		if target.Kind == Void && source.Kind == Void {
			return OK
		}
		return ERR
	}
	row, ok := compatTable[target.Kind]
	if !ok {
		return ERR
	}
	result, ok := row[source.Kind]
	if !ok {
		return ERR
	}
	return result
}

// CastAllowed implements castAllowed(source, target): any numeric ↔
// numeric cast is allowed (WARN when precision is lost); Bool ↔
// numeric is allowed; everything else is ERR unless compat(target,
// source) already says otherwise, since a cast that's a free
// assignment is certainly a legal cast too.
func CastAllowed(source, target DataType) CompatResult {
	if source.IsUnknown() || target.IsUnknown() {
		return OK
	}
	if c := Compat(target, source); c != ERR {
		return c
	}
	if source.IsNumeric() && target.IsNumeric() {
		if PrecisionLoss(source, target) {
			return WARN
		}
		return OK
	}
	if (source.IsNumeric() && target.Kind == Bool) || (source.Kind == Bool && target.IsNumeric()) {
		if PrecisionLoss(source, target) {
			return WARN
		}
		return OK
	}
	return ERR
}

// PrecisionLoss reports whether casting source to target can lose
// representable range or precision: Double→Float, {Float,Double}→Int,
// Int→Bool.
func PrecisionLoss(source, target DataType) bool {
	switch {
	case source.Kind == Double && target.Kind == Float:
		return true
	case (source.Kind == Float || source.Kind == Double) && target.Kind == Int:
		return true
	case source.Kind == Int && target.Kind == Bool:
		return true
	default:
		return false
	}
}
