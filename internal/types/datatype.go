// Package types implements the value-type lattice the checker reasons
// over: the closed DataType union, the three-valued compatibility
// relation, cast legality, precision loss, and binary/unary operator
// result types.
package types

import "fmt"

// Kind is the closed set of data type tags. Every switch over Kind in
// this package is exhaustive; there is no default fallthrough for the
// cases that drive compatibility or cast decisions.
type Kind int

const (
	Int Kind = iota
	Float
	Double
	Bool
	String
	Void
	Struct
	Unknown
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Double:
		return "double"
	case Bool:
		return "bool"
	case String:
		return "string"
	case Void:
		return "void"
	case Struct:
		return "struct"
	case Unknown:
		return "unknown"
	}
	return "invalid"
}

// DataType is the tagged union {Int|Float|Double|Bool|String|Void|
// Struct(struct-id)|Unknown}. Unlike the teacher's open Type
// interface (ClassType, InterfaceType, EnumType, ...), this is a
// closed, comparable value: struct equality only needs to check Kind
// and, for Struct, StructName.
type DataType struct {
	Kind Kind

	// StructName names the struct type when Kind == Struct. Empty for
	// every other Kind.
	StructName string
}

var (
	TypeInt     = DataType{Kind: Int}
	TypeFloat   = DataType{Kind: Float}
	TypeDouble  = DataType{Kind: Double}
	TypeBool    = DataType{Kind: Bool}
	TypeString  = DataType{Kind: String}
	TypeVoid    = DataType{Kind: Void}
	TypeUnknown = DataType{Kind: Unknown}
)

// StructType returns the DataType naming the struct called name.
func StructType(name string) DataType {
	return DataType{Kind: Struct, StructName: name}
}

// String renders the type the way diagnostics quote it, e.g. "int" or
// "struct Point".
func (t DataType) String() string {
	if t.Kind == Struct {
		return fmt.Sprintf("struct %s", t.StructName)
	}
	return t.Kind.String()
}

// Equals reports whether t and other name the same type, including
// matching struct names for Kind == Struct.
func (t DataType) Equals(other DataType) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind == Struct {
		return t.StructName == other.StructName
	}
	return true
}

// IsNumeric reports whether t is one of {Int, Float, Double}.
func (t DataType) IsNumeric() bool {
	switch t.Kind {
	case Int, Float, Double:
		return true
	default:
		return false
	}
}

// IsUnknown reports whether t is the Unknown sentinel.
func (t DataType) IsUnknown() bool {
	return t.Kind == Unknown
}
