package semantic

import (
	"github.com/emberlang/emberc/internal/types"
	"github.com/emberlang/emberc/pkg/token"
)

// Kind is the closed set of symbol kinds: a binding is a variable, a
// function, or a type introduced by a struct definition.
type Kind int

const (
	Variable Kind = iota
	Function
	Type
)

func (k Kind) String() string {
	switch k {
	case Variable:
		return "variable"
	case Function:
		return "function"
	case Type:
		return "type"
	}
	return "invalid"
}

// Parameter is one entry of a function's ordered parameter list.
type Parameter struct {
	Name string
	Type types.DataType
}

// FieldLayout is one field of a StructLayout: its name, declared
// type, and byte offset within the struct.
type FieldLayout struct {
	Name   string
	Type   types.DataType
	Offset int
}

// StructLayout is the field table a Struct-typed symbol owns. Offsets
// are assigned in declaration order by accumulating sizeof(field)
// (every primitive is 8 bytes; see DESIGN.md for the field-size
// policy this fixes).
type StructLayout struct {
	Name       string
	Fields     []FieldLayout
	FieldCount int
	TotalSize  int
}

// FieldSize is the byte size charged to every primitive field when
// computing struct offsets.
const FieldSize = 8

// FindField returns the layout of the field named name, or (nil,
// false) if the struct has no such field. Matches by plain string
// equality: field names are already materialized as Go substrings of
// the shared source buffer, so this is exactly the spec's
// length-then-bytes span comparison.
func (l *StructLayout) FindField(name string) (FieldLayout, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldLayout{}, false
}

// AppendField grows the layout with a new field, assigning its offset
// as the layout's current TotalSize and advancing by FieldSize.
func (l *StructLayout) AppendField(name string, ty types.DataType) FieldLayout {
	f := FieldLayout{Name: name, Type: ty, Offset: l.TotalSize}
	l.Fields = append(l.Fields, f)
	l.FieldCount++
	l.TotalSize += FieldSize
	return f
}

// Symbol is a named binding within a Scope.
//
// Name is a plain Go string, but it is never an allocation-on-insert:
// it is always produced by slicing the run's shared source buffer
// (ast.Node.NameText), and Go string slicing shares the underlying
// byte array rather than copying it. That makes a bare string the
// natural, zero-copy stand-in for the spec's (offset, length) name
// span — Go equality on such strings already is length-then-byte
// comparison.
type Symbol struct {
	Name        string
	Kind        Kind
	Type        types.DataType
	Initialized bool
	ScopeDepth  int
	Pos         token.Position

	// Parameters is non-nil (possibly empty) for Kind == Function.
	Parameters []Parameter

	// Layout is non-nil on the Type symbol a struct definition
	// introduces and on variables declared with that struct type (a
	// shared pointer to the same layout). Struct-typed parameters and
	// functions returning a struct carry no Layout.
	Layout *StructLayout
}
