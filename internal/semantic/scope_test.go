package semantic

import (
	"testing"

	"github.com/emberlang/emberc/internal/types"
)

func TestInsertDuplicateFails(t *testing.T) {
	root := NewRootScope()
	if _, err := root.Insert(&Symbol{Name: "x", Kind: Variable, Type: types.TypeInt}); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if _, err := root.Insert(&Symbol{Name: "x", Kind: Variable, Type: types.TypeFloat}); err != ErrDuplicateSymbol {
		t.Fatalf("second insert = %v, want ErrDuplicateSymbol", err)
	}
}

func TestShadowing(t *testing.T) {
	root := NewRootScope()
	root.Insert(&Symbol{Name: "x", Kind: Variable, Type: types.TypeInt})

	inner := Create(root)
	inner.Insert(&Symbol{Name: "x", Kind: Variable, Type: types.TypeFloat})

	sym, ok := inner.LookupChain("x")
	if !ok || !sym.Type.Equals(types.TypeFloat) {
		t.Fatalf("inner lookup = %+v, want inner Float x", sym)
	}

	outer, ok := root.LookupChain("x")
	if !ok || !outer.Type.Equals(types.TypeInt) {
		t.Fatalf("outer lookup after inner insert = %+v, want outer Int x", outer)
	}
}

func TestLookupLocalDoesNotSeeParent(t *testing.T) {
	root := NewRootScope()
	root.Insert(&Symbol{Name: "x", Kind: Variable, Type: types.TypeInt})
	inner := Create(root)

	if _, ok := inner.LookupLocal("x"); ok {
		t.Fatal("LookupLocal found a parent-scope symbol, want false")
	}
	if _, ok := inner.LookupChain("x"); !ok {
		t.Fatal("LookupChain did not find a parent-scope symbol")
	}
}

func TestFreeDoesNotTouchParent(t *testing.T) {
	root := NewRootScope()
	root.Insert(&Symbol{Name: "x", Kind: Variable, Type: types.TypeInt})
	inner := Create(root)
	inner.Insert(&Symbol{Name: "y", Kind: Variable, Type: types.TypeInt})

	inner.Free()

	if _, ok := inner.LookupLocal("y"); ok {
		t.Fatal("Free did not clear the scope's own symbols")
	}
	if _, ok := root.LookupLocal("x"); !ok {
		t.Fatal("Free on a child scope removed a symbol from its parent")
	}
}

func TestFlattenOmitsShadowed(t *testing.T) {
	root := NewRootScope()
	root.Insert(&Symbol{Name: "x", Kind: Variable, Type: types.TypeInt})
	root.Insert(&Symbol{Name: "y", Kind: Variable, Type: types.TypeBool})
	inner := Create(root)
	inner.Insert(&Symbol{Name: "x", Kind: Variable, Type: types.TypeFloat})

	flat := inner.Flatten()
	byName := make(map[string]*Symbol)
	for _, s := range flat {
		byName[s.Name] = s
	}

	if len(byName) != 2 {
		t.Fatalf("Flatten produced %d distinct names, want 2", len(byName))
	}
	if !byName["x"].Type.Equals(types.TypeFloat) {
		t.Errorf("Flatten's x = %s, want the inner Float shadowing the outer Int", byName["x"].Type)
	}
}

func TestStructLayoutOffsets(t *testing.T) {
	layout := &StructLayout{Name: "Point"}
	layout.AppendField("x", types.TypeInt)
	layout.AppendField("y", types.TypeInt)

	if layout.FieldCount != 2 {
		t.Fatalf("FieldCount = %d, want 2", layout.FieldCount)
	}
	if layout.Fields[0].Offset != 0 || layout.Fields[1].Offset != 8 {
		t.Fatalf("offsets = %d,%d, want 0,8", layout.Fields[0].Offset, layout.Fields[1].Offset)
	}
	if _, ok := layout.FindField("z"); ok {
		t.Fatal("FindField found a nonexistent field")
	}
}
