package semantic

import (
	"testing"

	"github.com/emberlang/emberc/internal/types"
)

func TestIsBuiltin(t *testing.T) {
	if !IsBuiltin("print") {
		t.Error("print should be a builtin")
	}
	if !IsBuiltin("exit") {
		t.Error("exit should be a builtin")
	}
	if IsBuiltin("printf") {
		t.Error("printf should not be a builtin")
	}
}

func TestResolveOverloadUniqueMatch(t *testing.T) {
	id, ok := ResolveOverload("print", []types.DataType{types.TypeInt})
	if !ok || id != BuiltinPrintInt {
		t.Fatalf("ResolveOverload(print, [Int]) = %v,%v, want PrintInt,true", id, ok)
	}
}

func TestResolveOverloadArityMismatch(t *testing.T) {
	if _, ok := ResolveOverload("print", []types.DataType{types.TypeInt, types.TypeInt}); ok {
		t.Fatal("print/2 should not resolve")
	}
}

func TestResolveOverloadNoMatch(t *testing.T) {
	if _, ok := ResolveOverload("print", []types.DataType{types.StructType("Point")}); ok {
		t.Fatal("print(struct) should not resolve to any overload")
	}
}

func TestResolveOverloadPrefersAllOKOverWarn(t *testing.T) {
	// print(Double) is an exact all-OK match; print(Float) would also
	// accept a Double argument only via the Float<-Double WARN path.
	id, ok := ResolveOverload("print", []types.DataType{types.TypeDouble})
	if !ok || id != BuiltinPrintDouble {
		t.Fatalf("ResolveOverload(print, [Double]) = %v,%v, want PrintDouble,true", id, ok)
	}
}

func TestResolveOverloadUnknownName(t *testing.T) {
	if _, ok := ResolveOverload("nope", []types.DataType{types.TypeInt}); ok {
		t.Fatal("unregistered name should not resolve")
	}
}
