package semantic

import (
	"bytes"
	"testing"

	"github.com/emberlang/emberc/internal/ast"
	"github.com/emberlang/emberc/internal/ast/astbuild"
	"github.com/emberlang/emberc/internal/diagnostics"
)

func newTestChecker(b *astbuild.Builder) (*Checker, *diagnostics.Reporter, *bytes.Buffer) {
	var buf bytes.Buffer
	reporter := diagnostics.New(&buf, b.Source(), false)
	return NewChecker(reporter, b.Source(), "test.em"), reporter, &buf
}

func TestStringToIntMismatchCode1007(t *testing.T) {
	b := astbuild.New()
	decl := b.Named(ast.KindIntVariableDefinition, "x")
	astbuild.Connect(decl, b.StringLit("hi"))
	program := b.Program(decl)

	c, reporter, _ := newTestChecker(b)
	c.Check(program)

	if !reporter.HasErrors() {
		t.Fatal("expected an error")
	}
	found := false
	for _, d := range reporter.Diagnostics() {
		if d.Code == diagnostics.TypeMismatchStringToInt {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected code %d among diagnostics, got %+v", diagnostics.TypeMismatchStringToInt, reporter.Diagnostics())
	}
}

func TestReportedLocationUnderlinesFullIdentifier(t *testing.T) {
	b := astbuild.New()
	decl := b.Named(ast.KindIntVariableDefinition, "longname")
	astbuild.Connect(decl, b.StringLit("hi"))
	program := b.Program(decl)

	c, reporter, _ := newTestChecker(b)
	c.Check(program)

	var loc *diagnostics.Location
	for _, d := range reporter.Diagnostics() {
		if d.Code == diagnostics.TypeMismatchStringToInt {
			loc = d.Location
		}
	}
	if loc == nil {
		t.Fatal("expected a located TypeMismatchStringToInt diagnostic")
	}
	if width := loc.ColumnEnd - loc.Column; width != len("longname") {
		t.Fatalf("caret width = %d, want %d (len(%q))", width, len("longname"), "longname")
	}
}

func TestDoubleToFloatPrecisionWarningCode1002(t *testing.T) {
	b := astbuild.New()
	d := b.Named(ast.KindDoubleVariableDefinition, "d")
	astbuild.Connect(d, b.DoubleLit(1.0))

	f := b.Named(ast.KindFloatVariableDefinition, "f")
	astbuild.Connect(f, b.Named(ast.KindVariable, "d"))

	program := b.Program(d, f)

	c, reporter, _ := newTestChecker(b)
	c.Check(program)

	if reporter.HasErrors() {
		t.Fatalf("expected no errors, got %+v", reporter.Diagnostics())
	}
	if reporter.Warnings() != 1 {
		t.Fatalf("expected exactly one warning, got %d", reporter.Warnings())
	}
}

func TestShadowingNoDiagnostics(t *testing.T) {
	b := astbuild.New()
	outer := b.Named(ast.KindIntVariableDefinition, "x")
	astbuild.Connect(outer, b.IntLit(1))

	inner := b.Named(ast.KindIntVariableDefinition, "x")
	astbuild.Connect(inner, b.IntLit(2))
	block := astbuild.Connect(b.Node(ast.KindBlockStatement), inner)

	program := b.Program(outer, block)

	c, reporter, _ := newTestChecker(b)
	if !c.Check(program) {
		t.Fatalf("shadowing should not fail, got %+v", reporter.Diagnostics())
	}
	if len(reporter.Diagnostics()) != 0 {
		t.Fatalf("expected zero diagnostics, got %+v", reporter.Diagnostics())
	}
}

func TestUseBeforeInitSuppressesCascade(t *testing.T) {
	b := astbuild.New()
	xDecl := b.Named(ast.KindIntVariableDefinition, "x") // no initializer

	yDecl := b.Named(ast.KindIntVariableDefinition, "y")
	sum := astbuild.Connect(b.Node(ast.KindAdd), b.Named(ast.KindVariable, "x"), b.IntLit(1))
	astbuild.Connect(yDecl, sum)

	program := b.Program(xDecl, yDecl)

	c, reporter, _ := newTestChecker(b)
	c.Check(program)

	count := 0
	for _, d := range reporter.Diagnostics() {
		if d.Code == diagnostics.VariableNotInitialized {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one VariableNotInitialized diagnostic, got %d among %+v", count, reporter.Diagnostics())
	}
	for _, d := range reporter.Diagnostics() {
		if d.Code == diagnostics.IncompatibleBinaryOperands || d.Entry.Severity == diagnostics.Error && d.Code != diagnostics.VariableNotInitialized {
			t.Errorf("unexpected cascading diagnostic: %+v", d)
		}
	}
}

func TestBuiltinOverloadResolutionAndArity(t *testing.T) {
	b := astbuild.New()
	args := astbuild.Connect(b.Node(ast.KindArgumentList), b.IntLit(1))
	call := b.Named(ast.KindFunctionCall, "print")
	astbuild.Connect(call, args)
	program := b.Program(call)

	c, reporter, _ := newTestChecker(b)
	if !c.Check(program) {
		t.Fatalf("print(1) should succeed, got %+v", reporter.Diagnostics())
	}

	b2 := astbuild.New()
	args2 := astbuild.Connect(b2.Node(ast.KindArgumentList), b2.IntLit(1), b2.IntLit(2))
	call2 := b2.Named(ast.KindFunctionCall, "print")
	astbuild.Connect(call2, args2)
	program2 := b2.Program(call2)

	c2, reporter2, _ := newTestChecker(b2)
	if c2.Check(program2) {
		t.Fatal("print(1, 2) should not resolve to any overload")
	}
	if reporter2.Diagnostics()[0].Code != diagnostics.NoMatchingOverload {
		t.Fatalf("expected NoMatchingOverload, got %+v", reporter2.Diagnostics())
	}
}

func TestBuiltinOverloadNoMatch(t *testing.T) {
	b := astbuild.New()
	args := astbuild.Connect(b.Node(ast.KindArgumentList), b.BoolLit(true))
	call := b.Named(ast.KindFunctionCall, "exit")
	astbuild.Connect(call, args)
	program := b.Program(call)

	c, reporter, _ := newTestChecker(b)
	if c.Check(program) {
		t.Fatal("exit(true) should not resolve to any overload")
	}
	if reporter.Diagnostics()[0].Code != diagnostics.NoMatchingOverload {
		t.Fatalf("expected NoMatchingOverload, got %+v", reporter.Diagnostics())
	}
}

func TestStructFieldOffsetsAndMissingField(t *testing.T) {
	b := astbuild.New()
	fieldX := b.Named(ast.KindStructField, "x")
	astbuild.Connect(fieldX, b.Node(ast.KindRefInt))
	fieldY := b.Named(ast.KindStructField, "y")
	astbuild.Connect(fieldY, b.Node(ast.KindRefInt))
	fieldList := astbuild.Connect(b.Node(ast.KindStructFieldList), fieldX, fieldY)
	structDef := b.Named(ast.KindStructDefinition, "P")
	astbuild.Connect(structDef, fieldList)

	pDecl := b.Named(ast.KindStructVariableDefinition, "p")
	astbuild.Connect(pDecl, b.Named(ast.KindRefCustom, "P"))

	assign := astbuild.Connect(b.Node(ast.KindAssignment),
		astbuild.Connect(b.Named(ast.KindMemberAccess, "x"), b.Named(ast.KindVariable, "p")),
		b.IntLit(5))

	program := b.Program(structDef, pDecl, assign)

	c, reporter, _ := newTestChecker(b)
	if !c.Check(program) {
		t.Fatalf("expected no diagnostics, got %+v", reporter.Diagnostics())
	}

	sym, found := c.Context().Global.LookupLocal("P")
	if !found || sym.Layout == nil {
		t.Fatal("struct symbol P with a layout was not registered")
	}
	if sym.Layout.FieldCount != 2 {
		t.Fatalf("FieldCount = %d, want 2", sym.Layout.FieldCount)
	}
	if sym.Layout.Fields[0].Offset != 0 || sym.Layout.Fields[1].Offset != 8 {
		t.Fatalf("offsets = %d,%d want 0,8", sym.Layout.Fields[0].Offset, sym.Layout.Fields[1].Offset)
	}

	// p.z does not exist.
	badAccess := astbuild.Connect(b.Named(ast.KindMemberAccess, "z"), b.Named(ast.KindVariable, "p"))
	if _, ok := typeOf(badAccess, c.Context()); ok {
		t.Fatal("p.z should fail to resolve")
	}
}

func TestForbiddenCastVsPrecisionLossCast(t *testing.T) {
	b := astbuild.New()

	forbidden := astbuild.Connect(b.Node(ast.KindCastExpression), b.StringLit("hi"), b.Node(ast.KindRefInt))
	c1, r1, _ := newTestChecker(b)
	if _, ok := typeOf(forbidden, c1.Context()); ok {
		t.Fatal("casting string to int should fail")
	}
	if r1.Diagnostics()[0].Code != diagnostics.ForbiddenCast {
		t.Fatalf("expected ForbiddenCast, got %+v", r1.Diagnostics())
	}

	b2 := astbuild.New()
	precisionLoss := astbuild.Connect(b2.Node(ast.KindCastExpression), b2.DoubleLit(3.14), b2.Node(ast.KindRefInt))
	c2, r2, _ := newTestChecker(b2)
	if _, ok := typeOf(precisionLoss, c2.Context()); !ok {
		t.Fatalf("casting double to int with precision loss should still succeed, got %+v", r2.Diagnostics())
	}
	if r2.Diagnostics()[0].Code != diagnostics.CastPrecisionLoss {
		t.Fatalf("expected CastPrecisionLoss, got %+v", r2.Diagnostics())
	}
}

func TestReturnOutsideFunction(t *testing.T) {
	b := astbuild.New()
	ret := astbuild.Connect(b.Node(ast.KindReturnStatement), b.IntLit(1))
	program := b.Program(ret)

	c, reporter, _ := newTestChecker(b)
	if c.Check(program) {
		t.Fatal("top-level return should fail")
	}
	if !reporter.HasErrors() {
		t.Fatal("expected HasErrors() = true")
	}
}

// buildIntFunction builds `fn name(px: int) -> int { ret }`, where ret
// is the body's only statement: callers pass the return statement
// they want to exercise.
func buildIntFunction(b *astbuild.Builder, name string, ret *ast.Node) *ast.Node {
	params := astbuild.Connect(b.Node(ast.KindParameterList),
		astbuild.Connect(b.Named(ast.KindParameter, "px"), b.Node(ast.KindRefInt)))
	returnType := astbuild.Connect(b.Node(ast.KindReturnType), b.Node(ast.KindRefInt))
	body := b.Block(ret)
	fn := b.Named(ast.KindFunctionDefinition, name)
	astbuild.Connect(fn, params, returnType, body)
	return fn
}

func TestFunctionDefinitionCallAndReturn(t *testing.T) {
	b := astbuild.New()
	ret := astbuild.Connect(b.Node(ast.KindReturnStatement), b.Named(ast.KindVariable, "px"))
	fn := buildIntFunction(b, "identity", ret)

	args := astbuild.Connect(b.Node(ast.KindArgumentList), b.IntLit(7))
	call := b.Named(ast.KindFunctionCall, "identity")
	astbuild.Connect(call, args)
	result := b.Named(ast.KindIntVariableDefinition, "y")
	astbuild.Connect(result, call)

	program := b.Program(fn, result)

	c, reporter, _ := newTestChecker(b)
	if !c.Check(program) {
		t.Fatalf("expected no diagnostics, got %+v", reporter.Diagnostics())
	}
}

func TestFunctionArgCountMismatch(t *testing.T) {
	b := astbuild.New()
	ret := astbuild.Connect(b.Node(ast.KindReturnStatement), b.Named(ast.KindVariable, "px"))
	fn := buildIntFunction(b, "identity", ret)

	args := astbuild.Connect(b.Node(ast.KindArgumentList), b.IntLit(1), b.IntLit(2))
	call := b.Named(ast.KindFunctionCall, "identity")
	astbuild.Connect(call, args)

	program := b.Program(fn, call)

	c, reporter, _ := newTestChecker(b)
	if c.Check(program) {
		t.Fatal("calling identity(int,int) should fail against a one-parameter function")
	}
	if reporter.Diagnostics()[len(reporter.Diagnostics())-1].Code != diagnostics.FunctionArgCountMismatch {
		t.Fatalf("expected FunctionArgCountMismatch, got %+v", reporter.Diagnostics())
	}
}

func TestReturnTypeMismatch(t *testing.T) {
	b := astbuild.New()
	ret := astbuild.Connect(b.Node(ast.KindReturnStatement), b.StringLit("nope"))
	fn := buildIntFunction(b, "identity", ret)
	program := b.Program(fn)

	c, reporter, _ := newTestChecker(b)
	if c.Check(program) {
		t.Fatal("returning a string from an int function should fail")
	}
	found := false
	for _, d := range reporter.Diagnostics() {
		if d.Code == diagnostics.ReturnTypeMismatch {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ReturnTypeMismatch among diagnostics, got %+v", reporter.Diagnostics())
	}
}

func TestMissingReturnValue(t *testing.T) {
	b := astbuild.New()
	ret := b.Node(ast.KindReturnStatement) // bare `return;` with no expr
	fn := buildIntFunction(b, "identity", ret)
	program := b.Program(fn)

	c, reporter, _ := newTestChecker(b)
	if c.Check(program) {
		t.Fatal("a bare return in a non-void function should fail")
	}
	if reporter.Diagnostics()[0].Code != diagnostics.MissingReturnValue {
		t.Fatalf("expected MissingReturnValue, got %+v", reporter.Diagnostics())
	}
}

func TestUnexpectedReturnValue(t *testing.T) {
	b := astbuild.New()
	params := astbuild.Connect(b.Node(ast.KindParameterList))
	body := b.Block(astbuild.Connect(b.Node(ast.KindReturnStatement), b.IntLit(1)))
	fn := b.Named(ast.KindFunctionDefinition, "doit")
	astbuild.Connect(fn, params, body) // no RETURN_TYPE node: implicitly void
	program := b.Program(fn)

	c, reporter, _ := newTestChecker(b)
	if c.Check(program) {
		t.Fatal("returning a value from a void function should fail")
	}
	if reporter.Diagnostics()[0].Code != diagnostics.UnexpectedReturnValue {
		t.Fatalf("expected UnexpectedReturnValue, got %+v", reporter.Diagnostics())
	}
}

func TestConditionTypeMismatchInIf(t *testing.T) {
	b := astbuild.New()
	ifNode := astbuild.Connect(b.Node(ast.KindIfConditional), b.StringLit("not a bool"))
	program := b.Program(ifNode)

	c, reporter, _ := newTestChecker(b)
	if c.Check(program) {
		t.Fatal("a string condition should fail")
	}
	if reporter.Diagnostics()[0].Code != diagnostics.ConditionTypeMismatch {
		t.Fatalf("expected ConditionTypeMismatch, got %+v", reporter.Diagnostics())
	}
}

func TestIfTrueBranchAndElseBranchAreChecked(t *testing.T) {
	b := astbuild.New()
	trueDecl := b.Named(ast.KindIntVariableDefinition, "x")
	astbuild.Connect(trueDecl, b.StringLit("bad"))
	trueBranch := astbuild.Connect(b.Node(ast.KindIfTrueBranch), b.Block(trueDecl))

	elseDecl := b.Named(ast.KindIntVariableDefinition, "y")
	astbuild.Connect(elseDecl, b.StringLit("also bad"))
	elseBranch := astbuild.Connect(b.Node(ast.KindElseBranch), b.Block(elseDecl))

	ifNode := astbuild.Connect(b.Node(ast.KindIfConditional), b.BoolLit(true), trueBranch, elseBranch)
	program := b.Program(ifNode)

	c, reporter, _ := newTestChecker(b)
	if c.Check(program) {
		t.Fatalf("both branches declare a bad initializer, expected failure, got %+v", reporter.Diagnostics())
	}
	codes := map[diagnostics.Code]int{}
	for _, d := range reporter.Diagnostics() {
		codes[d.Code]++
	}
	if codes[diagnostics.TypeMismatchStringToInt] != 2 {
		t.Fatalf("expected one StringToInt mismatch per branch, got %+v", reporter.Diagnostics())
	}
}

func TestConditionTypeMismatchInLoop(t *testing.T) {
	b := astbuild.New()
	loop := astbuild.Connect(b.Node(ast.KindLoopStatement), b.StringLit("not a bool"))
	program := b.Program(loop)

	c, reporter, _ := newTestChecker(b)
	if c.Check(program) {
		t.Fatal("a string loop condition should fail")
	}
	if reporter.Diagnostics()[0].Code != diagnostics.ConditionTypeMismatch {
		t.Fatalf("expected ConditionTypeMismatch, got %+v", reporter.Diagnostics())
	}
}

func TestCompoundAssignmentOperators(t *testing.T) {
	kinds := []ast.Kind{
		ast.KindCompoundAddAssign, ast.KindCompoundSubAssign,
		ast.KindCompoundMulAssign, ast.KindCompoundDivAssign,
	}
	for _, k := range kinds {
		b := astbuild.New()
		decl := b.Named(ast.KindIntVariableDefinition, "x")
		astbuild.Connect(decl, b.IntLit(1))
		assign := astbuild.Connect(b.Node(k), b.Named(ast.KindVariable, "x"), b.IntLit(2))
		program := b.Program(decl, assign)

		c, reporter, _ := newTestChecker(b)
		if !c.Check(program) {
			t.Fatalf("%s: expected no diagnostics, got %+v", k, reporter.Diagnostics())
		}
	}
}

func TestInvalidAssignmentTarget(t *testing.T) {
	b := astbuild.New()
	assign := astbuild.Connect(b.Node(ast.KindAssignment), b.IntLit(1), b.IntLit(2))
	program := b.Program(assign)

	c, reporter, _ := newTestChecker(b)
	if c.Check(program) {
		t.Fatal("assigning to a literal should fail")
	}
	if reporter.Diagnostics()[0].Code != diagnostics.InvalidAssignmentTarget {
		t.Fatalf("expected InvalidAssignmentTarget, got %+v", reporter.Diagnostics())
	}
}

func TestVariableRedeclarationInSameScope(t *testing.T) {
	b := astbuild.New()
	first := b.Named(ast.KindIntVariableDefinition, "x")
	astbuild.Connect(first, b.IntLit(1))
	second := b.Named(ast.KindIntVariableDefinition, "x")
	astbuild.Connect(second, b.IntLit(2))
	program := b.Program(first, second)

	c, reporter, _ := newTestChecker(b)
	if c.Check(program) {
		t.Fatal("redeclaring x in the same scope should fail")
	}
	if reporter.Diagnostics()[0].Code != diagnostics.VariableRedeclared {
		t.Fatalf("expected VariableRedeclared, got %+v", reporter.Diagnostics())
	}
}

func TestFunctionRedeclarationInSameScope(t *testing.T) {
	b := astbuild.New()
	ret1 := astbuild.Connect(b.Node(ast.KindReturnStatement), b.Named(ast.KindVariable, "px"))
	fn1 := buildIntFunction(b, "dup", ret1)
	ret2 := astbuild.Connect(b.Node(ast.KindReturnStatement), b.Named(ast.KindVariable, "px"))
	fn2 := buildIntFunction(b, "dup", ret2)
	program := b.Program(fn1, fn2)

	c, reporter, _ := newTestChecker(b)
	if c.Check(program) {
		t.Fatal("redeclaring a function name in the same scope should fail")
	}
	if reporter.Diagnostics()[0].Code != diagnostics.VariableRedeclared {
		t.Fatalf("expected VariableRedeclared, got %+v", reporter.Diagnostics())
	}
}

func TestUndefinedVariableLookup(t *testing.T) {
	b := astbuild.New()
	decl := b.Named(ast.KindIntVariableDefinition, "y")
	astbuild.Connect(decl, b.Named(ast.KindVariable, "missing"))
	program := b.Program(decl)

	c, reporter, _ := newTestChecker(b)
	if c.Check(program) {
		t.Fatal("referencing an undefined variable should fail")
	}
	if reporter.Diagnostics()[0].Code != diagnostics.UndefinedVariable {
		t.Fatalf("expected UndefinedVariable, got %+v", reporter.Diagnostics())
	}
}

func TestUndefinedFunctionCall(t *testing.T) {
	b := astbuild.New()
	args := astbuild.Connect(b.Node(ast.KindArgumentList))
	call := b.Named(ast.KindFunctionCall, "ghost")
	astbuild.Connect(call, args)
	program := b.Program(call)

	c, reporter, _ := newTestChecker(b)
	if c.Check(program) {
		t.Fatal("calling an undefined function should fail")
	}
	if reporter.Diagnostics()[0].Code != diagnostics.UndefinedFunction {
		t.Fatalf("expected UndefinedFunction, got %+v", reporter.Diagnostics())
	}
}

func TestCallingNonFunctionSymbol(t *testing.T) {
	b := astbuild.New()
	decl := b.Named(ast.KindIntVariableDefinition, "notafunc")
	astbuild.Connect(decl, b.IntLit(1))

	args := astbuild.Connect(b.Node(ast.KindArgumentList))
	call := b.Named(ast.KindFunctionCall, "notafunc")
	astbuild.Connect(call, args)

	program := b.Program(decl, call)

	c, reporter, _ := newTestChecker(b)
	if c.Check(program) {
		t.Fatal("calling a variable as a function should fail")
	}
	found := false
	for _, d := range reporter.Diagnostics() {
		if d.Code == diagnostics.CallingNonFunction {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected CallingNonFunction among diagnostics, got %+v", reporter.Diagnostics())
	}
}
