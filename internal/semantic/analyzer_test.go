package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Scoutboy06/tsc-go/internal/parser"
)

func analyze(t *testing.T, source string) []Diagnostic {
	t.Helper()
	prog, err := parser.Parse(source)
	require.NoError(t, err)
	return Analyze(prog)
}

func TestAnalyzeEmptySource(t *testing.T) {
	diags := analyze(t, "")
	assert.Empty(t, diags)
}

func TestUnknownVariableInBinaryExpression(t *testing.T) {
	diags := analyze(t, "let y = 6 + 5 * x;")
	require.Len(t, diags, 1)
	assert.Equal(t, UnknownVariable, diags[0].Kind)
	assert.Equal(t, "x", diags[0].Identifier.String())
}

func TestTypeMismatchOnAnnotatedVariable(t *testing.T) {
	diags := analyze(t, `let foo: string = 123;`)
	require.Len(t, diags, 1)
	assert.Equal(t, TypeMismatch, diags[0].Kind)
	assert.Equal(t, "string", diags[0].Expected.String())
	assert.Equal(t, "number", diags[0].Received.String())
}

func TestRecordWithMismatchedValue(t *testing.T) {
	diags := analyze(t, `let o: Record<string, boolean> = { a: true, b: "x" };`)
	require.Len(t, diags, 1)
	assert.Equal(t, TypeMismatch, diags[0].Kind)
	assert.Equal(t, "boolean", diags[0].Expected.String())
	assert.Equal(t, "string", diags[0].Received.String())
}

func TestStringArrayWithNumericElements(t *testing.T) {
	diags := analyze(t, `let a: string[] = [1, 2];`)
	require.Len(t, diags, 2)
	for _, d := range diags {
		assert.Equal(t, TypeMismatch, d.Kind)
		assert.Equal(t, "string", d.Expected.String())
		assert.Equal(t, "number", d.Received.String())
	}
	assert.Less(t, diags[0].Span.Start, diags[1].Span.Start)
}

func TestFunctionReturnTypeMismatch(t *testing.T) {
	diags := analyze(t, `function getNumber(): number { return "abc"; }`)
	require.Len(t, diags, 1)
	assert.Equal(t, TypeMismatch, diags[0].Kind)
	assert.Equal(t, "number", diags[0].Expected.String())
	assert.Equal(t, "string", diags[0].Received.String())
}

func TestForwardReferenceResolves(t *testing.T) {
	diags := analyze(t, "function f() { return g(); } function g(): number { return 1; }")
	assert.Empty(t, diags)
}

func TestUnionTypeStringFormatting(t *testing.T) {
	u := ResolvedType{Kind: Union, Members: []ResolvedType{Prim(String), Prim(Number), Prim(Null)}}
	assert.Equal(t, "string | number | null", u.String())
}

func TestArrayOfUnionTypeStringFormatting(t *testing.T) {
	u := ResolvedType{Kind: Union, Members: []ResolvedType{Prim(Number), Prim(Null), Prim(String)}}
	arr := NewArray(u)
	assert.Equal(t, "(number | null | string)[]", arr.String())
}

func TestRecordTypeStringFormatting(t *testing.T) {
	rec := NewObject(Prim(String), ResolvedType{Kind: Union, Members: []ResolvedType{Prim(Number), Prim(Null)}})
	assert.Equal(t, "Record<string, number | null>", rec.String())
}

func TestExtendDeduplicatesAndPreservesOrder(t *testing.T) {
	t0 := Prim(Unknown)
	t1 := t0.Extend(Prim(String))
	t2 := t1.Extend(Prim(Number))
	t3 := t2.Extend(Prim(String)) // duplicate, should not grow the union
	assert.Equal(t, "string | number", t3.String())
}

func TestValidAnnotatedDeclarationProducesNoDiagnostics(t *testing.T) {
	diags := analyze(t, `let x: number = 1; let y: string = "a"; let z = x + 1;`)
	assert.Empty(t, diags)
}

func TestEnumMembersBehaveLikeConstBindings(t *testing.T) {
	diags := analyze(t, `enum Color { Red, Green = 5 } let x: number = Red; let y: number = Green;`)
	assert.Empty(t, diags)
}

func TestEnumNameIsUnknownTypedSymbol(t *testing.T) {
	diags := analyze(t, `enum Color { Red } let x: string = Color;`)
	require.Len(t, diags, 1)
	assert.Equal(t, TypeMismatch, diags[0].Kind)
	assert.Equal(t, "string", diags[0].Expected.String())
	assert.Equal(t, "unknown", diags[0].Received.String())
}

func TestForOfLoopVariableGetsArrayElementType(t *testing.T) {
	diags := analyze(t, `let arr: string[] = ["a"]; for (const x of arr) { let y: string = x; }`)
	assert.Empty(t, diags)
}

func TestForOfLoopVariableMismatchAgainstElementType(t *testing.T) {
	diags := analyze(t, `let arr: string[] = ["a"]; for (const x of arr) { let y: number = x; }`)
	require.Len(t, diags, 1)
	assert.Equal(t, TypeMismatch, diags[0].Kind)
	assert.Equal(t, "number", diags[0].Expected.String())
	assert.Equal(t, "string", diags[0].Received.String())
}

func TestForInLoopVariableIsString(t *testing.T) {
	diags := analyze(t, `let o: Record<string, number> = { a: 1 }; for (const k in o) { let s: string = k; }`)
	assert.Empty(t, diags)
}

func TestObjectComputedKeyTypedRecursively(t *testing.T) {
	diags := analyze(t, `let n: number = 1; let o = { [n]: "x" };`)
	assert.Empty(t, diags)
}

func TestBinaryArithmeticRejectsStringOperand(t *testing.T) {
	diags := analyze(t, `let x = 1 - "a";`)
	require.Len(t, diags, 1)
	assert.Equal(t, TypeMismatch, diags[0].Kind)
	assert.Equal(t, "number", diags[0].Expected.String())
	assert.Equal(t, "string", diags[0].Received.String())
}

func TestBinaryPlusAcceptsEitherNumberOrString(t *testing.T) {
	diags := analyze(t, `let a = 1 + 2; let b = "x" + "y";`)
	assert.Empty(t, diags)
}
