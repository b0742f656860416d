package parser

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Scoutboy06/tsc-go/internal/ast"
	"github.com/Scoutboy06/tsc-go/internal/span"
	"github.com/Scoutboy06/tsc-go/internal/token"
)

func TestParseEmptySource(t *testing.T) {
	prog, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, prog.Body)
}

func TestProgramSpanCoversWholeSourceIncludingTrivia(t *testing.T) {
	source := "  let x = 1;  "
	prog, err := Parse(source)
	require.NoError(t, err)
	assert.Equal(t, 0, prog.Span().Start)
	assert.Equal(t, len(source), prog.Span().End)
}

func TestParseVariableDeclarationWithBinaryExpression(t *testing.T) {
	prog, err := Parse("let y = 6 + 5 * x;")
	require.NoError(t, err)
	require.Len(t, prog.Body, 1)

	decl, ok := prog.Body[0].(*ast.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, ast.Let, decl.Kind)
	require.Len(t, decl.Declarations, 1)

	bin, ok := decl.Declarations[0].Init.(*ast.BinaryExpression)
	require.True(t, ok)

	_, leftIsNumber := bin.Left.(*ast.NumberLiteral)
	assert.True(t, leftIsNumber)

	rightMul, ok := bin.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	_, rightLeftIsNumber := rightMul.Left.(*ast.NumberLiteral)
	assert.True(t, rightLeftIsNumber)
	_, rightRightIsIdent := rightMul.Right.(*ast.Identifier)
	assert.True(t, rightRightIsIdent)
}

func TestParenthesizedExpressionIsNotArrowFunction(t *testing.T) {
	prog, err := Parse("(50.5);")
	require.NoError(t, err)
	require.Len(t, prog.Body, 1)

	stmt, ok := prog.Body[0].(*ast.ExpressionStatement)
	require.True(t, ok)

	_, isParen := stmt.Expression.(*ast.ParenthesisExpression)
	assert.True(t, isParen, "expected a ParenthesisExpression, got %T", stmt.Expression)
}

func TestTypedArrowFunctionWithReturnType(t *testing.T) {
	prog, err := Parse("const sum = (n1: number, n2: number): number => n1 + n2;")
	require.NoError(t, err)
	require.Len(t, prog.Body, 1)

	decl := prog.Body[0].(*ast.VariableDeclaration)
	arrow, ok := decl.Declarations[0].Init.(*ast.ArrowFunctionExpression)
	require.True(t, ok, "expected an ArrowFunctionExpression, got %T", decl.Declarations[0].Init)
	require.Len(t, arrow.Params, 2)
	assert.NotNil(t, arrow.ReturnType)

	_, bodyIsExpr := arrow.Body.(ast.Expression)
	assert.True(t, bodyIsExpr)
}

func TestTemplateLiteralAsSingleToken(t *testing.T) {
	prog, err := Parse("let s = `a ${1} b`;")
	require.NoError(t, err)
	decl := prog.Body[0].(*ast.VariableDeclaration)
	_, ok := decl.Declarations[0].Init.(*ast.TemplateLiteral)
	_ = ok // the lexer folds templates into a String token, parsed as a StringLiteral
	_, isString := decl.Declarations[0].Init.(*ast.StringLiteral)
	assert.True(t, isString)
}

func TestObjectLiteralWithMixedValues(t *testing.T) {
	prog, err := Parse(`let o: Record<string, boolean> = { a: true, b: "x" };`)
	require.NoError(t, err)
	decl := prog.Body[0].(*ast.VariableDeclaration)
	obj, ok := decl.Declarations[0].Init.(*ast.ObjectExpression)
	require.True(t, ok)
	assert.Len(t, obj.Properties, 2)
}

func TestArrayLiteral(t *testing.T) {
	prog, err := Parse(`let a: string[] = [1, 2];`)
	require.NoError(t, err)
	decl := prog.Body[0].(*ast.VariableDeclaration)
	arr, ok := decl.Declarations[0].Init.(*ast.ArrayExpression)
	require.True(t, ok)
	assert.Len(t, arr.Elements, 2)
}

func TestFunctionDeclarationReturnType(t *testing.T) {
	prog, err := Parse(`function getNumber(): number { return "abc"; }`)
	require.NoError(t, err)
	fn, ok := prog.Body[0].(*ast.FunctionDeclaration)
	require.True(t, ok)
	assert.NotNil(t, fn.ReturnType)
	require.Len(t, fn.Body.Body, 1)
	_, isReturn := fn.Body.Body[0].(*ast.ReturnStatement)
	assert.True(t, isReturn)
}

func TestIfWhileForStatements(t *testing.T) {
	prog, err := Parse(`
		if (a) { b(); } else { c(); }
		while (a) { b(); }
		for (let i = 0; i < 10; i++) { b(); }
	`)
	require.NoError(t, err)
	require.Len(t, prog.Body, 3)
	_, isIf := prog.Body[0].(*ast.IfStatement)
	_, isWhile := prog.Body[1].(*ast.WhileStatement)
	_, isFor := prog.Body[2].(*ast.ForStatement)
	assert.True(t, isIf)
	assert.True(t, isWhile)
	assert.True(t, isFor)
}

func TestTryCatchFinally(t *testing.T) {
	prog, err := Parse(`try { a(); } catch (e) { b(); } finally { c(); }`)
	require.NoError(t, err)
	try, ok := prog.Body[0].(*ast.TryStatement)
	require.True(t, ok)
	assert.NotNil(t, try.Handler)
	assert.NotNil(t, try.Finalizer)
	assert.True(t, try.HasParam)
}

func TestEnumDeclaration(t *testing.T) {
	prog, err := Parse(`enum Color { Red, Green, Blue }`)
	require.NoError(t, err)
	e, ok := prog.Body[0].(*ast.EnumDeclaration)
	require.True(t, ok)
	assert.Len(t, e.Members, 3)
}

func TestSpansAreContained(t *testing.T) {
	prog, err := Parse("let x = 1 + 2;")
	require.NoError(t, err)
	decl := prog.Body[0].(*ast.VariableDeclaration)
	bin := decl.Declarations[0].Init.(*ast.BinaryExpression)
	assert.True(t, decl.Span().Contains(bin.Span()))
	assert.True(t, bin.Span().Contains(bin.Left.Span()))
	assert.True(t, bin.Span().Contains(bin.Right.Span()))
}

func TestInvalidTokenProducesFatalError(t *testing.T) {
	_, err := Parse("let x = ;")
	require.Error(t, err)
	var parseErr *Error
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, InvalidToken, parseErr.Kind)
	snippet := parseErr.Print()
	assert.Contains(t, snippet, "An error occured:")
}

func TestErrorSnippetHighlightsTokenInColor(t *testing.T) {
	_, err := Parse("let x = ;")
	require.Error(t, err)
	var parseErr *Error
	require.ErrorAs(t, err, &parseErr)
	snippet := parseErr.Print()
	assert.Contains(t, snippet, ansiRed)
	assert.Contains(t, snippet, ansiReset)
}

// TestErrorSnippetScrollsToTokenPastMaxWidth checks that when the offending
// token sits past errorOutMaxWidth columns, the printed window scrolls
// right to keep the token visible instead of cropping it out from the
// start of the line.
func TestErrorSnippetScrollsToTokenPastMaxWidth(t *testing.T) {
	padding := ""
	for i := 0; i < 50; i++ {
		padding += "x"
	}
	source := "let " + padding + " = ;"
	parseErr := &Error{
		Kind:    InvalidToken,
		Token:   token.Token{Kind: token.SemiColon, Span: span.New(len(source)-1, len(source))},
		Message: "unexpected token",
		Source:  source,
	}
	snippet := parseErr.Print()
	assert.Contains(t, snippet, ";")
}

// TestParseIsIdempotentInShape checks that parsing the same source twice
// produces structurally identical trees: same statements, same spans, same
// interned names. A hand-rolled recursive reflect.DeepEqual walk would miss
// unexported fields differently than deep.Equal does, so this leans on
// go-test/deep instead, the way playbymail-ottomap's parser tests compare
// parsed domain values.
func TestParseIsIdempotentInShape(t *testing.T) {
	source := `
		function add(a: number, b: number): number {
			return a + b;
		}
		class Point {
			x: number;
			constructor(x: number) { this.x = x; }
		}
		enum Color { Red, Green, Blue }
		const p: Record<string, number> = { x: 1, y: 2 };
	`
	prog1, err := Parse(source)
	require.NoError(t, err)
	prog2, err := Parse(source)
	require.NoError(t, err)

	if diff := deep.Equal(prog1, prog2); diff != nil {
		t.Errorf("reparsing identical source produced a different tree: %v", diff)
	}
}
