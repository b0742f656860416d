package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Scoutboy06/tsc-go/internal/token"
)

func allKinds(t *testing.T, source string) []token.Kind {
	t.Helper()
	l := New(source)
	var kinds []token.Kind
	for {
		tok := l.NextToken()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.Eof {
			break
		}
	}
	return kinds
}

func TestEmptySource(t *testing.T) {
	kinds := allKinds(t, "")
	assert.Equal(t, []token.Kind{token.Eof}, kinds)
}

func TestNumberLiteral(t *testing.T) {
	l := New("3.14")
	tok := l.NextToken()
	require.Equal(t, token.Number, tok.Kind)
	assert.InDelta(t, 3.14, tok.Value.Number, 0.0000001)
}

func TestBigIntSuffixDiscarded(t *testing.T) {
	l := New("42n")
	tok := l.NextToken()
	require.Equal(t, token.Number, tok.Kind)
	assert.Equal(t, float64(42), tok.Value.Number)
	assert.Equal(t, token.Eof, l.NextToken().Kind)
}

func TestIdentifierVsKeywordVsBoolean(t *testing.T) {
	kinds := allKinds(t, "let x = true")
	assert.Equal(t, []token.Kind{
		token.KeywordTok, token.Identifier, token.Equals, token.Boolean, token.Eof,
	}, kinds)
}

func TestNullIsItsOwnKind(t *testing.T) {
	l := New("null")
	tok := l.NextToken()
	assert.Equal(t, token.Null, tok.Kind)
}

func TestStringLiteralEscaping(t *testing.T) {
	l := New(`"a\"b"`)
	tok := l.NextToken()
	require.Equal(t, token.String, tok.Kind)
	assert.Equal(t, `a"b`, tok.Value.Str.String())
}

func TestTemplateLiteralIsSingleToken(t *testing.T) {
	l := New("`hello ${ `nested ${1}` } world`")
	tok := l.NextToken()
	require.Equal(t, token.String, tok.Kind)
	assert.Equal(t, token.Eof, l.NextToken().Kind)
}

func TestCommentsAreSkipped(t *testing.T) {
	kinds := allKinds(t, "// comment\nlet /* block */ x = 1;")
	assert.Equal(t, []token.Kind{
		token.KeywordTok, token.Identifier, token.Equals, token.Number, token.SemiColon, token.Eof,
	}, kinds)
}

func TestMultiCharOperators(t *testing.T) {
	kinds := allKinds(t, "a === b !== c >>> d ** e")
	want := []token.Kind{
		token.Identifier, token.TripleEquals, token.Identifier, token.StrictNotEqual,
		token.Identifier, token.ZeroFillRightShift, token.Identifier, token.Exponentiation,
		token.Identifier, token.Eof,
	}
	assert.Equal(t, want, kinds)
}

func TestArrowToken(t *testing.T) {
	kinds := allKinds(t, "x => x")
	assert.Equal(t, []token.Kind{token.Identifier, token.ArrowFn, token.Identifier, token.Eof}, kinds)
}

func TestPeekTokenAtDoesNotConsume(t *testing.T) {
	l := New("a b c")
	first := l.PeekToken()
	second := l.PeekTokenAt(1)
	assert.Equal(t, token.Identifier, first.Kind)
	assert.Equal(t, token.Identifier, second.Kind)
	// Nothing was consumed: NextToken must still return "a" first.
	assert.Equal(t, first.Span, l.NextToken().Span)
}

func TestShebangLineProducesSingleToken(t *testing.T) {
	kinds := allKinds(t, "#!/usr/bin/env node\nlet x = 1;")
	assert.Equal(t, []token.Kind{
		token.Shebang, token.KeywordTok, token.Identifier, token.Equals,
		token.Number, token.SemiColon, token.Eof,
	}, kinds)
}

func TestShebangWithoutTrailingNewlineSpansToEOF(t *testing.T) {
	l := New("#!/usr/bin/env node")
	tok := l.NextToken()
	require.Equal(t, token.Shebang, tok.Kind)
	assert.Equal(t, token.Eof, l.NextToken().Kind)
}
