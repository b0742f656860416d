package token

import (
	"github.com/Scoutboy06/tsc-go/internal/atom"
	"github.com/Scoutboy06/tsc-go/internal/span"
)

// Value carries the decoded payload of a token, when its Kind has one.
// Exactly one field is meaningful for a given Kind: Number for Kind Number,
// Str for Kind String (and RegexLiteral, holding the raw source text
// between delimiters), Bool for Kind Boolean, Keyword for Kind KeywordTok.
type Value struct {
	Number  float64
	Str     atom.Atom
	Bool    bool
	Keyword Keyword
}

// Token is the unit the lexer produces and the parser consumes: a
// classification, a decoded value (when applicable) and the source span it
// came from.
type Token struct {
	Kind  Kind
	Value Value
	Span  span.Span
}

// Is reports whether t has the given Kind.
func (t Token) Is(k Kind) bool {
	return t.Kind == k
}

// ExpectNumber panics if t is not a Number token. Used by callers that have
// already checked t.Kind.
func (t Token) ExpectNumber() float64 {
	if t.Kind != Number {
		panic("token: ExpectNumber called on non-number token")
	}
	return t.Value.Number
}

// ExpectString panics if t is not a String token.
func (t Token) ExpectString() atom.Atom {
	if t.Kind != String {
		panic("token: ExpectString called on non-string token")
	}
	return t.Value.Str
}

// ExpectBool panics if t is not a Boolean token.
func (t Token) ExpectBool() bool {
	if t.Kind != Boolean {
		panic("token: ExpectBool called on non-boolean token")
	}
	return t.Value.Bool
}

// ExpectKeyword panics if t is not a KeywordTok token.
func (t Token) ExpectKeyword() Keyword {
	if t.Kind != KeywordTok {
		panic("token: ExpectKeyword called on non-keyword token")
	}
	return t.Value.Keyword
}
