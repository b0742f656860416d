// Package parser implements a recursive-descent, precedence-climbing
// parser over the token stream produced by internal/lexer, building the
// tree of internal/ast nodes.
package parser

import (
	"fmt"

	"github.com/Scoutboy06/tsc-go/internal/ast"
	"github.com/Scoutboy06/tsc-go/internal/lexer"
	"github.com/Scoutboy06/tsc-go/internal/span"
	"github.com/Scoutboy06/tsc-go/internal/token"
)

// Parser consumes tokens from a Lexer and builds an *ast.Program. It
// aborts on the first syntax error rather than attempting recovery.
type Parser struct {
	lexer   *lexer.Lexer
	source  string
	curr    token.Token
	prevEnd int
}

// New creates a Parser over source.
func New(source string) *Parser {
	p := &Parser{lexer: lexer.New(source), source: source}
	p.curr = p.lexer.NextToken()
	return p
}

// Parse parses the whole source as a Program, or returns the first fatal
// error encountered.
func Parse(source string) (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(*Error); ok {
				err = pe
				return
			}
			panic(r)
		}
	}()
	p := New(source)
	return p.parseProgram(), nil
}

func (p *Parser) advance() token.Token {
	t := p.curr
	p.prevEnd = t.Span.End
	p.curr = p.lexer.NextToken()
	return t
}

func (p *Parser) peekAt(n int) token.Token {
	if n == 0 {
		return p.lexer.PeekToken()
	}
	return p.lexer.PeekTokenAt(n - 1)
}

func (p *Parser) is(k token.Kind) bool {
	return p.curr.Kind == k
}

func (p *Parser) isKeyword(kw token.Keyword) bool {
	return p.curr.Kind == token.KeywordTok && p.curr.Value.Keyword == kw
}

func (p *Parser) expect(k token.Kind) token.Token {
	if !p.is(k) {
		p.throwInvalidToken(fmt.Sprintf("expected %s, found %s", k, p.curr.Kind))
	}
	return p.advance()
}

func (p *Parser) expectKeyword(kw token.Keyword) token.Token {
	if !p.isKeyword(kw) {
		p.throwInvalidToken(fmt.Sprintf("expected '%s', found %s", kw, p.curr.Kind))
	}
	return p.advance()
}

func (p *Parser) throwInvalidToken(message string) {
	panic(&Error{
		Kind:    InvalidToken,
		Token:   p.curr,
		Message: message,
		Source:  p.source,
	})
}

func (p *Parser) throwTodo(message string) {
	panic(&Error{
		Kind:    Todo,
		Token:   p.curr,
		Message: message,
		Source:  p.source,
	})
}

func (p *Parser) throwInternal(message string) {
	panic(&Error{
		Kind:    InternalError,
		Token:   p.curr,
		Message: message,
		Source:  p.source,
	})
}

func (p *Parser) parseProgram() *ast.Program {
	var body []ast.Statement
	for !p.is(token.Eof) {
		body = append(body, p.parseStatement())
	}
	return &ast.Program{Base: ast.Base{Sp: span.New(0, len(p.source))}, Body: body}
}

// spanFrom builds a Span from start up to the end of the most recently
// consumed token.
func (p *Parser) spanFrom(start int) span.Span {
	return span.New(start, p.prevEnd)
}
