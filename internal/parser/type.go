package parser

import (
	"github.com/Scoutboy06/tsc-go/internal/ast"
	"github.com/Scoutboy06/tsc-go/internal/token"
)

// parseTypeAnnotation parses a type in annotation position (`: T`), including
// union types (`A | B`) and postfix array suffixes (`A[]`).
func (p *Parser) parseTypeAnnotation() ast.TypeAnnotation {
	start := p.curr.Span.Start
	first := p.parsePostfixType()
	if !p.is(token.BitwiseOr) {
		return first
	}
	members := []ast.TypeAnnotation{first}
	for p.is(token.BitwiseOr) {
		p.advance()
		members = append(members, p.parsePostfixType())
	}
	return &ast.UnionTypeAnnotation{Base: p.base(start), Members: members}
}

func (p *Parser) parsePostfixType() ast.TypeAnnotation {
	start := p.curr.Span.Start
	t := p.parseTypeValue()
	for p.is(token.OpenBracket) {
		p.advance()
		p.expect(token.CloseBracket)
		t = &ast.ArrayTypeAnnotation{Base: p.base(start), ElementType: t}
	}
	return t
}

func (p *Parser) parseTypeValue() ast.TypeAnnotation {
	start := p.curr.Span.Start

	if p.is(token.OpenParen) {
		return p.parseFunctionTypeAnnotation()
	}

	if p.is(token.KeywordTok) {
		switch p.curr.Value.Keyword {
		case token.StringType:
			p.advance()
			return &ast.KeywordTypeAnnotation{Base: p.base(start), Name: ast.StringType}
		case token.NumberType:
			p.advance()
			return &ast.KeywordTypeAnnotation{Base: p.base(start), Name: ast.NumberType}
		case token.BooleanType:
			p.advance()
			return &ast.KeywordTypeAnnotation{Base: p.base(start), Name: ast.BooleanType}
		}
	}

	if p.is(token.Null) {
		p.advance()
		return &ast.KeywordTypeAnnotation{Base: p.base(start), Name: ast.NullType}
	}

	name := p.expectIdentifierName()
	var typeArgs []ast.TypeAnnotation
	if p.is(token.LessThan) {
		p.advance()
		for {
			typeArgs = append(typeArgs, p.parseTypeAnnotation())
			if p.is(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		p.expect(token.GreaterThan)
	}
	return &ast.TypeReference{Base: p.base(start), Name: name, TypeArgs: typeArgs}
}

// parseFunctionTypeAnnotation parses `(a: T, b: U) => R` in type position.
// It shares parseParamList with value-position function parameter lists
// since a function type's parameter list has the same `name: T` shape.
func (p *Parser) parseFunctionTypeAnnotation() *ast.FunctionTypeAnnotation {
	start := p.curr.Span.Start
	params := p.parseParamList()
	p.expect(token.ArrowFn)
	ret := p.parseTypeAnnotation()
	return &ast.FunctionTypeAnnotation{Base: p.base(start), Params: params, ReturnType: ret}
}
