package parser

import (
	"github.com/Scoutboy06/tsc-go/internal/ast"
	"github.com/Scoutboy06/tsc-go/internal/atom"
	"github.com/Scoutboy06/tsc-go/internal/token"
)

// parseExpression parses a full expression, including the comma operator.
func (p *Parser) parseExpression() ast.Expression {
	start := p.curr.Span.Start
	first := p.parseAssignmentExpression()
	if !p.is(token.Comma) {
		return first
	}
	exprs := []ast.Expression{first}
	for p.is(token.Comma) {
		p.advance()
		exprs = append(exprs, p.parseAssignmentExpression())
	}
	return &ast.SequenceExpression{Base: p.base(start), Expressions: exprs}
}

// parseAssignmentExpression parses a single assignment-or-lower expression:
// arrow functions, ternaries, assignments, and everything binary/unary
// below them.
func (p *Parser) parseAssignmentExpression() ast.Expression {
	if p.peekIsArrowFunction() {
		return p.parseArrowFunction(false)
	}
	if p.isKeyword(token.Async) && p.startsAsyncArrowFunction() {
		return p.parseArrowFunction(true)
	}

	start := p.curr.Span.Start
	left := p.parseConditionalExpression()

	if p.is(token.Equals) || isCompoundAssign(p.curr.Kind) {
		op, _ := token.FromKind(p.advance().Kind)
		right := p.parseAssignmentExpression()
		return &ast.AssignmentExpression{Base: p.base(start), Operator: op, Target: left, Value: right}
	}

	return left
}

func isCompoundAssign(k token.Kind) bool {
	return k.IsAssignmentOperator() && k != token.Equals
}

// peekIsArrowFunction performs the non-destructive lookahead that decides
// whether the upcoming tokens are an arrow-function parameter list rather
// than a parenthesized expression or bare identifier. It consumes nothing:
// every token it inspects comes from PeekTokenAt, never NextToken.
func (p *Parser) peekIsArrowFunction() bool {
	return p.scanIsArrowFunctionAt(0)
}

// tokenAt returns the token offset positions ahead of the parser's actual
// current token (0 is p.curr itself), independent of any lookahead already
// performed for a different purpose.
func (p *Parser) tokenAt(offset int) token.Token {
	if offset == 0 {
		return p.curr
	}
	return p.peekAt(offset)
}

// scanIsArrowFunctionAt is peekIsArrowFunction starting from tokenAt(from)
// instead of p.curr, used to look past a leading `async` keyword without
// mutating parser state.
func (p *Parser) scanIsArrowFunctionAt(from int) bool {
	switch p.tokenAt(from).Kind {
	case token.Identifier:
		return p.tokenAt(from + 1).Kind == token.ArrowFn
	case token.OpenParen:
	default:
		return false
	}

	depth := 0
	i := from
	for {
		t := p.tokenAt(i)
		switch t.Kind {
		case token.OpenParen:
			depth++
		case token.CloseParen:
			depth--
			if depth == 0 {
				after := p.tokenAt(i + 1)
				if after.Kind == token.ArrowFn {
					return true
				}
				if after.Kind == token.Colon {
					return p.arrowFollowsReturnType(i + 1)
				}
				return false
			}
		case token.Eof:
			return false
		}
		i++
		if i > 4096 {
			return false
		}
	}
}

// arrowFollowsReturnType looks past a `: ReturnType` clause starting at the
// colon found at offset colonOffset to see whether an `=>` eventually
// follows, for arrow functions with an explicit return-type annotation.
func (p *Parser) arrowFollowsReturnType(colonOffset int) bool {
	i := colonOffset + 1
	depth := 0
	for {
		t := p.tokenAt(i)
		switch t.Kind {
		case token.LessThan:
			depth++
		case token.GreaterThan:
			if depth > 0 {
				depth--
			}
		case token.ArrowFn:
			if depth == 0 {
				return true
			}
		case token.SemiColon, token.OpenBrace, token.Eof, token.CloseBrace, token.Comma:
			if depth == 0 {
				return false
			}
		}
		i++
		if i > 4096 {
			return false
		}
	}
}

// startsAsyncArrowFunction checks for `async` immediately followed by an
// arrow-function parameter list, without consuming `async`.
func (p *Parser) startsAsyncArrowFunction() bool {
	if p.tokenAt(1).Kind != token.OpenParen && p.tokenAt(1).Kind != token.Identifier {
		return false
	}
	return p.scanIsArrowFunctionAt(1)
}

func (p *Parser) parseArrowFunction(async bool) *ast.ArrowFunctionExpression {
	start := p.curr.Span.Start
	if async {
		p.advance() // `async`
	}

	var params []ast.Param
	if p.is(token.Identifier) {
		name := p.advance().Value.Str
		params = []ast.Param{{Name: name}}
	} else {
		params = p.parseParamList()
	}

	var ret ast.TypeAnnotation
	if p.is(token.Colon) {
		p.advance()
		ret = p.parseTypeAnnotation()
	}

	p.expect(token.ArrowFn)

	var body ast.Node
	if p.is(token.OpenBrace) {
		body = p.parseBlockStatement()
	} else {
		body = p.parseAssignmentExpression()
	}

	return &ast.ArrowFunctionExpression{Base: p.base(start), Params: params, ReturnType: ret, Body: body, Async: async}
}

func (p *Parser) parseConditionalExpression() ast.Expression {
	start := p.curr.Span.Start
	test := p.parseBinaryExpression(p.parseUnaryExpression(), 1)
	if !p.is(token.QuestionMark) {
		return test
	}
	p.advance()
	cons := p.parseAssignmentExpression()
	p.expect(token.Colon)
	alt := p.parseAssignmentExpression()
	return &ast.ConditionalExpression{Base: p.base(start), Test: test, Consequent: cons, Alternate: alt}
}

// parseBinaryExpression implements precedence climbing: left is the
// already-parsed left operand, minPrecedence is the lowest-precedence
// operator this call is allowed to consume.
func (p *Parser) parseBinaryExpression(left ast.Expression, minPrecedence int) ast.Expression {
	for {
		prec := p.curr.Kind.GetOperatorPrecedence()
		if prec == 0 || prec < minPrecedence {
			return left
		}
		opToken := p.advance()
		op, _ := token.FromKind(opToken.Kind)
		right := p.parseUnaryExpression()

		for {
			nextPrec := p.curr.Kind.GetOperatorPrecedence()
			if nextPrec == 0 || nextPrec <= prec {
				break
			}
			right = p.parseBinaryExpression(right, nextPrec)
		}

		start := left.Span().Start
		if opToken.Kind == token.LogicalAnd || opToken.Kind == token.LogicalOr {
			left = &ast.LogicalExpression{Base: p.base(start), Operator: op, Left: left, Right: right}
		} else {
			left = &ast.BinaryExpression{Base: p.base(start), Operator: op, Left: left, Right: right}
		}
	}
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	start := p.curr.Span.Start

	if p.isKeyword(token.Typeof) {
		p.advance()
		operand := p.parseUnaryExpression()
		return &ast.UnaryExpression{Base: p.base(start), Typeof: true, Operand: operand}
	}

	switch p.curr.Kind {
	case token.Exclamation, token.Minus, token.Plus, token.BitwiseNot:
		op, _ := token.FromKind(p.advance().Kind)
		operand := p.parseUnaryExpression()
		return &ast.UnaryExpression{Base: p.base(start), Operator: op, Operand: operand}
	case token.Increment, token.Decrement:
		op, _ := token.FromKind(p.advance().Kind)
		operand := p.parseUnaryExpression()
		return &ast.UpdateExpression{Base: p.base(start), Operator: op, Argument: operand, Prefix: true}
	}

	return p.parsePostfixExpression()
}

func (p *Parser) parsePostfixExpression() ast.Expression {
	start := p.curr.Span.Start
	expr := p.parseLeftHandSideExpression()
	if op, ok := p.curr.Kind.AsUpdateOperator(); ok {
		operator, _ := token.FromKind(op)
		p.advance()
		return &ast.UpdateExpression{Base: p.base(start), Operator: operator, Argument: expr, Prefix: false}
	}
	return expr
}

// parseLeftHandSideExpression parses a primary (or `new`) expression
// followed by any number of call and member postfix operators. Optional
// chaining (`?.`) is not parsed.
func (p *Parser) parseLeftHandSideExpression() ast.Expression {
	start := p.curr.Span.Start
	var expr ast.Expression
	if p.isKeyword(token.New) {
		p.advance()
		callee := p.parseLeftHandSideExpressionNoCall()
		var args []ast.Expression
		if p.is(token.OpenParen) {
			args = p.parseArguments()
		}
		expr = &ast.NewExpression{Base: p.base(start), Callee: callee, Arguments: args}
	} else {
		expr = p.parsePrimaryExpression()
	}

	for {
		switch {
		case p.is(token.Dot):
			p.advance()
			prop := p.parseIdentifierAsExpression()
			expr = &ast.MemberExpression{Base: p.base(start), Object: expr, Property: prop, Computed: false}
		case p.is(token.OpenBracket):
			p.advance()
			prop := p.parseExpression()
			p.expect(token.CloseBracket)
			expr = &ast.MemberExpression{Base: p.base(start), Object: expr, Property: prop, Computed: true}
		case p.is(token.OpenParen):
			args := p.parseArguments()
			expr = &ast.CallExpression{Base: p.base(start), Callee: expr, Arguments: args}
		default:
			return expr
		}
	}
}

func (p *Parser) parseLeftHandSideExpressionNoCall() ast.Expression {
	start := p.curr.Span.Start
	expr := p.parsePrimaryExpression()
	for {
		switch {
		case p.is(token.Dot):
			p.advance()
			prop := p.parseIdentifierAsExpression()
			expr = &ast.MemberExpression{Base: p.base(start), Object: expr, Property: prop, Computed: false}
		case p.is(token.OpenBracket):
			p.advance()
			prop := p.parseExpression()
			p.expect(token.CloseBracket)
			expr = &ast.MemberExpression{Base: p.base(start), Object: expr, Property: prop, Computed: true}
		default:
			return expr
		}
	}
}

func (p *Parser) parseIdentifierAsExpression() ast.Expression {
	start := p.curr.Span.Start
	name := p.expectIdentifierName()
	return &ast.Identifier{Base: p.base(start), Name: name}
}

func (p *Parser) parseArguments() []ast.Expression {
	p.expect(token.OpenParen)
	var args []ast.Expression
	for !p.is(token.CloseParen) {
		if p.isSpreadStart() {
			start := p.curr.Span.Start
			p.advanceSpreadDots()
			arg := p.parseAssignmentExpression()
			args = append(args, &ast.SpreadElement{Base: p.base(start), Argument: arg})
		} else {
			args = append(args, p.parseAssignmentExpression())
		}
		if p.is(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.CloseParen)
	return args
}

// isSpreadStart and advanceSpreadDots handle `...expr`. The lexer has no
// single "ellipsis" token, so three consecutive Dot tokens are recognized
// positionally instead.
func (p *Parser) isSpreadStart() bool {
	return p.is(token.Dot) && p.peekAt(1).Kind == token.Dot && p.peekAt(2).Kind == token.Dot
}

func (p *Parser) advanceSpreadDots() {
	p.advance()
	p.advance()
	p.advance()
}

func (p *Parser) parsePrimaryExpression() ast.Expression {
	start := p.curr.Span.Start

	switch p.curr.Kind {
	case token.Number:
		v := p.advance().Value.Number
		return &ast.NumberLiteral{Base: p.base(start), Value: v}
	case token.String:
		v := p.advance().Value.Str
		return &ast.StringLiteral{Base: p.base(start), Value: v}
	case token.Boolean:
		v := p.advance().Value.Bool
		return &ast.BooleanLiteral{Base: p.base(start), Value: v}
	case token.Null:
		p.advance()
		return &ast.NullLiteral{Base: p.base(start)}
	case token.Identifier:
		name := p.advance().Value.Str
		return &ast.Identifier{Base: p.base(start), Name: name}
	case token.OpenParen:
		p.advance()
		inner := p.parseExpression()
		p.expect(token.CloseParen)
		return &ast.ParenthesisExpression{Base: p.base(start), Expression: inner}
	case token.OpenBracket:
		return p.parseArrayExpression()
	case token.OpenBrace:
		return p.parseObjectExpression()
	case token.KeywordTok:
		switch p.curr.Value.Keyword {
		case token.This:
			p.advance()
			return &ast.ThisExpression{Base: p.base(start)}
		case token.Super:
			p.advance()
			return &ast.SuperExpression{Base: p.base(start)}
		case token.Function:
			return p.parseFunctionExpression(false)
		case token.Async:
			if p.peekAt(1).Kind == token.KeywordTok && p.peekAt(1).Value.Keyword == token.Function {
				return p.parseFunctionExpression(true)
			}
		case token.StringType, token.NumberType, token.BooleanType:
			// Type keywords double as plain identifiers in value position.
			kw := p.advance().Value.Keyword
			return &ast.Identifier{Base: p.base(start), Name: keywordNameAtom(kw)}
		}
	}

	p.throwInvalidToken("unexpected token in expression")
	return nil
}

// keywordNameAtom interns a keyword's text for use as an identifier atom,
// for the keywords (the primitive type names, `type`, ...) that are also
// valid identifiers/property keys depending on position.
func keywordNameAtom(kw token.Keyword) atom.Atom {
	return atom.Intern(kw.String())
}

func (p *Parser) parseFunctionExpression(async bool) *ast.FunctionExpression {
	start := p.curr.Span.Start
	if async {
		p.advance()
	}
	p.advance() // `function`
	generator := false
	if p.is(token.Asterisk) {
		p.advance()
		generator = true
	}
	var nameAtom atom.Atom
	if p.is(token.Identifier) {
		nameAtom = p.advance().Value.Str
	}

	params := p.parseParamList()
	var ret ast.TypeAnnotation
	if p.is(token.Colon) {
		p.advance()
		ret = p.parseTypeAnnotation()
	}
	body := p.parseBlockStatement()
	return &ast.FunctionExpression{
		Base: p.base(start), Name: nameAtom, Params: params,
		ReturnType: ret, Body: body, Async: async, Generator: generator,
	}
}

func (p *Parser) parseArrayExpression() *ast.ArrayExpression {
	start := p.curr.Span.Start
	p.expect(token.OpenBracket)
	var elems []ast.Expression
	for !p.is(token.CloseBracket) {
		if p.isSpreadStart() {
			elStart := p.curr.Span.Start
			p.advanceSpreadDots()
			arg := p.parseAssignmentExpression()
			elems = append(elems, &ast.SpreadElement{Base: p.base(elStart), Argument: arg})
		} else {
			elems = append(elems, p.parseAssignmentExpression())
		}
		if p.is(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.CloseBracket)
	return &ast.ArrayExpression{Base: p.base(start), Elements: elems}
}

func (p *Parser) parseObjectExpression() *ast.ObjectExpression {
	start := p.curr.Span.Start
	p.expect(token.OpenBrace)
	var items []ast.ObjectItem
	for !p.is(token.CloseBrace) {
		items = append(items, p.parseObjectItem())
		if p.is(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.CloseBrace)
	return &ast.ObjectExpression{Base: p.base(start), Properties: items}
}

func (p *Parser) parseObjectItem() ast.ObjectItem {
	itemStart := p.curr.Span.Start

	if p.isSpreadStart() {
		p.advanceSpreadDots()
		arg := p.parseAssignmentExpression()
		return &ast.ObjectSpread{Base: p.base(itemStart), Argument: arg}
	}

	async := false
	if p.isKeyword(token.Async) && p.peekAt(1).Kind != token.Colon && p.peekAt(1).Kind != token.Comma {
		async = true
		p.advance()
	}
	generator := false
	if p.is(token.Asterisk) {
		generator = true
		p.advance()
	}

	computed := false
	var key ast.Expression

	switch p.curr.Kind {
	case token.OpenBracket:
		computed = true
		p.advance()
		key = p.parseExpression()
		p.expect(token.CloseBracket)
	case token.String:
		keyStart := p.curr.Span.Start
		v := p.advance().Value.Str
		key = &ast.StringLiteral{Base: p.base(keyStart), Value: v}
	case token.Identifier:
		keyStart := p.curr.Span.Start
		name := p.advance().Value.Str
		key = &ast.Identifier{Base: p.base(keyStart), Name: name}

		switch {
		case p.is(token.OpenParen):
			return p.finishObjectMethod(itemStart, key, async, generator, computed)
		case p.is(token.Colon):
			p.advance()
			value := p.parseAssignmentExpression()
			return &ast.ObjectKeyValue{Base: p.base(itemStart), Key: key, Value: value, Computed: false}
		default:
			return &ast.ObjectShorthand{Base: p.base(itemStart), Name: name}
		}
	case token.KeywordTok:
		kwStart := p.curr.Span.Start
		kw := p.advance().Value.Keyword
		switch kw {
		case token.StringType, token.NumberType, token.BooleanType, token.Type:
			key = &ast.Identifier{Base: p.base(kwStart), Name: keywordNameAtom(kw)}
		default:
			p.throwInvalidToken("unexpected keyword as object key")
		}
	default:
		p.throwInvalidToken("unexpected token in object literal")
	}

	if p.is(token.OpenParen) {
		return p.finishObjectMethod(itemStart, key, async, generator, computed)
	}
	p.expect(token.Colon)
	value := p.parseAssignmentExpression()
	return &ast.ObjectKeyValue{Base: p.base(itemStart), Key: key, Value: value, Computed: computed}
}

func (p *Parser) finishObjectMethod(start int, key ast.Expression, async, generator, computed bool) *ast.ObjectMethod {
	params := p.parseParamList()
	var ret ast.TypeAnnotation
	if p.is(token.Colon) {
		p.advance()
		ret = p.parseTypeAnnotation()
	}
	body := p.parseBlockStatement()
	return &ast.ObjectMethod{
		Base: p.base(start), Key: key, Params: params, ReturnType: ret,
		Body: body, Async: async, Generator: generator, Computed: computed,
	}
}
