package parser

import (
	"github.com/Scoutboy06/tsc-go/internal/ast"
	"github.com/Scoutboy06/tsc-go/internal/atom"
	"github.com/Scoutboy06/tsc-go/internal/token"
)

func (p *Parser) base(start int) ast.Base {
	return ast.Base{Sp: p.spanFrom(start)}
}

func (p *Parser) parseStatement() ast.Statement {
	start := p.curr.Span.Start

	if p.is(token.Shebang) {
		p.advance()
		return &ast.ShebangStatement{Base: p.base(start)}
	}
	if p.is(token.OpenBrace) {
		return p.parseBlockStatement()
	}
	if p.is(token.SemiColon) {
		p.advance()
		return &ast.EmptyStatement{Base: p.base(start)}
	}
	if p.is(token.Identifier) && p.peekAt(1).Kind == token.Colon {
		return p.parseLabeledStatement()
	}

	if p.is(token.KeywordTok) {
		switch p.curr.Value.Keyword {
		case token.Var, token.Let, token.Const:
			if p.isKeyword(token.Const) && p.peekAt(1).Kind == token.KeywordTok && p.peekAt(1).Value.Keyword == token.Enum {
				p.advance() // `const`
				return p.parseEnumDeclarationFrom(start, true, false)
			}
			return p.parseVariableDeclaration()
		case token.Function:
			return p.parseFunctionDeclaration(false)
		case token.Async:
			if p.peekAt(1).Kind == token.KeywordTok && p.peekAt(1).Value.Keyword == token.Function {
				return p.parseFunctionDeclaration(true)
			}
		case token.Import:
			return p.parseImportDeclaration()
		case token.Export:
			return p.parseExportDeclaration()
		case token.If:
			return p.parseIfStatement()
		case token.While:
			return p.parseWhileStatement()
		case token.Do:
			return p.parseDoWhileStatement()
		case token.For:
			return p.parseForStatement()
		case token.Return:
			return p.parseReturnStatement()
		case token.Break:
			return p.parseBreakStatement()
		case token.Continue:
			return p.parseContinueStatement()
		case token.Throw:
			return p.parseThrowStatement()
		case token.Try:
			return p.parseTryStatement()
		case token.Switch:
			return p.parseSwitchStatement()
		case token.Class:
			return p.parseClassDeclaration()
		case token.Enum:
			return p.parseEnumDeclaration(false, false)
		case token.Declare:
			return p.parseDeclareStatement()
		case token.Interface:
			return p.parseInterfaceDeclaration()
		case token.Type:
			return p.parseTypeAliasDeclaration()
		case token.Debugger:
			p.advance()
			p.consumeSemicolon()
			return &ast.DebuggerStatement{Base: p.base(start)}
		}
	}

	expr := p.parseExpression()
	p.consumeSemicolon()
	return &ast.ExpressionStatement{Base: p.base(start), Expression: expr}
}

// consumeSemicolon consumes a trailing `;` if present and does nothing
// otherwise, so the semicolon after a statement is optional wherever this
// is called. There is no automatic semicolon insertion beyond that: line
// breaks carry no meaning to the parser.
func (p *Parser) consumeSemicolon() {
	if p.is(token.SemiColon) {
		p.advance()
	}
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	start := p.curr.Span.Start
	p.expect(token.OpenBrace)
	var body []ast.Statement
	for !p.is(token.CloseBrace) && !p.is(token.Eof) {
		body = append(body, p.parseStatement())
	}
	p.expect(token.CloseBrace)
	return &ast.BlockStatement{Base: p.base(start), Body: body}
}

func variableKind(kw token.Keyword) ast.VariableKind {
	switch kw {
	case token.Let:
		return ast.Let
	case token.Const:
		return ast.Const
	default:
		return ast.Var
	}
}

func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	start := p.curr.Span.Start
	kind := variableKind(p.advance().Value.Keyword)

	var decls []ast.VariableDeclarator
	for {
		decls = append(decls, p.parseVariableDeclarator())
		if p.is(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.consumeSemicolon()
	return &ast.VariableDeclaration{Base: p.base(start), Kind: kind, Declarations: decls}
}

func (p *Parser) parseVariableDeclarator() ast.VariableDeclarator {
	name := p.expectIdentifierName()
	var typeAnn ast.TypeAnnotation
	if p.is(token.Colon) {
		p.advance()
		typeAnn = p.parseTypeAnnotation()
	}
	var init ast.Expression
	if p.is(token.Equals) {
		p.advance()
		init = p.parseAssignmentExpression()
	}
	return ast.VariableDeclarator{Name: name, Type: typeAnn, Init: init}
}

// expectIdentifierName consumes an Identifier token and returns its atom.
func (p *Parser) expectIdentifierName() atom.Atom {
	t := p.expect(token.Identifier)
	return t.Value.Str
}

func (p *Parser) parseParamList() []ast.Param {
	p.expect(token.OpenParen)
	var params []ast.Param
	for !p.is(token.CloseParen) {
		name := p.expectIdentifierName()
		optional := false
		if p.is(token.QuestionMark) {
			p.advance()
			optional = true
		}
		var typeAnn ast.TypeAnnotation
		if p.is(token.Colon) {
			p.advance()
			typeAnn = p.parseTypeAnnotation()
		}
		var def ast.Expression
		if p.is(token.Equals) {
			p.advance()
			def = p.parseAssignmentExpression()
		}
		params = append(params, ast.Param{Name: name, Type: typeAnn, Optional: optional, Default: def})
		if p.is(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.CloseParen)
	return params
}

func (p *Parser) parseFunctionDeclaration(async bool) *ast.FunctionDeclaration {
	start := p.curr.Span.Start
	if async {
		p.advance() // `async`
	}
	p.advance() // `function`
	generator := false
	if p.is(token.Asterisk) {
		p.advance()
		generator = true
	}
	name := p.expectIdentifierName()
	typeParams := p.parseTypeParamList()
	params := p.parseParamList()
	var ret ast.TypeAnnotation
	if p.is(token.Colon) {
		p.advance()
		ret = p.parseTypeAnnotation()
	}
	body := p.parseBlockStatement()
	return &ast.FunctionDeclaration{
		Base: p.base(start), Name: name, TypeParams: typeParams, Params: params,
		ReturnType: ret, Body: body, Async: async, Generator: generator,
	}
}

// parseTypeParamList parses an optional `<T, U>` generic parameter list,
// each parameter an identifier only (no bounds in this core). Returns nil
// when there is no leading `<`.
func (p *Parser) parseTypeParamList() []atom.Atom {
	if !p.is(token.LessThan) {
		return nil
	}
	p.advance()
	var params []atom.Atom
	for !p.is(token.GreaterThan) {
		params = append(params, p.expectIdentifierName())
		if p.is(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.GreaterThan)
	return params
}

// parseLabeledStatement parses `label: body`, used to target `break`/
// `continue` at an outer loop by name.
func (p *Parser) parseLabeledStatement() *ast.LabeledStatement {
	start := p.curr.Span.Start
	label := p.expectIdentifierName()
	p.expect(token.Colon)
	body := p.parseStatement()
	return &ast.LabeledStatement{Base: p.base(start), Label: label, Body: body}
}

// parseImportDeclaration parses the default/namespace/named-import forms.
// Module resolution is out of scope; only the syntax and its bindings are
// modeled.
func (p *Parser) parseImportDeclaration() *ast.ImportDeclaration {
	start := p.curr.Span.Start
	p.advance() // `import`

	decl := &ast.ImportDeclaration{Base: p.base(start)}

	if p.is(token.Identifier) {
		decl.Default = p.advance().Value.Str
		if p.is(token.Comma) {
			p.advance()
		}
	}

	if p.is(token.Asterisk) {
		p.advance()
		p.expectKeyword(token.As)
		decl.Namespace = p.expectIdentifierName()
	} else if p.is(token.OpenBrace) {
		p.advance()
		for !p.is(token.CloseBrace) && !p.is(token.Eof) {
			name := p.expectIdentifierName()
			alias := name
			if p.isKeyword(token.As) {
				p.advance()
				alias = p.expectIdentifierName()
			}
			decl.Named = append(decl.Named, ast.ImportSpecifier{Name: name, Alias: alias})
			if p.is(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		p.expect(token.CloseBrace)
	}

	if p.isKeyword(token.From) {
		p.advance()
		decl.Source = p.expect(token.String).Value.Str
	}
	p.consumeSemicolon()
	return decl
}

// parseExportDeclaration parses `export <declaration>`, `export default
// <expr>`, and `export { a, b as c } [from "module"];`.
func (p *Parser) parseExportDeclaration() *ast.ExportDeclaration {
	start := p.curr.Span.Start
	p.advance() // `export`

	if p.isKeyword(token.Default) {
		p.advance()
		expr := p.parseAssignmentExpression()
		p.consumeSemicolon()
		return &ast.ExportDeclaration{Base: p.base(start), Default: expr}
	}

	if p.is(token.OpenBrace) {
		p.advance()
		var named []ast.ExportSpecifier
		for !p.is(token.CloseBrace) && !p.is(token.Eof) {
			name := p.expectIdentifierName()
			alias := name
			if p.isKeyword(token.As) {
				p.advance()
				alias = p.expectIdentifierName()
			}
			named = append(named, ast.ExportSpecifier{Name: name, Alias: alias})
			if p.is(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		p.expect(token.CloseBrace)
		var source atom.Atom
		if p.isKeyword(token.From) {
			p.advance()
			source = p.expect(token.String).Value.Str
		}
		p.consumeSemicolon()
		return &ast.ExportDeclaration{Base: p.base(start), Named: named, Source: source}
	}

	decl := p.parseStatement()
	return &ast.ExportDeclaration{Base: p.base(start), Declaration: decl}
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	start := p.curr.Span.Start
	p.advance() // `if`
	p.expect(token.OpenParen)
	test := p.parseExpression()
	p.expect(token.CloseParen)
	cons := p.parseStatement()
	var alt ast.Statement
	if p.isKeyword(token.Else) {
		p.advance()
		alt = p.parseStatement()
	}
	return &ast.IfStatement{Base: p.base(start), Test: test, Consequent: cons, Alternate: alt}
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	start := p.curr.Span.Start
	p.advance() // `while`
	p.expect(token.OpenParen)
	test := p.parseExpression()
	p.expect(token.CloseParen)
	body := p.parseStatement()
	return &ast.WhileStatement{Base: p.base(start), Test: test, Body: body}
}

func (p *Parser) parseDoWhileStatement() *ast.DoWhileStatement {
	start := p.curr.Span.Start
	p.advance() // `do`
	body := p.parseStatement()
	p.expectKeyword(token.While)
	p.expect(token.OpenParen)
	test := p.parseExpression()
	p.expect(token.CloseParen)
	p.consumeSemicolon()
	return &ast.DoWhileStatement{Base: p.base(start), Body: body, Test: test}
}

func (p *Parser) parseForStatement() ast.Statement {
	start := p.curr.Span.Start
	p.advance() // `for`
	p.expect(token.OpenParen)

	var init ast.Node
	if !p.is(token.SemiColon) {
		if p.is(token.KeywordTok) {
			switch p.curr.Value.Keyword {
			case token.Var, token.Let, token.Const:
				declStart := p.curr.Span.Start
				kind := variableKind(p.advance().Value.Keyword)
				name := p.expectIdentifierName()
				var typeAnn ast.TypeAnnotation
				if p.is(token.Colon) {
					p.advance()
					typeAnn = p.parseTypeAnnotation()
				}
				if p.isKeyword(token.In) {
					p.advance()
					right := p.parseExpression()
					p.expect(token.CloseParen)
					body := p.parseStatement()
					decl := &ast.VariableDeclaration{
						Base: p.base(declStart), Kind: kind,
						Declarations: []ast.VariableDeclarator{{Name: name, Type: typeAnn}},
					}
					return &ast.ForInStatement{Base: p.base(start), Left: decl, Right: right, Body: body}
				}
				if p.isKeyword(token.Of) {
					p.advance()
					right := p.parseExpression()
					p.expect(token.CloseParen)
					body := p.parseStatement()
					decl := &ast.VariableDeclaration{
						Base: p.base(declStart), Kind: kind,
						Declarations: []ast.VariableDeclarator{{Name: name, Type: typeAnn}},
					}
					return &ast.ForOfStatement{Base: p.base(start), Left: decl, Right: right, Body: body}
				}
				var initExpr ast.Expression
				if p.is(token.Equals) {
					p.advance()
					initExpr = p.parseAssignmentExpression()
				}
				decls := []ast.VariableDeclarator{{Name: name, Type: typeAnn, Init: initExpr}}
				for p.is(token.Comma) {
					p.advance()
					decls = append(decls, p.parseVariableDeclarator())
				}
				init = &ast.VariableDeclaration{Base: p.base(declStart), Kind: kind, Declarations: decls}
			}
		}
		if init == nil {
			init = p.parseExpression()
		}
	}

	p.expect(token.SemiColon)
	var test ast.Expression
	if !p.is(token.SemiColon) {
		test = p.parseExpression()
	}
	p.expect(token.SemiColon)
	var update ast.Expression
	if !p.is(token.CloseParen) {
		update = p.parseExpression()
	}
	p.expect(token.CloseParen)
	body := p.parseStatement()
	return &ast.ForStatement{Base: p.base(start), Init: init, Test: test, Update: update, Body: body}
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	start := p.curr.Span.Start
	p.advance() // `return`
	var arg ast.Expression
	if !p.is(token.SemiColon) && !p.is(token.CloseBrace) && !p.is(token.Eof) {
		arg = p.parseExpression()
	}
	p.consumeSemicolon()
	return &ast.ReturnStatement{Base: p.base(start), Argument: arg}
}

func (p *Parser) parseBreakStatement() *ast.BreakStatement {
	start := p.curr.Span.Start
	p.advance() // `break`
	var label atom.Atom
	if p.is(token.Identifier) {
		label = p.advance().Value.Str
	}
	p.consumeSemicolon()
	return &ast.BreakStatement{Base: p.base(start), Label: label}
}

func (p *Parser) parseContinueStatement() *ast.ContinueStatement {
	start := p.curr.Span.Start
	p.advance() // `continue`
	var label atom.Atom
	if p.is(token.Identifier) {
		label = p.advance().Value.Str
	}
	p.consumeSemicolon()
	return &ast.ContinueStatement{Base: p.base(start), Label: label}
}

func (p *Parser) parseThrowStatement() *ast.ThrowStatement {
	start := p.curr.Span.Start
	p.advance() // `throw`
	arg := p.parseExpression()
	p.consumeSemicolon()
	return &ast.ThrowStatement{Base: p.base(start), Argument: arg}
}

func (p *Parser) parseTryStatement() *ast.TryStatement {
	start := p.curr.Span.Start
	p.advance() // `try`
	block := p.parseBlockStatement()

	var handler *ast.BlockStatement
	var param atom.Atom
	hasParam := false
	if p.isKeyword(token.Catch) {
		p.advance()
		if p.is(token.OpenParen) {
			p.advance()
			param = p.expectIdentifierName()
			hasParam = true
			p.expect(token.CloseParen)
		}
		handler = p.parseBlockStatement()
	}

	var finalizer *ast.BlockStatement
	if p.isKeyword(token.Finally) {
		p.advance()
		finalizer = p.parseBlockStatement()
	}

	return &ast.TryStatement{
		Base: p.base(start), Block: block, Param: param,
		HasParam: hasParam, Handler: handler, Finalizer: finalizer,
	}
}

func (p *Parser) parseSwitchStatement() *ast.SwitchStatement {
	start := p.curr.Span.Start
	p.advance() // `switch`
	p.expect(token.OpenParen)
	disc := p.parseExpression()
	p.expect(token.CloseParen)
	p.expect(token.OpenBrace)

	var cases []ast.SwitchCase
	for !p.is(token.CloseBrace) && !p.is(token.Eof) {
		var test ast.Expression
		if p.isKeyword(token.Case) {
			p.advance()
			test = p.parseExpression()
		} else if p.isKeyword(token.Default) {
			p.advance()
		} else {
			p.throwInvalidToken("expected 'case' or 'default'")
		}
		p.expect(token.Colon)
		var body []ast.Statement
		for !p.isKeyword(token.Case) && !p.isKeyword(token.Default) && !p.is(token.CloseBrace) && !p.is(token.Eof) {
			body = append(body, p.parseStatement())
		}
		cases = append(cases, ast.SwitchCase{Test: test, Consequent: body})
	}
	p.expect(token.CloseBrace)
	return &ast.SwitchStatement{Base: p.base(start), Discriminant: disc, Cases: cases}
}

func (p *Parser) parseDeclareStatement() ast.Statement {
	start := p.curr.Span.Start
	p.advance() // `declare`
	if p.isKeyword(token.Enum) {
		return p.parseEnumDeclarationFrom(start, false, true)
	}
	if p.isKeyword(token.Const) && p.peekAt(1).Kind == token.KeywordTok && p.peekAt(1).Value.Keyword == token.Enum {
		p.advance() // `const`
		return p.parseEnumDeclarationFrom(start, true, true)
	}
	return p.parseStatement()
}

func (p *Parser) parseEnumDeclaration(isConst, isDeclare bool) *ast.EnumDeclaration {
	return p.parseEnumDeclarationFrom(p.curr.Span.Start, isConst, isDeclare)
}

func (p *Parser) parseEnumDeclarationFrom(start int, isConst, isDeclare bool) *ast.EnumDeclaration {
	p.advance() // `enum`
	name := p.expectIdentifierName()
	p.expect(token.OpenBrace)
	var members []ast.EnumMember
	for !p.is(token.CloseBrace) && !p.is(token.Eof) {
		memberName := p.expectIdentifierName()
		var init ast.Expression
		if p.is(token.Equals) {
			p.advance()
			init = p.parseAssignmentExpression()
		}
		members = append(members, ast.EnumMember{Name: memberName, Init: init})
		if p.is(token.Comma) {
			p.advance()
		}
	}
	p.expect(token.CloseBrace)
	return &ast.EnumDeclaration{
		Base: p.base(start), Name: name, Members: members,
		Const: isConst, Declare: isDeclare,
	}
}

func (p *Parser) parseClassDeclaration() *ast.ClassDeclaration {
	start := p.curr.Span.Start
	p.advance() // `class`
	name := p.expectIdentifierName()
	var super ast.Expression
	if p.isKeyword(token.Extends) {
		p.advance()
		super = p.parseLeftHandSideExpression()
	}
	p.expect(token.OpenBrace)
	var members []ast.ClassMember
	for !p.is(token.CloseBrace) && !p.is(token.Eof) {
		members = append(members, p.parseClassMember())
	}
	p.expect(token.CloseBrace)
	return &ast.ClassDeclaration{Base: p.base(start), Name: name, SuperClass: super, Members: members}
}

func (p *Parser) parseClassMember() ast.ClassMember {
	start := p.curr.Span.Start
	visibility := ast.Public
	static := false
	async := false

	for p.is(token.KeywordTok) {
		switch p.curr.Value.Keyword {
		case token.Private:
			visibility = ast.Private
			p.advance()
			continue
		case token.Protected:
			visibility = ast.Protected
			p.advance()
			continue
		case token.Static:
			static = true
			p.advance()
			continue
		case token.Async:
			async = true
			p.advance()
			continue
		}
		break
	}

	generator := false
	if p.is(token.Asterisk) {
		p.advance()
		generator = true
	}

	kind := ast.MethodOrdinary
	name := p.expectIdentifierName()
	if name.String() == "constructor" {
		kind = ast.MethodConstructor
	}

	if p.is(token.OpenParen) || p.is(token.LessThan) {
		typeParams := p.parseTypeParamList()
		params := p.parseParamList()
		var ret ast.TypeAnnotation
		if p.is(token.Colon) {
			p.advance()
			ret = p.parseTypeAnnotation()
		}
		body := p.parseBlockStatement()
		return &ast.ClassMethod{
			Base: p.base(start), Name: name, TypeParams: typeParams, Params: params, ReturnType: ret,
			Body: body, Static: static, Async: async, Generator: generator,
			Visibility: visibility, Kind: kind,
		}
	}

	var typeAnn ast.TypeAnnotation
	if p.is(token.Colon) {
		p.advance()
		typeAnn = p.parseTypeAnnotation()
	}
	var init ast.Expression
	if p.is(token.Equals) {
		p.advance()
		init = p.parseAssignmentExpression()
	}
	p.consumeSemicolon()
	return &ast.ClassField{
		Base: p.base(start), Name: name, Type: typeAnn, Init: init,
		Static: static, Visibility: visibility,
	}
}

func (p *Parser) parseInterfaceDeclaration() *ast.InterfaceDeclaration {
	start := p.curr.Span.Start
	p.advance() // `interface`
	name := p.expectIdentifierName()
	p.expect(token.OpenBrace)
	var members []ast.InterfaceMember
	for !p.is(token.CloseBrace) && !p.is(token.Eof) {
		memberName := p.expectIdentifierName()
		optional := false
		if p.is(token.QuestionMark) {
			p.advance()
			optional = true
		}
		if p.is(token.OpenParen) {
			params := p.parseParamList()
			var ret ast.TypeAnnotation
			if p.is(token.Colon) {
				p.advance()
				ret = p.parseTypeAnnotation()
			}
			members = append(members, ast.InterfaceMember{
				Name: memberName, Optional: optional, IsMethod: true,
				Params: params, ReturnType: ret,
			})
		} else {
			p.expect(token.Colon)
			typeAnn := p.parseTypeAnnotation()
			members = append(members, ast.InterfaceMember{Name: memberName, Type: typeAnn, Optional: optional})
		}
		if p.is(token.SemiColon) || p.is(token.Comma) {
			p.advance()
		}
	}
	p.expect(token.CloseBrace)
	return &ast.InterfaceDeclaration{Base: p.base(start), Name: name, Members: members}
}

func (p *Parser) parseTypeAliasDeclaration() *ast.TypeAliasDeclaration {
	start := p.curr.Span.Start
	p.advance() // `type`
	name := p.expectIdentifierName()
	p.expect(token.Equals)
	typeAnn := p.parseTypeAnnotation()
	p.consumeSemicolon()
	return &ast.TypeAliasDeclaration{Base: p.base(start), Name: name, Type: typeAnn}
}
