package semantic

import (
	"log/slog"

	"github.com/Scoutboy06/tsc-go/internal/ast"
	"github.com/Scoutboy06/tsc-go/internal/token"
)

// Analyzer runs the two-pass check over a Program: Analyze's declaration
// pass registers every top-level symbol's declared type before any
// initializer is visited (so forward references type-check), then its
// body pass resolves and checks expressions against those declared types.
type Analyzer struct {
	table       *SymbolTable
	diagnostics []Diagnostic
	returnStack []*ResolvedType
}

// Analyze type-checks prog and returns every diagnostic found. It never
// aborts early: every reachable statement is visited regardless of earlier
// diagnostics.
func Analyze(prog *ast.Program) []Diagnostic {
	a := &Analyzer{table: NewSymbolTable()}
	for _, stmt := range prog.Body {
		a.declareStatement(stmt)
	}
	for _, stmt := range prog.Body {
		a.visitStatement(stmt)
	}
	return a.diagnostics
}

func (a *Analyzer) report(d Diagnostic) {
	a.diagnostics = append(a.diagnostics, d)
}

func resolveTypeAnnotation(t ast.TypeAnnotation) ResolvedType {
	if t == nil {
		return Prim(Unknown)
	}
	switch n := t.(type) {
	case *ast.KeywordTypeAnnotation:
		switch n.Name {
		case ast.StringType:
			return Prim(String)
		case ast.NumberType:
			return Prim(Number)
		case ast.BooleanType:
			return Prim(Boolean)
		case ast.NullType:
			return Prim(Null)
		}
		return Prim(Unknown)
	case *ast.ArrayTypeAnnotation:
		return NewArray(resolveTypeAnnotation(n.ElementType))
	case *ast.UnionTypeAnnotation:
		members := make([]ResolvedType, len(n.Members))
		for i, m := range n.Members {
			members[i] = resolveTypeAnnotation(m)
		}
		members = dedupe(members)
		if len(members) == 1 {
			return members[0]
		}
		return ResolvedType{Kind: Union, Members: members}
	case *ast.FunctionTypeAnnotation:
		params := make([]ResolvedType, len(n.Params))
		for i, p := range n.Params {
			params[i] = resolveTypeAnnotation(p.Type)
		}
		return NewFunction(params, resolveTypeAnnotation(n.ReturnType))
	case *ast.TypeReference:
		if n.Name.String() == "Record" && len(n.TypeArgs) == 2 {
			return NewObject(resolveTypeAnnotation(n.TypeArgs[0]), resolveTypeAnnotation(n.TypeArgs[1]))
		}
		if n.Name.String() == "Array" && len(n.TypeArgs) == 1 {
			return NewArray(resolveTypeAnnotation(n.TypeArgs[0]))
		}
		slog.Debug("unresolved type reference", "name", n.Name.String())
		return ResolvedType{Kind: Unknown, RefName: n.Name.String()}
	default:
		return Prim(Unknown)
	}
}

// declareStatement is the declaration-pass visitor: it registers bindings
// without visiting initializer expressions, so in `let a = b; let b = 1;`
// the reference to `b` finds its symbol even though it's declared after
// `a`; it is reported as UseBeforeInit (b's initializer has not been
// visited yet) rather than as an unknown variable.
func (a *Analyzer) declareStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		for _, d := range s.Declarations {
			var declared *ResolvedType
			if d.Type != nil {
				t := resolveTypeAnnotation(d.Type)
				declared = &t
			}
			a.table.Add(&Symbol{Name: d.Name, DeclaredType: declared, DeclaredAt: s})
		}
	case *ast.FunctionDeclaration:
		params := make([]ResolvedType, len(s.Params))
		for i, p := range s.Params {
			params[i] = resolveTypeAnnotation(p.Type)
		}
		fnType := NewFunction(params, resolveTypeAnnotation(s.ReturnType))
		a.table.Add(&Symbol{Name: s.Name, DeclaredType: &fnType, ResolvedType: &fnType, DeclaredAt: s})
	case *ast.EnumDeclaration:
		a.declareEnum(s)
	case *ast.ExportDeclaration:
		if s.Declaration != nil {
			a.declareStatement(s.Declaration)
		}
	}
}

// declareEnum registers the enum name itself as an Unknown-typed symbol (no
// enum-member literal type exists in ResolvedType) and one symbol per
// member, behaving like a const binding: Number when the member has no
// initializer or a numeric one, otherwise the initializer's resolved type.
func (a *Analyzer) declareEnum(s *ast.EnumDeclaration) {
	enumType := Prim(Unknown)
	a.table.Add(&Symbol{Name: s.Name, DeclaredType: &enumType, ResolvedType: &enumType, DeclaredAt: s})
	for _, m := range s.Members {
		memberType := Prim(Number)
		if m.Init != nil {
			if _, isNum := m.Init.(*ast.NumberLiteral); !isNum {
				memberType = a.visitExpression(m.Init, nil)
			}
		}
		a.table.Add(&Symbol{Name: m.Name, DeclaredType: &memberType, ResolvedType: &memberType, DeclaredAt: s})
	}
}

// visitStatement is the body-pass visitor.
func (a *Analyzer) visitStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		a.visitVariableDeclaration(s)
	case *ast.ExpressionStatement:
		a.visitExpression(s.Expression, nil)
	case *ast.BlockStatement:
		a.table.PushScope()
		for _, st := range s.Body {
			a.declareStatement(st)
		}
		for _, st := range s.Body {
			a.visitStatement(st)
		}
		a.table.PopScope()
	case *ast.IfStatement:
		a.visitExpression(s.Test, nil)
		a.visitStatement(s.Consequent)
		if s.Alternate != nil {
			a.visitStatement(s.Alternate)
		}
	case *ast.WhileStatement:
		a.visitExpression(s.Test, nil)
		a.visitStatement(s.Body)
	case *ast.DoWhileStatement:
		a.visitStatement(s.Body)
		a.visitExpression(s.Test, nil)
	case *ast.ForStatement:
		a.table.PushScope()
		if decl, ok := s.Init.(*ast.VariableDeclaration); ok {
			a.declareStatement(decl)
			a.visitVariableDeclaration(decl)
		} else if expr, ok := s.Init.(ast.Expression); ok && expr != nil {
			a.visitExpression(expr, nil)
		}
		if s.Test != nil {
			a.visitExpression(s.Test, nil)
		}
		if s.Update != nil {
			a.visitExpression(s.Update, nil)
		}
		a.visitStatement(s.Body)
		a.table.PopScope()
	case *ast.ForInStatement:
		a.visitForInOf(s.Left, s.Right, s.Body, false)
	case *ast.ForOfStatement:
		a.visitForInOf(s.Left, s.Right, s.Body, true)
	case *ast.ReturnStatement:
		if s.Argument != nil {
			a.visitExpression(s.Argument, a.currentReturnType())
		}
	case *ast.ThrowStatement:
		a.visitExpression(s.Argument, nil)
	case *ast.TryStatement:
		a.visitStatement(s.Block)
		if s.Handler != nil {
			a.table.PushScope()
			if s.HasParam {
				a.table.Add(&Symbol{Name: s.Param})
			}
			a.visitStatement(s.Handler)
			a.table.PopScope()
		}
		if s.Finalizer != nil {
			a.visitStatement(s.Finalizer)
		}
	case *ast.SwitchStatement:
		a.visitExpression(s.Discriminant, nil)
		a.table.PushScope()
		for _, c := range s.Cases {
			for _, st := range c.Consequent {
				a.declareStatement(st)
			}
		}
		for _, c := range s.Cases {
			if c.Test != nil {
				a.visitExpression(c.Test, nil)
			}
			for _, st := range c.Consequent {
				a.visitStatement(st)
			}
		}
		a.table.PopScope()
	case *ast.FunctionDeclaration:
		a.visitFunctionBody(s.Params, s.ReturnType, s.Body)
	case *ast.ClassDeclaration:
		a.visitClass(s)
	case *ast.EnumDeclaration:
		for _, m := range s.Members {
			if m.Init != nil {
				a.visitExpression(m.Init, nil)
			}
		}
	case *ast.LabeledStatement:
		a.visitStatement(s.Body)
	case *ast.ImportDeclaration, *ast.ExportDeclaration:
		if exp, ok := stmt.(*ast.ExportDeclaration); ok {
			if exp.Declaration != nil {
				a.visitStatement(exp.Declaration)
			}
			if exp.Default != nil {
				a.visitExpression(exp.Default, nil)
			}
		}
	case *ast.InterfaceDeclaration, *ast.TypeAliasDeclaration,
		*ast.DebuggerStatement, *ast.EmptyStatement, *ast.BreakStatement,
		*ast.ContinueStatement, *ast.ShebangStatement:
		// Type-only declarations and control statements carry nothing to
		// type-check.
	}
}

// visitForInOf handles both `for (left in right) body` and
// `for (left of right) body`: the loop variable, when declared with
// `let`/`const`/`var`, is registered with the element type of right rather
// than its (usually absent) explicit annotation — a for-in's variable is
// always a property-name `String`; a for-of's variable is the iterated
// array's element type, or `Unknown` when right isn't an `Array`.
func (a *Analyzer) visitForInOf(left ast.Node, right ast.Expression, body ast.Statement, isOf bool) {
	a.table.PushScope()
	rightType := a.visitExpression(right, nil)
	elemType := Prim(Unknown)
	if isOf && rightType.Kind == Array {
		elemType = *rightType.ElemType
	} else if !isOf {
		elemType = Prim(String)
	}
	if decl, ok := left.(*ast.VariableDeclaration); ok {
		for _, d := range decl.Declarations {
			a.table.Add(&Symbol{Name: d.Name, DeclaredType: &elemType, ResolvedType: &elemType, DeclaredAt: decl})
		}
	} else if expr, ok := left.(ast.Expression); ok {
		a.visitExpression(expr, nil)
	}
	a.visitStatement(body)
	a.table.PopScope()
}

func (a *Analyzer) visitFunctionBody(params []ast.Param, returnType ast.TypeAnnotation, body *ast.BlockStatement) {
	a.table.PushScope()
	for _, p := range params {
		var declared *ResolvedType
		if p.Type != nil {
			t := resolveTypeAnnotation(p.Type)
			declared = &t
		}
		resolved := declared
		a.table.Add(&Symbol{Name: p.Name, DeclaredType: declared, ResolvedType: resolved})
	}

	var expectedReturn *ResolvedType
	if returnType != nil {
		t := resolveTypeAnnotation(returnType)
		expectedReturn = &t
	}
	a.returnStack = append(a.returnStack, expectedReturn)

	if body != nil {
		for _, st := range body.Body {
			a.declareStatement(st)
		}
		for _, st := range body.Body {
			a.visitStatement(st)
		}
	}

	a.returnStack = a.returnStack[:len(a.returnStack)-1]
	a.table.PopScope()
}

// currentReturnType returns the declared return type of the innermost
// function currently being visited, or nil when it has none or there is no
// enclosing function.
func (a *Analyzer) currentReturnType() *ResolvedType {
	if len(a.returnStack) == 0 {
		return nil
	}
	return a.returnStack[len(a.returnStack)-1]
}

func (a *Analyzer) visitClass(c *ast.ClassDeclaration) {
	a.table.PushScope()
	for _, m := range c.Members {
		switch mem := m.(type) {
		case *ast.ClassField:
			if mem.Init != nil {
				var expected *ResolvedType
				if mem.Type != nil {
					t := resolveTypeAnnotation(mem.Type)
					expected = &t
				}
				a.visitExpression(mem.Init, expected)
			}
		case *ast.ClassMethod:
			a.visitFunctionBody(mem.Params, mem.ReturnType, mem.Body)
		}
	}
	a.table.PopScope()
}

func (a *Analyzer) visitVariableDeclaration(s *ast.VariableDeclaration) {
	for _, d := range s.Declarations {
		sym, ok := a.table.Get(d.Name)
		if !ok {
			continue
		}
		if d.Init == nil {
			continue
		}
		resolved := a.visitExpression(d.Init, sym.DeclaredType)
		if sym.ResolvedType == nil {
			sym.ResolvedType = &resolved
		}
	}
}

// visitExpression resolves expr's type, emitting a TypeMismatch diagnostic
// against expected when one is supplied and the two don't match. It always
// returns the expression's own resolved type so callers building up a
// compound type (array/object literal) can fold it in with Extend.
func (a *Analyzer) visitExpression(expr ast.Expression, expected *ResolvedType) ResolvedType {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return a.checkExpected(e, Prim(Number), expected)
	case *ast.StringLiteral:
		return a.checkExpected(e, Prim(String), expected)
	case *ast.TemplateLiteral:
		return a.checkExpected(e, Prim(String), expected)
	case *ast.BooleanLiteral:
		return a.checkExpected(e, Prim(Boolean), expected)
	case *ast.NullLiteral:
		return a.checkExpected(e, Prim(Null), expected)
	case *ast.Identifier:
		return a.visitIdentifier(e, expected)
	case *ast.ThisExpression, *ast.SuperExpression:
		return Prim(Unknown)
	case *ast.ParenthesisExpression:
		return a.visitExpression(e.Expression, expected)
	case *ast.ArrayExpression:
		return a.visitArrayExpression(e, expected)
	case *ast.ObjectExpression:
		return a.visitObjectExpression(e, expected)
	case *ast.BinaryExpression:
		return a.checkExpected(e, a.visitBinaryExpression(e), expected)
	case *ast.LogicalExpression:
		l := a.visitExpression(e.Left, nil)
		r := a.visitExpression(e.Right, nil)
		return a.checkExpected(e, l.Extend(r), expected)
	case *ast.UnaryExpression:
		a.visitExpression(e.Operand, nil)
		result := Prim(Unknown)
		if e.Typeof {
			result = Prim(String)
		}
		return a.checkExpected(e, result, expected)
	case *ast.UpdateExpression:
		a.visitExpression(e.Argument, nil)
		return a.checkExpected(e, Prim(Number), expected)
	case *ast.AssignmentExpression:
		a.visitExpression(e.Target, nil)
		return a.checkExpected(e, a.visitExpression(e.Value, nil), expected)
	case *ast.ConditionalExpression:
		a.visitExpression(e.Test, nil)
		cons := a.visitExpression(e.Consequent, expected)
		alt := a.visitExpression(e.Alternate, expected)
		return cons.Extend(alt)
	case *ast.SequenceExpression:
		var last ResolvedType
		for _, sub := range e.Expressions {
			last = a.visitExpression(sub, nil)
		}
		return a.checkExpected(e, last, expected)
	case *ast.CallExpression:
		return a.checkExpected(e, a.visitCallExpression(e), expected)
	case *ast.NewExpression:
		for _, arg := range e.Arguments {
			a.visitExpression(arg, nil)
		}
		return a.checkExpected(e, Prim(Unknown), expected)
	case *ast.MemberExpression:
		a.visitExpression(e.Object, nil)
		if e.Computed {
			a.visitExpression(e.Property, nil)
		}
		return a.checkExpected(e, Prim(Unknown), expected)
	case *ast.FunctionExpression:
		a.visitFunctionBody(e.Params, e.ReturnType, e.Body)
		return Prim(Unknown)
	case *ast.ArrowFunctionExpression:
		return a.checkExpected(e, a.visitArrowFunction(e), expected)
	case *ast.SpreadElement:
		return a.visitExpression(e.Argument, nil)
	default:
		return Prim(Unknown)
	}
}

// checkExpected compares actual against expected, emitting a TypeMismatch
// diagnostic when they don't match, and always returns actual so callers
// building up a compound type can fold it in with Extend regardless.
func (a *Analyzer) checkExpected(node ast.Expression, actual ResolvedType, expected *ResolvedType) ResolvedType {
	if expected != nil && expected.Kind != Unknown && !expected.Includes(actual) {
		a.report(Diagnostic{
			Kind: TypeMismatch, Span: node.Span(), Severity: Critical,
			Expected: *expected, Received: actual,
		})
	}
	return actual
}

func (a *Analyzer) visitIdentifier(id *ast.Identifier, expected *ResolvedType) ResolvedType {
	sym, ok := a.table.Get(id.Name)
	if !ok {
		a.report(Diagnostic{Kind: UnknownVariable, Span: id.Span(), Severity: Critical, Identifier: id.Name})
		return Prim(Unknown)
	}
	if sym.ResolvedType == nil {
		a.report(Diagnostic{Kind: UseBeforeInit, Span: id.Span(), Severity: Critical, Identifier: id.Name})
		return Prim(Unknown)
	}
	if expected != nil && expected.Kind != Unknown && !expected.Includes(*sym.ResolvedType) {
		a.report(Diagnostic{
			Kind: TypeMismatch, Span: id.Span(), Severity: Critical,
			Expected: *expected, Received: *sym.ResolvedType,
		})
	}
	return *sym.ResolvedType
}

func (a *Analyzer) visitArrayExpression(arr *ast.ArrayExpression, expected *ResolvedType) ResolvedType {
	var expectedElem *ResolvedType
	if expected != nil && expected.Kind == Array {
		expectedElem = expected.ElemType
	}
	itemType := Prim(Unknown)
	for _, el := range arr.Elements {
		t := a.visitExpression(el, expectedElem)
		itemType = itemType.Extend(t)
	}
	return NewArray(itemType)
}

func (a *Analyzer) visitObjectExpression(obj *ast.ObjectExpression, expected *ResolvedType) ResolvedType {
	var expectedValue *ResolvedType
	if expected != nil && expected.Kind == Object {
		expectedValue = expected.ValueType
	} else if expected != nil && expected.Kind != Unknown {
		a.report(Diagnostic{
			Kind: TypeMismatch, Span: obj.Span(), Severity: Critical,
			Expected: *expected, Received: Prim(Object),
		})
	}

	keyType := Prim(Unknown)
	valueType := Prim(Unknown)
	for _, item := range obj.Properties {
		switch it := item.(type) {
		case *ast.ObjectKeyValue:
			if it.Computed {
				keyType = keyType.Extend(a.visitExpression(it.Key, nil))
			} else {
				keyType = keyType.Extend(Prim(String))
			}
			valueType = valueType.Extend(a.visitExpression(it.Value, expectedValue))
		case *ast.ObjectShorthand:
			keyType = keyType.Extend(Prim(String))
			valueType = valueType.Extend(a.visitIdentifier(&ast.Identifier{Name: it.Name}, expectedValue))
		case *ast.ObjectMethod:
			keyType = keyType.Extend(Prim(String))
			a.visitFunctionBody(it.Params, it.ReturnType, it.Body)
			valueType = valueType.Extend(Prim(Unknown))
		case *ast.ObjectSpread:
			a.visitExpression(it.Argument, nil)
		}
	}
	return NewObject(keyType, valueType)
}

func (a *Analyzer) visitCallExpression(call *ast.CallExpression) ResolvedType {
	calleeType := a.visitExpression(call.Callee, nil)
	for _, arg := range call.Arguments {
		a.visitExpression(arg, nil)
	}
	if calleeType.Kind == Function {
		if len(call.Arguments) != len(calleeType.Params) {
			a.report(Diagnostic{
				Kind: InvalidNumberOfArguments, Span: call.Span(), Severity: Critical,
				ExpectedArgs: len(calleeType.Params), ReceivedArgs: len(call.Arguments),
			})
		}
		return *calleeType.Return
	}
	return Prim(Unknown)
}

func (a *Analyzer) visitArrowFunction(fn *ast.ArrowFunctionExpression) ResolvedType {
	params := make([]ResolvedType, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = resolveTypeAnnotation(p.Type)
	}
	a.table.PushScope()
	for _, p := range fn.Params {
		var declared *ResolvedType
		if p.Type != nil {
			t := resolveTypeAnnotation(p.Type)
			declared = &t
		}
		a.table.Add(&Symbol{Name: p.Name, DeclaredType: declared, ResolvedType: declared})
	}
	var ret ResolvedType
	switch body := fn.Body.(type) {
	case ast.Expression:
		ret = a.visitExpression(body, nil)
	case *ast.BlockStatement:
		for _, st := range body.Body {
			a.declareStatement(st)
		}
		for _, st := range body.Body {
			a.visitStatement(st)
		}
		ret = Prim(Unknown)
	}
	a.table.PopScope()
	return NewFunction(params, ret)
}

// visitBinaryExpression type-checks both operands against the operator's
// expected operand type (arithmetic expects Number; + additionally accepts
// String) and returns the operator's result type: arithmetic -> Number, +
// with at least one String operand -> String, comparisons -> Boolean.
func (a *Analyzer) visitBinaryExpression(e *ast.BinaryExpression) ResolvedType {
	switch e.Operator {
	case token.OpAdd:
		expected := ResolvedType{Kind: Union, Members: []ResolvedType{Prim(Number), Prim(String)}}
		left := a.visitExpression(e.Left, &expected)
		right := a.visitExpression(e.Right, &expected)
		if left.Kind == String || right.Kind == String {
			return Prim(String)
		}
		return Prim(Number)
	case token.OpSub, token.OpMul, token.OpDiv, token.OpMod, token.OpPow,
		token.OpBitAnd, token.OpBitOr, token.OpBitXor, token.OpShl, token.OpShr, token.OpUShr:
		expected := Prim(Number)
		a.visitExpression(e.Left, &expected)
		a.visitExpression(e.Right, &expected)
		return Prim(Number)
	case token.OpEq, token.OpStrictEq, token.OpNotEq, token.OpStrictNotEq,
		token.OpLt, token.OpGt, token.OpLte, token.OpGte:
		a.visitExpression(e.Left, nil)
		a.visitExpression(e.Right, nil)
		return Prim(Boolean)
	default:
		a.visitExpression(e.Left, nil)
		a.visitExpression(e.Right, nil)
		return Prim(Unknown)
	}
}
