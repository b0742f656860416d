package ast

import "github.com/Scoutboy06/tsc-go/internal/atom"

func (VariableDeclaration) statementNode()   {}
func (ExpressionStatement) statementNode()   {}
func (BlockStatement) statementNode()        {}
func (EmptyStatement) statementNode()        {}
func (IfStatement) statementNode()           {}
func (WhileStatement) statementNode()        {}
func (DoWhileStatement) statementNode()      {}
func (ForStatement) statementNode()          {}
func (ForInStatement) statementNode()        {}
func (ForOfStatement) statementNode()        {}
func (ReturnStatement) statementNode()       {}
func (BreakStatement) statementNode()        {}
func (ContinueStatement) statementNode()     {}
func (ThrowStatement) statementNode()        {}
func (TryStatement) statementNode()          {}
func (SwitchStatement) statementNode()       {}
func (FunctionDeclaration) statementNode()   {}
func (ClassDeclaration) statementNode()      {}
func (EnumDeclaration) statementNode()       {}
func (InterfaceDeclaration) statementNode()  {}
func (TypeAliasDeclaration) statementNode()  {}
func (DebuggerStatement) statementNode()     {}
func (LabeledStatement) statementNode()      {}
func (ImportDeclaration) statementNode()     {}
func (ExportDeclaration) statementNode()     {}
func (ShebangStatement) statementNode()      {}

// VariableKind distinguishes `var`/`let`/`const`.
type VariableKind uint8

const (
	Var VariableKind = iota
	Let
	Const
)

// VariableDeclaration is `let x: T = init;`, possibly declaring several
// names in one statement (`let x = 1, y = 2;`).
type VariableDeclaration struct {
	Base
	Kind         VariableKind
	Declarations []VariableDeclarator
}

// VariableDeclarator is one `name: T = init` binding within a
// VariableDeclaration.
type VariableDeclarator struct {
	Name atom.Atom
	Type TypeAnnotation
	Init Expression // nil if uninitialized
}

// ExpressionStatement is an expression used as a statement, e.g. a bare
// call `foo();`.
type ExpressionStatement struct {
	Base
	Expression Expression
}

// BlockStatement is `{ ... }` in statement position.
type BlockStatement struct {
	Base
	Body []Statement
}

// EmptyStatement is a lone `;`.
type EmptyStatement struct{ Base }

// IfStatement is `if (test) cons else alt`. Alternate is nil when there is
// no else clause.
type IfStatement struct {
	Base
	Test       Expression
	Consequent Statement
	Alternate  Statement
}

// WhileStatement is `while (test) body`.
type WhileStatement struct {
	Base
	Test Expression
	Body Statement
}

// DoWhileStatement is `do body while (test);`.
type DoWhileStatement struct {
	Base
	Body Statement
	Test Expression
}

// ForStatement is the classic C-style `for (init; test; update) body`. Each
// clause is nil when omitted.
type ForStatement struct {
	Base
	Init   Node // *VariableDeclaration or Expression, or nil
	Test   Expression
	Update Expression
	Body   Statement
}

// ForInStatement is `for (left in right) body`.
type ForInStatement struct {
	Base
	Left  Node // *VariableDeclaration or Expression
	Right Expression
	Body  Statement
}

// ForOfStatement is `for (left of right) body`.
type ForOfStatement struct {
	Base
	Left  Node
	Right Expression
	Body  Statement
}

// ReturnStatement is `return expr;`. Argument is nil for a bare `return;`.
type ReturnStatement struct {
	Base
	Argument Expression
}

// BreakStatement is `break;` or `break label;`.
type BreakStatement struct {
	Base
	Label atom.Atom
}

// ContinueStatement is `continue;` or `continue label;`.
type ContinueStatement struct {
	Base
	Label atom.Atom
}

// ThrowStatement is `throw expr;`.
type ThrowStatement struct {
	Base
	Argument Expression
}

// TryStatement is `try { ... } catch (e) { ... } finally { ... }`. Handler
// and Finalizer are nil when absent.
type TryStatement struct {
	Base
	Block     *BlockStatement
	Param     atom.Atom // catch binding name, empty if omitted
	HasParam  bool
	Handler   *BlockStatement
	Finalizer *BlockStatement
}

// SwitchStatement is `switch (disc) { case ...: ... default: ... }`.
type SwitchStatement struct {
	Base
	Discriminant Expression
	Cases        []SwitchCase
}

// SwitchCase is one `case expr:` (or `default:` when Test is nil) arm.
type SwitchCase struct {
	Test        Expression
	Consequent  []Statement
}

// FunctionDeclaration is a named `function f(...) { ... }` in statement
// position.
type FunctionDeclaration struct {
	Base
	Name       atom.Atom
	TypeParams []atom.Atom // `<T, U>`, each an identifier only, no bounds
	Params     []Param
	ReturnType TypeAnnotation
	Body       *BlockStatement
	Async      bool
	Generator  bool
}

// ClassDeclaration is `class Name extends Base { ... }`.
type ClassDeclaration struct {
	Base
	Name       atom.Atom
	SuperClass Expression // nil if no `extends`
	Members    []ClassMember
}

// ClassMember is implemented by field and method members of a class body.
type ClassMember interface {
	Node
	classMemberNode()
}

func (ClassField) classMemberNode()  {}
func (ClassMethod) classMemberNode() {}

// Visibility is a TypeScript accessibility modifier.
type Visibility uint8

const (
	Public Visibility = iota
	Private
	Protected
)

// ClassField is `[modifiers] name: T = init;` inside a class body.
type ClassField struct {
	Base
	Name       atom.Atom
	Type       TypeAnnotation
	Init       Expression
	Static     bool
	Visibility Visibility
}

// ClassMethod is a method, constructor, getter or setter inside a class
// body.
type ClassMethod struct {
	Base
	Name       atom.Atom
	TypeParams []atom.Atom
	Params     []Param
	ReturnType TypeAnnotation
	Body       *BlockStatement
	Static     bool
	Async      bool
	Generator  bool
	Visibility Visibility
	Kind       MethodKind
}

// MethodKind distinguishes ordinary methods from constructors and
// accessors.
type MethodKind uint8

const (
	MethodOrdinary MethodKind = iota
	MethodConstructor
	MethodGetter
	MethodSetter
)

// EnumDeclaration is `[declare] [const] enum Name { ... }`.
type EnumDeclaration struct {
	Base
	Name    atom.Atom
	Members []EnumMember
	Const   bool
	Declare bool
}

// EnumMember is one `Name` or `Name = init` entry in an enum body.
type EnumMember struct {
	Name atom.Atom
	Init Expression // nil when the value is auto-assigned
}

// InterfaceDeclaration is `interface Name { ... }`, a type-only
// declaration: its members describe shape, not runtime behavior.
type InterfaceDeclaration struct {
	Base
	Name    atom.Atom
	Members []InterfaceMember
}

// InterfaceMember is one `name: T;` (or method-shaped) entry in an
// interface body.
type InterfaceMember struct {
	Name       atom.Atom
	Type       TypeAnnotation
	Optional   bool
	IsMethod   bool
	Params     []Param
	ReturnType TypeAnnotation
}

// TypeAliasDeclaration is `type Name = T;`.
type TypeAliasDeclaration struct {
	Base
	Name atom.Atom
	Type TypeAnnotation
}

// DebuggerStatement is the bare `debugger;` statement.
type DebuggerStatement struct{ Base }

// LabeledStatement is `label: body`, most commonly labeling a loop so a
// `break`/`continue` inside it can target an outer loop by name.
type LabeledStatement struct {
	Base
	Label atom.Atom
	Body  Statement
}

// ImportSpecifier is one named binding in an import clause: `{ a }` or
// `{ a as b }`.
type ImportSpecifier struct {
	Name  atom.Atom
	Alias atom.Atom // equal to Name when there is no `as` clause
}

// ImportDeclaration is `import ... from "module";` in any of its forms:
// default (`import x from "m"`), namespace (`import * as ns from "m"`),
// named (`import { a, b as c } from "m"`), or a combination of default plus
// named/namespace. Module resolution itself is out of scope; only the
// syntax and its bindings are modeled.
type ImportDeclaration struct {
	Base
	Default   atom.Atom // empty if no default import
	Namespace atom.Atom // empty if no `* as ns` clause
	Named     []ImportSpecifier
	Source    atom.Atom
}

// ExportSpecifier is one named binding in an export clause: `{ a }` or
// `{ a as b }`.
type ExportSpecifier struct {
	Name  atom.Atom
	Alias atom.Atom
}

// ExportDeclaration covers `export <declaration>`, `export default <expr>`,
// and `export { a, b as c } [from "module"];`.
type ExportDeclaration struct {
	Base
	Declaration Statement  // non-nil for `export function/class/const ...`
	Default     Expression // non-nil for `export default <expr>`
	Named       []ExportSpecifier
	Source      atom.Atom // non-empty for a re-export `export { a } from "m"`
}

// ShebangStatement is a `#!...` line at the very start of a source file.
type ShebangStatement struct{ Base }
