package semantic

import (
	"github.com/Scoutboy06/tsc-go/internal/ast"
	"github.com/Scoutboy06/tsc-go/internal/atom"
)

// Symbol is a named binding registered by the declaration pass: its
// declared (annotated) type, and the resolved type once the body pass has
// visited its initializer.
type Symbol struct {
	Name         atom.Atom
	DeclaredType *ResolvedType // from an explicit annotation, nil if absent
	ResolvedType *ResolvedType // filled in once the initializer (or
	                           // equivalent) has been visited
	DeclaredAt ast.Node
}

// SymbolTable is a stack of lexical scopes, innermost last. Lookups walk
// from the innermost scope outward so shadowing resolves to the nearest
// declaration.
type SymbolTable struct {
	scopes []map[atom.Atom]*Symbol
}

// NewSymbolTable returns a table with a single (global) scope.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{scopes: []map[atom.Atom]*Symbol{{}}}
}

// PushScope opens a new, innermost lexical scope.
func (t *SymbolTable) PushScope() {
	t.scopes = append(t.scopes, map[atom.Atom]*Symbol{})
}

// PopScope closes the innermost lexical scope.
func (t *SymbolTable) PopScope() {
	t.scopes = t.scopes[:len(t.scopes)-1]
}

// Add registers sym in the innermost scope.
func (t *SymbolTable) Add(sym *Symbol) {
	t.scopes[len(t.scopes)-1][sym.Name] = sym
}

// Get looks up name starting from the innermost scope outward.
func (t *SymbolTable) Get(name atom.Atom) (*Symbol, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if s, ok := t.scopes[i][name]; ok {
			return s, true
		}
	}
	return nil, false
}
