package ast

import "github.com/Scoutboy06/tsc-go/internal/atom"

func (KeywordTypeAnnotation) typeAnnotationNode() {}
func (TypeReference) typeAnnotationNode()         {}
func (ArrayTypeAnnotation) typeAnnotationNode()   {}
func (UnionTypeAnnotation) typeAnnotationNode()   {}
func (FunctionTypeAnnotation) typeAnnotationNode() {}

// PrimitiveType names one of the built-in primitive type keywords.
type PrimitiveType uint8

const (
	StringType PrimitiveType = iota
	NumberType
	BooleanType
	NullType
)

// KeywordTypeAnnotation is a primitive type keyword used as a type, e.g.
// `string`, `number`, `boolean`.
type KeywordTypeAnnotation struct {
	Base
	Name PrimitiveType
}

// TypeReference is a named type, optionally with generic type arguments,
// e.g. `Foo`, `Array<T>`, `Record<K, V>`.
type TypeReference struct {
	Base
	Name     atom.Atom
	TypeArgs []TypeAnnotation
}

// ArrayTypeAnnotation is `T[]`.
type ArrayTypeAnnotation struct {
	Base
	ElementType TypeAnnotation
}

// UnionTypeAnnotation is `A | B | C`.
type UnionTypeAnnotation struct {
	Base
	Members []TypeAnnotation
}

// FunctionTypeAnnotation is `(a: T, b: U) => R` used in type position.
type FunctionTypeAnnotation struct {
	Base
	Params     []Param
	ReturnType TypeAnnotation
}
