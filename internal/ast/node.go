// Package ast defines the syntax tree produced by the parser: one struct
// per statement, expression and type-annotation variant, each carrying the
// source span it was parsed from.
package ast

import "github.com/Scoutboy06/tsc-go/internal/span"

// Node is implemented by every statement, expression and type-annotation
// node in the tree.
type Node interface {
	Span() span.Span
}

// Statement is implemented by every statement-position node.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by every expression-position node.
type Expression interface {
	Node
	expressionNode()
}

// TypeAnnotation is implemented by every type-position node (`: T` in a
// parameter, variable, or return-type position).
type TypeAnnotation interface {
	Node
	typeAnnotationNode()
}

// Base embeds into every concrete node to provide Span() and anchor the
// half-open [Start,End) byte range invariant: a node's span must fully
// contain every child's span.
type Base struct {
	Sp span.Span
}

func (b Base) Span() span.Span { return b.Sp }
