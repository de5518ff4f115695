// Package ast defines the abstract syntax tree produced by the parser
// and consumed by the evaluator. Every expression and pattern node
// carries a Position so the evaluator and diagnostics layer can point
// at exact source spans.
package ast

import "fmt"

// Position is a single point (or span start) in a source file.
type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based byte offset
	Length int // span length in bytes
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Pos implements Node for any struct that embeds Position by value.
func (p Position) Pos() Position { return p }

// End returns the byte offset just past the span.
func (p Position) End() int { return p.Offset + p.Length }

// Node is the base interface implemented by every AST node.
type Node interface {
	Pos() Position
}

// Expr is any expression node.
type Expr interface {
	Node
	exprNode()
}

// Pattern is any destructuring pattern node.
type Pattern interface {
	Node
	patternNode()
}
