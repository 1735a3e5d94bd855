// File: nodes.go
// Title: Bracket Grammar AST Node Definitions
// Description: Defines the node kinds, the Atom and Pair node types and their
//              string, source and validation behavior.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST node definitions
// - 2026-10-18 v0.2.0: Replaced command nodes with square/round nodes

package ast

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies which nonterminal produced a node
type Kind int

const (
	// Square is produced by the square rule ('B' or '[[ ... ]')
	Square Kind = iota

	// Round is produced by the round rule ('A' or '(( ... ])')
	Round
)

// String returns the lower-case name of the kind
func (k Kind) String() string {
	switch k {
	case Square:
		return "square"
	case Round:
		return "round"
	default:
		return "unknown"
	}
}

// Tag returns the rendering tag of the kind (SQ or RD)
func (k Kind) Tag() string {
	if k == Round {
		return "RD"
	}
	return "SQ"
}

// Mirror returns the opposite kind
func (k Kind) Mirror() Kind {
	if k == Round {
		return Square
	}
	return Round
}

// Terminal returns the atom character of the kind
func (k Kind) Terminal() rune {
	if k == Round {
		return 'A'
	}
	return 'B'
}

// Open returns the opening bracket of a pair of this kind
func (k Kind) Open() rune {
	if k == Round {
		return '('
	}
	return '['
}

// Close returns the closing bracket matching Open
func (k Kind) Close() rune {
	if k == Round {
		return ')'
	}
	return ']'
}

// Node represents the base interface for all AST nodes
type Node interface {
	// Kind returns which rule produced the node
	Kind() Kind

	// String returns the normalized rendering, e.g. SQ(SQ(A),RD(A))
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the 0-based rune offset of the node's first character
	Position() int

	// Validate checks that children have the kinds the grammar requires
	Validate() error

	node()
}

// Atom is a terminal production: B for square, A for round
type Atom struct {
	Type Kind
	Pos  int
}

// Pair combines two recursively parsed children. A square pair has a square
// on the left and a round on the right; a round pair is the reverse.
type Pair struct {
	Type  Kind
	Left  Node
	Right Node
	Pos   int
}

// NewAtom creates an atom of the given kind at pos
func NewAtom(kind Kind, pos int) *Atom {
	return &Atom{Type: kind, Pos: pos}
}

// NewPair creates a pair of the given kind at pos
func NewPair(kind Kind, left, right Node, pos int) *Pair {
	return &Pair{Type: kind, Left: left, Right: right, Pos: pos}
}

func (a *Atom) node() {}
func (p *Pair) node() {}

// Kind returns the kind of the atom
func (a *Atom) Kind() Kind { return a.Type }

// Kind returns the kind of the pair
func (p *Pair) Kind() Kind { return p.Type }

// Position returns the offset of the terminal character
func (a *Atom) Position() int { return a.Pos }

// Position returns the offset of the first opening bracket
func (p *Pair) Position() int { return p.Pos }

// String renders the atom as SQ(A) or RD(A)
func (a *Atom) String() string {
	return a.Type.Tag() + "(A)"
}

// String renders the pair as TAG(left,right)
func (p *Pair) String() string {
	var b strings.Builder
	writeRendering(&b, p)
	return b.String()
}

// writeRendering appends the normalized rendering of n to b
func writeRendering(b *strings.Builder, n Node) {
	switch node := n.(type) {
	case *Atom:
		b.WriteString(node.Type.Tag())
		b.WriteString("(A)")
	case *Pair:
		b.WriteString(node.Type.Tag())
		b.WriteByte('(')
		writeRendering(b, node.Left)
		b.WriteByte(',')
		writeRendering(b, node.Right)
		b.WriteByte(')')
	}
}

// Validate always succeeds for a known kind
func (a *Atom) Validate() error {
	if a.Type != Square && a.Type != Round {
		return fmt.Errorf("atom at pos %d has unknown kind %d", a.Pos, int(a.Type))
	}
	return nil
}

// Validate checks the pair's children recursively
func (p *Pair) Validate() error {
	if p.Type != Square && p.Type != Round {
		return fmt.Errorf("pair at pos %d has unknown kind %d", p.Pos, int(p.Type))
	}
	if p.Left == nil || p.Right == nil {
		return fmt.Errorf("%s pair at pos %d is missing a child", p.Type, p.Pos)
	}
	if p.Left.Kind() != p.Type {
		return fmt.Errorf("%s pair at pos %d: left child must be %s, got %s",
			p.Type, p.Pos, p.Type, p.Left.Kind())
	}
	if p.Right.Kind() != p.Type.Mirror() {
		return fmt.Errorf("%s pair at pos %d: right child must be %s, got %s",
			p.Type, p.Pos, p.Type.Mirror(), p.Right.Kind())
	}
	if err := p.Left.Validate(); err != nil {
		return err
	}
	return p.Right.Validate()
}

// Accept implements the visitor pattern
func (a *Atom) Accept(visitor Visitor) interface{} {
	return visitor.VisitAtom(a)
}

// Accept implements the visitor pattern
func (p *Pair) Accept(visitor Visitor) interface{} {
	return visitor.VisitPair(p)
}

// MarshalJSON encodes the atom in its Tree form
func (a *Atom) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToTree(a))
}

// MarshalJSON encodes the pair in its Tree form
func (p *Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToTree(p))
}

// Render returns the normalized rendering of n
func Render(n Node) string {
	if n == nil {
		return ""
	}
	return n.String()
}

// Source reconstructs the grammar text that parses to n
func Source(n Node) string {
	if n == nil {
		return ""
	}
	v := NewSourceVisitor()
	n.Accept(v)
	return v.String()
}

// Mirror returns a copy of n with square and round swapped at every level.
// Positions are kept; the mirrored tree is what parsing the mirrored source
// text yields.
func Mirror(n Node) Node {
	switch node := n.(type) {
	case *Atom:
		return NewAtom(node.Type.Mirror(), node.Pos)
	case *Pair:
		return NewPair(node.Type.Mirror(), Mirror(node.Left), Mirror(node.Right), node.Pos)
	default:
		return nil
	}
}

// Equal reports whether a and b have the same shape and kinds. Positions are ignored.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *Atom:
		y, ok := b.(*Atom)
		return ok && x.Type == y.Type
	case *Pair:
		y, ok := b.(*Pair)
		return ok && x.Type == y.Type && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	default:
		return a == nil && b == nil
	}
}
