// File: visitor.go
// Title: Bracket Grammar AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing AST nodes and
//              the visitors used by the toolkit: source reconstruction,
//              statistics and an indented tree dump.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial visitor pattern implementation
// - 2026-10-18 v0.2.0: Atom/pair visitors, Walk and Stats

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	VisitAtom(atom *Atom) interface{}
	VisitPair(pair *Pair) interface{}
}

// BaseVisitor visits every node and returns nil.
// Embed it in visitors that only care about one node type.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitAtom(atom *Atom) interface{} {
	return nil
}

func (bv *BaseVisitor) VisitPair(pair *Pair) interface{} {
	pair.Left.Accept(bv)
	pair.Right.Accept(bv)
	return nil
}

// Walk traverses n depth-first in pre-order. depth is 0 for n itself.
// Returning false from fn skips the children of the current node.
func Walk(n Node, fn func(node Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(node Node, depth int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	if pair, ok := n.(*Pair); ok {
		walk(pair.Left, depth+1, fn)
		walk(pair.Right, depth+1, fn)
	}
}

// SourceVisitor reconstructs grammar text from a tree
type SourceVisitor struct {
	builder strings.Builder
}

// NewSourceVisitor creates a new source visitor
func NewSourceVisitor() *SourceVisitor {
	return &SourceVisitor{}
}

// String returns the text accumulated so far
func (sv *SourceVisitor) String() string {
	return sv.builder.String()
}

// Reset clears the accumulated text
func (sv *SourceVisitor) Reset() {
	sv.builder.Reset()
}

func (sv *SourceVisitor) VisitAtom(atom *Atom) interface{} {
	sv.builder.WriteRune(atom.Type.Terminal())
	return nil
}

// VisitPair writes OPEN OPEN left CLOSE OPEN' right CLOSE' CLOSE, where the
// primed brackets belong to the opposite kind.
func (sv *SourceVisitor) VisitPair(pair *Pair) interface{} {
	inner := pair.Type.Mirror()

	sv.builder.WriteRune(pair.Type.Open())
	sv.builder.WriteRune(pair.Type.Open())
	pair.Left.Accept(sv)
	sv.builder.WriteRune(pair.Type.Close())
	sv.builder.WriteRune(inner.Open())
	pair.Right.Accept(sv)
	sv.builder.WriteRune(inner.Close())
	sv.builder.WriteRune(pair.Type.Close())
	return nil
}

// Stats summarizes the shape of a tree
type Stats struct {
	Depth   int `json:"depth" yaml:"depth"`
	Atoms   int `json:"atoms" yaml:"atoms"`
	Pairs   int `json:"pairs" yaml:"pairs"`
	Squares int `json:"squares" yaml:"squares"`
	Rounds  int `json:"rounds" yaml:"rounds"`
}

// Nodes returns the total number of nodes
func (s Stats) Nodes() int {
	return s.Atoms + s.Pairs
}

// StatsVisitor collects Stats. VisitAtom and VisitPair return the nesting
// depth of the visited subtree as an int.
type StatsVisitor struct {
	stats Stats
}

// NewStatsVisitor creates a new stats visitor
func NewStatsVisitor() *StatsVisitor {
	return &StatsVisitor{}
}

// Stats returns the collected statistics
func (sv *StatsVisitor) Stats() Stats {
	return sv.stats
}

func (sv *StatsVisitor) count(kind Kind) {
	if kind == Square {
		sv.stats.Squares++
	} else {
		sv.stats.Rounds++
	}
}

func (sv *StatsVisitor) VisitAtom(atom *Atom) interface{} {
	sv.stats.Atoms++
	sv.count(atom.Type)
	return 0
}

func (sv *StatsVisitor) VisitPair(pair *Pair) interface{} {
	sv.stats.Pairs++
	sv.count(pair.Type)

	left := pair.Left.Accept(sv).(int)
	right := pair.Right.Accept(sv).(int)

	depth := 1 + max(left, right)
	if depth > sv.stats.Depth {
		sv.stats.Depth = depth
	}
	return depth
}

// Measure returns the statistics of n. Depth counts nested pairs; an atom has depth 0.
func Measure(n Node) Stats {
	if n == nil {
		return Stats{}
	}
	sv := NewStatsVisitor()
	n.Accept(sv)
	return sv.Stats()
}

// TreeVisitor renders an indented, human-readable dump of a tree
type TreeVisitor struct {
	builder strings.Builder
	indent  int
}

// NewTreeVisitor creates a new tree visitor
func NewTreeVisitor() *TreeVisitor {
	return &TreeVisitor{}
}

// String returns the dump accumulated so far
func (tv *TreeVisitor) String() string {
	return tv.builder.String()
}

func (tv *TreeVisitor) writeIndent() {
	for i := 0; i < tv.indent; i++ {
		tv.builder.WriteString("  ")
	}
}

func (tv *TreeVisitor) VisitAtom(atom *Atom) interface{} {
	tv.writeIndent()
	fmt.Fprintf(&tv.builder, "%s atom %q @%d\n", atom.Type, atom.Type.Terminal(), atom.Pos)
	return nil
}

func (tv *TreeVisitor) VisitPair(pair *Pair) interface{} {
	tv.writeIndent()
	fmt.Fprintf(&tv.builder, "%s pair @%d\n", pair.Type, pair.Pos)

	tv.indent++
	pair.Left.Accept(tv)
	pair.Right.Accept(tv)
	tv.indent--
	return nil
}

// Dump returns the indented tree dump of n
func Dump(n Node) string {
	if n == nil {
		return ""
	}
	tv := NewTreeVisitor()
	n.Accept(tv)
	return tv.String()
}
