// File: doc.go
// Title: Bracket Grammar Abstract Syntax Tree Package Documentation
// Description: Defines the tree produced by the bracket grammar parser and
//              the operations on it: rendering, source reconstruction,
//              mirroring, traversal and measurement.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST implementation
// - 2026-10-18 v0.2.0: Square/round node model for the bracket grammar

/*
Package ast defines the Abstract Syntax Tree for the bracket grammar.

	square ::= 'B' | '[' '[' square ']' '(' round ')' ']'
	round  ::= 'A' | '(' '(' round ')' '[' square ']' ')'

A tree is made of two node types. An Atom is a terminal production (B for
square, A for round). A Pair combines two children: a square pair holds a
square on the left and a round on the right, a round pair holds a round on
the left and a square on the right.

The normalized rendering used throughout the toolkit is

	Atom(Square)  -> SQ(A)
	Atom(Round)   -> RD(A)
	Pair(k, l, r) -> SQ(l,r) or RD(l,r)

Nodes are immutable once constructed and each node is owned by its parent.
*/
package ast
