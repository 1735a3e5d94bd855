// File: doc.go
// Title: Bracket Grammar Parser Package Documentation
// Description: Recursive descent parser for the two-rule bracket grammar.
//              Converts expression strings into AST nodes or reports the
//              first error with its exact position.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-18 v0.2.0: Character-level bracket grammar, no token stream

/*
Package parser implements a recursive descent parser for the grammar

	brackets ::= square | round
	square   ::= 'B' | '[' '[' square ']' '(' round ')' ']'
	round    ::= 'A' | '(' '(' round ')' '[' square ']' ')'

The grammar is LL(1): the first character always selects the production, so
the parser needs neither a token buffer nor backtracking. Its only state is a
cursor into the input, measured in runes, that moves forward one character at
a time through a single consume primitive.

Parsing is fail-fast. The first error aborts the parse and is returned as a
*ParseError carrying its kind and the 0-based rune offset where it occurred.
The whole input must be consumed; leftover characters after a complete
expression are reported as TrailingInput.

	node, err := parser.ParseExpression("[[B](A)]")
	// node.String() == "SQ(SQ(A),RD(A))"
*/
package parser
