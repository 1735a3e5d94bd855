// File: parser.go
// Title: Bracket Grammar Recursive Descent Parser
// Description: Implements the square/round grammar as mutually recursive
//              rules over a rune cursor with single-character lookahead.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-18 v0.2.0: Rewritten for the bracket grammar

package parser

import (
	"fmt"

	mdwast "github.com/msto63/brackets/foundation/brackets/ast"
	mdwlog "github.com/msto63/brackets/foundation/core/log"
)

// Parser parses bracket expressions. It holds configuration only; every
// call to Parse works on its own cursor, so a Parser may be shared between
// goroutines.
type Parser struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger *mdwlog.Logger

	// MaxInputLength limits the input length in runes. 0 means unlimited.
	MaxInputLength int

	// MaxDepth limits how deeply pairs may nest. 0 means unlimited.
	MaxDepth int
}

// New creates a new parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.MaxInputLength < 0 {
		return nil, fmt.Errorf("max input length must not be negative: %d", opts.MaxInputLength)
	}
	if opts.MaxDepth < 0 {
		return nil, fmt.Errorf("max depth must not be negative: %d", opts.MaxDepth)
	}
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "brackets-parser"),
		options: opts,
	}, nil
}

// ParseExpression parses input with default options: no length or depth limit
func ParseExpression(input string) (mdwast.Node, error) {
	p, err := New(Options{})
	if err != nil {
		return nil, err
	}
	return p.Parse(input)
}

// Parse parses input and returns its tree. The entire input must form
// exactly one expression.
func (p *Parser) Parse(input string) (mdwast.Node, error) {
	runes := []rune(input)

	if limit := p.options.MaxInputLength; limit > 0 && len(runes) > limit {
		err := errInputTooLong(len(runes), limit)
		p.logger.Debug("Input rejected", mdwlog.Fields{
			"length": len(runes),
			"limit":  limit,
		})
		return nil, err
	}

	timer := p.logger.StartTimer("parse").WithField("length", len(runes))

	s := &state{
		input:    runes,
		maxDepth: p.options.MaxDepth,
		logger:   p.logger,
		trace:    p.logger.IsLevelEnabled(mdwlog.LevelTrace),
	}

	node, err := s.parseExpression()
	if err != nil {
		timer.WithField("error", err.Error()).StopWithResult(false, nil)
		return nil, err
	}

	timer.WithField("consumed", s.pos).StopWithResult(true, nil)
	return node, nil
}

// state is the cursor of a single parse
type state struct {
	input    []rune
	pos      int
	depth    int
	maxDepth int

	logger *mdwlog.Logger
	trace  bool
}

// parseExpression runs the dispatch rule and requires that no input remains
func (s *state) parseExpression() (mdwast.Node, error) {
	node, err := s.parseBrackets()
	if err != nil {
		return nil, err
	}

	if c, ok := s.current(); ok {
		return nil, errTrailingInput(s.pos, c)
	}
	return node, nil
}

// Cursor primitives

// current returns the character under the cursor without consuming it
func (s *state) current() (rune, bool) {
	if s.pos >= len(s.input) {
		return noChar, false
	}
	return s.input[s.pos], true
}

// consume returns the character under the cursor and advances by one.
// If expected is not noChar the character must equal it. This is the only
// place the cursor moves.
func (s *state) consume(expected rune) (rune, error) {
	if s.pos >= len(s.input) {
		return noChar, errEndOfInput(s.pos, expected)
	}

	c := s.input[s.pos]
	if expected != noChar && c != expected {
		return noChar, errUnexpectedChar(s.pos, expected, c)
	}

	s.pos++
	return c, nil
}

// expect consumes the given character, discarding it
func (s *state) expect(expected rune) error {
	_, err := s.consume(expected)
	return err
}

// Grammar rules

// parseBrackets dispatches on the lookahead without consuming anything
func (s *state) parseBrackets() (mdwast.Node, error) {
	c, ok := s.current()
	switch {
	case ok && (c == 'B' || c == '['):
		return s.parseSquare()
	case ok && (c == 'A' || c == '('):
		return s.parseRound()
	default:
		return nil, errUnexpectedSymbol(s.pos, c)
	}
}

// parseSquare parses 'B' | '[' '[' square ']' '(' round ')' ']'
func (s *state) parseSquare() (mdwast.Node, error) {
	return s.parseRule(mdwast.Square)
}

// parseRound parses 'A' | '(' '(' round ')' '[' square ']' ')'
func (s *state) parseRound() (mdwast.Node, error) {
	return s.parseRule(mdwast.Round)
}

// parseRule parses one nonterminal. Both rules share a shape: the kind's
// terminal, or a doubled opening bracket, a nested rule of the same kind, a
// nested rule of the opposite kind in the opposite brackets, and a close.
func (s *state) parseRule(kind mdwast.Kind) (mdwast.Node, error) {
	start := s.pos
	if s.trace {
		s.logger.Trace("Enter rule", mdwlog.Fields{"rule": kind.String(), "pos": start})
	}

	if c, ok := s.current(); ok && c == kind.Terminal() {
		if err := s.expect(c); err != nil {
			return nil, err
		}
		return mdwast.NewAtom(kind, start), nil
	}

	inner := kind.Mirror()

	if err := s.expect(kind.Open()); err != nil {
		return nil, err
	}
	if err := s.expect(kind.Open()); err != nil {
		return nil, err
	}

	// The pair is committed once both opening brackets are read
	if s.maxDepth > 0 && s.depth >= s.maxDepth {
		return nil, errNestingTooDeep(start, s.maxDepth, kind.Open())
	}
	s.depth++
	defer func() { s.depth-- }()

	left, err := s.parseRule(kind)
	if err != nil {
		return nil, err
	}

	if err := s.expect(kind.Close()); err != nil {
		return nil, err
	}
	if err := s.expect(inner.Open()); err != nil {
		return nil, err
	}

	right, err := s.parseRule(inner)
	if err != nil {
		return nil, err
	}

	if err := s.expect(inner.Close()); err != nil {
		return nil, err
	}
	if err := s.expect(kind.Close()); err != nil {
		return nil, err
	}

	return mdwast.NewPair(kind, left, right, start), nil
}

// Mirror swaps '(' with '[', ')' with ']' and 'A' with 'B'. Other characters
// are kept. The mirror of a valid expression parses to the mirrored tree.
func Mirror(text string) string {
	runes := []rune(text)
	for i, c := range runes {
		switch c {
		case '(':
			runes[i] = '['
		case '[':
			runes[i] = '('
		case ')':
			runes[i] = ']'
		case ']':
			runes[i] = ')'
		case 'A':
			runes[i] = 'B'
		case 'B':
			runes[i] = 'A'
		}
	}
	return string(runes)
}
