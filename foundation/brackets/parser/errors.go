// File: errors.go
// Title: Bracket Grammar Parse Errors
// Description: Defines the parse error kinds, the positional ParseError type
//              and its conversion into the structured error type.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Initial implementation

package parser

import (
	"errors"
	"fmt"

	mdwerror "github.com/msto63/brackets/foundation/core/error"
)

// ErrorKind classifies a parse failure
type ErrorKind int

const (
	// EndOfInput: the input ended while a specific character was expected
	EndOfInput ErrorKind = iota

	// UnexpectedChar: a specific character was required but another was found
	UnexpectedChar

	// UnexpectedSymbol: the lookahead starts neither a square nor a round
	UnexpectedSymbol

	// TrailingInput: a complete expression was parsed but input remains
	TrailingInput

	// InputTooLong: the input exceeds Options.MaxInputLength
	InputTooLong

	// NestingTooDeep: pairs are nested deeper than Options.MaxDepth
	NestingTooDeep
)

// noChar marks an absent expected or found character
const noChar rune = -1

// String returns the name of the error kind
func (k ErrorKind) String() string {
	switch k {
	case EndOfInput:
		return "EndOfInput"
	case UnexpectedChar:
		return "UnexpectedChar"
	case UnexpectedSymbol:
		return "UnexpectedSymbol"
	case TrailingInput:
		return "TrailingInput"
	case InputTooLong:
		return "InputTooLong"
	case NestingTooDeep:
		return "NestingTooDeep"
	default:
		return "Unknown"
	}
}

// Code returns the structured error code of the kind
func (k ErrorKind) Code() mdwerror.Code {
	switch k {
	case EndOfInput:
		return mdwerror.CodeEndOfInput
	case UnexpectedChar:
		return mdwerror.CodeUnexpectedChar
	case UnexpectedSymbol:
		return mdwerror.CodeUnexpectedSymbol
	case TrailingInput:
		return mdwerror.CodeTrailingInput
	case InputTooLong:
		return mdwerror.CodeInputTooLong
	case NestingTooDeep:
		return mdwerror.CodeNestingTooDeep
	default:
		return mdwerror.CodeUnknown
	}
}

// ParseError represents a parsing error with position information
type ParseError struct {
	Kind     ErrorKind
	Message  string
	Position int // 0-based rune offset of the offending or missing character
	Expected rune
	Found    rune
}

// Error returns the human-readable message
func (pe *ParseError) Error() string {
	return pe.Message
}

// HasExpected reports whether the error names an expected character
func (pe *ParseError) HasExpected() bool {
	return pe.Expected != noChar
}

// HasFound reports whether a character was present at the error position
func (pe *ParseError) HasFound() bool {
	return pe.Found != noChar
}

// ToError converts the parse error into a coded structured error
func (pe *ParseError) ToError() *mdwerror.Error {
	err := mdwerror.New(pe.Message).
		WithCode(pe.Kind.Code()).
		WithOperation("parser.Parse").
		WithDetail("kind", pe.Kind.String()).
		WithDetail("position", pe.Position)

	if pe.HasExpected() {
		err = err.WithDetail("expected", string(pe.Expected))
	}
	if pe.HasFound() {
		err = err.WithDetail("found", string(pe.Found))
	}
	return err
}

// IsKind reports whether err is a *ParseError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == kind
}

func errEndOfInput(pos int, expected rune) *ParseError {
	message := "unexpected end of input"
	if expected != noChar {
		message = fmt.Sprintf("unexpected end of input, expected '%c'", expected)
	}
	return &ParseError{
		Kind:     EndOfInput,
		Message:  message,
		Position: pos,
		Expected: expected,
		Found:    noChar,
	}
}

func errUnexpectedChar(pos int, expected, found rune) *ParseError {
	return &ParseError{
		Kind:     UnexpectedChar,
		Message:  fmt.Sprintf("expected '%c', got '%c' at pos %d", expected, found, pos),
		Position: pos,
		Expected: expected,
		Found:    found,
	}
}

func errUnexpectedSymbol(pos int, found rune) *ParseError {
	symbol := "<end of input>"
	if found != noChar {
		symbol = fmt.Sprintf("'%c'", found)
	}
	return &ParseError{
		Kind:     UnexpectedSymbol,
		Message:  fmt.Sprintf("unexpected symbol %s at pos %d", symbol, pos),
		Position: pos,
		Expected: noChar,
		Found:    found,
	}
}

func errTrailingInput(pos int, found rune) *ParseError {
	return &ParseError{
		Kind:     TrailingInput,
		Message:  fmt.Sprintf("extra characters after valid expression at pos %d", pos),
		Position: pos,
		Expected: noChar,
		Found:    found,
	}
}

func errInputTooLong(length, limit int) *ParseError {
	return &ParseError{
		Kind:     InputTooLong,
		Message:  fmt.Sprintf("input exceeds maximum length: %d > %d", length, limit),
		Position: limit,
		Expected: noChar,
		Found:    noChar,
	}
}

func errNestingTooDeep(pos, limit int, found rune) *ParseError {
	return &ParseError{
		Kind:     NestingTooDeep,
		Message:  fmt.Sprintf("nesting exceeds maximum depth of %d at pos %d", limit, pos),
		Position: pos,
		Expected: noChar,
		Found:    found,
	}
}
