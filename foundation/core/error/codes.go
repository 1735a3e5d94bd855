// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the parser, configuration layer and CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Replaced TCOL codes with bracket grammar codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"
	CodeCanceled     Code = "CANCELED"

	// Grammar codes, one per parse failure kind
	CodeEndOfInput       Code = "BRACKETS_END_OF_INPUT"
	CodeUnexpectedChar   Code = "BRACKETS_UNEXPECTED_CHAR"
	CodeUnexpectedSymbol Code = "BRACKETS_UNEXPECTED_SYMBOL"
	CodeTrailingInput    Code = "BRACKETS_TRAILING_INPUT"
	CodeInputTooLong     Code = "BRACKETS_INPUT_TOO_LONG"
	CodeNestingTooDeep   Code = "BRACKETS_NESTING_TOO_DEEP"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout, CodeCanceled,
		CodeEndOfInput, CodeUnexpectedChar, CodeUnexpectedSymbol, CodeTrailingInput,
		CodeInputTooLong, CodeNestingTooDeep,
		CodeConfigError, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeEndOfInput, CodeUnexpectedChar, CodeUnexpectedSymbol, CodeTrailingInput,
		CodeInputTooLong, CodeNestingTooDeep:
		return "syntax"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat:
		return "validation"
	default:
		return "generic"
	}
}
