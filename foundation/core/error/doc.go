// Package error provides structured error handling for the brackets toolkit.
//
// Package: error
// Title: Structured Error Handling
// Description: Implements a coded error type with severity, contextual details
//              and optional cause. Parser failures, configuration problems and
//              CLI errors are all reported through this type so that logging
//              and structured output can treat them uniformly.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Parser error codes, dropped localization and stack pooling
//
// Usage:
//
//	import mdwerror "github.com/msto63/brackets/foundation/core/error"
//
//	err := mdwerror.New("expected ']', got ')' at pos 7").
//		WithCode(mdwerror.CodeUnexpectedChar).
//		WithDetail("position", 7)
//
//	if mdwerror.HasCode(err, mdwerror.CodeUnexpectedChar) {
//		// handle syntax error
//	}
package error
