// Package log provides structured logging for the brackets toolkit.
//
// Package: log
// Title: Structured Logging
// Description: Structured logger with levels, key-value fields, request
//              context, pluggable formatters (JSON, text, console, logfmt)
//              and operation timers. Integrates with the structured error
//              type so that coded errors are logged with their metadata.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-18 v0.2.0: Removed async buffering, sorted text fields
//
// Usage:
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelDebug,
//		Format: mdwlog.FormatText,
//		Output: os.Stderr,
//		Name:   "brackets",
//	})
//
//	logger.Info("parsed expression", mdwlog.Fields{"input": "[[B](A)]"})
//
//	timer := logger.StartTimer("parse")
//	defer timer.Stop()
package log
