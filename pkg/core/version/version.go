// ============================================================================
// brackets - Bracket Grammar Parser
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Platform version
	Platform = "1.0.0"

	// Component versions
	Parser = "1.0.0"
	CLI    = "1.0.0"
	REPL   = "1.0.0"
)

// Build metadata, set with -ldflags "-X ..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "parser":
		return Parser
	case "cli":
		return CLI
	case "repl":
		return REPL
	default:
		return Platform
	}
}

// Info returns a one-line description of the build
func Info() string {
	return fmt.Sprintf("brackets %s (parser %s, commit %s, built %s, %s)",
		Platform, Parser, Commit, BuildDate, runtime.Version())
}
