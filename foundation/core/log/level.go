// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for filtering and controlling log output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-18 v0.2.0: Table driven level attributes, trace level added

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level, e.g. per-rule parser tracing
	LevelTrace Level = iota

	// LevelDebug provides detailed information for debugging purposes
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates potentially harmful situations
	LevelWarn

	// LevelError represents error conditions that need attention
	LevelError

	// LevelFatal represents critical errors that cause program termination
	LevelFatal

	// LevelAudit is always logged regardless of the minimum level
	LevelAudit
)

// levelAttrs describes how a level is named and displayed
type levelAttrs struct {
	name    string
	short   string
	color   string
	aliases []string
}

var levels = [...]levelAttrs{
	LevelTrace: {"trace", "TRC", "\033[37m", []string{"trc"}},
	LevelDebug: {"debug", "DBG", "\033[36m", []string{"dbg"}},
	LevelInfo:  {"info", "INF", "\033[32m", []string{"inf", "information"}},
	LevelWarn:  {"warn", "WRN", "\033[33m", []string{"wrn", "warning"}},
	LevelError: {"error", "ERR", "\033[31m", []string{"err"}},
	LevelFatal: {"fatal", "FTL", "\033[35m", []string{"ftl"}},
	LevelAudit: {"audit", "AUD", "\033[34m", []string{"aud"}},
}

func (l Level) attrs() (levelAttrs, bool) {
	if l < LevelTrace || int(l) >= len(levels) {
		return levelAttrs{}, false
	}
	return levels[l], true
}

// String returns the lower-case name of the level
func (l Level) String() string {
	if a, ok := l.attrs(); ok {
		return a.name
	}
	return "unknown"
}

// ShortString returns the three-letter tag used by the text formatter
func (l Level) ShortString() string {
	if a, ok := l.attrs(); ok {
		return a.short
	}
	return "???"
}

// Color returns the ANSI color sequence for console output
func (l Level) Color() string {
	if a, ok := l.attrs(); ok {
		return a.color
	}
	return "\033[0m"
}

// ShouldLog reports whether an entry at this level passes minLevel.
// Audit entries always pass.
func (l Level) ShouldLog(minLevel Level) bool {
	return l == LevelAudit || l >= minLevel
}

// ParseLevel parses a level name or one of its aliases, case-insensitively
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	for l, a := range levels {
		if s == a.name {
			return Level(l), nil
		}
		for _, alias := range a.aliases {
			if s == alias {
				return Level(l), nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError reports an unknown level or format name
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the level of loggers created with New
func DefaultLevel() Level {
	return LevelInfo
}
