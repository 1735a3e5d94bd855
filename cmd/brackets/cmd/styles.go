// ============================================================================
// brackets - Bracket Grammar Parser
// ============================================================================
//
// Package:     cmd
// Description: Terminal styles for command output
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors shared with the REPL palette
var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Violet
	colorSuccess = lipgloss.Color("#10B981") // Emerald
	colorError   = lipgloss.Color("#EF4444") // Red
	colorAccent  = lipgloss.Color("#F59E0B") // Amber
	colorMuted   = lipgloss.Color("#94A3B8") // Slate 400
)

// Styles groups the styles used by the commands
type Styles struct {
	Label  lipgloss.Style
	Result lipgloss.Style
	Error  lipgloss.Style
	Caret  lipgloss.Style
	Muted  lipgloss.Style
	Pass   lipgloss.Style
	Fail   lipgloss.Style
}

// NewStyles returns colored styles, or plain ones when color is false
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{
			Label:  plain,
			Result: plain,
			Error:  plain,
			Caret:  plain,
			Muted:  plain,
			Pass:   plain,
			Fail:   plain,
		}
	}

	return Styles{
		Label:  lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		Result: lipgloss.NewStyle().Foreground(colorSuccess),
		Error:  lipgloss.NewStyle().Foreground(colorError),
		Caret:  lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(colorMuted),
		Pass:   lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
		Fail:   lipgloss.NewStyle().Foreground(colorError).Bold(true),
	}
}
