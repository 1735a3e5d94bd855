// ============================================================================
// brackets - Bracket Grammar Parser
// ============================================================================
//
// Package:     repl
// Description: Styles for the interactive parser
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package repl

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// Result styles
var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	ResultStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	CaretStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	StatsStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	TreeStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			PaddingLeft(2)
)

// History and help styles
var (
	HistoryTitleStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Underline(true)

	HistoryOKStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	HistoryFailStyle = lipgloss.NewStyle().
				Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Icons
const (
	IconOK   = "✓ "
	IconFail = "✗ "
	Logo     = "⟦brackets⟧"
)
