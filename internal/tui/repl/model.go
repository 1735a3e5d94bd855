// ============================================================================
// brackets - Bracket Grammar Parser
// ============================================================================
//
// Package:     repl
// Description: Bubbletea model that parses the input line as it is typed
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package repl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwast "github.com/msto63/brackets/foundation/brackets/ast"
	"github.com/msto63/brackets/foundation/brackets/parser"
)

// maxHistory bounds the number of committed expressions kept on screen
const maxHistory = 10

// Config holds REPL configuration
type Config struct {
	Parser  *parser.Parser
	Version string

	// CharLimit bounds the input line, 0 means unlimited
	CharLimit int
}

// Entry is a committed expression
type Entry struct {
	Input  string
	Result string
	OK     bool
}

// Model is the Bubbletea model for the REPL
type Model struct {
	// State
	width    int
	showTree bool
	quitting bool

	// Components
	input textinput.Model

	// Parse state of the current line
	node mdwast.Node
	err  error

	history []Entry
	recall  int // index into history for KeyUp, -1 when not recalling

	parser  *parser.Parser
	version string
}

// New creates a new REPL model
func New(cfg Config) (Model, error) {
	if cfg.Parser == nil {
		p, err := parser.New(parser.Options{})
		if err != nil {
			return Model{}, err
		}
		cfg.Parser = p
	}

	input := textinput.New()
	input.Placeholder = "[[B](A)]"
	input.Prompt = PromptStyle.Render("› ")
	input.CharLimit = cfg.CharLimit
	input.Width = 60
	input.Focus()

	m := Model{
		input:   input,
		parser:  cfg.Parser,
		version: cfg.Version,
		recall:  -1,
	}
	m.reparse()
	return m, nil
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 8 {
			m.input.Width = msg.Width - 4
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		m.commit()
		return m, nil

	case tea.KeyTab:
		m.showTree = !m.showTree
		return m, nil

	case tea.KeyCtrlR:
		m.setInput(parser.Mirror(m.input.Value()))
		return m, nil

	case tea.KeyUp:
		if len(m.history) == 0 {
			return m, nil
		}
		if m.recall <= 0 {
			m.recall = len(m.history) - 1
		} else {
			m.recall--
		}
		m.setInput(m.history[m.recall].Input)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.recall = -1
	m.reparse()
	return m, cmd
}

// setInput replaces the line and parses it
func (m *Model) setInput(value string) {
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.reparse()
}

// reparse parses the current line
func (m *Model) reparse() {
	m.node, m.err = m.parser.Parse(m.input.Value())
}

// commit moves the current line into the history and clears it
func (m *Model) commit() {
	entry := Entry{Input: m.input.Value(), OK: m.err == nil}
	if m.err == nil {
		entry.Result = m.node.String()
	} else {
		entry.Result = m.err.Error()
	}

	m.history = append(m.history, entry)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	m.recall = -1
	m.setInput("")
}

// History returns the committed expressions, oldest first
func (m Model) History() []Entry {
	return m.history
}

// Result returns the parse outcome of the current line
func (m Model) Result() (mdwast.Node, error) {
	return m.node, m.err
}

// View renders the REPL
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderResult())
	b.WriteString("\n")

	if len(m.history) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderHistory())
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("enter: commit • tab: tree • ctrl+r: mirror • ↑: history • esc: quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderHeader() string {
	header := LogoStyle.Render(Logo)
	if m.version != "" {
		header += " " + SubHeaderStyle.Render("v"+m.version)
	}
	return header + "  " + SubHeaderStyle.Render("square := B | [[square](round)]   round := A | ((round)[square])")
}

func (m Model) renderResult() string {
	if m.err != nil {
		var b strings.Builder
		var pe *parser.ParseError
		if errors.As(m.err, &pe) {
			// Align the caret with the input text behind the prompt
			indent := strings.Repeat(" ", lipgloss.Width(m.input.Prompt))
			b.WriteString(indent)
			b.WriteString(CaretStyle.Render(Caret(m.input.Value(), pe.Position)))
			b.WriteString("\n")
		}
		b.WriteString(ErrorStyle.Render(IconFail + m.err.Error()))
		return b.String()
	}

	var b strings.Builder
	b.WriteString(ResultStyle.Render(IconOK + m.node.String()))
	b.WriteString("\n")

	stats := mdwast.Measure(m.node)
	b.WriteString(StatsStyle.Render(fmt.Sprintf("depth %d • %d atoms • %d pairs • %d square • %d round",
		stats.Depth, stats.Atoms, stats.Pairs, stats.Squares, stats.Rounds)))

	if m.showTree {
		b.WriteString("\n")
		b.WriteString(TreeStyle.Render(strings.TrimRight(mdwast.Dump(m.node), "\n")))
	}
	return b.String()
}

func (m Model) renderHistory() string {
	var b strings.Builder
	b.WriteString(HistoryTitleStyle.Render("History"))
	for _, e := range m.history {
		b.WriteString("\n")
		input := e.Input
		if input == "" {
			input = `""`
		}
		if e.OK {
			b.WriteString(HistoryOKStyle.Render(IconOK + input + " → " + e.Result))
		} else {
			b.WriteString(HistoryFailStyle.Render(IconFail + input + " → " + e.Result))
		}
	}
	return b.String()
}

// Caret returns a line with '^' under the rune at pos. Positions past the
// end point just behind the last character.
func Caret(input string, pos int) string {
	runes := []rune(input)
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	return strings.Repeat(" ", lipgloss.Width(string(runes[:pos]))) + "^"
}

// Run starts the REPL on the terminal
func Run(cfg Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	return err
}
