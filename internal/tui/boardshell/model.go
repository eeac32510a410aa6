// ============================================================================
// pawnboard - Bauern-Simulator auf dem 8x8 Brett
// ============================================================================
//
// Package:     boardshell
// Description: Main Bubbletea model of the interactive board shell
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package boardshell

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	mdwlog "github.com/msto63/pawnboard/foundation/core/log"
	"github.com/msto63/pawnboard/internal/board"
)

// Config holds board shell configuration
type Config struct {
	Prompt        string
	ShowBoard     bool
	MaxScrollback int
	Logger        *mdwlog.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Prompt:        "> ",
		ShowBoard:     true,
		MaxScrollback: 500,
	}
}

// Model is the main Bubbletea model of the board shell
type Model struct {
	// State
	width     int
	height    int
	ready     bool
	showHelp  bool
	showBoard bool
	sessionID string

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Board state
	ctrl    *board.Controller
	last    *board.Outcome
	lines   []string
	logSeen int

	// Input history, oldest first
	history    []string
	historyPos int

	maxScrollback int
}

// New creates a new board shell model with an unplaced pawn. An empty
// prompt falls back to DefaultConfig.
func New(cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = mdwlog.Discard()
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultConfig().Prompt
	}
	sessionID := uuid.NewString()

	input := textinput.New()
	input.Placeholder = "PLACE 0,0,NORTH,WHITE"
	input.Prompt = cfg.Prompt
	input.PromptStyle = PromptStyle
	input.Focus()

	return Model{
		showBoard:     cfg.ShowBoard,
		sessionID:     sessionID,
		input:         input,
		ctrl:          board.NewController(board.Options{
			Logger: logger.WithSessionID(sessionID).WithField("shell", "tui"),
		}),
		maxScrollback: cfg.MaxScrollback,
	}
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
		m.height = msg.Height
		m.resize()
		m.ready = true
		m.updateViewportContent()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		return m, tea.Quit

	case tea.KeyEnter:
		value := m.input.Value()
		if strings.TrimSpace(value) == "" {
			return m, nil
		}
		m.ctrl.Submit(value)
		m.execute()
		m.pushHistory(value)
		// the pending input stays, Ctrl+E runs it again
		m.input.SetValue("")
		return m, nil

	case tea.KeyCtrlE:
		m.execute()
		return m, nil

	case tea.KeyCtrlL:
		m.lines = nil
		m.updateViewportContent()
		return m, nil

	case tea.KeyCtrlB:
		m.showBoard = !m.showBoard
		m.resize()
		m.updateViewportContent()
		return m, nil

	case tea.KeyUp:
		m.recall(-1)
		return m, nil

	case tea.KeyDown:
		m.recall(1)
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyRunes:
		if string(msg.Runes) == "?" && m.input.Value() == "" {
			m.showHelp = !m.showHelp
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.ctrl.Submit(m.input.Value())
	}
	return m, cmd
}

// execute runs the pending input and moves new log lines to the scrollback
func (m *Model) execute() {
	outcome := m.ctrl.Execute()
	m.last = &outcome

	m.lines = append(m.lines, m.ctrl.LogSince(m.logSeen)...)
	m.logSeen = m.ctrl.LogLen()
	if m.maxScrollback > 0 && len(m.lines) > m.maxScrollback {
		m.lines = append([]string(nil), m.lines[len(m.lines)-m.maxScrollback:]...)
	}

	m.updateViewportContent()
	m.viewport.GotoBottom()
}

func (m *Model) setInput(value string) {
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.ctrl.Submit(value)
}

func (m *Model) pushHistory(value string) {
	if n := len(m.history); n == 0 || m.history[n-1] != value {
		m.history = append(m.history, value)
	}
	m.historyPos = len(m.history)
}

// recall moves through the history; past the newest entry the input is empty
func (m *Model) recall(step int) {
	if len(m.history) == 0 {
		return
	}

	pos := m.historyPos + step
	if pos < 0 {
		pos = 0
	}
	if pos > len(m.history) {
		pos = len(m.history)
	}
	m.historyPos = pos

	if pos == len(m.history) {
		m.setInput("")
		return
	}
	m.setInput(m.history[pos])
}

// resize lays out the viewport next to the board panel
func (m *Model) resize() {
	width := m.width - 4
	if m.showBoard {
		width -= boardPanelWidth
	}
	if width < 10 {
		width = 10
	}

	// Title, status bar, input box and help line
	height := m.height - 11
	if height < 3 {
		height = 3
	}

	if !m.ready {
		m.viewport = viewport.New(width, height)
	} else {
		m.viewport.Width = width
		m.viewport.Height = height
	}
	m.input.Width = m.width - 8 - len(m.input.Prompt)
}

// updateViewportContent updates the viewport with the scrollback lines
func (m *Model) updateViewportContent() {
	var content strings.Builder
	for _, line := range m.lines {
		if strings.HasPrefix(line, "PAWN REPORT: ") {
			content.WriteString(ReportStyle.Render(line))
		} else {
			content.WriteString(EchoStyle.Render(line))
		}
		content.WriteString("\n")
	}
	m.viewport.SetContent(content.String())
}

// Controller returns the controller driven by the shell
func (m Model) Controller() *board.Controller {
	return m.ctrl
}

// Run starts the board shell TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
