// ============================================================================
// pawnboard - Bauern-Simulator auf dem 8x8 Brett
// ============================================================================
//
// Package:     boardshell
// Description: Styles for the board shell TUI
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package boardshell

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorBgPanel = lipgloss.Color("#1E293B") // Slate 800

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500

	// Board squares
	ColorSquareDark  = lipgloss.Color("#475569") // Slate 600
	ColorSquareLight = lipgloss.Color("#CBD5E1") // Slate 300

	// Square under the pawn, from its color state
	ColorPawnBlack = lipgloss.Color("#0F172A") // Slate 900
	ColorPawnWhite = lipgloss.Color("#FFFFFF")
)

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2)
)

// Log styles
var (
	LogPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	EchoStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	ReportStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)
)

// Board styles
var (
	BoardPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	SquareDarkStyle = lipgloss.NewStyle().
			Background(ColorSquareDark).
			Foreground(ColorAccent).
			Bold(true)

	SquareLightStyle = lipgloss.NewStyle().
				Background(ColorSquareLight).
				Foreground(ColorPrimary).
				Bold(true)

	PawnBlackStyle = lipgloss.NewStyle().
			Background(ColorPawnBlack).
			Foreground(ColorText).
			Bold(true)

	PawnWhiteStyle = lipgloss.NewStyle().
			Background(ColorPawnWhite).
			Foreground(ColorPawnBlack).
			Bold(true)

	AxisStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	LegendStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)

// Input styles
var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	InputPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	HelpPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)

	UsageStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)
)

// Icons
const (
	IconOK    = "✔ "
	IconError = "✘ "
	IconPawn  = "♙ "
)

// Logo
const Logo = "pawnboard"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}
