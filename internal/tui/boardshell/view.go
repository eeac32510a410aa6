package boardshell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/pawnboard/foundation/core/error"
	"github.com/msto63/pawnboard/internal/board"
	"github.com/msto63/pawnboard/pkg/core/version"
)

// two columns per square, rank label, border and padding
const boardPanelWidth = board.Size*2 + 2 + 4 + 2

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade Brett..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderMain())
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(InputPanelStyle.Width(m.width - 2).Render(m.input.View()))
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(IconPawn+Logo),
		"   ",
		SubHeaderStyle.Render(fmt.Sprintf("v%s  Sitzung %s", version.Shell, shortID(m.sessionID))),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

func (m Model) renderMain() string {
	var left string
	if m.showHelp {
		left = HelpPanelStyle.
			Width(m.viewport.Width + 2).
			Height(m.viewport.Height).
			Render(renderCatalogue())
	} else {
		left = LogPanelStyle.
			Width(m.viewport.Width + 2).
			Render(m.viewport.View())
	}

	if !m.showBoard {
		return left
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, renderBoard(m.ctrl.State()))
}

// renderStatusBar shows the result of the last executed command
func (m Model) renderStatusBar() string {
	var content string
	switch {
	case m.last == nil:
		content = HelpDescStyle.Render("Bereit. ? zeigt die Befehle.")
	case m.last.OK():
		content = StatusOKStyle.Render(IconOK + m.last.Status)
	default:
		content = StatusErrorStyle.Render(IconError + describeError(m.last.Err))
	}
	return StatusBarStyle.Width(m.width - 2).Render(content)
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Enter", "Ausführen"),
		RenderKeyHint("Ctrl+E", "Erneut"),
		RenderKeyHint("↑/↓", "Verlauf"),
		RenderKeyHint("?", "Befehle"),
		RenderKeyHint("Ctrl+B", "Brett"),
		RenderKeyHint("Ctrl+L", "Leeren"),
		RenderKeyHint("Esc", "Beenden"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// describeError joins code and message of every failure
func describeError(err error) string {
	flat := mdwerror.Flatten(err)
	if len(flat) == 0 {
		return err.Error()
	}
	parts := make([]string, len(flat))
	for i, e := range flat {
		parts[i] = fmt.Sprintf("%s: %s", e.Code(), e.Message())
	}
	return strings.Join(parts, "; ")
}

// squareStyle shades the pawn's square by its color state and every other
// square by the checkerboard pattern
func squareStyle(s board.State, x, y int) lipgloss.Style {
	if s.Placed && s.Position.X == x && s.Position.Y == y {
		if s.Color == board.Black {
			return PawnBlackStyle
		}
		return PawnWhiteStyle
	}
	if board.SquareGlyph(x, y) == board.GlyphDark {
		return SquareDarkStyle
	}
	return SquareLightStyle
}

// renderBoard draws the board with colored squares, row 7 on top
func renderBoard(s board.State) string {
	var b strings.Builder

	for y := board.Size - 1; y >= 0; y-- {
		b.WriteString(AxisStyle.Render(fmt.Sprintf("%d ", y)))
		for x := 0; x < board.Size; x++ {
			cell := "  "
			if s.Placed && s.Position.X == x && s.Position.Y == y {
				cell = string(board.PawnGlyph(s.Direction)) + " "
			}
			b.WriteString(squareStyle(s, x, y).Render(cell))
		}
		b.WriteString("\n")
	}

	b.WriteString("  ")
	for x := 0; x < board.Size; x++ {
		b.WriteString(AxisStyle.Render(fmt.Sprintf("%d ", x)))
	}
	b.WriteString("\n")

	if s.Placed {
		legend := fmt.Sprintf("%s %s %s", s.Position, s.Direction, s.Color)
		if s.FirstMovePending {
			legend += " *"
		}
		b.WriteString(LegendStyle.Render(legend))
	} else {
		b.WriteString(LegendStyle.Render("nicht platziert"))
	}

	return BoardPanelStyle.Render(b.String())
}

func renderCatalogue() string {
	var b strings.Builder
	for i, def := range board.Catalogue() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(UsageStyle.Render(def.Usage))
		b.WriteString("\n  ")
		b.WriteString(HelpDescStyle.Render(def.Description))
		b.WriteString("\n")
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
