// ============================================================================
// pawnboard - Bauern-Simulator auf dem 8x8 Brett
// ============================================================================
//
// Package:     board
// Description: ASCII rendering of the board and the pawn
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package board

import (
	"fmt"
	"strings"
)

// Square glyphs. (0,0) is a dark square as on a chess board.
const (
	GlyphDark  = '#'
	GlyphLight = '.'
)

// PawnGlyph returns the arrow drawn for a pawn facing d
func PawnGlyph(d Direction) rune {
	switch d {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	case West:
		return '<'
	default:
		return '?'
	}
}

// SquareGlyph returns the glyph of an empty square
func SquareGlyph(x, y int) rune {
	if (x+y)%2 == 0 {
		return GlyphDark
	}
	return GlyphLight
}

// Render draws the board with row 7 on top, followed by a legend line.
func Render(s State) string {
	var b strings.Builder

	border := "  +" + strings.Repeat("-", Size*2+1) + "+\n"
	b.WriteString(border)

	for y := Size - 1; y >= 0; y-- {
		fmt.Fprintf(&b, "%d |", y)
		for x := 0; x < Size; x++ {
			glyph := SquareGlyph(x, y)
			if s.Placed && s.Position.X == x && s.Position.Y == y {
				glyph = PawnGlyph(s.Direction)
			}
			b.WriteByte(' ')
			b.WriteRune(glyph)
		}
		b.WriteString(" |\n")
	}

	b.WriteString(border)
	b.WriteString("   ")
	for x := 0; x < Size; x++ {
		fmt.Fprintf(&b, " %d", x)
	}
	b.WriteString("\n")

	if s.Placed {
		fmt.Fprintf(&b, "pawn %s facing %s on %s", s.Position, s.Direction, s.Color)
		if s.FirstMovePending {
			b.WriteString(", first move pending")
		}
	} else {
		b.WriteString("pawn not placed")
	}
	b.WriteString("\n")

	return b.String()
}
