package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmptyBoard(t *testing.T) {
	out := Render(State{})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	require.Len(t, lines, Size+4)
	assert.Equal(t, "  +-----------------+", lines[0])
	assert.Equal(t, "7 | . # . # . # . # |", lines[1])
	assert.Equal(t, "0 | # . # . # . # . |", lines[Size])
	assert.Equal(t, "  +-----------------+", lines[Size+1])
	assert.Equal(t, "    0 1 2 3 4 5 6 7", lines[Size+2])
	assert.Equal(t, "pawn not placed", lines[Size+3])
}

func TestRenderPawn(t *testing.T) {
	c := newTestController()
	c.Run("PLACE 2,0,EAST,BLACK")

	out := Render(c.State())
	lines := strings.Split(out, "\n")

	assert.Equal(t, "0 | # . > . # . # . |", lines[Size])
	assert.Contains(t, out, "pawn 2,0 facing EAST on BLACK, first move pending")

	c.Run("LEFT")
	c.Run("MOVE")

	out = Render(c.State())
	lines = strings.Split(out, "\n")
	assert.Equal(t, "1 | . # ^ # . # . # |", lines[Size-1])
	assert.Contains(t, out, "pawn 2,1 facing NORTH on WHITE\n")
}

func TestPawnGlyph(t *testing.T) {
	assert.Equal(t, '^', PawnGlyph(North))
	assert.Equal(t, '>', PawnGlyph(East))
	assert.Equal(t, 'v', PawnGlyph(South))
	assert.Equal(t, '<', PawnGlyph(West))
	assert.Equal(t, '?', PawnGlyph(DirectionUnset))
}

func TestCatalogue(t *testing.T) {
	defs := Catalogue()
	require.Len(t, defs, 5)

	names := make([]string, len(defs))
	for i, def := range defs {
		names[i] = def.Name
		assert.NotEmpty(t, def.Usage)
		assert.NotEmpty(t, def.Examples)
	}
	assert.Equal(t, []string{"PLACE", "MOVE", "LEFT", "RIGHT", "REPORT"}, names)
	assert.False(t, defs[0].RequiresPlacement)

	defs[1].Examples[0] = "changed"
	move, ok := LookupCommand("move")
	require.True(t, ok)
	assert.Equal(t, "MOVE", move.Examples[0])

	_, ok = LookupCommand("jump")
	assert.False(t, ok)
}

func TestLookupCommandReturnsCopy(t *testing.T) {
	place, ok := LookupCommand("PLACE")
	require.True(t, ok)
	want := place.Examples[0]
	place.Examples[0] = "changed"

	again, ok := LookupCommand("PLACE")
	require.True(t, ok)
	assert.Equal(t, want, again.Examples[0])
	assert.Equal(t, want, Catalogue()[0].Examples[0])
}

func TestCatalogueExamplesAreValid(t *testing.T) {
	for _, def := range Catalogue() {
		for _, example := range def.Examples {
			c := newTestController()
			if def.RequiresPlacement {
				c.Run("PLACE 3,3,NORTH,WHITE")
			}
			out := c.Run(example)
			assert.NoError(t, out.Err, example)
		}
	}
}
