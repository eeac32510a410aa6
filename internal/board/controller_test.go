package board

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/pawnboard/foundation/core/error"
	mdwlog "github.com/msto63/pawnboard/foundation/core/log"
)

func newTestController() *Controller {
	return NewController(Options{Logger: mdwlog.Discard()})
}

func runAll(t *testing.T, c *Controller, commands ...string) Outcome {
	t.Helper()
	var last Outcome
	for _, cmd := range commands {
		last = c.Run(cmd)
	}
	return last
}

func TestPlaceAllValidParameters(t *testing.T) {
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			for _, d := range []Direction{North, East, South, West} {
				for _, col := range []Color{Black, White} {
					c := newTestController()
					out := c.Run(strings.Join([]string{
						"place " + Position{X: x, Y: y}.String(), d.String(), col.String(),
					}, ","))

					require.NoError(t, out.Err)
					assert.Equal(t, State{
						Position:         Position{X: x, Y: y},
						Direction:        d,
						Color:            col,
						Placed:           true,
						FirstMovePending: true,
					}, c.State())
				}
			}
		}
	}
}

func TestPlaceFailuresLeaveStateUnchanged(t *testing.T) {
	tests := []struct {
		name  string
		input string
		codes []mdwerror.Code
	}{
		{"too few fields", "PLACE 1,2,NORTH", []mdwerror.Code{mdwerror.CodeMalformedCommand, mdwerror.CodeInvalidColor}},
		{"too many fields", "PLACE 1,2,NORTH,WHITE,EXTRA", []mdwerror.Code{mdwerror.CodeMalformedCommand}},
		{"single field", "PLACE X", []mdwerror.Code{mdwerror.CodeMalformedCommand, mdwerror.CodeInvalidDirection, mdwerror.CodeInvalidColor}},
		{"bad direction", "PLACE 1,2,UP,WHITE", []mdwerror.Code{mdwerror.CodeInvalidDirection}},
		{"bad color", "PLACE 1,2,NORTH,RED", []mdwerror.Code{mdwerror.CodeInvalidColor}},
		{"bad direction and color", "PLACE 1,2,UP,RED", []mdwerror.Code{mdwerror.CodeInvalidDirection, mdwerror.CodeInvalidColor}},
		{"x out of bounds", "PLACE 8,2,NORTH,WHITE", []mdwerror.Code{mdwerror.CodeOutOfBounds}},
		{"both out of bounds", "PLACE -1,9,NORTH,WHITE", []mdwerror.Code{mdwerror.CodeOutOfBounds, mdwerror.CodeOutOfBounds}},
		{"non numeric", "PLACE A,2,NORTH,WHITE", []mdwerror.Code{mdwerror.CodeMalformedCommand}},
		{"x overflows int", "PLACE 99999999999999999999,0,NORTH,WHITE", []mdwerror.Code{mdwerror.CodeOutOfBounds}},
		{"y underflows int", "PLACE 0,-99999999999999999999,NORTH,WHITE", []mdwerror.Code{mdwerror.CodeOutOfBounds}},
	}

	for _, tt := range tests {
		t.Run(tt.name+" unplaced", func(t *testing.T) {
			c := newTestController()
			out := c.Run(tt.input)

			require.Error(t, out.Err)
			assert.Equal(t, tt.codes, out.Codes())
			assert.Equal(t, State{}, c.State())
			assert.False(t, c.State().Placed)
		})

		t.Run(tt.name+" placed", func(t *testing.T) {
			c := newTestController()
			runAll(t, c, "PLACE 3,3,EAST,BLACK", "MOVE")
			before := c.State()

			out := c.Run(tt.input)

			require.Error(t, out.Err)
			assert.Equal(t, before, c.State())
		})
	}
}

func TestPlaceErrorsMatchSentinels(t *testing.T) {
	c := newTestController()
	out := c.Run("PLACE 1,2,UP,RED")

	assert.ErrorIs(t, out.Err, ErrInvalidDirection)
	assert.ErrorIs(t, out.Err, ErrInvalidColor)
	assert.NotErrorIs(t, out.Err, ErrMalformedCommand)
}

func TestPlaceIgnoresFieldWhitespace(t *testing.T) {
	c := newTestController()
	out := c.Run("  place 2, 3 , west ,  black  ")

	require.NoError(t, out.Err)
	assert.Equal(t, Position{X: 2, Y: 3}, c.State().Position)
	assert.Equal(t, West, c.State().Direction)
	assert.Equal(t, Black, c.State().Color)
}

func TestReplaceResetsState(t *testing.T) {
	c := newTestController()
	runAll(t, c, "PLACE 0,0,NORTH,WHITE", "MOVE 2", "RIGHT")
	require.False(t, c.State().FirstMovePending)

	out := c.Run("PLACE 5,5,SOUTH,BLACK")

	require.NoError(t, out.Err)
	assert.Equal(t, State{
		Position:         Position{X: 5, Y: 5},
		Direction:        South,
		Color:            Black,
		Placed:           true,
		FirstMovePending: true,
	}, c.State())
}

func TestCommandsRequirePlacement(t *testing.T) {
	for _, input := range []string{"MOVE", "MOVE 2", "LEFT", "RIGHT", "REPORT", "JUMP", "PLACE", ""} {
		t.Run(input, func(t *testing.T) {
			c := newTestController()
			out := c.Run(input)

			assert.ErrorIs(t, out.Err, ErrPlacementRequired)
			assert.Equal(t, State{}, c.State())
			assert.Equal(t, []string{input}, c.Log())
		})
	}
}

func TestUnrecognizedWhenPlaced(t *testing.T) {
	for _, input := range []string{"JUMP", "PLACE", "LEFTY", "REPORT NOW", "MOVE3", "MOVEX", "MOVE 12", "MOVE  2", "MOVE X"} {
		t.Run(input, func(t *testing.T) {
			c := newTestController()
			c.Run("PLACE 3,3,NORTH,WHITE")
			before := c.State()

			out := c.Run(input)

			assert.ErrorIs(t, out.Err, ErrUnrecognizedCommand)
			assert.Equal(t, before, c.State())
		})
	}
}

func TestFirstMoveMayAdvanceTwo(t *testing.T) {
	c := newTestController()
	c.Run("PLACE 0,0,NORTH,WHITE")

	first := c.Run("MOVE 2")
	require.NoError(t, first.Err)
	assert.Equal(t, Position{X: 0, Y: 2}, c.State().Position)

	second := c.Run("MOVE 2")
	assert.ErrorIs(t, second.Err, ErrInvalidMove)
	assert.Equal(t, Position{X: 0, Y: 2}, c.State().Position)
}

func TestMoveTwoAfterSingleStepIsInvalid(t *testing.T) {
	c := newTestController()
	runAll(t, c, "PLACE 0,0,NORTH,WHITE", "MOVE 1")

	out := c.Run("MOVE 2")

	assert.ErrorIs(t, out.Err, ErrInvalidMove)
	assert.Equal(t, Position{X: 0, Y: 1}, c.State().Position)
}

func TestMoveDistanceLimits(t *testing.T) {
	for _, input := range []string{"MOVE 0", "MOVE 3", "MOVE 9"} {
		t.Run(input, func(t *testing.T) {
			c := newTestController()
			c.Run("PLACE 3,3,NORTH,WHITE")
			before := c.State()

			out := c.Run(input)

			assert.ErrorIs(t, out.Err, ErrInvalidMove)
			assert.Equal(t, before, c.State())
		})
	}
}

func TestMoveColorToggle(t *testing.T) {
	c := newTestController()
	c.Run("PLACE 3,0,NORTH,BLACK")

	c.Run("MOVE 2")
	assert.Equal(t, Black, c.State().Color, "distance 2 never toggles")

	c.Run("MOVE")
	assert.Equal(t, White, c.State().Color)

	c.Run("MOVE 1")
	assert.Equal(t, Black, c.State().Color)
}

func TestMoveAxes(t *testing.T) {
	tests := []struct {
		direction string
		want      Position
	}{
		{"NORTH", Position{X: 3, Y: 4}},
		{"SOUTH", Position{X: 3, Y: 2}},
		{"EAST", Position{X: 4, Y: 3}},
		{"WEST", Position{X: 2, Y: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.direction, func(t *testing.T) {
			c := newTestController()
			c.Run("PLACE 3,3," + tt.direction + ",WHITE")

			out := c.Run("MOVE")

			require.NoError(t, out.Err)
			assert.Equal(t, tt.want, c.State().Position)
		})
	}
}

func TestMoveOffBoardIsRejected(t *testing.T) {
	tests := []struct {
		place string
		move  string
	}{
		{"PLACE 7,7,EAST,BLACK", "MOVE"},
		{"PLACE 7,7,NORTH,BLACK", "MOVE"},
		{"PLACE 0,0,SOUTH,BLACK", "MOVE"},
		{"PLACE 0,0,WEST,BLACK", "MOVE"},
		{"PLACE 3,6,NORTH,BLACK", "MOVE 2"},
		{"PLACE 1,3,WEST,BLACK", "MOVE 2"},
	}

	for _, tt := range tests {
		t.Run(tt.place+" "+tt.move, func(t *testing.T) {
			c := newTestController()
			c.Run(tt.place)
			before := c.State()

			out := c.Run(tt.move)

			assert.ErrorIs(t, out.Err, ErrOutOfBounds)
			assert.Equal(t, before, c.State())
			assert.True(t, c.State().FirstMovePending, "a rejected move is not the first move")
		})
	}
}

func TestRotationCycle(t *testing.T) {
	c := newTestController()
	c.Run("PLACE 4,4,NORTH,WHITE")

	for _, want := range []Direction{East, South, West, North} {
		out := c.Run("RIGHT")
		require.NoError(t, out.Err)
		assert.Equal(t, want, c.State().Direction)
	}

	for _, want := range []Direction{West, South, East, North} {
		c.Run("LEFT")
		assert.Equal(t, want, c.State().Direction)
	}

	assert.Equal(t, Position{X: 4, Y: 4}, c.State().Position)
	assert.True(t, c.State().FirstMovePending, "rotation is not a move")
}

func TestScenarioMoveTwoThenOne(t *testing.T) {
	c := newTestController()

	c.Run("PLACE 0,0,NORTH,WHITE")
	c.Run("MOVE 2")

	assert.Equal(t, State{
		Position:  Position{X: 0, Y: 2},
		Direction: North,
		Color:     White,
		Placed:    true,
	}, c.State())

	c.Run("MOVE")

	assert.Equal(t, Position{X: 0, Y: 3}, c.State().Position)
	assert.Equal(t, Black, c.State().Color)
}

func TestScenarioCornerEast(t *testing.T) {
	c := newTestController()
	c.Run("PLACE 7,7,EAST,BLACK")

	out := c.Run("MOVE")

	assert.ErrorIs(t, out.Err, ErrOutOfBounds)
	assert.Equal(t, Position{X: 7, Y: 7}, c.State().Position)
}

func TestScenarioLeftLeft(t *testing.T) {
	c := newTestController()
	c.Run("PLACE 0,0,NORTH,WHITE")

	c.Run("LEFT")
	assert.Equal(t, West, c.State().Direction)

	c.Run("LEFT")
	assert.Equal(t, South, c.State().Direction)
}

func TestScenarioReportBeforePlace(t *testing.T) {
	c := newTestController()

	out := c.Run("REPORT")

	assert.ErrorIs(t, out.Err, ErrPlacementRequired)
	assert.Equal(t, []string{"REPORT"}, c.Log())
	assert.Empty(t, out.Status)
}

func TestLogEchoAndReport(t *testing.T) {
	c := newTestController()

	runAll(t, c,
		" place 0,0,north,white ",
		"move 2",
		"LEFT",
		"bogus",
		"report",
	)

	assert.Equal(t, []string{
		"PLACE 0,0,NORTH,WHITE",
		"MOVE 2",
		"LEFT",
		"BOGUS",
		"REPORT",
		"PAWN REPORT: 0,2,WEST,WHITE",
	}, c.Log())
	assert.Equal(t, []string{"REPORT", "PAWN REPORT: 0,2,WEST,WHITE"}, c.LogSince(4))
	assert.Nil(t, c.LogSince(6))
	assert.Equal(t, 6, c.LogLen())
}

func TestLogIsACopy(t *testing.T) {
	c := newTestController()
	c.Run("REPORT")

	lines := c.Log()
	lines[0] = "changed"

	assert.Equal(t, []string{"REPORT"}, c.Log())
}

func TestSubmitExecute(t *testing.T) {
	c := newTestController()

	c.Submit("  place 1,1,east,black ")
	assert.Equal(t, "PLACE 1,1,EAST,BLACK", c.Pending())
	assert.Empty(t, c.Log(), "submit does not execute")

	out := c.Execute()
	require.True(t, out.OK())
	assert.Equal(t, KindPlace, out.Kind)
	assert.Equal(t, "POSITION AFTER PAWN PLACED 1,1,EAST,BLACK", out.Status)

	c.Submit("move")
	c.Execute()
	again := c.Execute()

	require.NoError(t, again.Err)
	assert.Equal(t, Position{X: 3, Y: 1}, c.State().Position)
	assert.Equal(t, []string{"PLACE 1,1,EAST,BLACK", "MOVE", "MOVE"}, c.Log())
}

func TestStatusLines(t *testing.T) {
	c := newTestController()

	assert.Equal(t, "POSITION AFTER PAWN PLACED 0,0,NORTH,WHITE", c.Run("PLACE 0,0,NORTH,WHITE").Status)
	assert.Equal(t, "POSITION AFTER PAWN MOVE 0,1", c.Run("MOVE").Status)
	assert.Equal(t, "POSITION AFTER PAWN ROTATED TO RIGHT is 0,1 and direction is EAST", c.Run("RIGHT").Status)
	assert.Equal(t, "PAWN REPORT: 0,1,EAST,BLACK", c.Run("REPORT").Status)
}

func TestDiagnosticsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelDebug, Format: mdwlog.FormatLogfmt, Output: &buf})
	c := NewController(Options{Logger: logger})

	c.Run("REPORT")
	c.Run("PLACE 0,0,NORTH,WHITE")

	out := buf.String()
	assert.Contains(t, out, "level=warn")
	assert.Contains(t, out, `error_code="PLACEMENT_REQUIRED"`)
	assert.Contains(t, out, `message="POSITION AFTER PAWN PLACED 0,0,NORTH,WHITE"`)
	assert.Contains(t, out, "logger=board")
}

func TestOutcomeCarriesStructuredError(t *testing.T) {
	c := newTestController()
	out := c.Run("MOVE")

	var mdwErr *mdwerror.Error
	require.True(t, errors.As(out.Err, &mdwErr))
	assert.Equal(t, mdwerror.CodePlacementRequired, mdwErr.Code())
	assert.Equal(t, "EXECUTE PLACE COMMAND FIRST", mdwErr.Message())
	assert.Equal(t, mdwerror.SeverityLow, mdwErr.Severity())
}
