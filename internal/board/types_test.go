package board

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionRotation(t *testing.T) {
	for _, d := range []Direction{North, East, South, West} {
		assert.Equal(t, d, d.Right().Left(), "right then left from %s", d)
		assert.Equal(t, d, d.Right().Right().Right().Right(), "four rights from %s", d)
		assert.Equal(t, d, d.Left().Left().Left().Left(), "four lefts from %s", d)
	}

	assert.Equal(t, DirectionUnset, DirectionUnset.Right())
	assert.Equal(t, DirectionUnset, DirectionUnset.Left())
}

func TestParseDirectionAndColor(t *testing.T) {
	d, ok := ParseDirection("SOUTH")
	require.True(t, ok)
	assert.Equal(t, South, d)

	_, ok = ParseDirection("south")
	assert.False(t, ok, "tokens are normalized before parsing")

	c, ok := ParseColor("WHITE")
	require.True(t, ok)
	assert.Equal(t, White, c)

	_, ok = ParseColor("GREY")
	assert.False(t, ok)
}

func TestColorToggle(t *testing.T) {
	assert.Equal(t, White, Black.Toggle())
	assert.Equal(t, Black, White.Toggle())
	assert.Equal(t, ColorUnset, ColorUnset.Toggle())
}

func TestPositionStep(t *testing.T) {
	next, ok := Position{X: 0, Y: 0}.Step(North, 2)
	assert.True(t, ok)
	assert.Equal(t, Position{X: 0, Y: 2}, next)

	next, ok = Position{X: 7, Y: 3}.Step(East, 1)
	assert.False(t, ok)
	assert.Equal(t, Position{X: 8, Y: 3}, next)

	_, ok = Position{X: 0, Y: 1}.Step(South, 2)
	assert.False(t, ok)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "NOT PLACED", State{}.String())
	assert.Equal(t, "3,4,WEST,BLACK", State{
		Position:  Position{X: 3, Y: 4},
		Direction: West,
		Color:     Black,
		Placed:    true,
	}.String())
}

func TestStateJSON(t *testing.T) {
	state := State{
		Position:         Position{X: 1, Y: 6},
		Direction:        East,
		Color:            White,
		Placed:           true,
		FirstMovePending: true,
	}

	data, err := json.Marshal(state)
	require.NoError(t, err)
	assert.JSONEq(t, `{"position":{"x":1,"y":6},"direction":"EAST","color":"WHITE","placed":true,"first_move_pending":true}`, string(data))

	var decoded State
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, state, decoded)

	var empty State
	require.NoError(t, json.Unmarshal([]byte(`{"position":{"x":0,"y":0},"direction":"","color":"","placed":false}`), &empty))
	assert.Equal(t, State{}, empty)

	assert.Error(t, json.Unmarshal([]byte(`{"direction":"UP"}`), &decoded))
}
