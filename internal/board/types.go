// ============================================================================
// pawnboard - Bauern-Simulator auf dem 8x8 Brett
// ============================================================================
//
// Package:     board
// Description: Pawn state value types: position, direction, square color
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package board

import "fmt"

// Size is the edge length of the board
const Size = 8

// Direction is where the pawn faces. The zero value means "not placed".
type Direction int

// Directions in clockwise order
const (
	DirectionUnset Direction = iota
	North
	East
	South
	West
)

var directionNames = map[Direction]string{
	North: "NORTH",
	East:  "EAST",
	South: "SOUTH",
	West:  "WEST",
}

// ParseDirection parses a normalized direction token
func ParseDirection(s string) (Direction, bool) {
	for d, name := range directionNames {
		if name == s {
			return d, true
		}
	}
	return DirectionUnset, false
}

// String returns the command language token of the direction
func (d Direction) String() string {
	return directionNames[d]
}

// MarshalText encodes the direction as its token
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction token, empty means unset
func (d *Direction) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = DirectionUnset
		return nil
	}
	parsed, ok := ParseDirection(string(text))
	if !ok {
		return fmt.Errorf("unknown direction %q", text)
	}
	*d = parsed
	return nil
}

// Valid reports whether d is one of the four compass directions
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Right returns the direction one step clockwise
func (d Direction) Right() Direction {
	if !d.Valid() {
		return d
	}
	return d%4 + 1
}

// Left returns the direction one step counter-clockwise
func (d Direction) Left() Direction {
	if !d.Valid() {
		return d
	}
	return (d+2)%4 + 1
}

// delta returns the unit step of the direction; +x is EAST, +y is NORTH
func (d Direction) delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Color is the color of the square the pawn stands on. The zero value means "not placed".
type Color int

const (
	ColorUnset Color = iota
	Black
	White
)

// ParseColor parses a normalized color token
func ParseColor(s string) (Color, bool) {
	switch s {
	case "BLACK":
		return Black, true
	case "WHITE":
		return White, true
	default:
		return ColorUnset, false
	}
}

// String returns the command language token of the color
func (c Color) String() string {
	switch c {
	case Black:
		return "BLACK"
	case White:
		return "WHITE"
	default:
		return ""
	}
}

// MarshalText encodes the color as its token
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a color token, empty means unset
func (c *Color) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = ColorUnset
		return nil
	}
	parsed, ok := ParseColor(string(text))
	if !ok {
		return fmt.Errorf("unknown color %q", text)
	}
	*c = parsed
	return nil
}

// Toggle swaps BLACK and WHITE
func (c Color) Toggle() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return c
	}
}

// Position is a square on the board, origin (0,0) in the south-west corner
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// OnBoard reports whether both coordinates are within [0, Size-1]
func (p Position) OnBoard() bool {
	return inBounds(p.X) && inBounds(p.Y)
}

// Step returns the position distance squares towards d and whether it is on the board
func (p Position) Step(d Direction, distance int) (Position, bool) {
	dx, dy := d.delta()
	next := Position{X: p.X + dx*distance, Y: p.Y + dy*distance}
	return next, next.OnBoard()
}

// String formats the position as "x,y"
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

func inBounds(v int) bool {
	return v >= 0 && v < Size
}

// State is a snapshot of the pawn. Position, Direction and Color are
// meaningful only while Placed is true.
type State struct {
	Position         Position  `json:"position"`
	Direction        Direction `json:"direction"`
	Color            Color     `json:"color"`
	Placed           bool      `json:"placed"`
	FirstMovePending bool      `json:"first_move_pending"`
}

// String formats the state as "x,y,DIRECTION,COLOR", or "NOT PLACED"
func (s State) String() string {
	if !s.Placed {
		return "NOT PLACED"
	}
	return fmt.Sprintf("%s,%s,%s", s.Position, s.Direction, s.Color)
}
