// ============================================================================
// pawnboard - Bauern-Simulator auf dem 8x8 Brett
// ============================================================================
//
// Package:     board
// Description: Command normalization, keyword classification, argument parsing
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package board

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Command keywords
const (
	KeywordPlace  = "PLACE"
	KeywordMove   = "MOVE"
	KeywordLeft   = "LEFT"
	KeywordRight  = "RIGHT"
	KeywordReport = "REPORT"
)

// Kind classifies a normalized command by its keyword
type Kind int

const (
	KindUnknown Kind = iota
	KindPlace
	KindMove
	KindRotate
	KindReport
)

// String returns the lower case kind name used in logs
func (k Kind) String() string {
	switch k {
	case KindPlace:
		return "place"
	case KindMove:
		return "move"
	case KindRotate:
		return "rotate"
	case KindReport:
		return "report"
	default:
		return "unknown"
	}
}

// Normalize trims surrounding whitespace and upper-cases the input
func Normalize(raw string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(raw))
}

// Classify maps a normalized command to its kind. PLACE requires a
// separating space, MOVE matches as a prefix, the rest match exactly.
func Classify(input string) Kind {
	switch {
	case strings.HasPrefix(input, KeywordPlace+" "):
		return KindPlace
	case strings.HasPrefix(input, KeywordMove):
		return KindMove
	case input == KeywordLeft, input == KeywordRight:
		return KindRotate
	case input == KeywordReport:
		return KindReport
	default:
		return KindUnknown
	}
}

// Turn is the rotation requested by LEFT or RIGHT
type Turn int

const (
	TurnLeft Turn = iota + 1
	TurnRight
)

// Apply rotates d by the turn
func (t Turn) Apply(d Direction) Direction {
	if t == TurnLeft {
		return d.Left()
	}
	return d.Right()
}

func parseTurn(input string) (Turn, error) {
	switch input {
	case KeywordLeft:
		return TurnLeft, nil
	case KeywordRight:
		return TurnRight, nil
	default:
		return 0, unrecognizedCommand(input)
	}
}

// Placement holds the validated arguments of a PLACE command
type Placement struct {
	Position  Position
	Direction Direction
	Color     Color
}

// parsePlacement parses "PLACE x,y,DIRECTION,COLOR". Field count, direction
// and color are checked together and every failure is returned joined;
// coordinates are only looked at when those three pass.
func parsePlacement(input string) (Placement, error) {
	args := strings.TrimPrefix(input, KeywordPlace+" ")
	fields := strings.Split(args, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	field := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	var (
		p    Placement
		errs []error
		ok   bool
	)

	if len(fields) != 4 {
		errs = append(errs, malformedPlace(len(fields)))
	}
	if p.Direction, ok = ParseDirection(field(2)); !ok {
		errs = append(errs, invalidDirection(field(2)))
	}
	if p.Color, ok = ParseColor(field(3)); !ok {
		errs = append(errs, invalidColor(field(3)))
	}
	if len(errs) > 0 {
		return Placement{}, errors.Join(errs...)
	}

	x, xErr := parseCoordinate("x", fields[0])
	y, yErr := parseCoordinate("y", fields[1])
	if err := errors.Join(xErr, yErr); err != nil {
		return Placement{}, err
	}

	p.Position = Position{X: x, Y: y}
	return p, nil
}

func parseCoordinate(axis, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		// v is clamped to the int range
		return 0, placeOutOfBounds(axis, v)
	}
	if err != nil {
		return 0, malformedCoordinate(axis, s)
	}
	if !inBounds(v) {
		return 0, placeOutOfBounds(axis, v)
	}
	return v, nil
}

// parseDistance accepts exactly "MOVE" (one square) or "MOVE <digit>".
func parseDistance(input string) (int, error) {
	if input == KeywordMove {
		return 1, nil
	}

	prefix := KeywordMove + " "
	if len(input) == len(prefix)+1 && strings.HasPrefix(input, prefix) {
		if d := input[len(prefix)]; d >= '0' && d <= '9' {
			return int(d - '0'), nil
		}
	}

	return 0, unrecognizedCommand(input)
}
