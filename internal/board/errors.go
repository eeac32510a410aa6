// ============================================================================
// pawnboard - Bauern-Simulator auf dem 8x8 Brett
// ============================================================================
//
// Package:     board
// Description: Command failure kinds as foundation error codes
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package board

import (
	mdwerror "github.com/msto63/pawnboard/foundation/core/error"
)

// Sentinels for errors.Is. They match any error with the same code, also
// when several failures of one PLACE are joined.
var (
	ErrMalformedCommand    = sentinel(mdwerror.CodeMalformedCommand)
	ErrInvalidDirection    = sentinel(mdwerror.CodeInvalidDirection)
	ErrInvalidColor        = sentinel(mdwerror.CodeInvalidColor)
	ErrOutOfBounds         = sentinel(mdwerror.CodeOutOfBounds)
	ErrInvalidMove         = sentinel(mdwerror.CodeInvalidMove)
	ErrPlacementRequired   = sentinel(mdwerror.CodePlacementRequired)
	ErrUnrecognizedCommand = sentinel(mdwerror.CodeUnrecognizedCommand)
)

func sentinel(code mdwerror.Code) *mdwerror.Error {
	return mdwerror.New(code.String()).WithCode(code)
}

func commandError(code mdwerror.Code, operation, message string) *mdwerror.Error {
	return mdwerror.New(message).WithCode(code).WithOperation(operation)
}

func malformedPlace(fields int) error {
	return commandError(mdwerror.CodeMalformedCommand, "place", "INVALID PLACE COMMAND").
		WithDetail("fields", fields)
}

func malformedCoordinate(axis, value string) error {
	return commandError(mdwerror.CodeMalformedCommand, "place", "INVALID COORDINATE IN PLACE COMMAND").
		WithDetail("axis", axis).
		WithDetail("value", value)
}

func invalidDirection(value string) error {
	return commandError(mdwerror.CodeInvalidDirection, "place", "INVALID DIRECTION IN PLACE COMMAND").
		WithDetail("value", value)
}

func invalidColor(value string) error {
	return commandError(mdwerror.CodeInvalidColor, "place", "INVALID SQUARE COLOR IN PLACE COMMAND").
		WithDetail("value", value)
}

func placeOutOfBounds(axis string, value int) error {
	return commandError(mdwerror.CodeOutOfBounds, "place", "INVALID POSITION: PAWN WILL BE OUTSIDE THE BOARD").
		WithDetail("axis", axis).
		WithDetail("value", value)
}

func moveOutOfBounds(target Position) error {
	return commandError(mdwerror.CodeOutOfBounds, "move", "INVALID MOVE: PAWN WILL BE OUTSIDE THE BOARD").
		WithDetail("x", target.X).
		WithDetail("y", target.Y)
}

func invalidMove(distance int, firstMovePending bool) error {
	return commandError(mdwerror.CodeInvalidMove, "move",
		"INVALID MOVE: PAWN MOVES 1 SQUARE, OR 2 SQUARES ONLY ON THE FIRST MOVE AFTER PLACE").
		WithDetail("distance", distance).
		WithDetail("first_move_pending", firstMovePending)
}

func placementRequired(input string) error {
	return commandError(mdwerror.CodePlacementRequired, "dispatch", "EXECUTE PLACE COMMAND FIRST").
		WithDetail("command", input)
}

func unrecognizedCommand(input string) error {
	return commandError(mdwerror.CodeUnrecognizedCommand, "dispatch", "INVALID COMMAND").
		WithDetail("command", input)
}
