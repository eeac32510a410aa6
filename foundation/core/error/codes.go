// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the board core and the
//              infrastructure around it (config, transport).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-14 v0.2.0: Replaced service codes with board command codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"

	// Board command codes
	CodeMalformedCommand    Code = "MALFORMED_COMMAND"
	CodeInvalidDirection    Code = "INVALID_DIRECTION"
	CodeInvalidColor        Code = "INVALID_COLOR"
	CodeOutOfBounds         Code = "OUT_OF_BOUNDS"
	CodeInvalidMove         Code = "INVALID_MOVE"
	CodePlacementRequired   Code = "PLACEMENT_REQUIRED"
	CodeUnrecognizedCommand Code = "UNRECOGNIZED_COMMAND"

	// Infrastructure
	CodeConfigError    Code = "CONFIG_ERROR"
	CodeTransportError Code = "TRANSPORT_ERROR"
)

// String returns the code as string
func (c Code) String() string {
	return string(c)
}

// IsCommandCode reports whether the code belongs to a rejected board command
func (c Code) IsCommandCode() bool {
	switch c {
	case CodeMalformedCommand, CodeInvalidDirection, CodeInvalidColor,
		CodeOutOfBounds, CodeInvalidMove, CodePlacementRequired,
		CodeUnrecognizedCommand:
		return true
	default:
		return false
	}
}
