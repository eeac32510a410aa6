// Package error provides the structured error type used across pawnboard.
//
// Package: error
// Title: pawnboard Error Handling
// Description: Structured errors carrying a code, a severity, the failing
//              operation and free-form details. Command failures of the board
//              core are expressed as codes of this package so that shells can
//              branch on them and the logger can attach them as fields.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-14 v0.2.0: Board command codes, code based errors.Is, joined errors
//
// Usage:
//
//	import mdwerror "github.com/msto63/pawnboard/foundation/core/error"
//
//	err := mdwerror.New("x coordinate 9 is outside the board").
//		WithCode(mdwerror.CodeOutOfBounds).
//		WithOperation("place").
//		WithDetail("x", 9)
//
//	// Matches every error carrying the same code, also inside errors.Join
//	if errors.Is(err, mdwerror.New("").WithCode(mdwerror.CodeOutOfBounds)) {
//		// ...
//	}
//
//	for _, code := range mdwerror.Codes(joined) {
//		// every code found in a joined error, in order
//	}
package error
