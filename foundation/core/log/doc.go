// Package log provides structured logging for pawnboard.
//
// Package: log
// Title: pawnboard Structured Logging
// Description: Leveled, structured logger with JSON, text and logfmt output.
//              The board controller reports every command outcome through it,
//              which makes it the diagnostic channel of the system. Loggers are
//              immutable: With* methods return a configured copy.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-14 v0.2.0: Session context, sorted field output, dropped async, timers and package level helpers
//
// Usage:
//
//	import mdwlog "github.com/msto63/pawnboard/foundation/core/log"
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{Format: mdwlog.FormatText}).
//		WithName("board").
//		WithSessionID("6f1c...")
//
//	logger.Info("command executed", mdwlog.Fields{"command": "MOVE 2"})
//	logger.LogError(err) // level derived from the error severity
package log
