// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification for errors. Rejected board commands are
//              always low severity, infrastructure failures rank higher.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Severity mapping for board codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a rejected input that leaves the system untouched
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error, e.g. the config could not be read
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch {
	case code.IsCommandCode(), code == CodeInvalidInput, code == CodeNotFound:
		return SeverityLow
	case code == CodeConfigError:
		return SeverityHigh
	case code == CodeInternal:
		return SeverityCritical
	default:
		return SeverityMedium
	}
}
