// ============================================================================
// pawnboard - Bauern-Simulator auf dem 8x8 Brett
// ============================================================================
//
// Package:     version
// Description: Central version management for all components
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for all pawnboard components
const (
	// Platform version
	Platform = "1.0.0"

	// Component versions
	Board  = "1.0.0"
	Shell  = "1.0.0"
	Remote = "1.0.0"

	// Protocol is the version of the remote console message protocol
	Protocol = 1
)

// Build metadata, set via -ldflags "-X .../version.Commit=..."
var (
	Commit    = "dev"
	BuildDate = "unknown"
)

// Components lists the named components reported by Get
var Components = []string{"board", "shell", "remote"}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "board":
		return Board
	case "shell":
		return Shell
	case "remote":
		return Remote
	default:
		return Platform
	}
}

// Info holds version information for display
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Protocol  int    `json:"protocol"`

	Components map[string]string `json:"components"`
}

// Get returns the version information of the running binary
func Get() Info {
	components := make(map[string]string, len(Components))
	for _, name := range Components {
		components[name] = ComponentVersion(name)
	}

	return Info{
		Version:    Platform,
		Commit:     Commit,
		BuildDate:  BuildDate,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		Protocol:   Protocol,
		Components: components,
	}
}

// String formats the version as a one line summary
func (i Info) String() string {
	return fmt.Sprintf("pawnboard %s (%s, %s) %s %s", i.Version, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
