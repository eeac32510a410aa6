// ============================================================================
// pawnboard - Bauern-Simulator auf dem 8x8 Brett
// ============================================================================
//
// Package:     board
// Description: Definitions of the command language for help output
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package board

// CommandDefinition describes one command of the language
type CommandDefinition struct {
	Name              string   `json:"name" yaml:"name"`
	Usage             string   `json:"usage" yaml:"usage"`
	Description       string   `json:"description" yaml:"description"`
	Examples          []string `json:"examples" yaml:"examples"`
	RequiresPlacement bool     `json:"requires_placement" yaml:"requires_placement"`
}

var catalogue = []CommandDefinition{
	{
		Name:        KeywordPlace,
		Usage:       "PLACE <x>,<y>,<NORTH|EAST|SOUTH|WEST>,<BLACK|WHITE>",
		Description: "Places the pawn on square (x,y), both 0-7, facing a direction on a square of the given color. Re-placing resets the first move.",
		Examples:    []string{"PLACE 0,0,NORTH,WHITE", "PLACE 7,7,EAST,BLACK"},
	},
	{
		Name:              KeywordMove,
		Usage:             "MOVE [1|2]",
		Description:       "Moves the pawn forward. Two squares only on the first move after PLACE. A one square move toggles the square color.",
		Examples:          []string{"MOVE", "MOVE 2"},
		RequiresPlacement: true,
	},
	{
		Name:              KeywordLeft,
		Usage:             "LEFT",
		Description:       "Turns the pawn 90 degrees counter-clockwise.",
		Examples:          []string{"LEFT"},
		RequiresPlacement: true,
	},
	{
		Name:              KeywordRight,
		Usage:             "RIGHT",
		Description:       "Turns the pawn 90 degrees clockwise.",
		Examples:          []string{"RIGHT"},
		RequiresPlacement: true,
	},
	{
		Name:              KeywordReport,
		Usage:             "REPORT",
		Description:       "Writes position, direction and square color to the log.",
		Examples:          []string{"REPORT"},
		RequiresPlacement: true,
	},
}

// Catalogue returns the command definitions in display order
func Catalogue() []CommandDefinition {
	out := make([]CommandDefinition, len(catalogue))
	for i, def := range catalogue {
		def.Examples = append([]string(nil), def.Examples...)
		out[i] = def
	}
	return out
}

// LookupCommand returns the definition of a keyword
func LookupCommand(name string) (CommandDefinition, bool) {
	name = Normalize(name)
	for _, def := range catalogue {
		if def.Name == name {
			def.Examples = append([]string(nil), def.Examples...)
			return def, true
		}
	}
	return CommandDefinition{}, false
}
