package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/pawnboard/foundation/core/error"
	"github.com/msto63/pawnboard/internal/board"
)

var commandsFormat string

var commandsCmd = &cobra.Command{
	Use:   "commands [befehl]",
	Short: "Listet die Befehle der Brettsprache",
	Long: `Listet die Befehle der Brettsprache mit Syntax und Beispielen.

Formate: text (default), json, yaml

Beispiele:
  pawnboard commands
  pawnboard commands move
  pawnboard commands --format yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCommands,
}

func init() {
	rootCmd.AddCommand(commandsCmd)

	commandsCmd.Flags().StringVarP(&commandsFormat, "format", "f", "text", "Ausgabeformat (text, json, yaml)")
}

func runCommands(cmd *cobra.Command, args []string) error {
	defs := board.Catalogue()
	if len(args) == 1 {
		def, ok := board.LookupCommand(args[0])
		if !ok {
			return mdwerror.Newf("unbekannter Befehl: %s", args[0]).
				WithCode(mdwerror.CodeNotFound).
				WithOperation("commands")
		}
		defs = []board.CommandDefinition{def}
	}

	out := cmd.OutOrStdout()

	switch strings.ToLower(commandsFormat) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(defs)

	case "yaml", "yml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(defs); err != nil {
			return err
		}
		return enc.Close()

	case "text":
		for i, def := range defs {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, def.Usage)
			fmt.Fprintf(out, "  %s\n", def.Description)
			if def.RequiresPlacement {
				fmt.Fprintln(out, "  Erfordert PLACE.")
			}
			fmt.Fprintf(out, "  Beispiele: %s\n", strings.Join(def.Examples, ", "))
		}
		return nil

	default:
		return mdwerror.Newf("unbekanntes Format: %s", commandsFormat).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("commands").
			WithDetail("format", commandsFormat)
	}
}
