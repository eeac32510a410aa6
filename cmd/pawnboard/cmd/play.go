// ============================================================================
// pawnboard - Bauern-Simulator auf dem 8x8 Brett
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive board shell
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/pawnboard/foundation/core/log"
	"github.com/msto63/pawnboard/internal/tui/boardshell"
)

var playNoBoard bool

var playCmd = &cobra.Command{
	Use:     "play",
	Aliases: []string{"shell", "tui"},
	Short:   "Startet die interaktive Brett-Oberflaeche",
	Long: `Startet die interaktive Terminal-UI.

Eingaben werden in das Eingabefeld geschrieben und mit Enter
ausgefuehrt. Das Protokoll zeigt jede Eingabe und jeden REPORT,
die Statuszeile das Ergebnis des letzten Befehls.

Tastenkuerzel:
  Enter       Eingabe ausfuehren
  Ctrl+E      Letzte Eingabe erneut ausfuehren
  Up/Down     Verlauf
  ?           Befehlsuebersicht (bei leerem Eingabefeld)
  Ctrl+B      Brett ein-/ausblenden
  Ctrl+L      Protokollansicht leeren
  PgUp/PgDn   Scrollen
  Esc/Ctrl+C  Beenden`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().BoolVar(&playNoBoard, "no-board", false, "Brett ausblenden")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := appLogger
	// stderr output would draw over the alt screen
	if appConfig.General.LogFile == "" {
		logger = mdwlog.Discard()
	}

	cfg := boardshell.Config{
		Prompt:        appConfig.Shell.Prompt,
		ShowBoard:     appConfig.Shell.BoardVisible() && !playNoBoard,
		MaxScrollback: appConfig.Shell.MaxScrollback,
		Logger:        logger,
	}

	return boardshell.Run(cfg)
}
