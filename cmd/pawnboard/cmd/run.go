// ============================================================================
// pawnboard - Bauern-Simulator auf dem 8x8 Brett
// ============================================================================
//
// Package:     cmd
// Description: CLI command for running command scripts
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/pawnboard/foundation/core/log"
	"github.com/msto63/pawnboard/internal/board"
)

var (
	runShowBoard bool
	runReport    bool
)

var runCmd = &cobra.Command{
	Use:   "run [datei...]",
	Short: "Fuehrt Befehle aus Dateien oder stdin aus",
	Long: `Fuehrt Befehle zeilenweise aus und gibt das Protokoll aus.

Ohne Datei (oder mit "-") wird von stdin gelesen. Leere Zeilen
und Zeilen, die mit # beginnen, werden uebersprungen. Alle Dateien
spielen auf demselben Brett.

Fehlerhafte Befehle aendern den Zustand nicht und werden als
Diagnose geloggt; der Exit-Code bleibt 0, nur Lesefehler brechen ab.

Beispiele:
  pawnboard run moves.txt
  echo "PLACE 0,0,NORTH,WHITE" | pawnboard run --report --board`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runShowBoard, "board", false, "Brett nach dem Lauf ausgeben")
	runCmd.Flags().BoolVar(&runReport, "report", false, "Am Ende REPORT ausfuehren")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctrl := board.NewController(board.Options{Logger: appLogger.WithField("shell", "run")})
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		args = []string{"-"}
	}

	for _, name := range args {
		if err := runFile(name, cmd.InOrStdin(), ctrl, out); err != nil {
			printError("Lesefehler", err)
			return err
		}
	}

	if runReport {
		printOutcome(ctrl, "REPORT", out)
	}

	if runShowBoard {
		fmt.Fprint(out, "\n"+board.Render(ctrl.State()))
	}

	return nil
}

func runFile(name string, stdin io.Reader, ctrl *board.Controller, out io.Writer) error {
	if name == "-" {
		return runScript(stdin, ctrl, out)
	}

	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	appLogger.Debug("Running script", mdwlog.Fields{"file": name})
	return runScript(f, ctrl, out)
}

// runScript executes every command line of r and writes the log lines each
// command appends to out
func runScript(r io.Reader, ctrl *board.Controller, out io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		printOutcome(ctrl, line, out)
	}
	return scanner.Err()
}

func printOutcome(ctrl *board.Controller, input string, out io.Writer) {
	before := ctrl.LogLen()
	ctrl.Run(input)
	for _, line := range ctrl.LogSince(before) {
		fmt.Fprintln(out, line)
	}
}
