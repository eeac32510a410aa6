package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/pawnboard/internal/remote"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Startet die WebSocket-Konsole",
	Long: `Startet die Brett-Konsole fuer entfernte Clients.

Jede WebSocket-Verbindung auf /ws bekommt ein eigenes Brett.
/healthz liefert den Zustand des Servers als JSON.

Nachrichten (JSON):
  {"type":"command","payload":{"input":"MOVE"}}  -> result
  {"type":"state"}                               -> state
  {"type":"log"}                                 -> log
  {"type":"ping"}                                -> pong

Beispiele:
  pawnboard serve
  pawnboard serve --host 0.0.0.0 --port 9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host (ueberschreibt server.host)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port (ueberschreibt server.port)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := remote.Config{
		Host:            appConfig.Server.Host,
		Port:            appConfig.Server.Port,
		ReadTimeout:     appConfig.Server.ReadTimeout.Duration,
		WriteTimeout:    appConfig.Server.WriteTimeout.Duration,
		MaxMessageBytes: appConfig.Server.MaxMessageBytes,
	}
	if serveHost != "" {
		cfg.Host = serveHost
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	if err := remote.New(cfg, appLogger).ListenAndServe(ctx); err != nil {
		printError("Server beendet", err)
		return err
	}
	return nil
}
