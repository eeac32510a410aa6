package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/pawnboard/foundation/core/error"
	mdwlog "github.com/msto63/pawnboard/foundation/core/log"
	"github.com/msto63/pawnboard/pkg/core/config"
	"github.com/msto63/pawnboard/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool

	appConfig *config.Config
	appLogger *mdwlog.Logger
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "pawnboard",
	Short: "pawnboard - Bauern-Simulator auf dem 8x8 Brett",
	Long: `pawnboard simuliert einen einzelnen Bauern auf einem 8x8 Brett.

Befehle der Brettsprache:
  PLACE x,y,RICHTUNG,FARBE  - Bauern setzen (RICHTUNG: NORTH|EAST|SOUTH|WEST,
                              FARBE: BLACK|WHITE)
  MOVE [1|2]                - vorwaerts ziehen, 2 Felder nur beim ersten Zug
  LEFT / RIGHT              - um 90 Grad drehen
  REPORT                    - Position ins Protokoll schreiben

Oberflaechen:
  play     - interaktive Terminal-UI
  run      - Befehle aus Datei oder stdin ausfuehren
  serve    - WebSocket-Konsole fuer entfernte Clients`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

// setup loads the configuration and builds the logger for every command
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	appConfig = cfg

	loggerCfg := logging.DefaultLoggerConfig(cfg.General.Name)
	loggerCfg.Level = cfg.General.LogLevel
	loggerCfg.Format = cfg.General.LogFormat
	loggerCfg.File = cfg.General.LogFile

	appLogger, logCloser, err = logging.NewLogger(loggerCfg)
	if err != nil {
		printError("Logger konnte nicht erstellt werden", err)
		return err
	}
	if verbose {
		appLogger = appLogger.WithLevel(mdwlog.LevelDebug)
	}
	mdwlog.SetDefault(appLogger)

	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if logCloser != nil {
		return logCloser.Close()
	}
	return nil
}

// loadConfig uses --config, then PAWNBOARD_CONFIG and the default
// locations, and falls back to the defaults when no file exists
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			printError("Config nicht geladen", err)
			return nil, err
		}
		return cfg, nil
	}

	cfg, err := config.LoadFromEnv()
	if errors.Is(err, config.ErrNoConfigFile) {
		return config.Default(), nil
	}
	if err != nil {
		printError("Config nicht geladen", err)
		return nil, err
	}
	return cfg, nil
}

// printError writes err to stderr, prefixed with its code when it has one.
// With --verbose the full structured error follows.
func printError(msg string, err error) {
	fmt.Fprintln(os.Stderr, formatError(msg, err))
	var mdwErr *mdwerror.Error
	if verbose && errors.As(err, &mdwErr) {
		fmt.Fprintln(os.Stderr, mdwErr.String())
	}
}

func formatError(msg string, err error) string {
	if code := mdwerror.GetCode(err); code != mdwerror.CodeUnknown {
		return fmt.Sprintf("Fehler [%s]: %s: %v", code, msg, err)
	}
	return fmt.Sprintf("Fehler: %s: %v", msg, err)
}
