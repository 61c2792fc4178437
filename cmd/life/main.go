// life is Conway's Game of Life in the terminal.
//
// Usage:
//
//	life play                - Edit and run a board interactively
//	life run                 - Run a random board headless and print the result
//	life serve               - Start SSH server for remote boards
//	life history             - Show recorded runs
//	life config              - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Configuration file (default: search ~/.life/configs, ./configs)
//	--seed <value>      - RNG seed for random boards
//	--db <path>         - Run history database (default: ~/.life/history.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `Conway's Game of Life on a bounded board: cells beyond the edges are
always dead.

Available commands:
  play     - Edit and run a board interactively
  run      - Run a random board without a UI
  serve    - Start SSH server for remote boards
  history  - View recorded runs
  config   - Print the effective configuration

Examples:
  life play
  life play --pace fast
  life run --generations 500 --until-stable
  life serve --ssh :2222
  life history --interactive`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for random boards (0 = from config or time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a stderr logger at the level given by --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

// loadConfig resolves the configuration and applies the --seed override.
func loadConfig() (config.LifeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSeed != 0 {
		cfg.Random.Seed = flagSeed
	}
	return cfg, nil
}

// openStore opens the run history database. Failure is not fatal: the caller
// continues without recording.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history, runs will not be recorded", "error", err)
		return nil
	}
	return store
}
