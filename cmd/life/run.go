package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagGenerations int
	flagUntilStable bool
	flagRunSpeed    int
	flagQuiet       bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a random board without a UI",
	Long: `Seed a random board, let it evolve on the wall clock and print the final
generation. Interrupt with Ctrl+C to stop early.

Examples:
  life run --generations 200
  life run --generations 1000 --until-stable --speed 50
  life run --seed 7 --quiet`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagGenerations, "generations", 100, "Number of generations to run (0 = until stable or interrupted)")
	runCmd.Flags().BoolVar(&flagUntilStable, "until-stable", false, "Stop early once the pattern is extinct, still or oscillating")
	runCmd.Flags().IntVar(&flagRunSpeed, "speed", 0, "Milliseconds per generation (0 = config default)")
	runCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Print only the summary, not the board")
}

func runRun(cmd *cobra.Command, _ []string) error {
	logger := newLogger("life-run")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagGenerations < 0 {
		return fmt.Errorf("--generations must not be negative, got %d", flagGenerations)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	eng := life.NewEngine(cfg.EngineConfig(), life.RealClock{})
	defer eng.Close()
	if flagRunSpeed != 0 {
		eng.SetSpeed(flagRunSpeed)
	}
	eng.Randomize()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := eng.Snapshot()
	logger.Info("running",
		"rows", cfg.Grid.Rows, "cols", cfg.Grid.Cols,
		"population", start.Population,
		"speed", start.Speed,
		"seed", eng.Config().Seed,
	)

	res, err := life.Run(ctx, eng, life.RunOptions{
		Generations: flagGenerations,
		UntilStable: flagUntilStable,
		Observe: func(s life.Snapshot) {
			logger.Debug("generation", "gen", s.Generation, "population", s.Population)
		},
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		logger.Warn("interrupted", "generations", res.Steps)
	}

	if !flagQuiet {
		fmt.Println(res.Final.Grid)
		fmt.Println()
	}
	fmt.Printf("generation %d  population %d  peak %d  %s\n",
		res.Final.Generation, res.Final.Population, res.Peak, res.Status)

	if store != nil && res.Steps > 0 {
		if _, err := store.SaveRun(storage.Run{
			Source:         storage.SourceRun,
			Seed:           eng.Config().Seed,
			Generations:    res.Steps,
			Population:     res.Final.Population,
			PeakPopulation: max(res.Peak, start.Population),
			SpeedMS:        res.Final.Speed,
			Status:         string(res.Status),
		}); err != nil {
			logger.Warn("could not record run", "error", err)
		}
	}
	return nil
}
