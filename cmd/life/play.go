package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var flagPace string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Edit and run a board",
	Long: `Open an empty board. Draw a pattern while the board is stopped, then
start it and watch it evolve.

Controls:
  Space        - Start/stop
  N            - Single step
  Arrows/HJKL  - Move cursor
  Enter/X      - Toggle cell (or click it)
  C            - Clear board
  R            - Random board
  +/-          - Faster/slower
  ?            - More help
  Q/Ctrl+C     - Quit

Editing, clearing and randomizing are only possible while stopped.

Pace options:
  slow   - 500ms per generation
  normal - 200ms per generation
  fast   - 50ms per generation

Examples:
  life play
  life play --pace fast
  life play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPace, "pace", "", "Speed preset: slow, normal, fast")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := newLogger("life")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := config.ApplyPace(&cfg, config.Pace(flagPace)); err != nil {
		return err
	}

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	board := tui.NewBoard(cfg.EngineConfig(), storage.SourcePlay)
	if err := tui.Run(board, rc, cfg.Speed.Step); err != nil {
		return err
	}

	id, err := board.Record(store)
	if err != nil {
		logger.Warn("could not record run", "error", err)
	} else if id != 0 {
		logger.Debug("run recorded", "id", id, "generations", board.Steps())
	}
	return nil
}
