package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagHistoryLimit int
	flagInteractive  bool
	flagLongest      bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Display recorded runs from play sessions, SSH sessions and headless runs.
Only summaries are kept; boards themselves are never stored.

Examples:
  life history
  life history --limit 5 --longest
  life history --interactive`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table")
	historyCmd.Flags().BoolVar(&flagLongest, "longest", false, "Order by generations instead of date")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, width, height)
	}

	var runs []storage.Run
	if flagLongest {
		runs, err = store.TopRuns(flagHistoryLimit)
	} else {
		runs, err = store.RecentRuns(flagHistoryLimit)
	}
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'life play' or 'life run' to record one!")
		return nil
	}

	headers := []string{"ID", "Source", "Gens", "Pop", "Peak", "Speed", "Status", "Date"}
	fmt.Printf("  %s\n", formatRow(headers))
	fmt.Printf("  %s\n", formatRow(dashes(headers)))
	for _, row := range tui.RunRows(runs) {
		fmt.Printf("  %s\n", formatRow(row))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Longest: %d  Average: %.1f generations\n",
			stats.Runs, stats.MaxGenerations, stats.AvgGenerations)
	}
	return nil
}

var columnWidths = []int{5, 6, 7, 6, 6, 7, 12, 12}

func formatRow(cols []string) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprintf("%-*s", columnWidths[i], c)
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

func dashes(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = strings.Repeat("-", len(c))
	}
	return out
}
