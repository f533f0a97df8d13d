package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagRunsLimit  int
	flagRunsStats  bool
	flagRunsClear  bool
	flagRunsBrowse bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the run journal",
	Long: `Display the most recent sessions recorded in the run journal.

Examples:
  breakout runs
  breakout runs --limit 25
  breakout runs --stats
  breakout runs --browse --limit 100`,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsStats, "stats", false, "Show totals per backend instead")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all recorded runs")
	runsCmd.Flags().BoolVar(&flagRunsBrowse, "browse", false, "Browse the runs interactively")
}

func runRuns(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagRunsClear:
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run journal cleared.")
		return nil
	case flagRunsStats:
		return printStats(store)
	}

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		return err
	}

	if flagRunsBrowse {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunJournal(runs, width, height)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breakout' to record the first one!")
		return nil
	}

	fmt.Printf("  %-16s  %-8s  %7s  %8s  %7s  %6s  %8s  %s\n",
		"Date", "Backend", "Ticks", "Overruns", "Bricks", "Errors", "Seconds", "Hash")
	fmt.Printf("  %-16s  %-8s  %7s  %8s  %7s  %6s  %8s  %s\n",
		"----", "-------", "-----", "--------", "------", "------", "-------", "----")

	for _, r := range runs {
		fmt.Printf("  %-16s  %-8s  %7d  %8d  %3d/%-3d  %6d  %8.1f  %016x\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Backend,
			r.Ticks,
			r.Overruns,
			r.BricksDestroyed, r.BricksTotal,
			r.ErrorCount,
			float64(r.DurationMs)/1000,
			r.SnapshotHash,
		)
	}
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("  %-8s  %5s  %10s  %9s  %8s  %s\n", "Backend", "Runs", "Ticks", "Best run", "Overruns", "Last run")
	fmt.Printf("  %-8s  %5s  %10s  %9s  %8s  %s\n", "-------", "----", "-----", "--------", "--------", "--------")
	for _, name := range names {
		s := stats[name]
		fmt.Printf("  %-8s  %5d  %10d  %9d  %8d  %s\n",
			s.Backend, s.Runs, s.TotalTicks, s.MaxDestroyed, s.TotalOverruns,
			s.LastRun.Format("2006-01-02 15:04"))
	}
	return nil
}
