package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show run history",
	Long: `Display the best runs of a variant, or a summary of every variant
when none is given. The persisted high score is shown as well.

Examples:
  flappy scores
  flappy scores bird
  flappy scores drone --limit 20
  flappy scores --recent
  flappy scores orb --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history of a variant")
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 1 && !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'flappy list' to see available variants.")
		os.Exit(1)
	}

	if flagClear && len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a variant")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err = store.ClearRuns(args[0]); err == nil {
			fmt.Printf("Cleared run history of %s.\n", args[0])
			return
		}
	case flagRecent:
		err = printRecentRuns(store, args)
	case len(args) == 1:
		err = printVariantScores(store, args[0])
	default:
		err = printSummary(store)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	if _, high := loadHighScore(); high > 0 {
		fmt.Println()
		fmt.Printf("High score: %d\n", high)
	}
}

func printVariantScores(store *storage.Store, variant string) error {
	runs, err := store.TopRuns(variant, flagLimit)
	if err != nil {
		return err
	}

	title := variant
	for _, g := range registry.List() {
		if g.ID == variant {
			title = g.Title
		}
	}
	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'flappy play %s' to record the first run!\n", variant)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Ticks", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "-----", "----")

	for i, r := range runs {
		mark := ""
		if r.NewHigh {
			mark = "  *"
		}
		fmt.Printf("  %-4d  %-8d  %-8d  %s%s\n", i+1, r.Score, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"), mark)
	}

	stats, err := store.Stats(variant)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.1f\n", stats.Runs, stats.BestScore, stats.AvgScore)
	return nil
}

func printSummary(store *storage.Store) error {
	fmt.Println("Run History")
	fmt.Println()
	fmt.Printf("  %-8s  %-6s  %-6s  %-8s  %s\n", "Variant", "Runs", "Best", "Average", "Last played")
	fmt.Printf("  %-8s  %-6s  %-6s  %-8s  %s\n", "-------", "----", "----", "-------", "-----------")

	for _, id := range registry.IDs() {
		stats, err := store.Stats(id)
		if err != nil {
			return err
		}
		last := "-"
		if !stats.LastPlayed.IsZero() {
			last = stats.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-8s  %-6d  %-6d  %-8.1f  %s\n", id, stats.Runs, stats.BestScore, stats.AvgScore, last)
	}
	return nil
}

// printRecentRuns lists the latest runs, optionally of one variant.
func printRecentRuns(store *storage.Store, args []string) error {
	limit := flagLimit
	if len(args) == 1 {
		// Filtered below, so look further back
		limit *= len(registry.IDs())
	}
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}

	fmt.Println("Recent Runs")
	fmt.Println()
	fmt.Printf("  %-8s  %-8s  %-8s  %s\n", "Variant", "Score", "Ticks", "Date")
	fmt.Printf("  %-8s  %-8s  %-8s  %s\n", "-------", "-----", "-----", "----")

	shown := 0
	for _, r := range runs {
		if len(args) == 1 && r.Variant != args[0] {
			continue
		}
		if shown == flagLimit {
			break
		}
		fmt.Printf("  %-8s  %-8d  %-8d  %s\n", r.Variant, r.Score, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
		shown++
	}
	if shown == 0 {
		fmt.Println("  No runs recorded yet.")
	}
	return nil
}
