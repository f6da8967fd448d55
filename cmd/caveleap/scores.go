package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/caveleap/internal/platform/tui"
	"github.com/vovakirdan/caveleap/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the best recorded runs, interactively by default or as a
plain table with --plain.

Examples:
  caveleap scores
  caveleap scores --plain`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive view")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store) {
	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'caveleap play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-16s  %s\n", "Rank", "Score", "Coins", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-16s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, entry := range runs {
		fmt.Printf("  %-4d  %-8d  %-6d  %-16s  %s\n",
			i+1, entry.Score, entry.Coins, entry.Level,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d over %d runs (%d coins total)\n",
			stats.BestScore, stats.Runs, stats.TotalCoins)
	}
}
