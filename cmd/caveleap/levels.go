package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/caveleap/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the difficulty tier table",
	Long: `Show the difficulty tiers the game will use, in the order they
unlock. Honors --levels, so this is the quickest way to check a custom
tier file before playing it.

Examples:
  caveleap levels
  caveleap levels --levels ./my-levels.yaml`,
	Run: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	table, err := level.Load(flagLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Difficulty tiers:")
	fmt.Println()
	fmt.Printf("  %-16s  %-9s  %-7s  %-5s  %-7s  %s\n",
		"Name", "Up to", "Speed", "Gap", "Gravity", "Coin chance")
	fmt.Printf("  %-16s  %-9s  %-7s  %-5s  %-7s  %s\n",
		"----", "-----", "-----", "---", "-------", "-----------")

	for i, lv := range table.Levels {
		upTo := fmt.Sprintf("%d pts", lv.ScoreThreshold)
		if i == table.Len()-1 {
			upTo = "endless"
		}
		fmt.Printf("  %-16s  %-9s  %-7.1f  %-5.0f  %-7.2f  %.0f%%\n",
			lv.Name, upTo, lv.WallSpeed, lv.GapSize, lv.Gravity, lv.CoinSpawnChance*100)
	}

	fmt.Println()
	fmt.Println("The last tier applies to every score past its predecessors.")
}
