// caveleap is a terminal cave-flier: flap through stalactite gaps, dodge
// the bat swarm, and grab coins while the tiers speed up.
//
// Usage:
//
//	caveleap play            - Play in the local terminal
//	caveleap scores          - Show the best recorded runs
//	caveleap levels          - Print the difficulty tier table
//	caveleap serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.caveleap/runs.db)
//	--levels <path> - Load a custom difficulty tier YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagLevels string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "caveleap",
	Short: "Cave Leap - flap through the caverns in your terminal",
	Long: `Cave Leap is a terminal arcade game. Keep a fragile flier airborne
through an endless cave: thrust up against gravity, slip through the
gaps between stalactites and stalagmites, dodge the bats, collect coins.
Difficulty rises in named tiers as your score grows.

Available commands:
  play     - Play in the local terminal
  scores   - View the best recorded runs
  levels   - Print the difficulty tier table
  serve    - Start SSH server for remote play

Examples:
  caveleap play
  caveleap play --mute --fps 30
  caveleap play --levels ./my-levels.yaml
  caveleap scores --plain
  caveleap serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.caveleap/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Path to custom difficulty tier YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
}
