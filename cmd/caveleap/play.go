package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/caveleap/internal/audio"
	"github.com/vovakirdan/caveleap/internal/core"
	"github.com/vovakirdan/caveleap/internal/level"
	"github.com/vovakirdan/caveleap/internal/platform/tui"
	"github.com/vovakirdan/caveleap/internal/storage"
)

var (
	flagMute   bool
	flagSounds string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a local game session.

Controls:
  Space/Up/W - Flap (also: left click)
  Enter      - Start / restart
  R          - Restart (after game over)
  P/Esc      - Pause
  M          - Toggle sound
  Q/Ctrl+C   - Quit (records an in-flight run)

Examples:
  caveleap play
  caveleap play --mute
  caveleap play --levels ./my-levels.yaml --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	playCmd.Flags().StringVar(&flagSounds, "sounds", "~/.caveleap/sounds", "Directory with per-cue WAV overrides")
}

func runPlay(cmd *cobra.Command, args []string) {
	levels, err := level.Load(flagLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size, falling back to a classic 80x24
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Mute:     flagMute,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	sound := audio.NewManager(log.New(os.Stderr), false)
	sound.Init()
	sound.LoadOverrides(flagSounds)

	runErr := tui.Run(levels, store, sound, cfg)

	sound.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
