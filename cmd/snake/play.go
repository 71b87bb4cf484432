package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lge88/snake/internal/config"
	"github.com/lge88/snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD - Steer the snake
  R           - Restart (after game over)
  Ctrl+S      - Save a PNG screenshot
  Q/Esc       - Quit

Examples:
  snake play
  snake play --config ./my-snake.yaml
  snake play --seed 42`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts, err := cfg.ToOptions(flagSeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Make sure the board plus footer fits before taking over the screen
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < opts.Width || h < opts.Height+2 {
			fmt.Fprintf(os.Stderr, "Error: terminal %dx%d is too small for a %dx%d board\n",
				w, h, opts.Width, opts.Height)
			os.Exit(1)
		}
	}

	if err := tui.Run(opts, flagFPS); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
