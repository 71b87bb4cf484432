package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lge88/snake/internal/config"
	"github.com/lge88/snake/internal/game"
	"github.com/lge88/snake/internal/platform/canvas"
)

var (
	flagOut    string
	flagWidth  int
	flagHeight int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the starting position to a PNG",
	Long: `Render the first frame of a fresh game to a PNG image. Useful for
checking what a config looks like without playing it.

Examples:
  snake preview
  snake preview --out board.png --width 800 --height 800
  snake preview --config ./my-snake.yaml --seed 42`,
	Run: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&flagOut, "out", "snake.png", "Output PNG path")
	previewCmd.Flags().IntVar(&flagWidth, "width", 640, "Image width in pixels")
	previewCmd.Flags().IntVar(&flagHeight, "height", 640, "Image height in pixels")
}

func runPreview(_ *cobra.Command, _ []string) {
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

	session, err := game.NewSession(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	r := canvas.New(opts.Width, opts.Height, flagWidth, flagHeight, opts.SpacingRatio)
	session.Render(r)

	if err := r.SavePNG(flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved %dx%d preview to %s\n", flagWidth, flagHeight, flagOut)
}
