// snake is a single-player snake game for the terminal.
//
// Usage:
//
//	snake play               - Play in the current terminal
//	snake serve              - Start SSH server for remote play
//	snake preview            - Render the starting position to a PNG
//	snake config             - Print the default configuration YAML
//
// Global flags:
//
//	--config <path> - Use a specific config file
//	--fps <rate>    - Set input polling rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible food placement
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lge88/snake/internal/platform/tui"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is a terminal take on the classic: steer the snake to the food,
grow, and avoid the walls and your own body.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  preview  - Render the starting position to a PNG
  config   - Print the default configuration YAML

Examples:
  snake play
  snake play --config ./my-snake.yaml
  snake serve --ssh :2222
  snake preview --out board.png
  snake config > ~/.snake/config.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", tui.DefaultFPS, "Input polling rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(configCmd)
}
