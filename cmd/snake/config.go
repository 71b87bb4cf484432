package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lge88/snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration YAML",
	Long: `Prints the built-in default configuration. Redirect it to a file to
use as a starting point:

  mkdir -p ~/.snake
  snake config > ~/.snake/config.yaml`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	//nolint:errcheck // Writing to stdout
	os.Stdout.Write(config.DefaultYAML())
}
