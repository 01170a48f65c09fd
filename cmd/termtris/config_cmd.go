package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a game would start with, after the config
file search, --preset, --difficulty and --seed are applied. The output
is valid input for --config.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadFlagConfig()
	exitOnError(err)

	data, err := cfg.Marshal()
	exitOnError(err)
	_, _ = os.Stdout.Write(data)
}
