// termtris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	termtris play            - Play in the terminal (Bubble Tea, or --plain)
//	termtris serve           - Start SSH server for remote play
//	termtris simulate        - Replay an action script headlessly and print JSON
//	termtris presets         - List configuration presets
//	termtris config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--preset <id>        - Configuration preset (default: classic)
//	--difficulty <name>  - easy, normal or hard
//	--seed <value>       - RNG seed for reproducible gameplay
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/games/tetris"
	"github.com/vovakirdan/termtris/internal/registry"
)

var (
	// Global flags
	flagConfig     string
	flagPreset     string
	flagDifficulty string
	flagSeed       int64
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termtris",
	Short: "termtris - falling blocks in your terminal",
	Long: `termtris is a falling-block puzzle game that runs in the terminal,
over SSH, or headlessly from an action script.

Available commands:
  play      - Play a game in this terminal
  serve     - Start SSH server for remote play
  simulate  - Replay an action script and print the final state
  presets   - Show configuration presets
  config    - Print the effective configuration

Examples:
  termtris play
  termtris play --preset turbo --difficulty hard
  termtris play --plain
  termtris serve --ssh :2222
  termtris simulate --seed 7 --script "HHWLH"`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", tetris.DefaultPreset, "Configuration preset")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config seed, then time based)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the effective game config: file search, then the
// named preset, then the difficulty, then the seed flag.
func loadConfig(path, preset, difficulty string, seed int64) (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(path)
	if err != nil {
		return config.TetrisConfig{}, err
	}

	if preset != "" {
		cfg, err = registry.Create(preset, cfg)
		if err != nil {
			return config.TetrisConfig{}, err
		}
	}

	d, ok, err := config.ParseDifficulty(difficulty)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	if ok {
		config.ApplyTetrisPreset(&cfg, d)
	}

	if seed != 0 {
		cfg.Seed = seed
	}
	return cfg, nil
}

func loadFlagConfig() (config.TetrisConfig, error) {
	return loadConfig(flagConfig, flagPreset, flagDifficulty, flagSeed)
}

// openLogger returns a logger writing to the --log-file path, or to fallback
// when no file is set. The returned func closes the file.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", openErr)
		}
		out, closeFn = f, func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "termtris",
		Level:           level,
	})
	return logger, closeFn, nil
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
