package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/games/tetris"
)

var (
	flagScript     string
	flagScriptFile string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Replay an action script without a terminal",
	Long: `Run a game headlessly from a seed and an action script, then print
the final state as JSON.

Script letters:
  L  - Move left
  R  - Move right
  D  - Soft drop
  H  - Hard drop
  W  - Rotate
  Q  - Quit
  .  - One gravity tick

Whitespace and commas are ignored. The same seed and script always
produce the same result.

Examples:
  termtris simulate --seed 7 --script "HHH"
  termtris simulate --seed 7 --script-file ./moves.txt`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagScript, "script", "", "Action script")
	simulateCmd.Flags().StringVar(&flagScriptFile, "script-file", "", "Read the action script from a file")
}

// simulation is the JSON document printed by the simulate command.
type simulation struct {
	Seed     int64           `json:"seed"`
	Steps    int             `json:"steps"`
	Applied  int             `json:"applied"`
	Snapshot tetris.Snapshot `json:"snapshot"`
}

func runSimulate(_ *cobra.Command, _ []string) {
	cfg, err := loadFlagConfig()
	exitOnError(err)

	script := flagScript
	if flagScriptFile != "" {
		data, readErr := os.ReadFile(flagScriptFile)
		if readErr != nil {
			exitOnError(fmt.Errorf("failed to read script %s: %w", flagScriptFile, readErr))
		}
		script = string(data)
	}

	exitOnError(simulate(cfg, script, os.Stdout))
}

func simulate(cfg config.TetrisConfig, script string, out io.Writer) error {
	steps, err := tetris.ParseScript(script)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session := tetris.NewSession(cfg, rand.New(rand.NewSource(seed)))
	applied := session.Replay(steps)

	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(simulation{
		Seed:     seed,
		Steps:    len(steps),
		Applied:  applied,
		Snapshot: session.Snapshot(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
