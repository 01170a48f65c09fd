package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/games/tetris"
	"github.com/vovakirdan/termtris/internal/platform/plain"
	"github.com/vovakirdan/termtris/internal/platform/tui"
	"github.com/vovakirdan/termtris/internal/runner"
)

var (
	flagFPS     int
	flagPlain   bool
	flagNoColor bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in this terminal.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  S/Down     - Soft drop
  Space      - Hard drop
  W/Up       - Rotate clockwise
  Q/Ctrl+C   - Quit
  ?          - Toggle help

Difficulty options:
  easy   - Start at level 0
  normal - Start at level 3
  hard   - Start at level 6

Examples:
  termtris play
  termtris play --difficulty hard
  termtris play --preset wide --seed 42
  termtris play --plain --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 30, "Redraw rate (frames per second)")
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use the raw keyboard front end instead of Bubble Tea")
	playCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colors in --plain mode")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadFlagConfig()
	exitOnError(err)

	// Logs would corrupt the game screen, so they go to a file or nowhere.
	logger, closeLog, err := openLogger(io.Discard)
	exitOnError(err)
	defer closeLog()

	rc := core.DefaultConfig()
	width, height := rc.ScreenW, rc.ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	needW, needH := tetris.FrameSize(cfg.Field.Width, cfg.Field.Height)
	if !flagPlain {
		needH++ // help line
	}
	if width < needW || height < needH {
		exitOnError(fmt.Errorf("terminal is %dx%d, the %dx%d field needs at least %dx%d",
			width, height, cfg.Field.Width, cfg.Field.Height, needW, needH))
	}

	var final tetris.Snapshot
	if flagPlain {
		final, err = plain.Run(cfg, os.Stdout, !flagNoColor, logger)
	} else {
		latest := &runner.Latest{}
		d := runner.New(cfg, runner.WithSink(latest), runner.WithLogger(logger))
		rc.ScreenW, rc.ScreenH = width, height
		rc.FPS = flagFPS
		rc.Seed = d.Seed()
		final, err = tui.Run(d, latest, rc)
	}
	exitOnError(err)

	fmt.Println(summary(final))
}

func summary(snap tetris.Snapshot) string {
	return fmt.Sprintf("%s  score %d  level %d  lines %d  tetrises %d",
		snap.State, snap.Stats.Score, snap.Stats.Level, snap.Stats.Lines, snap.Stats.Tetrises)
}
