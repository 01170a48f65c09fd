package plain

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/games/tetris"
	"github.com/vovakirdan/termtris/internal/runner"
)

// Run plays one game on the current terminal and returns the final snapshot.
// The keyboard reader is released when the game ends even if it is still
// blocked waiting for a key.
func Run(cfg config.TetrisConfig, out io.Writer, color bool, logger *log.Logger) (tetris.Snapshot, error) {
	cfg.Normalize()

	kb, err := OpenKeyboard()
	if err != nil {
		return tetris.Snapshot{}, err
	}
	defer kb.Close()

	w, h := tetris.FrameSize(cfg.Field.Width, cfg.Field.Height)
	frames := NewWriter(out, w, h, color)
	d := runner.New(cfg,
		runner.WithSink(frames),
		runner.WithLogger(logger),
	)

	final := d.Play(kb)
	return final, frames.Close()
}
