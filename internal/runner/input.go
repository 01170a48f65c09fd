package runner

import (
	"github.com/pkg/errors"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/games/tetris"
)

// InputSource blocks until the player presses a key and returns the
// matching action, or ActionNone for unmapped keys.
type InputSource interface {
	ReadAction() (core.Action, error)
}

// InputFunc adapts a function to an InputSource.
type InputFunc func() (core.Action, error)

// ReadAction calls f.
func (f InputFunc) ReadAction() (core.Action, error) { return f() }

// PumpInput forwards actions from src to the mailbox. It returns after
// forwarding a quit, when the driver has already finished by the time a read
// returns, or when src fails.
func (d *Driver) PumpInput(src InputSource) error {
	for {
		a, err := src.ReadAction()
		if err != nil {
			return errors.WithMessage(err, "read input")
		}
		if d.Done() {
			return nil
		}
		d.mailbox.Post(a)
		if a == core.ActionQuit {
			return nil
		}
	}
}

// Play runs the input pump in the background and the driver loop in the
// calling goroutine. The pump is not waited for: it may still be blocked in
// a read when the game ends on its own. A failing source quits the game.
func (d *Driver) Play(src InputSource) tetris.Snapshot {
	go func() {
		if err := d.PumpInput(src); err != nil {
			d.logger.Error("input stopped", "err", err)
			d.mailbox.Post(core.ActionQuit)
		}
	}()
	return d.Run()
}
