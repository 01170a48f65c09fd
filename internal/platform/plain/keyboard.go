// Package plain is the dependency-light front end: raw key events from
// eiannone/keyboard and frames written as ANSI text, one line per row.
package plain

import (
	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"

	"github.com/vovakirdan/termtris/internal/core"
)

var errKeyboardClosed = errors.New("keyboard events channel closed")

// KeyboardSource reads actions from the terminal in raw mode.
type KeyboardSource struct {
	events <-chan keyboard.KeyEvent
}

// OpenKeyboard switches the terminal to raw mode and starts reading keys.
func OpenKeyboard() (*KeyboardSource, error) {
	events, err := keyboard.GetKeys(20)
	if err != nil {
		return nil, errors.Wrap(err, "open keyboard")
	}
	return &KeyboardSource{events: events}, nil
}

// ReadAction blocks for the next key event.
func (k *KeyboardSource) ReadAction() (core.Action, error) {
	event, ok := <-k.events
	if !ok {
		return core.ActionNone, errKeyboardClosed
	}
	if event.Err != nil {
		return core.ActionNone, errors.Wrap(event.Err, "keyboard event")
	}
	return ActionForEvent(event), nil
}

// Close restores the terminal mode.
func (k *KeyboardSource) Close() error {
	return keyboard.Close()
}

// ActionForEvent maps arrows, space, Esc and Ctrl+C, then falls back to the
// letter layout.
func ActionForEvent(event keyboard.KeyEvent) core.Action {
	switch event.Key {
	case keyboard.KeyArrowLeft:
		return core.ActionLeft
	case keyboard.KeyArrowRight:
		return core.ActionRight
	case keyboard.KeyArrowDown:
		return core.ActionSoftDown
	case keyboard.KeyArrowUp:
		return core.ActionRotate
	case keyboard.KeySpace:
		return core.ActionHardDrop
	case keyboard.KeyCtrlC, keyboard.KeyEsc:
		return core.ActionQuit
	}
	return core.ActionForRune(event.Rune)
}
