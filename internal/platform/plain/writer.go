package plain

import (
	"bufio"
	"io"
	"strings"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/games/tetris"
)

const (
	escHome       = "\033[H"
	escClear      = "\033[2J"
	escClearLine  = "\033[K"
	escHideCursor = "\033[?25l"
	escShowCursor = "\033[?25h"
)

// Writer is a runner.Sink that redraws the terminal whenever the snapshot
// revision changes. Lines end in "\r\n" because the terminal is in raw mode.
type Writer struct {
	out     *bufio.Writer
	screen  *core.Screen
	color   bool
	last    uint64
	started bool
}

// NewWriter creates a writer drawing frames of the given size to w.
func NewWriter(w io.Writer, width, height int, color bool) *Writer {
	return &Writer{
		out:    bufio.NewWriter(w),
		screen: core.NewScreen(width, height),
		color:  color,
	}
}

// Publish draws snap unless it shows the same revision as the last frame.
func (w *Writer) Publish(snap tetris.Snapshot) {
	if w.started && snap.Revision == w.last {
		return
	}
	if !w.started {
		w.out.WriteString(escClear + escHideCursor)
		w.started = true
	}
	w.last = snap.Revision

	tetris.Render(snap, w.screen)
	w.out.WriteString(escHome)
	for y := range w.screen.Height() {
		w.writeRow(y)
		w.out.WriteString(escClearLine + "\r\n")
	}
	w.out.Flush()
}

func (w *Writer) writeRow(y int) {
	if !w.color {
		w.out.WriteString(strings.TrimRight(w.screen.Row(y), " "))
		return
	}
	current := core.ColorDefault
	for x := range w.screen.Width() {
		cell := w.screen.GetCell(x, y)
		if cell.Color != current && cell.Rune != ' ' {
			w.out.WriteString(cell.Color.ANSI())
			current = cell.Color
		}
		w.out.WriteRune(cell.Rune)
	}
	if current != core.ColorDefault {
		w.out.WriteString(core.ColorDefault.ANSI())
	}
}

// Close shows the cursor again.
func (w *Writer) Close() error {
	w.out.WriteString(escShowCursor)
	return w.out.Flush()
}
