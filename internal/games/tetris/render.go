package tetris

import (
	"fmt"

	"github.com/vovakirdan/termtris/internal/core"
)

const (
	cellWidth   = 2  // Each cell is drawn twice as wide as it is tall
	panelGap    = 2  // Columns between the field box and the side panel
	panelWidth  = 16 // Width of the side panel
	panelHeight = 11 // Rows used by the side panel
)

const (
	symbolCell     = '%'
	symbolGameOver = '#'
)

// FrameSize returns the screen area Render needs for a field of the given size.
func FrameSize(width, height int) (int, int) {
	return width*cellWidth + 2 + panelGap + panelWidth, core.Max(height+2, panelHeight)
}

// Render draws the snapshot: the boxed field on the left and the lookahead
// and stats on the right. Once the game is over every occupied cell is
// drawn with '#'.
func Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()

	w, h := FrameSize(snap.Width, snap.Height)
	if dst.Width() < w || dst.Height() < h {
		renderTooSmall(dst, w, h)
		return
	}

	renderField(snap, dst)
	renderPanel(snap, dst, snap.Width*cellWidth+2+panelGap)
}

func renderTooSmall(dst *core.Screen, w, h int) {
	msg := "Window too small"
	y := dst.Height() / 2
	dst.DrawText((dst.Width()-len(msg))/2, y, msg)

	hint := fmt.Sprintf("Need %dx%d", w, h)
	dst.DrawText((dst.Width()-len(hint))/2, y+1, hint)
}

func renderField(snap Snapshot, dst *core.Screen) {
	dst.DrawBox(core.NewRect(0, 0, snap.Width*cellWidth+2, snap.Height+2), core.ColorGray)

	active := ShapeOf(snap.Piece).Color()
	for y, row := range snap.Cells {
		screenY := snap.Height - y // row 0 sits just above the bottom border
		for x, c := range row {
			if c == CellEmpty {
				continue
			}
			r, color := rune(symbolCell), core.ColorWhite
			switch {
			case snap.GameOver:
				r, color = symbolGameOver, core.ColorRed
			case c == CellActive:
				color = active
			}
			screenX := 1 + x*cellWidth
			for i := range cellWidth {
				dst.SetColored(screenX+i, screenY, r, color)
			}
		}
	}
}

func renderPanel(snap Snapshot, dst *core.Screen, x int) {
	dst.DrawTextColored(x, 1, "NEXT", core.ColorBrightWhite)
	if snap.Next >= 0 && int(snap.Next) < PieceCount {
		color := ShapeOf(snap.Next).Color()
		for _, p := range snap.Preview {
			// The preview box is two rows tall with row 0 at the bottom.
			screenY := 3 - p.Y
			for i := range cellWidth {
				dst.SetColored(x+p.X*cellWidth+i, screenY, symbolCell, color)
			}
		}
	}

	lines := []string{
		fmt.Sprintf("Score  %d", snap.Stats.Score),
		fmt.Sprintf("Level  %d", snap.Stats.Level),
		fmt.Sprintf("Lines  %d", snap.Stats.Lines),
		fmt.Sprintf("Tetris %d", snap.Stats.Tetrises),
	}
	for i, line := range lines {
		dst.DrawText(x, 5+i, line)
	}

	switch snap.State {
	case StateGameOver:
		dst.DrawTextColored(x, 10, "GAME OVER", core.ColorBrightRed)
	case StateQuit:
		dst.DrawTextColored(x, 10, "QUIT", core.ColorYellow)
	}
}
