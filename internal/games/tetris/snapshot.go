package tetris

import (
	"strings"

	"github.com/vovakirdan/termtris/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	Cells    [][]Cell     `json:"-"`    // [y][x], row 0 at the bottom
	Rows     []string     `json:"rows"` // top row first, one character per cell
	Piece    PieceID      `json:"piece"`
	Next     PieceID      `json:"next"`
	Preview  []core.Point `json:"preview"`
	Stats    Stats        `json:"stats"`
	State    State        `json:"state"`
	GameOver bool         `json:"game_over"`
	Revision uint64       `json:"revision"`
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	cells := s.field.Rows()
	rows := make([]string, len(cells))
	for y, row := range cells {
		var sb strings.Builder
		sb.Grow(len(row))
		for _, c := range row {
			sb.WriteString(c.String())
		}
		rows[len(cells)-1-y] = sb.String()
	}

	return Snapshot{
		Width:    s.field.Width(),
		Height:   s.field.Height(),
		Cells:    cells,
		Rows:     rows,
		Piece:    s.spawner.Current(),
		Next:     s.spawner.Next(),
		Preview:  s.spawner.Preview(),
		Stats:    s.score.Stats(),
		State:    s.state,
		GameOver: s.state == StateGameOver,
		Revision: s.revision,
	}
}

// Terminal reports whether the snapshot shows a finished game.
func (s Snapshot) Terminal() bool {
	return s.State == StateGameOver || s.State == StateQuit
}
