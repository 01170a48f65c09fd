package tetris

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/vovakirdan/termtris/internal/core"
)

// Spawner draws pieces with one piece of lookahead. The lookahead never
// repeats the piece it follows.
type Spawner struct {
	rng     *rand.Rand
	current PieceID
	next    PieceID
	hasNext bool
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// SpawnPivot is the pivot of a new piece: horizontal center, top row.
func SpawnPivot(width, height int) core.Point {
	return core.Pt(width/2-1, height-1)
}

// Spawn promotes the lookahead to the current piece, draws a new lookahead
// and places the current piece on the field. When any target cell is taken
// the field is left untouched and ErrGameOver is returned.
func (s *Spawner) Spawn(field *Playfield) (*ActiveFigure, error) {
	if s.hasNext {
		s.current = s.next
	} else {
		s.current = PieceID(s.rng.Intn(PieceCount))
	}
	s.next = s.drawOther(s.current)
	s.hasNext = true

	fig := newFigure(s.current, SpawnPivot(field.Width(), field.Height()))
	for _, c := range fig.cells {
		if !field.InBounds(c.X, c.Y) || field.Get(c.X, c.Y) != CellEmpty {
			return nil, errors.WithMessagef(ErrGameOver, "no room for %s at (%d, %d)", s.current, c.X, c.Y)
		}
	}
	for _, c := range fig.cells {
		field.Set(c.X, c.Y, CellActive)
	}
	return fig, nil
}

func (s *Spawner) drawOther(current PieceID) PieceID {
	for {
		id := PieceID(s.rng.Intn(PieceCount))
		if id != current {
			return id
		}
	}
}

// Current returns the most recently spawned piece.
func (s *Spawner) Current() PieceID { return s.current }

// Next returns the lookahead piece.
func (s *Spawner) Next() PieceID { return s.next }

// Preview returns the lookahead's rotation-0 cells shifted so that the
// lowest and leftmost cells sit at 0. The result fits a 4x2 box.
func (s *Spawner) Preview() []core.Point {
	if !s.hasNext {
		return nil
	}
	offsets := ShapeOf(s.next).Offsets(0)
	minX, minY := offsets[0].X, offsets[0].Y
	for _, o := range offsets {
		minX = core.Min(minX, o.X)
		minY = core.Min(minY, o.Y)
	}
	cells := make([]core.Point, 0, len(offsets))
	for _, o := range offsets {
		cells = append(cells, core.Pt(o.X-minX, o.Y-minY))
	}
	return cells
}
