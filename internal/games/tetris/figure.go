package tetris

import (
	"github.com/pkg/errors"

	"github.com/vovakirdan/termtris/internal/core"
)

// ActiveFigure is the falling piece. Its absolute cells are always derived
// from the pivot and the offsets of the current rotation.
type ActiveFigure struct {
	piece    PieceID
	rotation int
	pivot    core.Point
	cells    [4]core.Point
}

func newFigure(piece PieceID, pivot core.Point) *ActiveFigure {
	return &ActiveFigure{
		piece: piece,
		pivot: pivot,
		cells: cellsAt(piece, 0, pivot),
	}
}

func cellsAt(piece PieceID, rotation int, pivot core.Point) [4]core.Point {
	var cells [4]core.Point
	for i, off := range ShapeOf(piece).Offsets(rotation) {
		cells[i] = pivot.Add(off)
	}
	return cells
}

// Piece returns the catalog id of the figure.
func (f *ActiveFigure) Piece() PieceID { return f.piece }

// Rotation returns the current rotation index.
func (f *ActiveFigure) Rotation() int { return f.rotation }

// Pivot returns the absolute pivot position.
func (f *ActiveFigure) Pivot() core.Point { return f.pivot }

// Cells returns the absolute positions of the four cells.
func (f *ActiveFigure) Cells() [4]core.Point { return f.cells }

// fits reports whether every cell is in bounds and not fixed. Cells of the
// figure itself are Active and therefore do not block.
func fits(field *Playfield, cells [4]core.Point) bool {
	for _, c := range cells {
		if !field.InBounds(c.X, c.Y) || field.Get(c.X, c.Y) == CellFixed {
			return false
		}
	}
	return true
}

// moveTo clears the current cells and marks the new ones.
func (f *ActiveFigure) moveTo(field *Playfield, cells [4]core.Point) {
	for _, c := range f.cells {
		field.Set(c.X, c.Y, CellEmpty)
	}
	for _, c := range cells {
		field.Set(c.X, c.Y, CellActive)
	}
	f.cells = cells
}

// Translate shifts the figure by (dx, dy).
// It returns ErrCantMove and leaves the grid untouched when blocked.
func (f *ActiveFigure) Translate(field *Playfield, dx, dy int) error {
	delta := core.Pt(dx, dy)
	var next [4]core.Point
	for i, c := range f.cells {
		next[i] = c.Add(delta)
	}
	if !fits(field, next) {
		return errors.WithMessagef(ErrCantMove, "translate %s by (%d, %d)", f.piece, dx, dy)
	}
	f.moveTo(field, next)
	f.pivot = f.pivot.Add(delta)
	return nil
}

// Rotate advances to the next rotation state around the unchanged pivot.
// There is no wall kick: a blocked rotation returns ErrCantMove.
func (f *ActiveFigure) Rotate(field *Playfield) error {
	shape := ShapeOf(f.piece)
	if shape.MaxRotation() == 0 {
		return errors.WithMessagef(ErrCantMove, "%s has a single orientation", f.piece)
	}
	rotation := (f.rotation + 1) % (shape.MaxRotation() + 1)
	next := cellsAt(f.piece, rotation, f.pivot)
	if !fits(field, next) {
		return errors.WithMessagef(ErrCantMove, "rotate %s to state %d", f.piece, rotation)
	}
	f.moveTo(field, next)
	f.rotation = rotation
	return nil
}

// Lock turns the figure's cells into fixed cells. Line clearing is left to the caller.
func (f *ActiveFigure) Lock(field *Playfield) {
	for _, c := range f.cells {
		field.Set(c.X, c.Y, CellFixed)
	}
}
