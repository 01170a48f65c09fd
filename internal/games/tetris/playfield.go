package tetris

import "fmt"

// Cell is the content of one playfield position.
type Cell uint8

const (
	CellEmpty  Cell = iota
	CellActive      // occupied by the falling piece
	CellFixed       // occupied by a locked piece
)

// String returns a one-character picture of the cell.
func (c Cell) String() string {
	switch c {
	case CellActive:
		return "@"
	case CellFixed:
		return "%"
	default:
		return "."
	}
}

// Playfield is the grid of cells. The origin is the bottom-left corner and
// y grows upward. Coordinates passed to Get and Set must be in bounds.
type Playfield struct {
	width  int
	height int
	cells  []Cell // row-major, row 0 at the bottom
}

// NewPlayfield creates an empty field of the given size.
func NewPlayfield(width, height int) *Playfield {
	return &Playfield{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (p *Playfield) Width() int { return p.width }

// Height returns the number of rows.
func (p *Playfield) Height() int { return p.height }

// InBounds reports whether (x, y) lies inside the field.
func (p *Playfield) InBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

func (p *Playfield) index(x, y int) int {
	if !p.InBounds(x, y) {
		panic(fmt.Sprintf("tetris: cell (%d, %d) outside %dx%d field", x, y, p.width, p.height))
	}
	return y*p.width + x
}

// Get returns the cell at (x, y).
func (p *Playfield) Get(x, y int) Cell {
	return p.cells[p.index(x, y)]
}

// Set stores c at (x, y).
func (p *Playfield) Set(x, y int, c Cell) {
	p.cells[p.index(x, y)] = c
}

// RowIsFull reports whether every cell in row y is occupied.
func (p *Playfield) RowIsFull(y int) bool {
	row := p.cells[p.index(0, y) : p.index(0, y)+p.width]
	for _, c := range row {
		if c == CellEmpty {
			return false
		}
	}
	return true
}

// ClearAndCompact removes row y, shifts every row above it down by one and
// empties the top row.
func (p *Playfield) ClearAndCompact(y int) {
	start := p.index(0, y)
	copy(p.cells[start:], p.cells[start+p.width:])
	top := p.cells[(p.height-1)*p.width:]
	for i := range top {
		top[i] = CellEmpty
	}
}

// CheckFullLines clears every full row, bottom to top, and returns how many
// were removed. After a compaction the same row index is examined again
// because the row above has moved into it.
func (p *Playfield) CheckFullLines() int {
	cleared := 0
	for y := 0; y < p.height; {
		if p.RowIsFull(y) {
			p.ClearAndCompact(y)
			cleared++
			continue
		}
		y++
	}
	return cleared
}

// Count returns how many cells hold c.
func (p *Playfield) Count(c Cell) int {
	n := 0
	for _, v := range p.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Rows returns a copy of the grid indexed as [y][x].
func (p *Playfield) Rows() [][]Cell {
	rows := make([][]Cell, p.height)
	for y := range rows {
		rows[y] = append([]Cell(nil), p.cells[y*p.width:(y+1)*p.width]...)
	}
	return rows
}
