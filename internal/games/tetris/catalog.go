package tetris

import "github.com/vovakirdan/termtris/internal/core"

// PieceID indexes the shape catalog.
type PieceID int

const (
	PieceO PieceID = iota
	PieceT
	PieceZ
	PieceS
	PieceJ
	PieceL
	PieceI

	// PieceCount is the number of shapes in the catalog.
	PieceCount = 7
)

// String returns the conventional letter of the piece.
func (id PieceID) String() string {
	if id < 0 || int(id) >= PieceCount {
		return "?"
	}
	return catalog[id].name
}

// MarshalText encodes the piece by its letter.
func (id PieceID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// Shape is one catalog entry. Every rotation lists four offsets relative to
// the pivot, and the first offset is always the pivot itself.
type Shape struct {
	name      string
	color     core.Color
	rotations [][4]core.Point
}

// MaxRotation is the highest rotation index; 0 means the shape never rotates.
func (s Shape) MaxRotation() int { return len(s.rotations) - 1 }

// Offsets returns the pivot-relative cells for rotation r.
func (s Shape) Offsets(r int) [4]core.Point { return s.rotations[r] }

// Color is the display color of the shape.
func (s Shape) Color() core.Color { return s.color }

// ShapeOf returns the catalog entry for id.
func ShapeOf(id PieceID) Shape { return catalog[id] }

// Rotation state 0 never reaches above the pivot so every piece fits when its
// pivot sits on the top row. Each following state is the previous one turned
// clockwise around the pivot: (x, y) -> (y, -x).
var catalog = [PieceCount]Shape{
	PieceO: {name: "O", color: core.ColorYellow, rotations: [][4]core.Point{
		{{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: -1}},
	}},
	PieceT: {name: "T", color: core.ColorMagenta, rotations: [][4]core.Point{
		{{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}},
		{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}, {X: -1, Y: 0}},
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}},
		{{X: 0, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1}, {X: 1, Y: 0}},
	}},
	PieceZ: {name: "Z", color: core.ColorRed, rotations: [][4]core.Point{
		{{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: -1}, {X: 1, Y: -1}},
		{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1}},
	}},
	PieceS: {name: "S", color: core.ColorGreen, rotations: [][4]core.Point{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}},
		{{X: 0, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: 0}},
	}},
	PieceJ: {name: "J", color: core.ColorBlue, rotations: [][4]core.Point{
		{{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: -1}},
		{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}, {X: -1, Y: -1}},
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: 1}},
		{{X: 0, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	}},
	PieceL: {name: "L", color: core.ColorOrange, rotations: [][4]core.Point{
		{{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: -1}},
		{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}, {X: -1, Y: 1}},
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: 0}, {X: 1, Y: 1}},
		{{X: 0, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1}, {X: 1, Y: -1}},
	}},
	PieceI: {name: "I", color: core.ColorCyan, rotations: [][4]core.Point{
		{{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
		{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}, {X: 0, Y: -2}},
	}},
}
