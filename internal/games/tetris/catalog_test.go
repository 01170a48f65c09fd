package tetris

import (
	"testing"

	"github.com/vovakirdan/termtris/internal/core"
)

func TestCatalogShapes(t *testing.T) {
	expectedRotations := map[PieceID]int{
		PieceO: 1, PieceT: 4, PieceZ: 2, PieceS: 2, PieceJ: 4, PieceL: 4, PieceI: 2,
	}

	for id := PieceID(0); id < PieceCount; id++ {
		t.Run(id.String(), func(t *testing.T) {
			shape := ShapeOf(id)
			if got := shape.MaxRotation() + 1; got != expectedRotations[id] {
				t.Errorf("rotation states = %d, expected %d", got, expectedRotations[id])
			}

			for r := 0; r <= shape.MaxRotation(); r++ {
				offsets := shape.Offsets(r)
				if offsets[0] != core.Pt(0, 0) {
					t.Errorf("rotation %d: first offset = %v, expected the pivot", r, offsets[0])
				}
				seen := make(map[core.Point]bool)
				for _, o := range offsets {
					if seen[o] {
						t.Errorf("rotation %d: duplicate offset %v", r, o)
					}
					seen[o] = true
				}
			}

			for _, o := range shape.Offsets(0) {
				if o.Y > 0 {
					t.Errorf("rotation 0 reaches above the pivot: %v", o)
				}
			}
		})
	}
}

func TestCatalogRotationsAreClockwiseTurns(t *testing.T) {
	for id := PieceID(0); id < PieceCount; id++ {
		shape := ShapeOf(id)
		for r := 0; r < shape.MaxRotation(); r++ {
			cur, next := shape.Offsets(r), shape.Offsets(r+1)
			for i, o := range cur {
				if turned := core.Pt(o.Y, -o.X); turned != next[i] {
					t.Errorf("%s rotation %d offset %d: turned %v, expected %v", id, r, i, turned, next[i])
				}
			}
		}
	}
}

func TestPieceIDString(t *testing.T) {
	if PieceI.String() != "I" {
		t.Errorf("PieceI.String() = %q, expected I", PieceI.String())
	}
	if PieceID(-1).String() != "?" {
		t.Errorf("PieceID(-1).String() = %q, expected ?", PieceID(-1).String())
	}
}
