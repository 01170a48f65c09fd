package tetris

import "testing"

// fillRow fixes every cell of row y except the listed columns.
func fillRow(p *Playfield, y int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < p.Width(); x++ {
		if !skip[x] {
			p.Set(x, y, CellFixed)
		}
	}
}

func TestRowIsFull(t *testing.T) {
	p := NewPlayfield(10, 20)
	if p.RowIsFull(0) {
		t.Error("empty row reported full")
	}

	fillRow(p, 0, 9)
	if p.RowIsFull(0) {
		t.Error("row with one gap reported full")
	}

	p.Set(9, 0, CellActive)
	if !p.RowIsFull(0) {
		t.Error("row with no empty cells should be full")
	}
}

func TestClearAndCompactSingleRow(t *testing.T) {
	p := NewPlayfield(10, 20)
	fillRow(p, 0)
	p.Set(2, 1, CellFixed)
	p.Set(7, 3, CellFixed)

	p.ClearAndCompact(0)

	if got := p.Count(CellFixed); got != 2 {
		t.Fatalf("Count(Fixed) = %d, expected 2", got)
	}
	if p.Get(2, 0) != CellFixed || p.Get(7, 2) != CellFixed {
		t.Error("rows above the cleared line should move down by one")
	}
	for x := 0; x < p.Width(); x++ {
		if p.Get(x, p.Height()-1) != CellEmpty {
			t.Errorf("top row should be empty after compaction, x=%d", x)
		}
	}
}

func TestCheckFullLines(t *testing.T) {
	tests := []struct {
		name     string
		full     []int
		expected int
	}{
		{"no full rows", nil, 0},
		{"bottom row", []int{0}, 1},
		{"adjacent rows rescan same index", []int{0, 1}, 2},
		{"separated rows", []int{1, 4}, 2},
		{"four rows", []int{0, 1, 2, 3}, 4},
		{"top row", []int{19}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayfield(10, 20)
			for _, y := range tc.full {
				fillRow(p, y)
			}
			// A marker above everything to check compaction distance.
			p.Set(0, 10, CellFixed)
			if tc.full != nil && tc.full[len(tc.full)-1] >= 10 {
				p.Set(0, 10, CellEmpty)
			}
			markerBefore := p.Count(CellFixed) - len(tc.full)*p.Width()

			got := p.CheckFullLines()
			if got != tc.expected {
				t.Errorf("CheckFullLines() = %d, expected %d", got, tc.expected)
			}
			if p.Count(CellFixed) != markerBefore {
				t.Errorf("Count(Fixed) = %d, expected %d", p.Count(CellFixed), markerBefore)
			}
			if markerBefore == 1 {
				below := 0
				for _, y := range tc.full {
					if y < 10 {
						below++
					}
				}
				if p.Get(0, 10-below) != CellFixed {
					t.Errorf("marker should have moved down %d rows", below)
				}
			}
		})
	}
}

func TestPlayfieldOutOfBoundsPanics(t *testing.T) {
	p := NewPlayfield(4, 4)
	defer func() {
		if recover() == nil {
			t.Error("Get outside the field should panic")
		}
	}()
	p.Get(4, 0)
}

func TestPlayfieldRowsIsCopy(t *testing.T) {
	p := NewPlayfield(4, 4)
	rows := p.Rows()
	rows[0][0] = CellFixed
	if p.Get(0, 0) != CellEmpty {
		t.Error("Rows() must not alias the grid")
	}
}
