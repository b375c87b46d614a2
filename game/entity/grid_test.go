package entity

import (
	"testing"

	"snake-term/game/types"
)

func TestNewGridBorderAndInterior(t *testing.T) {
	sizes := [][2]int{{1, 1}, {3, 3}, {5, 2}, {10, 7}}
	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		g := NewGrid(w, h)
		cells := g.Cells()
		if len(cells) != h+2 {
			t.Fatalf("%dx%d: expected %d rows, got %d", w, h, h+2, len(cells))
		}
		for y, row := range cells {
			if len(row) != w+2 {
				t.Fatalf("%dx%d: row %d has %d columns, want %d", w, h, y, len(row), w+2)
			}
			for x, c := range row {
				edge := x == 0 || y == 0 || x == w+1 || y == h+1
				if edge && c != types.Border {
					t.Fatalf("%dx%d: (%d,%d) = %v, want border", w, h, x, y, c)
				}
				if !edge && c != types.Empty {
					t.Fatalf("%dx%d: (%d,%d) = %v, want empty", w, h, x, y, c)
				}
			}
		}
		maxX, maxY := g.Size()
		if maxX != w+1 || maxY != h+1 {
			t.Fatalf("%dx%d: Size() = (%d,%d), want (%d,%d)", w, h, maxX, maxY, w+1, h+1)
		}
		if g.Columns() != w || g.Rows() != h {
			t.Fatalf("%dx%d: playable size reported as %dx%d", w, h, g.Columns(), g.Rows())
		}
	}
}

func TestMarkNeverTouchesBorder(t *testing.T) {
	g := NewGrid(3, 3)
	g.Mark(types.Point{X: 0, Y: 2}, types.Empty)
	g.Mark(types.Point{X: 4, Y: 4}, types.Occupied)
	g.Mark(types.Point{X: 9, Y: 9}, types.Food)
	g.Mark(types.Point{X: 2, Y: 2}, types.Border)

	if g.At(types.Point{X: 0, Y: 2}) != types.Border || g.At(types.Point{X: 4, Y: 4}) != types.Border {
		t.Fatalf("border ring was modified")
	}
	if g.At(types.Point{X: 2, Y: 2}) != types.Empty {
		t.Fatalf("interior cell turned into border")
	}
	if g.At(types.Point{X: 9, Y: 9}) != types.Border {
		t.Fatalf("out of range point should read as border")
	}
}

func TestPlaceFoodOverwrites(t *testing.T) {
	g := NewGrid(3, 3)
	p := types.Point{X: 2, Y: 2}
	g.Mark(p, types.Occupied)
	g.PlaceFood(p)
	if g.At(p) != types.Food {
		t.Fatalf("expected food at %v, got %v", p, g.At(p))
	}
	if got, ok := g.Food(); !ok || got != p {
		t.Fatalf("Food() = %v,%v", got, ok)
	}
	g.Sync([]types.Point{p})
	if _, ok := g.Food(); ok {
		t.Fatalf("food under the body should be erased by Sync")
	}
}

func TestIsMoveLegal(t *testing.T) {
	g := NewGrid(3, 3)
	g.Mark(types.Point{X: 1, Y: 1}, types.Occupied)
	g.PlaceFood(types.Point{X: 2, Y: 1})

	cases := []struct {
		p    types.Point
		want bool
	}{
		{types.Point{X: 0, Y: 1}, false},
		{types.Point{X: 1, Y: 1}, false},
		{types.Point{X: 2, Y: 1}, true},
		{types.Point{X: 3, Y: 3}, true},
		{types.Point{X: 4, Y: 3}, false},
	}
	for _, tc := range cases {
		if got := g.IsMoveLegal(tc.p); got != tc.want {
			t.Fatalf("IsMoveLegal(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestIsFull(t *testing.T) {
	g := NewGrid(2, 2)
	body := []types.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}}
	g.Sync(body)
	if g.IsFull() {
		t.Fatalf("grid with one empty cell reported full")
	}
	g.PlaceFood(types.Point{X: 1, Y: 2})
	if g.IsFull() {
		t.Fatalf("grid with a food cell reported full")
	}
	g.Sync(append(body, types.Point{X: 1, Y: 2}))
	if !g.IsFull() {
		t.Fatalf("expected full grid")
	}
	if free := g.FreeCells(); len(free) != 0 {
		t.Fatalf("expected no free cells, got %v", free)
	}
}

func TestFreeCellsRowMajor(t *testing.T) {
	g := NewGrid(2, 2)
	g.Mark(types.Point{X: 2, Y: 1}, types.Occupied)
	free := g.FreeCells()
	want := []types.Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	if len(free) != len(want) {
		t.Fatalf("FreeCells() = %v, want %v", free, want)
	}
	for i := range want {
		if free[i] != want[i] {
			t.Fatalf("FreeCells()[%d] = %v, want %v", i, free[i], want[i])
		}
	}
}

func TestCellsIsACopy(t *testing.T) {
	g := NewGrid(2, 2)
	cells := g.Cells()
	cells[1][1] = types.Food
	if g.At(types.Point{X: 1, Y: 1}) != types.Empty {
		t.Fatalf("mutating Cells() leaked into the grid")
	}
}
