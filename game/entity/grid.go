package entity

import "snake-term/game/types"

// Grid is the bordered playfield. Requested columns x rows are stored as a
// (columns+2) x (rows+2) matrix whose outer ring is Border.
type Grid struct {
	cells [][]types.Cell // [y][x]
	maxX  int
	maxY  int
}

// NewGrid builds a grid with a playable area of width x height cells.
func NewGrid(width, height int) *Grid {
	columns := width + 2
	rows := height + 2

	g := &Grid{
		cells: make([][]types.Cell, rows),
		maxX:  columns - 1,
		maxY:  rows - 1,
	}
	for y := range g.cells {
		g.cells[y] = make([]types.Cell, columns)
		for x := range g.cells[y] {
			if g.onBorder(x, y) {
				g.cells[y][x] = types.Border
			}
		}
	}
	return g
}

// Size returns the last valid indices (maxX, maxY), which are border cells.
func (g *Grid) Size() (int, int) {
	return g.maxX, g.maxY
}

// Columns returns the number of playable columns.
func (g *Grid) Columns() int { return g.maxX - 1 }

// Rows returns the number of playable rows.
func (g *Grid) Rows() int { return g.maxY - 1 }

func (g *Grid) onBorder(x, y int) bool {
	return x == 0 || y == 0 || x == g.maxX || y == g.maxY
}

func (g *Grid) inBounds(p types.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= g.maxX && p.Y <= g.maxY
}

// IsInterior reports whether p lies in the playable area.
func (g *Grid) IsInterior(p types.Point) bool {
	return g.inBounds(p) && !g.onBorder(p.X, p.Y)
}

// At returns the cell at p. Points outside the matrix read as Border.
func (g *Grid) At(p types.Point) types.Cell {
	if !g.inBounds(p) {
		return types.Border
	}
	return g.cells[p.Y][p.X]
}

// Mark sets the state of an interior cell. The border ring never changes.
func (g *Grid) Mark(p types.Point, c types.Cell) {
	if !g.IsInterior(p) || c == types.Border {
		return
	}
	g.cells[p.Y][p.X] = c
}

// PlaceFood marks p as Food, overwriting whatever was there.
func (g *Grid) PlaceFood(p types.Point) {
	g.Mark(p, types.Food)
}

// Sync marks every body segment Occupied.
func (g *Grid) Sync(body []types.Point) {
	for _, p := range body {
		g.Mark(p, types.Occupied)
	}
}

// IsMoveLegal reports whether a head may enter p: Food and Empty are legal,
// Border and Occupied are not.
func (g *Grid) IsMoveLegal(p types.Point) bool {
	c := g.At(p)
	return c != types.Border && c != types.Occupied
}

// IsFull reports whether no interior cell is Empty or Food.
func (g *Grid) IsFull() bool {
	for y := 1; y < g.maxY; y++ {
		for x := 1; x < g.maxX; x++ {
			if c := g.cells[y][x]; c == types.Empty || c == types.Food {
				return false
			}
		}
	}
	return true
}

// FreeCells returns every interior Empty cell in row-major order.
func (g *Grid) FreeCells() []types.Point {
	free := make([]types.Point, 0)
	for y := 1; y < g.maxY; y++ {
		for x := 1; x < g.maxX; x++ {
			if g.cells[y][x] == types.Empty {
				free = append(free, types.Point{X: x, Y: y})
			}
		}
	}
	return free
}

// Food returns the position of the food cell, if any.
func (g *Grid) Food() (types.Point, bool) {
	for y := 1; y < g.maxY; y++ {
		for x := 1; x < g.maxX; x++ {
			if g.cells[y][x] == types.Food {
				return types.Point{X: x, Y: y}, true
			}
		}
	}
	return types.Point{}, false
}

// Cells returns a copy of the matrix.
func (g *Grid) Cells() [][]types.Cell {
	out := make([][]types.Cell, len(g.cells))
	for y, row := range g.cells {
		out[y] = append([]types.Cell(nil), row...)
	}
	return out
}
