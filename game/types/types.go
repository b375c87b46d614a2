package types

// Point is a cell coordinate. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// Add returns p moved by the offset d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Cell is the state of a single grid cell.
type Cell int

const (
	Empty Cell = iota
	Border
	Food
	Occupied
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Border:
		return "border"
	case Food:
		return "food"
	case Occupied:
		return "occupied"
	default:
		return "unknown"
	}
}

// Direction is a cardinal direction decoded from player input.
type Direction int

const (
	NONE  Direction = iota // 0
	UP                     // 1
	RIGHT                  // 2
	DOWN                   // 3
	LEFT                   // 4
)

// ToPoint converts a Direction into a movement offset.
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}

// Directions lists the four movement directions in clockwise order.
var Directions = [4]Direction{UP, RIGHT, DOWN, LEFT}

// Key is one held key as reported by an input backend. Name is the raw
// identifier ("w", "up", "x") and Dir the decoded direction, NONE when the
// key does not steer.
type Key struct {
	Name string
	Dir  Direction
}

// Outcome is the terminal result of a run.
type Outcome int

const (
	Lose Outcome = iota
	Win
)

func (o Outcome) String() string {
	if o == Win {
		return "win"
	}
	return "lose"
}

// Snapshot is a copy of the board handed to renderers.
type Snapshot struct {
	Cells     [][]Cell // indexed [y][x], border included
	Head      Point
	Length    int
	FoodEaten int
	Tick      int
}

// Rand is the random source used for spawning and food placement.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
}
