package entity

import "snake-term/game/types"

// Snake is the player's body, head first. It enforces the playfield bounds
// it was created with but knows nothing about grid occupancy.
type Snake struct {
	Body []types.Point

	pos  types.Point
	maxX int
	maxY int
}

// NewSnake spawns a single-segment snake at a random cell with
// 1 <= x < maxX and 1 <= y < maxY.
func NewSnake(maxX, maxY int, rng types.Rand) *Snake {
	start := types.Point{
		X: 1 + rng.Intn(maxX-1),
		Y: 1 + rng.Intn(maxY-1),
	}
	return NewSnakeAt(maxX, maxY, start)
}

// NewSnakeAt builds a snake from an explicit body, head first.
func NewSnakeAt(maxX, maxY int, body ...types.Point) *Snake {
	return &Snake{
		Body: append([]types.Point(nil), body...),
		pos:  body[0],
		maxX: maxX,
		maxY: maxY,
	}
}

// CanUp reports whether y is a legal row for the head.
func (s *Snake) CanUp(y int) bool { return y > 0 }

// CanDown reports whether y is a legal row for the head.
func (s *Snake) CanDown(y int) bool { return y < s.maxY }

// CanLeft reports whether x is a legal column for the head.
func (s *Snake) CanLeft(x int) bool { return x > 0 }

// CanRight reports whether x is a legal column for the head.
func (s *Snake) CanRight(x int) bool { return x < s.maxX }

// Step moves the head coordinate one cell in dir if the prospective cell
// stays inside the bounds. The body is untouched until Commit.
func (s *Snake) Step(dir types.Direction) bool {
	next := s.pos.Add(dir.ToPoint())

	var ok bool
	switch dir {
	case types.UP:
		ok = s.CanUp(next.Y)
	case types.DOWN:
		ok = s.CanDown(next.Y)
	case types.LEFT:
		ok = s.CanLeft(next.X)
	case types.RIGHT:
		ok = s.CanRight(next.X)
	}
	if !ok {
		return false
	}

	s.pos = next
	return true
}

// Commit pushes the stepped head onto the body and drops the old tail.
func (s *Snake) Commit() {
	s.Body = append([]types.Point{s.pos}, s.Body[:len(s.Body)-1]...)
}

// Grow re-appends the tail vacated by the last Commit.
func (s *Snake) Grow(prev types.Point) {
	s.Body = append(s.Body, prev)
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

func (s *Snake) Tail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}
