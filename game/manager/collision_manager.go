package manager

import (
	"snake-term/game/entity"
	"snake-term/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid *entity.Grid
}

func NewCollisionManager(grid *entity.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision inspects a committed body: a head on the border ring is a
// wall collision, a head equal to any later segment is a self collision.
func (cm *CollisionManager) CheckCollision(body []types.Point) CollisionType {
	if len(body) == 0 {
		return NoCollision
	}
	head := body[0]

	if cm.grid.At(head) == types.Border {
		return WallCollision
	}

	for _, part := range body[1:] {
		if part == head {
			return SelfCollision
		}
	}
	return NoCollision
}

// CanMove reports whether any neighbour of head is a legal destination.
func (cm *CollisionManager) CanMove(head types.Point) bool {
	for _, d := range types.Directions {
		if cm.grid.IsMoveLegal(head.Add(d.ToPoint())) {
			return true
		}
	}
	return false
}
