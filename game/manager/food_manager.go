package manager

import (
	"snake-term/game/entity"
	"snake-term/game/types"
)

// FoodPolicy decides which cells are candidates for new food.
type FoodPolicy int

const (
	// FoodAnywhere picks any interior cell, including ones under the snake.
	// Food placed under the body is erased by the next Sync.
	FoodAnywhere FoodPolicy = iota
	// FoodOnFreeCell picks only Empty cells.
	FoodOnFreeCell
)

func (p FoodPolicy) String() string {
	if p == FoodOnFreeCell {
		return "free"
	}
	return "anywhere"
}

type FoodManager struct {
	rng    types.Rand
	policy FoodPolicy
	placed int
}

func NewFoodManager(rng types.Rand, policy FoodPolicy) *FoodManager {
	return &FoodManager{
		rng:    rng,
		policy: policy,
	}
}

// PlaceFood puts one food cell on the grid and returns where it went.
// It reports false only under FoodOnFreeCell when no Empty cell is left.
func (fm *FoodManager) PlaceFood(grid *entity.Grid) (types.Point, bool) {
	var food types.Point

	switch fm.policy {
	case FoodOnFreeCell:
		free := grid.FreeCells()
		if len(free) == 0 {
			return types.Point{}, false
		}
		food = free[fm.rng.Intn(len(free))]
	default:
		food = types.Point{
			X: 1 + fm.rng.Intn(grid.Columns()),
			Y: 1 + fm.rng.Intn(grid.Rows()),
		}
	}

	grid.PlaceFood(food)
	fm.placed++
	return food, true
}

// Placed returns how many food cells have been placed so far.
func (fm *FoodManager) Placed() int {
	return fm.placed
}
