package manager

import (
	"time"

	"github.com/google/uuid"

	"snake-term/game/types"
)

// RunStats summarises one run. Nothing is persisted.
type RunStats struct {
	UUID      string
	StartTime time.Time
	EndTime   time.Time
	Ticks     int
	Moves     int
	Rejected  int
	FoodEaten int
	MaxLength int
	Collision CollisionType
	Outcome   types.Outcome
	Finished  bool
}

// Duration returns how long the run lasted, or has lasted so far.
func (s RunStats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

// Score is the number of segments gained.
func (s RunStats) Score() int {
	return s.FoodEaten
}

type StateManager struct {
	stats RunStats
	now   func() time.Time
}

func NewStateManager() *StateManager {
	sm := &StateManager{now: time.Now}
	sm.stats = RunStats{
		UUID:      uuid.New().String(),
		StartTime: sm.now(),
		MaxLength: 1,
	}
	return sm
}

func (sm *StateManager) Tick() {
	sm.stats.Ticks++
}

func (sm *StateManager) Rejected() {
	sm.stats.Rejected++
}

// Moved records a committed move and the resulting body length.
func (sm *StateManager) Moved(length int, ate bool) {
	sm.stats.Moves++
	if ate {
		sm.stats.FoodEaten++
	}
	if length > sm.stats.MaxLength {
		sm.stats.MaxLength = length
	}
}

// Finish records the terminal result. Only the first call has effect.
func (sm *StateManager) Finish(outcome types.Outcome, collision CollisionType) {
	if sm.stats.Finished {
		return
	}
	sm.stats.Finished = true
	sm.stats.Outcome = outcome
	sm.stats.Collision = collision
	sm.stats.EndTime = sm.now()
}

func (sm *StateManager) Stats() RunStats {
	return sm.stats
}
