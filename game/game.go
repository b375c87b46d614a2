package game

import (
	"context"
	"io"
	"log"
	"slices"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"snake-term/game/entity"
	"snake-term/game/manager"
	"snake-term/game/types"
)

const DefaultTick = 50 * time.Millisecond

// Renderer draws a board snapshot, replacing the previous frame.
type Renderer interface {
	Render(snap types.Snapshot) error
}

// Keyboard reports the currently held keys. The first key is the command.
type Keyboard interface {
	HeldKeys() []types.Key
}

// Options configures a run. Zero values fall back to defaults.
type Options struct {
	Tick       time.Duration
	Rand       types.Rand
	FoodPolicy manager.FoodPolicy
	Logger     *log.Logger
}

type Game struct {
	grid       *entity.Grid
	snake      *entity.Snake
	food       *manager.FoodManager
	collisions *manager.CollisionManager
	state      *manager.StateManager

	renderer Renderer
	keyboard Keyboard
	logger   *log.Logger
	tick     time.Duration

	prevKeys []types.Key
	done     bool
	outcome  types.Outcome
}

// NewGame creates the grid, spawns the snake at a random cell and places the
// first food.
func NewGame(columns, rows int, renderer Renderer, keyboard Keyboard, opts Options) *Game {
	opts = withDefaults(opts)
	grid := entity.NewGrid(columns, rows)
	snake := entity.NewSnake(columns+1, rows+1, opts.Rand)
	return newGame(grid, snake, renderer, keyboard, opts)
}

func withDefaults(opts Options) Options {
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	return opts
}

func newGame(grid *entity.Grid, snake *entity.Snake, renderer Renderer, keyboard Keyboard, opts Options) *Game {
	opts = withDefaults(opts)
	g := &Game{
		grid:       grid,
		snake:      snake,
		food:       manager.NewFoodManager(opts.Rand, opts.FoodPolicy),
		collisions: manager.NewCollisionManager(grid),
		state:      manager.NewStateManager(),
		renderer:   renderer,
		keyboard:   keyboard,
		logger:     opts.Logger,
		tick:       opts.Tick,
	}

	g.grid.Mark(snake.Head(), types.Occupied)
	food, _ := g.food.PlaceFood(g.grid)
	g.grid.Sync(snake.Body)

	g.logf("start %dx%d head=%v food=%v policy=%v", grid.Columns(), grid.Rows(), snake.Head(), food, opts.FoodPolicy)
	return g
}

func (g *Game) logf(format string, args ...any) {
	g.logger.Printf("[%s] "+format, append([]any{g.state.Stats().UUID}, args...)...)
}

// Run renders the first frame and ticks until the run produces an Outcome
// or ctx is cancelled.
func (g *Game) Run(ctx context.Context) (types.Outcome, error) {
	if err := g.render(); err != nil {
		return types.Lose, err
	}

	ticker := time.NewTicker(g.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			g.logf("aborted: %v", ctx.Err())
			return types.Lose, ctx.Err()
		case <-ticker.C:
			done, err := g.Tick()
			if err != nil {
				return types.Lose, err
			}
			if done {
				return g.outcome, nil
			}
		}
	}
}

// Tick runs one poll-and-react cycle. It reports true once the run is over.
func (g *Game) Tick() (bool, error) {
	if g.done {
		return true, nil
	}
	g.state.Tick()

	// Ignored and rejected ticks keep the previous key list, so the same
	// list is retried on the next poll.
	keys := g.keyboard.HeldKeys()
	if len(keys) == 0 || slices.Equal(keys, g.prevKeys) {
		g.prevKeys = slices.Clone(keys)
		return false, nil
	}

	dir := keys[0].Dir
	if dir == types.NONE {
		return false, nil
	}

	prev := g.snake.Tail()
	if !g.snake.Step(dir) {
		g.state.Rejected()
		return false, nil
	}
	g.snake.Commit()
	g.prevKeys = slices.Clone(keys)

	head := g.snake.Head()
	ate := g.grid.At(head) == types.Food
	if ate {
		g.snake.Grow(prev)
		food, ok := g.food.PlaceFood(g.grid)
		g.logf("ate at %v, length %d, next food %v (%v)", head, g.snake.Len(), food, ok)
	} else {
		g.grid.Mark(prev, types.Empty)
	}
	g.grid.Sync(g.snake.Body)
	g.state.Moved(g.snake.Len(), ate)

	// Checked on the committed board, so the last frame shows the final move.
	collision := g.collisions.CheckCollision(g.snake.Body)
	if collision != manager.NoCollision || !g.collisions.CanMove(head) {
		g.finish(collision)
	}

	if err := g.render(); err != nil {
		return g.done, err
	}
	return g.done, nil
}

func (g *Game) finish(collision manager.CollisionType) {
	g.outcome = types.Lose
	if g.grid.IsFull() {
		g.outcome = types.Win
	}
	g.done = true
	g.state.Finish(g.outcome, collision)
	g.logf("over: %v (collision=%v, length=%d)", g.outcome, collision, g.snake.Len())
}

func (g *Game) render() error {
	err := g.renderer.Render(g.Snapshot())
	return errors.Wrap(err, "render")
}

// Snapshot copies the current board for rendering.
func (g *Game) Snapshot() types.Snapshot {
	st := g.state.Stats()
	return types.Snapshot{
		Cells:     g.grid.Cells(),
		Head:      g.snake.Head(),
		Length:    g.snake.Len(),
		FoodEaten: st.FoodEaten,
		Tick:      st.Ticks,
	}
}

// Done reports whether the run has ended and with which Outcome.
func (g *Game) Done() (types.Outcome, bool) {
	return g.outcome, g.done
}

func (g *Game) Stats() manager.RunStats {
	return g.state.Stats()
}

// Run plays one game on a columns x rows board and returns its Outcome.
func Run(ctx context.Context, columns, rows int, renderer Renderer, keyboard Keyboard, opts Options) (types.Outcome, error) {
	return NewGame(columns, rows, renderer, keyboard, opts).Run(ctx)
}
