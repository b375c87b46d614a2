package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"snake-term/config"
	"snake-term/game"
	"snake-term/game/types"
	"snake-term/ui"
	"snake-term/ui/window"
)

const (
	exitWin   = 0
	exitLose  = 1
	exitError = 2
)

// frontend is a renderer plus keyboard with a lifecycle.
type frontend interface {
	game.Renderer
	game.Keyboard
	Start(columns, rows int) error
	Stop() error
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}
	cfg, err := config.Load(args, os.Getenv, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitError
	}

	logger, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitError
	}
	defer closeLog()

	seed := uint64(cfg.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Printf("seed %d, ui %s, board %dx%d", seed, cfg.UI, cfg.Columns, cfg.Rows)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fe := newFrontend(cfg, cancel)
	if err := fe.Start(cfg.Columns, cfg.Rows); err != nil {
		fe.Stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitError
	}

	g := game.NewGame(cfg.Columns, cfg.Rows, fe, fe, game.Options{
		Tick:       cfg.Tick,
		Rand:       rand.New(rand.NewSource(seed)),
		FoodPolicy: cfg.Food,
		Logger:     logger,
	})
	outcome, err := g.Run(ctx)

	// Restore the screen before printing anything.
	if stopErr := fe.Stop(); stopErr != nil {
		logger.Printf("stop frontend: %v", stopErr)
	}

	stats := g.Stats()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println("Aborted.")
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		logger.Printf("run %s ended with error: %v", stats.UUID, err)
		return exitError
	}

	fmt.Printf("You %s! length %d, food %d, moves %d, time %s\n",
		outcome, stats.MaxLength, stats.FoodEaten, stats.Moves, stats.Duration().Round(time.Second))
	if outcome == types.Win {
		return exitWin
	}
	return exitLose
}

func newFrontend(cfg config.Config, cancel context.CancelFunc) frontend {
	keymap := ui.DefaultKeyMap()
	switch cfg.UI {
	case config.UITermbox:
		return ui.NewTermbox(keymap, cfg.Hold, cancel)
	case config.UIWindow:
		return window.New(keymap, cancel)
	default:
		return ui.NewTerminal(keymap, cfg.Hold, cancel)
	}
}

func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log")
	}
	return log.New(f, "snake-term ", log.LstdFlags|log.Lmicroseconds), func() { f.Close() }, nil
}
