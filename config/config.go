// Package config reads the command line, with defaults taken from the
// environment and an optional .env file.
package config

import (
	"flag"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"snake-term/game/manager"
)

const (
	UITerminal = "terminal"
	UITermbox  = "termbox"
	UIWindow   = "window"
)

var (
	ErrInvalidSize       = errors.New("columns and rows must be at least 1 and the board larger than 1x1")
	ErrUnknownUI         = errors.New("unknown ui")
	ErrUnknownFoodPolicy = errors.New("unknown food policy")
)

type Config struct {
	Columns int
	Rows    int
	Tick    time.Duration
	Seed    int64
	UI      string
	Food    manager.FoodPolicy
	Hold    time.Duration
	LogFile string
}

func Default() Config {
	return Config{
		Columns: 20,
		Rows:    12,
		Tick:    50 * time.Millisecond,
		UI:      UITerminal,
		Food:    manager.FoodAnywhere,
		Hold:    500 * time.Millisecond,
	}
}

// LoadEnv loads the given .env files into the process environment. Missing
// files are not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Wrapf(err, "load %s", f)
		}
	}
	return nil
}

// Load parses args on top of defaults read through getenv.
func Load(args []string, getenv func(string) string, output io.Writer) (Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(getenv); err != nil {
		return cfg, err
	}

	food := cfg.Food.String()
	fs := flag.NewFlagSet("snake-term", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.Columns, "columns", cfg.Columns, "playable columns")
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "playable rows")
	fs.DurationVar(&cfg.Tick, "tick", cfg.Tick, "poll interval")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = time based)")
	fs.StringVar(&cfg.UI, "ui", cfg.UI, "frontend: terminal, termbox or window")
	fs.StringVar(&food, "food", food, "food placement: anywhere or free")
	fs.DurationVar(&cfg.Hold, "hold", cfg.Hold, "how long a terminal key press counts as held")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "write a log to this file")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	policy, err := ParseFoodPolicy(food)
	if err != nil {
		return cfg, err
	}
	cfg.Food = policy

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(getenv func(string) string) error {
	var err error
	if v := getenv("SNAKE_COLUMNS"); v != "" {
		if c.Columns, err = strconv.Atoi(v); err != nil {
			return errors.Wrap(err, "SNAKE_COLUMNS")
		}
	}
	if v := getenv("SNAKE_ROWS"); v != "" {
		if c.Rows, err = strconv.Atoi(v); err != nil {
			return errors.Wrap(err, "SNAKE_ROWS")
		}
	}
	if v := getenv("SNAKE_TICK"); v != "" {
		if c.Tick, err = time.ParseDuration(v); err != nil {
			return errors.Wrap(err, "SNAKE_TICK")
		}
	}
	if v := getenv("SNAKE_SEED"); v != "" {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return errors.Wrap(err, "SNAKE_SEED")
		}
	}
	if v := getenv("SNAKE_UI"); v != "" {
		c.UI = v
	}
	if v := getenv("SNAKE_FOOD"); v != "" {
		if c.Food, err = ParseFoodPolicy(v); err != nil {
			return err
		}
	}
	if v := getenv("SNAKE_HOLD"); v != "" {
		if c.Hold, err = time.ParseDuration(v); err != nil {
			return errors.Wrap(err, "SNAKE_HOLD")
		}
	}
	if v := getenv("SNAKE_LOG"); v != "" {
		c.LogFile = v
	}
	return nil
}

func ParseFoodPolicy(s string) (manager.FoodPolicy, error) {
	switch s {
	case "anywhere":
		return manager.FoodAnywhere, nil
	case "free":
		return manager.FoodOnFreeCell, nil
	}
	return manager.FoodAnywhere, errors.Wrapf(ErrUnknownFoodPolicy, "%q", s)
}

func (c Config) Validate() error {
	// A 1x1 board leaves the snake no legal move.
	if c.Columns < 1 || c.Rows < 1 || c.Columns*c.Rows == 1 {
		return errors.Wrapf(ErrInvalidSize, "got %dx%d", c.Columns, c.Rows)
	}
	if c.Tick <= 0 {
		return errors.Errorf("tick must be positive, got %v", c.Tick)
	}
	switch c.UI {
	case UITerminal, UITermbox, UIWindow:
	default:
		return errors.Wrapf(ErrUnknownUI, "%q", c.UI)
	}
	return nil
}
