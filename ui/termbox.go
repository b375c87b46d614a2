package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"

	"snake-term/game/types"
)

// Termbox is the termbox-go backend: cell-based drawing and an event
// goroutine feeding the key tracker.
type Termbox struct {
	keymap  KeyMap
	tracker *KeyTracker
	cancel  context.CancelFunc
	started bool
}

func NewTermbox(keymap KeyMap, hold time.Duration, cancel context.CancelFunc) *Termbox {
	return &Termbox{
		keymap:  keymap,
		tracker: NewKeyTracker(keymap, hold),
		cancel:  cancel,
	}
}

func (tb *Termbox) Start(columns, rows int) error {
	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "termbox init")
	}
	tb.started = true
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()

	if w, h := termbox.Size(); w < 2*(columns+2)-1 || h < rows+4 {
		tb.Stop()
		return errors.Errorf("terminal is %dx%d, board needs %dx%d", w, h, 2*(columns+2)-1, rows+4)
	}

	go tb.pollLoop()
	return nil
}

func (tb *Termbox) Stop() error {
	if !tb.started {
		return nil
	}
	tb.started = false
	termbox.Interrupt()
	termbox.Close()
	return nil
}

func (tb *Termbox) pollLoop() {
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventInterrupt, termbox.EventError:
			return
		case termbox.EventKey:
			name := termboxKeyName(ev)
			if name == "" {
				continue
			}
			if tb.keymap.IsQuit(name) {
				if tb.cancel != nil {
					tb.cancel()
				}
				continue
			}
			tb.tracker.Press(name)
		}
	}
}

func termboxKeyName(ev termbox.Event) string {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return "up"
	case termbox.KeyArrowDown:
		return "down"
	case termbox.KeyArrowLeft:
		return "left"
	case termbox.KeyArrowRight:
		return "right"
	case termbox.KeyEsc:
		return "esc"
	case termbox.KeyCtrlC:
		return "ctrl+c"
	}
	if ev.Ch != 0 {
		return decodeRune(ev.Ch)
	}
	return ""
}

func decodeRune(r rune) string {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return string(r)
}

func (tb *Termbox) HeldKeys() []types.Key {
	return tb.tracker.HeldKeys()
}

func termboxColor(c types.Cell, head bool) termbox.Attribute {
	switch c {
	case types.Border:
		return termbox.ColorWhite | termbox.AttrBold
	case types.Food:
		return termbox.ColorRed | termbox.AttrBold
	case types.Occupied:
		if head {
			return termbox.ColorYellow | termbox.AttrBold
		}
		return termbox.ColorGreen
	default:
		return termbox.ColorDefault
	}
}

func (tb *Termbox) Render(snap types.Snapshot) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return errors.Wrap(err, "termbox clear")
	}
	for y, row := range snap.Cells {
		for x, c := range row {
			head := snap.Head == types.Point{X: x, Y: y}
			termbox.SetCell(2*x, y, glyph(c, head), termboxColor(c, head), termbox.ColorDefault)
		}
	}

	status := []string{
		fmt.Sprintf("length %d  food %d  tick %d", snap.Length, snap.FoodEaten, snap.Tick),
		tb.keymap.HelpLine(),
	}
	for i, line := range status {
		x := 0
		for _, r := range line {
			termbox.SetCell(x, len(snap.Cells)+i, r, termbox.ColorDefault, termbox.ColorDefault)
			x++
		}
	}
	return errors.Wrap(termbox.Flush(), "termbox flush")
}
