// Package window is the raylib frontend. It draws the same grid as the
// terminal backends, one coloured square per cell.
package window

import (
	"context"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-term/game/types"
	"snake-term/ui"
)

const (
	cellSize      = 24
	borderPadding = 10 // Padding around game area
	statusHeight  = 48
	fontSize      = 18
)

// rlKeys maps key names to raylib key codes.
var rlKeys = map[string]int32{
	"w":     rl.KeyW,
	"a":     rl.KeyA,
	"s":     rl.KeyS,
	"d":     rl.KeyD,
	"q":     rl.KeyQ,
	"up":    rl.KeyUp,
	"down":  rl.KeyDown,
	"left":  rl.KeyLeft,
	"right": rl.KeyRight,
	"esc":   rl.KeyEscape,
}

// Window draws the character grid as coloured cells in a raylib window.
// Unlike the terminal backends it sees real key-down state.
type Window struct {
	keymap ui.KeyMap
	cancel context.CancelFunc
	last   types.Snapshot
	open   bool
}

func New(keymap ui.KeyMap, cancel context.CancelFunc) *Window {
	return &Window{
		keymap: keymap,
		cancel: cancel,
	}
}

// Start opens a window sized for a board of columns x rows.
func (w *Window) Start(columns, rows int) error {
	width := int32(columns+2)*cellSize + borderPadding*2
	height := int32(rows+2)*cellSize + borderPadding*2 + statusHeight
	rl.InitWindow(width, height, "snake-term")
	rl.SetTargetFPS(60)
	w.open = true
	return nil
}

func (w *Window) Stop() error {
	if w.open {
		rl.CloseWindow()
		w.open = false
	}
	return nil
}

func cellColor(c types.Cell, head bool) rl.Color {
	switch c {
	case types.Border:
		return rl.DarkGray
	case types.Food:
		return rl.Red
	case types.Occupied:
		if head {
			return rl.Yellow
		}
		return rl.Green
	default:
		return rl.Black
	}
}

func (w *Window) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	snap := w.last
	for y, row := range snap.Cells {
		for x, c := range row {
			head := snap.Head == types.Point{X: x, Y: y}
			px := borderPadding + int32(x)*cellSize
			py := borderPadding + int32(y)*cellSize
			rl.DrawRectangle(px, py, cellSize-1, cellSize-1, cellColor(c, head))
		}
	}

	statusY := borderPadding + int32(len(snap.Cells))*cellSize + 4
	status := fmt.Sprintf("length %d  food %d  tick %d", snap.Length, snap.FoodEaten, snap.Tick)
	rl.DrawText(status, borderPadding, statusY, fontSize, rl.RayWhite)
	rl.DrawText(w.keymap.HelpLine(), borderPadding, statusY+fontSize+4, fontSize-4, rl.Gray)

	rl.EndDrawing()
}

func (w *Window) Render(snap types.Snapshot) error {
	w.last = snap
	w.draw()
	return nil
}

// HeldKeys redraws the last frame, which also pumps window events, then
// reports bound keys that are down in keymap order.
func (w *Window) HeldKeys() []types.Key {
	if rl.WindowShouldClose() && w.cancel != nil {
		w.cancel()
	}
	w.draw()

	var held []types.Key
	for _, name := range w.keymap.Names() {
		code, ok := rlKeys[name]
		if !ok || !rl.IsKeyDown(code) {
			continue
		}
		if w.keymap.IsQuit(name) {
			if w.cancel != nil {
				w.cancel()
			}
			continue
		}
		held = append(held, w.keymap.Decode(name))
	}
	return held
}
