package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"snake-term/game/types"
)

const (
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
)

// Glyphs per cell state. The head is drawn with its own glyph.
const (
	glyphEmpty    = '.'
	glyphBorder   = '#'
	glyphFood     = '*'
	glyphOccupied = 'o'
	glyphHead     = '@'
)

func glyph(c types.Cell, head bool) rune {
	switch c {
	case types.Border:
		return glyphBorder
	case types.Food:
		return glyphFood
	case types.Occupied:
		if head {
			return glyphHead
		}
		return glyphOccupied
	default:
		return glyphEmpty
	}
}

// palette styles one glyph per cell state.
type palette struct {
	empty, border, food, body, head func(string) string
}

func plainPalette() palette {
	id := func(s string) string { return s }
	return palette{empty: id, border: id, food: id, body: id, head: id}
}

func colorPalette() palette {
	style := func(color string, bold bool) func(string) string {
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(bold)
		return func(str string) string { return s.Render(str) }
	}
	return palette{
		empty:  style("240", false),
		border: style("#8A8A8A", true),
		food:   style("#FF4500", true),
		body:   style("#00D75F", false),
		head:   style("#FFD700", true),
	}
}

func (p palette) paint(c types.Cell, head bool) string {
	g := string(glyph(c, head))
	switch {
	case c == types.Border:
		return p.border(g)
	case c == types.Food:
		return p.food(g)
	case c == types.Occupied && head:
		return p.head(g)
	case c == types.Occupied:
		return p.body(g)
	default:
		return p.empty(g)
	}
}

// Frame lays out a snapshot as text: one line per grid row, cells joined
// by a space, followed by a status line and the key help.
func Frame(snap types.Snapshot, keymap KeyMap, p palette) []string {
	lines := make([]string, 0, len(snap.Cells)+2)
	for y, row := range snap.Cells {
		cells := make([]string, len(row))
		for x, c := range row {
			head := snap.Head == types.Point{X: x, Y: y}
			cells[x] = p.paint(c, head)
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	lines = append(lines,
		fmt.Sprintf("length %d  food %d  tick %d", snap.Length, snap.FoodEaten, snap.Tick),
		keymap.HelpLine(),
	)
	return lines
}

// Terminal renders with ANSI escapes on a raw-mode tty and reads keys from
// it on a background goroutine.
type Terminal struct {
	in       *os.File
	out      io.Writer
	keymap   KeyMap
	tracker  *KeyTracker
	palette  palette
	cancel   context.CancelFunc
	oldState *term.State
	restore  func(fd int, state *term.State) error
}

func NewTerminal(keymap KeyMap, hold time.Duration, cancel context.CancelFunc) *Terminal {
	return &Terminal{
		in:      os.Stdin,
		out:     os.Stdout,
		keymap:  keymap,
		tracker: NewKeyTracker(keymap, hold),
		palette: colorPalette(),
		cancel:  cancel,
		restore: term.Restore,
	}
}

// Start switches the tty to raw mode after checking that a board of
// columns x rows fits.
func (t *Terminal) Start(columns, rows int) error {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("stdin is not a terminal")
	}

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		needW, needH := 2*(columns+2)-1, rows+4
		if w < needW || h < needH {
			return errors.Errorf("terminal is %dx%d, board needs %dx%d", w, h, needW, needH)
		}
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return errors.Wrap(err, "enter raw mode")
	}
	t.oldState = oldState

	if _, err := io.WriteString(t.out, hideCursor+clearScreen); err != nil {
		return errors.Wrap(err, "prepare screen")
	}

	go t.readLoop()
	return nil
}

// Stop restores the tty. Safe to call when Start failed.
func (t *Terminal) Stop() error {
	if t.oldState == nil {
		return nil
	}
	_, werr := io.WriteString(t.out, showCursor+"\r\n")
	err := t.restore(int(t.in.Fd()), t.oldState)
	t.oldState = nil
	if err != nil {
		return errors.Wrap(err, "restore terminal")
	}
	return errors.Wrap(werr, "show cursor")
}

func (t *Terminal) readLoop() {
	buf := make([]byte, 64)
	for {
		n, err := t.in.Read(buf)
		if err != nil {
			return
		}
		t.handle(buf[:n])
	}
}

func (t *Terminal) handle(data []byte) {
	for _, name := range decodeInput(data) {
		if t.keymap.IsQuit(name) {
			if t.cancel != nil {
				t.cancel()
			}
			continue
		}
		t.tracker.Press(name)
	}
}

func (t *Terminal) HeldKeys() []types.Key {
	return t.tracker.HeldKeys()
}

// Render redraws the frame in place from the top-left corner.
func (t *Terminal) Render(snap types.Snapshot) error {
	lines := Frame(snap, t.keymap, t.palette)
	// Raw mode needs explicit carriage returns.
	_, err := io.WriteString(t.out, cursorHome+strings.Join(lines, "\x1b[K\r\n")+"\x1b[K")
	return errors.Wrap(err, "write frame")
}
