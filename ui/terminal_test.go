package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"snake-term/game/types"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func testSnapshot() types.Snapshot {
	b, e, f, o := types.Border, types.Empty, types.Food, types.Occupied
	return types.Snapshot{
		Cells: [][]types.Cell{
			{b, b, b, b},
			{b, o, o, b},
			{b, f, e, b},
			{b, b, b, b},
		},
		Head:      types.Point{X: 1, Y: 1},
		Length:    2,
		FoodEaten: 1,
		Tick:      7,
	}
}

func TestFramePlain(t *testing.T) {
	lines := Frame(testSnapshot(), DefaultKeyMap(), plainPalette())
	want := []string{
		"# # # #",
		"# @ o #",
		"# * . #",
		"# # # #",
		"length 2  food 1  tick 7",
	}
	if len(lines) != len(want)+1 {
		t.Fatalf("expected %d lines, got %d: %q", len(want)+1, len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if !strings.Contains(lines[len(lines)-1], "quit") {
		t.Fatalf("missing help line: %q", lines[len(lines)-1])
	}
}

func TestGlyphs(t *testing.T) {
	seen := map[rune]bool{}
	for _, c := range []types.Cell{types.Empty, types.Border, types.Food, types.Occupied} {
		seen[glyph(c, false)] = true
	}
	if len(seen) != 4 {
		t.Fatalf("cell states must have distinct glyphs, got %v", seen)
	}
	if glyph(types.Occupied, true) != glyphHead {
		t.Fatalf("head glyph not used")
	}
}

func TestTerminalRenderOverwritesInPlace(t *testing.T) {
	var out bytes.Buffer
	tm := NewTerminal(DefaultKeyMap(), 0, nil)
	tm.out = &out
	tm.palette = plainPalette()

	if err := tm.Render(testSnapshot()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	frame := out.String()
	if !strings.HasPrefix(frame, cursorHome) {
		t.Fatalf("frame should start at the home position: %q", frame)
	}
	if !strings.Contains(frame, "# @ o #\x1b[K\r\n") {
		t.Fatalf("rows should end with clear-line and CRLF: %q", frame)
	}
}

func TestStopWithoutStart(t *testing.T) {
	tm := NewTerminal(DefaultKeyMap(), 0, nil)
	if err := tm.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestStopReportsCursorWriteError(t *testing.T) {
	tm := NewTerminal(DefaultKeyMap(), 0, nil)
	tm.out = failingWriter{}
	tm.oldState = &term.State{}
	restored := false
	tm.restore = func(int, *term.State) error {
		restored = true
		return nil
	}

	err := tm.Stop()
	if err == nil || !strings.Contains(err.Error(), "show cursor") {
		t.Fatalf("Stop() = %v, want a show cursor error", err)
	}
	if !restored {
		t.Fatalf("tty was not restored after the failed write")
	}
	if err := tm.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
}
