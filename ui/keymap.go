package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"snake-term/game/types"
)

// keyName adapts a raw key identifier to key.Matches.
type keyName string

func (k keyName) String() string { return string(k) }

// KeyMap binds raw key names to game directions.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("w/↑", "up")),
		Down:  key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("s/↓", "down")),
		Left:  key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/←", "left")),
		Right: key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d/→", "right")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Decode turns a raw key name into a game key. Unbound names decode with
// Dir NONE.
func (m KeyMap) Decode(name string) types.Key {
	k := keyName(name)
	dir := types.NONE
	switch {
	case key.Matches(k, m.Up):
		dir = types.UP
	case key.Matches(k, m.Down):
		dir = types.DOWN
	case key.Matches(k, m.Left):
		dir = types.LEFT
	case key.Matches(k, m.Right):
		dir = types.RIGHT
	}
	return types.Key{Name: name, Dir: dir}
}

func (m KeyMap) IsQuit(name string) bool {
	return key.Matches(keyName(name), m.Quit)
}

// Names lists every bound key name, directions first.
func (m KeyMap) Names() []string {
	var names []string
	for _, b := range []key.Binding{m.Up, m.Down, m.Left, m.Right, m.Quit} {
		names = append(names, b.Keys()...)
	}
	return names
}

// HelpLine renders the bindings as "w/↑ up · s/↓ down ...".
func (m KeyMap) HelpLine() string {
	parts := make([]string, 0, 5)
	for _, b := range []key.Binding{m.Up, m.Left, m.Down, m.Right, m.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
