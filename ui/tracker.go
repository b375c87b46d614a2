package ui

import (
	"sync"
	"time"

	"snake-term/game/types"
)

const (
	DefaultHold = 500 * time.Millisecond
	// DefaultRepeat is the longest gap between two events of the same key
	// that still reads as terminal autorepeat.
	DefaultRepeat = 100 * time.Millisecond
)

// KeyTracker turns a stream of key presses into a held-key set. Terminals
// only report presses (plus autorepeat), so a key counts as held until
// another key is pressed or hold elapses without a repeat. A second press of
// the held key after more than repeat reads as a release followed by a new
// press.
type KeyTracker struct {
	mu     sync.Mutex
	keymap KeyMap
	hold   time.Duration
	repeat time.Duration
	now    func() time.Time

	last    string
	at      time.Time
	release bool
}

func NewKeyTracker(keymap KeyMap, hold time.Duration) *KeyTracker {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &KeyTracker{
		keymap: keymap,
		hold:   hold,
		repeat: DefaultRepeat,
		now:    time.Now,
	}
}

// Press records a key press or autorepeat.
func (t *KeyTracker) Press(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	switch {
	case name != t.last:
		t.release = false
	case now.Sub(t.at) > t.repeat:
		t.release = true
	}
	t.last = name
	t.at = now
}

// HeldKeys returns the held key, if any. After a re-press of the held key
// it reports one empty poll first.
func (t *KeyTracker) HeldKeys() []types.Key {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.last == "" {
		return nil
	}
	if t.now().Sub(t.at) > t.hold {
		t.last = ""
		t.release = false
		return nil
	}
	if t.release {
		t.release = false
		return nil
	}
	return []types.Key{t.keymap.Decode(t.last)}
}
