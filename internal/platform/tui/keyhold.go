package tui

import (
	"time"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Hold windows for release inference. Terminals report key repeats but no
// key-up, so an action counts as held until no repeat arrives within the
// window. The first window covers the terminal's auto-repeat delay.
const (
	DefaultFirstHold  = 500 * time.Millisecond
	DefaultRepeatHold = 120 * time.Millisecond
)

// KeyHold infers key releases from the timing of repeated key presses.
type KeyHold struct {
	first    time.Duration
	repeat   time.Duration
	deadline map[core.Action]time.Time
}

// NewKeyHold creates a tracker with the given hold windows.
func NewKeyHold(first, repeat time.Duration) *KeyHold {
	return &KeyHold{
		first:    first,
		repeat:   repeat,
		deadline: make(map[core.Action]time.Time),
	}
}

// Press records a press of the action at now. A press of an action that is
// still held is treated as an auto-repeat and extends the hold by the repeat
// window.
func (h *KeyHold) Press(a core.Action, now time.Time) {
	window := h.first
	if _, held := h.deadline[a]; held {
		window = h.repeat
	}
	h.deadline[a] = now.Add(window)
}

// Release stops tracking the action.
func (h *KeyHold) Release(a core.Action) {
	delete(h.deadline, a)
}

// Held reports whether the action is being tracked as held.
func (h *KeyHold) Held(a core.Action) bool {
	_, ok := h.deadline[a]
	return ok
}

// Expire forgets and returns every action whose hold window ended at or
// before now.
func (h *KeyHold) Expire(now time.Time) []core.Action {
	var released []core.Action
	for a, d := range h.deadline {
		if !now.Before(d) {
			released = append(released, a)
			delete(h.deadline, a)
		}
	}
	return released
}

// Reset forgets every held action.
func (h *KeyHold) Reset() {
	clear(h.deadline)
}
