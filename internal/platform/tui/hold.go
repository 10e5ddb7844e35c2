package tui

import "github.com/vovakirdan/tui-traffic/internal/core"

// holdTracker turns terminal key presses into held keys.
//
// Terminals report presses (and auto-repeats) but never releases, so a
// direction press counts as held for a fixed number of ticks and every
// repeat refreshes it. Pressing a direction releases the opposite one.
type holdTracker struct {
	holdTicks int
	remaining map[core.Action]int
	pressed   map[core.Action]bool
}

func newHoldTracker(holdTicks int) *holdTracker {
	return &holdTracker{
		holdTicks: max(1, holdTicks),
		remaining: make(map[core.Action]int),
		pressed:   make(map[core.Action]bool),
	}
}

// Press records a key press for the next frame.
func (h *holdTracker) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	h.pressed[a] = true
	if opp, ok := opposite(a); ok {
		h.remaining[a] = h.holdTicks
		delete(h.remaining, opp)
	}
}

// Frame builds the input for one tick and ages the held keys.
func (h *holdTracker) Frame() core.InputFrame {
	in := core.NewInputFrame()
	for a, n := range h.remaining {
		if n <= 0 {
			delete(h.remaining, a)
			continue
		}
		in.Hold(a)
		if n == 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	for a := range h.pressed {
		in.Press(a)
	}
	clear(h.pressed)
	return in
}

// Release drops every held and pending key.
func (h *holdTracker) Release() {
	clear(h.remaining)
	clear(h.pressed)
}

func opposite(a core.Action) (core.Action, bool) {
	switch a {
	case core.ActionLeft:
		return core.ActionRight, true
	case core.ActionRight:
		return core.ActionLeft, true
	case core.ActionUp:
		return core.ActionDown, true
	case core.ActionDown:
		return core.ActionUp, true
	}
	return core.ActionNone, false
}
