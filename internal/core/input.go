package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A
	ActionRight          // Right arrow, D
	ActionUp             // Up arrow, W
	ActionDown           // Down arrow, S
	ActionPause          // P, Esc - toggle pause
	ActionConfirm        // Enter - activate menu item
	ActionRestart        // R - restart from pause menu or game over
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick.
//
// Held actions are active for the whole tick (movement keys). Pressed
// actions were newly triggered this tick (menu navigation, pause toggles).
// Every pressed action is also held.
type InputFrame struct {
	Held    map[Action]bool
	Pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Press marks an action as newly pressed (and held) for this frame.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
	f.Hold(a)
}

// Has returns true if the action is held this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Held[a]
}

// JustPressed returns true if the action was triggered this frame.
func (f InputFrame) JustPressed(a Action) bool {
	return f.Pressed[a]
}
