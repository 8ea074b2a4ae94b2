package core

// Action is a discrete player intent. Frontends translate keys and clicks
// into actions; games never see raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionPointerPress        // Mouse click - start from menu, resume from pause
	ActionPause               // P - toggle pause while playing
	ActionBack                // Esc, B - pause while playing, otherwise back to menu
	ActionRestart             // R key - restart game after game over
	ActionQuit                // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPointerPress:
		return "PointerPress"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
// It carries the discrete actions triggered during the frame and the
// pointer position sampled for it.
type InputFrame struct {
	Actions map[Action]bool

	// Pointer is the pursuit target in world coordinates.
	// Only meaningful when HasPointer is true.
	Pointer    Vec2
	HasPointer bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetPointer records the pointer position for this frame.
func (f *InputFrame) SetPointer(x, y float64) {
	f.Pointer = Vec2{X: x, Y: y}
	f.HasPointer = true
}

// Clear resets all actions for the next frame.
// The pointer position is sticky: it persists until the pointer moves again.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
