package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with decoded intents rather than raw input events.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - held: move ship left
	ActionRight          // Right arrow, D - held: move ship right
	ActionFire           // Space - one pulse per press
	ActionPause          // P - toggle player pause
	ActionRestart        // R - new session after game over
	ActionQuit           // Q, Ctrl+C - exit immediately
	ActionBack           // B, Escape - go back to menu
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
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// Held reports whether the action is level-sensitive (active for as long as the
// key is down) rather than an edge-triggered pulse.
func (a Action) Held() bool {
	return a == ActionLeft || a == ActionRight
}

// InputFrame represents the decoded intents for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
