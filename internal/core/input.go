package core

// Action is a logical input, independent of the key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - flap
	ActionRestart        // R - start a new run after game over
	ActionQuit           // Q, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions received since the previous tick, in arrival
// order. The loop driver fills it from key events and the game drains it in
// full on the next tick.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make([]Action, 0, 4),
	}
}

// Set queues an action for this frame. ActionNone is dropped.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times the action was queued this frame.
func (f InputFrame) Count(a Action) int {
	n := 0
	for _, got := range f.Actions {
		if got == a {
			n++
		}
	}
	return n
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
