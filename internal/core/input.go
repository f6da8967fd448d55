package core

// Action represents a semantic game action, abstracted from physical key
// presses and mouse buttons. The platform layer maps raw input to actions;
// the game only sees intents.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // Space, Up, W, left click during play - flap upward
	ActionStart          // Enter - begin a round from the start screen
	ActionRestart        // R, Enter - restart after game over
	ActionPause          // P, Escape - pause/unpause during play
	ActionQuit           // Q, Ctrl+C - exit the session
	ActionClick          // Primary mouse click; coordinates carried in the frame
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionClick:
		return "Click"
	default:
		return "Unknown"
	}
}

// InputFrame represents the polled input state for one simulation tick.
// Multiple actions can be set in the same frame; at least one flap or
// click this frame triggers the corresponding behavior, per the
// poll-once-per-frame input model.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// ClickX, ClickY hold the primary click position in virtual playfield
	// units. Only meaningful when ActionClick is set.
	ClickX, ClickY float64
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

// SetClick marks a primary click at the given virtual coordinates.
func (f *InputFrame) SetClick(x, y float64) {
	f.Set(ActionClick)
	f.ClickX = x
	f.ClickY = y
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets the frame for reuse on the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.ClickX = 0
	f.ClickY = 0
}
