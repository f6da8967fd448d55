package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/caveleap/internal/core"
	"github.com/vovakirdan/caveleap/internal/game"
)

// KeyMapper translates Bubble Tea input messages to game actions.
// This centralizes the bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ", "up", "w":
		return core.ActionFlap, false
	case "enter":
		return core.ActionStart, false
	case "r":
		return core.ActionRestart, false
	case "p", "esc":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame translates a left-button press into a click at virtual
// playfield coordinates. Cell centers map into the field, so a click on
// the drawn button lands inside the button's virtual rect.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, screenW, screenH int, frame *core.InputFrame) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if screenW <= 0 || screenH <= 0 {
		return
	}

	vx := (float64(msg.X) + 0.5) * game.FieldW / float64(screenW)
	vy := (float64(msg.Y) + 0.5) * game.FieldH / float64(screenH)
	frame.SetClick(vx, vy)
}
