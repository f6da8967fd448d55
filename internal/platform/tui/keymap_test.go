package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/caveleap/internal/core"
	"github.com/vovakirdan/caveleap/internal/game"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"space flaps", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFlap, false},
		{"up flaps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap, false},
		{"w flaps", runeKey('w'), core.ActionFlap, false},
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", runeKey('z'), core.ActionNone, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tc.msg)
			if action != tc.want || isQuit != tc.wantQuit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)",
					tc.msg.String(), action, isQuit, tc.want, tc.wantQuit)
			}
		})
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()

	// On an 80x24 grid each cell is 10x25 virtual units; cell (39, 15)
	// centers at (395, 387.5), inside the start button.
	frame := core.NewInputFrame()
	km.MapMouseToFrame(tea.MouseMsg{
		X: 39, Y: 15,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}, 80, 24, &frame)

	if !frame.Has(core.ActionClick) {
		t.Fatal("left press did not set ActionClick")
	}
	if !game.StartButton().Contains(frame.ClickX, frame.ClickY) {
		t.Errorf("click (%v, %v) missed start button %+v",
			frame.ClickX, frame.ClickY, game.StartButton())
	}
}

func TestMapMouseIgnoresOtherButtons(t *testing.T) {
	km := NewKeyMapper()

	frame := core.NewInputFrame()
	km.MapMouseToFrame(tea.MouseMsg{
		X: 10, Y: 10,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonRight,
	}, 80, 24, &frame)
	km.MapMouseToFrame(tea.MouseMsg{
		X: 10, Y: 10,
		Action: tea.MouseActionRelease,
		Button: tea.MouseButtonLeft,
	}, 80, 24, &frame)

	if frame.Has(core.ActionClick) {
		t.Error("non-press or non-left mouse event set ActionClick")
	}
}

func TestRenderScreenShape(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColor(0, 1, "hello", core.ColorOrange)

	out := RenderScreen(s)
	lines := 1
	for _, r := range out {
		if r == '\n' {
			lines++
		}
	}
	if lines != 3 {
		t.Errorf("RenderScreen produced %d lines, want 3", lines)
	}
}
