package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickout/internal/core"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{keyMsg('a'), core.ActionLeft, false},
		{keyMsg('d'), core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionLaunch, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{keyMsg('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{keyMsg('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		action, quit := km.MapKey(tc.msg)
		if action != tc.action || quit != tc.quit {
			t.Errorf("MapKey(%s) = (%v, %v), want (%v, %v)",
				tc.msg.String(), action, quit, tc.action, tc.quit)
		}
	}
}

func TestMapKeyToFrameEnterSetsBoth(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEnter}, &frame); quit {
		t.Error("Enter is not a quit request")
	}
	if !frame.Has(core.ActionStart) || !frame.Has(core.ActionAcknowledge) {
		t.Error("Enter should set both the start and acknowledge actions")
	}
}
