package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dropcatch/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}}, core.ActionMute, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.key.String(), func(t *testing.T) {
			action, quit := km.MapKey(tc.key)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.key.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.MouseMsg
		kind core.PointerKind
		ok   bool
	}{
		{"hover", tea.MouseMsg{X: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, core.PointerMove, true},
		{"press", tea.MouseMsg{X: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.PointerTouchStart, true},
		{"drag", tea.MouseMsg{X: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, core.PointerTouchMove, true},
		{"release", tea.MouseMsg{X: 5, Action: tea.MouseActionRelease}, core.PointerTouchEnd, true},
		{"right click", tea.MouseMsg{X: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev, ok := km.MapMouse(tc.msg)
			if ok != tc.ok {
				t.Fatalf("MapMouse ok = %v, expected %v", ok, tc.ok)
			}
			if ok && (ev.Kind != tc.kind || ev.X != 5) {
				t.Errorf("MapMouse = %+v, expected kind %v at x=5", ev, tc.kind)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}); got != MenuActionScoreboard {
		t.Errorf("tab = %v, expected scoreboard", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}); got != MenuActionDown {
		t.Errorf("j = %v, expected down", got)
	}
}
