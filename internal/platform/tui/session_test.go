package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dropcatch/internal/core"
	"github.com/vovakirdan/dropcatch/internal/registry"
)

func init() {
	registry.Register("classic", func() registry.Game { return &scriptedGame{overAt: 2} })
}

func sessionStep(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %d after selecting, expected game", m.screen)
	}

	// Back is ignored until the round is over
	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenGame {
		t.Fatal("back during a round should stay in the game")
	}

	for range 3 {
		m = sessionStep(t, m, TickMsg{Gen: m.game.gen})
	}
	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %d after back, expected menu", m.screen)
	}

	// A late tick from the finished game must not restart anything
	m = sessionStep(t, m, TickMsg{Gen: m.game.gen})
	if m.screen != screenMenu {
		t.Error("stray tick should be ignored on the menu")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %d after tab, expected scoreboard", m.screen)
	}
	if m.View() == "" {
		t.Error("scoreboard view should not be empty")
	}

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %d after back, expected menu", m.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil || next.(SessionModel).View() != "" {
		t.Error("q on the menu should end the session")
	}
}

func TestSessionTracksWindowSize(t *testing.T) {
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m = sessionStep(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.config.ScreenW != 100 || m.config.ScreenH != 40 {
		t.Errorf("config = %dx%d, expected 100x40", m.config.ScreenW, m.config.ScreenH)
	}
}

func TestSessionDropsTicksFromPreviousGame(t *testing.T) {
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for range 3 {
		m = sessionStep(t, m, TickMsg{Gen: m.game.gen})
	}
	stale := m.game.gen
	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	// The previous chain's last tick arrives after the next game has started
	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %d after selecting again, expected game", m.screen)
	}
	game := m.game.game.(*scriptedGame)

	next, cmd := m.Update(TickMsg{Gen: stale})
	m = next.(SessionModel)
	if game.steps != 0 || cmd != nil {
		t.Errorf("stale tick stepped the new game (steps %d) or scheduled a tick (%v)", game.steps, cmd != nil)
	}

	m = sessionStep(t, m, TickMsg{Gen: m.game.gen})
	if game.steps != 1 {
		t.Errorf("steps = %d after the new game's own tick, expected 1", game.steps)
	}
}
