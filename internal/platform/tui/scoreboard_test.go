package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dropcatch/internal/storage"
)

// fakeScores returns one row per query and records the filters it saw.
type fakeScores struct {
	modes []string
}

func (f *fakeScores) TopScores(gameID, mode string, limit int) ([]storage.ScoreEntry, error) {
	f.modes = append(f.modes, mode)
	return []storage.ScoreEntry{
		{GameID: gameID, Mode: "hard", Score: 42, Won: true, CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
	}, nil
}

func (f *fakeScores) GetGameStats(gameID string) (*storage.GameStats, error) {
	return &storage.GameStats{GameID: gameID, GamesCount: 4, WinsCount: 1, HighScore: 42, AvgScore: 20.5}, nil
}

func TestScoreboardDifficultyFilter(t *testing.T) {
	src := &fakeScores{}
	m := NewScoreboardModel(src, 80, 24)

	for range 2 {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
		m = next.(ScoreboardModel)
	}

	// Initial load, then one query per filter change
	want := []string{"", "easy", "moderate"}
	if strings.Join(src.modes, ",") != strings.Join(want, ",") {
		t.Errorf("queried modes %q, expected %q", src.modes, want)
	}
	if !strings.Contains(m.View(), "difficulty: moderate") {
		t.Error("view should name the active difficulty filter")
	}
}

func TestScoreboardView(t *testing.T) {
	view := NewScoreboardModel(&fakeScores{}, 80, 24).View()

	for _, want := range []string{"HIGH SCORES", "42", "won", "Rounds 4", "25%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	view := NewScoreboardModel(nil, 80, 24).View()
	if !strings.Contains(view, "No rounds recorded yet.") {
		t.Error("a nil source should show the empty message")
	}
}

func TestScoreboardBack(t *testing.T) {
	next, cmd := NewScoreboardModel(nil, 80, 24).Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("esc should return to the menu")
	}
}
