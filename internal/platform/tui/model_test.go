package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dropcatch/internal/core"
	"github.com/vovakirdan/dropcatch/internal/storage"
)

// scriptedGame reports game over after a fixed number of steps and
// records the input it receives.
type scriptedGame struct {
	steps    int
	overAt   int
	pointers []core.PointerEvent
	actions  []core.Action
	resized  bool
}

func (g *scriptedGame) ID() string               { return "classic" }
func (g *scriptedGame) Title() string            { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.steps = 0 }
func (g *scriptedGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) Resize(w, h int)          { g.resized = true }
func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: g.steps, GameOver: g.steps >= g.overAt, Mode: "hard", Won: true}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	if g.steps < g.overAt {
		g.steps++
	}
	g.pointers = append(g.pointers, in.Pointer...)
	for a := range in.Actions {
		g.actions = append(g.actions, a)
	}
	return core.StepResult{State: g.State()}
}

type recordingSaver struct {
	saved []storage.ScoreEntry
}

func (s *recordingSaver) SaveScore(e storage.ScoreEntry) (int64, error) {
	s.saved = append(s.saved, e)
	return int64(len(s.saved)), nil
}

func tickN(t *testing.T, m GameModel, n int) GameModel {
	t.Helper()
	for range n {
		next, _ := m.Update(TickMsg{Gen: m.gen})
		m = next.(GameModel)
	}
	return m
}

func TestGameModelSavesFinishedRoundOnce(t *testing.T) {
	game := &scriptedGame{overAt: 3}
	saver := &recordingSaver{}
	m := NewGameModel(game, saver, core.DefaultConfig())

	m = tickN(t, m, 10)

	if len(saver.saved) != 1 {
		t.Fatalf("saved %d rounds, expected 1", len(saver.saved))
	}
	got := saver.saved[0]
	if got.GameID != "classic" || got.Score != 3 || got.Mode != "hard" || !got.Won {
		t.Errorf("saved %+v", got)
	}
}

func TestGameModelRoutesMouse(t *testing.T) {
	game := &scriptedGame{overAt: 100}
	m := NewGameModel(game, nil, core.DefaultConfig())

	next, _ := m.Update(tea.MouseMsg{X: 12, Action: tea.MouseActionMotion})
	m = next.(GameModel)
	m = tickN(t, m, 1)

	if len(game.pointers) != 1 || game.pointers[0].X != 12 || game.pointers[0].Kind != core.PointerMove {
		t.Errorf("pointers = %+v, expected one move to x=12", game.pointers)
	}

	// The frame is cleared after each tick
	m = tickN(t, m, 1)
	if len(game.pointers) != 1 {
		t.Errorf("pointer events leaked into the next frame: %+v", game.pointers)
	}
}

func TestGameModelBackOnlyWhenOver(t *testing.T) {
	game := &scriptedGame{overAt: 2}
	m := NewGameModel(game, nil, core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(GameModel)
	if m.BackToMenu() {
		t.Error("back should be ignored while a round is running")
	}

	m = tickN(t, m, 3)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(GameModel)
	if !m.BackToMenu() {
		t.Error("back should return to the menu after the round ends")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(&scriptedGame{overAt: 5}, nil, core.DefaultConfig())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit")
	}
}

func TestGameModelResize(t *testing.T) {
	game := &scriptedGame{overAt: 5}
	m := NewGameModel(game, nil, core.DefaultConfig())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(GameModel)

	if !game.resized {
		t.Error("resizable games should be resized in place")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestGameModelIgnoresOtherGenerationTicks(t *testing.T) {
	old := NewGameModel(&scriptedGame{overAt: 5}, nil, core.DefaultConfig())
	game := &scriptedGame{overAt: 5}
	m := NewGameModel(game, nil, core.DefaultConfig())
	if m.gen == old.gen {
		t.Fatal("game models should get distinct tick generations")
	}

	next, cmd := m.Update(TickMsg{Gen: old.gen})
	m = next.(GameModel)
	if game.steps != 0 || cmd != nil {
		t.Errorf("stale tick stepped the game (steps %d) or scheduled a tick (%v)", game.steps, cmd != nil)
	}

	next, cmd = m.Update(TickMsg{Gen: m.gen})
	m = next.(GameModel)
	if game.steps != 1 || cmd == nil {
		t.Errorf("own tick: steps = %d, next tick scheduled = %v, expected 1 and true", game.steps, cmd != nil)
	}
}
