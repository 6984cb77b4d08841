package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dropcatch/internal/core"
	"github.com/vovakirdan/dropcatch/internal/registry"
	"github.com/vovakirdan/dropcatch/internal/storage"
)

// ScoreStore is everything the screens need from score storage.
// *storage.Store implements it.
type ScoreStore interface {
	ScoreSaver
	ScoreSource
	HighScorer
}

// scoreStore converts a possibly nil store into a ScoreStore that is nil
// when the store is.
func scoreStore(store *storage.Store) ScoreStore {
	if store == nil {
		return nil
	}
	return store
}

// screen is the view a SessionModel is currently showing.
type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScores
)

// SessionModel runs menu, game and scoreboard inside a single Bubble Tea
// program, for hosts where each screen cannot be its own program (SSH).
// Child models end themselves with tea.Quit; the session swallows that and
// switches screens instead.
type SessionModel struct {
	scores ScoreStore
	config core.RuntimeConfig
	screen screen

	menu       MenuModel
	game       GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session that starts on the menu.
func NewSessionModel(scores ScoreStore, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		scores: scores,
		config: cfg,
		menu:   NewMenuModel(scores, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = size.Width
		m.config.ScreenH = size.Height
	}

	var next tea.Model
	var cmd tea.Cmd

	switch m.screen {
	case screenGame:
		next, cmd = m.game.Update(msg)
		m.game = next.(GameModel)
		switch {
		case m.game.IsQuitting():
			return m.quit()
		case m.game.BackToMenu():
			return m.showMenu()
		}
		return m, cmd

	case screenScores:
		next, cmd = m.scoreboard.Update(msg)
		m.scoreboard = next.(ScoreboardModel)
		switch {
		case m.scoreboard.IsQuitting():
			return m.quit()
		case m.scoreboard.IsGoingBack():
			return m.showMenu()
		}
		return m, cmd
	}

	// Late ticks from a finished game land here and are dropped
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	next, cmd = m.menu.Update(msg)
	m.menu = next.(MenuModel)
	m.config = m.menu.Config()

	switch {
	case m.menu.IsQuitting():
		return m.quit()

	case m.menu.WantsScoreboard():
		m.screen = screenScores
		m.scoreboard = NewScoreboardModel(m.scores, m.config.ScreenW, m.config.ScreenH)
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().GameID)
		if err != nil {
			return m.showMenu()
		}
		cfg := m.config
		cfg.Seed = time.Now().UnixNano()

		m.screen = screenGame
		m.game = NewGameModel(game, m.scores, cfg)
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.scores, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
