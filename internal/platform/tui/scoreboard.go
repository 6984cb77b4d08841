package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dropcatch/internal/config"
	"github.com/vovakirdan/dropcatch/internal/registry"
	"github.com/vovakirdan/dropcatch/internal/storage"
)

const maxScores = 100

// ScoreSource is the read side of the score store used by the scoreboard.
type ScoreSource interface {
	TopScores(gameID, mode string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// scoreboardKeys are the scoreboard bindings, also rendered by the help bar.
type scoreboardKeys struct {
	Scroll     key.Binding
	Variant    key.Binding
	Difficulty key.Binding
	Back       key.Binding
	Quit       key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Variant, k.Difficulty, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll:     key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Variant:    key.NewBinding(key.WithKeys("tab", "left", "right", "h", "l"), key.WithHelp("tab", "variant")),
		Difficulty: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "difficulty")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists recorded rounds per variant, optionally filtered by
// difficulty.
type ScoreboardModel struct {
	variants []registry.GameInfo
	variant  int
	filters  []string // "" first, meaning every difficulty
	filter   int

	source ScoreSource
	scores []storage.ScoreEntry
	stats  *storage.GameStats

	table table.Model
	help  help.Model
	keys  scoreboardKeys

	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard. A nil source shows empty tables.
func NewScoreboardModel(source ScoreSource, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		source:   source,
		help:     help.New(),
		keys:     newScoreboardKeys(),
		width:    width,
		height:   height,
	}
	m.table = newScoreTable(height)
	m.selectVariant(0)
	return m
}

func newScoreTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Drops", Width: 6},
			{Title: "Difficulty", Width: 10},
			{Title: "Result", Width: 6},
			{Title: "Played", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("24"))
	t.SetStyles(s)
	return t
}

// difficultyFilters returns the filter cycle for a variant: all rounds, then
// each configured difficulty.
func difficultyFilters(variant string) []string {
	filters := []string{""}
	if rules, ok := config.DefaultRules().Variant(variant); ok {
		filters = append(filters, rules.DifficultyNames()...)
	}
	return filters
}

func (m *ScoreboardModel) selectVariant(i int) {
	if len(m.variants) == 0 {
		m.filters = []string{""}
		return
	}
	n := len(m.variants)
	m.variant = (i%n + n) % n
	m.filters = difficultyFilters(m.variants[m.variant].ID)
	m.filter = 0
	m.reload()
}

// reload fetches rows for the current variant and filter.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats = nil, nil
	if m.source != nil && len(m.variants) > 0 {
		id := m.variants[m.variant].ID
		if scores, err := m.source.TopScores(id, m.filters[m.filter], maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.source.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		difficulty := s.Mode
		if difficulty == "" {
			difficulty = "-"
		}
		result := "lost"
		if s.Won {
			result = "won"
		}
		rows[i] = table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(s.Score),
			difficulty,
			result,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Variant):
			step := 1
			if s := msg.String(); s == "left" || s == "h" {
				step = -1
			}
			m.selectVariant(m.variant + step)
			return m, nil

		case key.Matches(msg, m.keys.Difficulty):
			m.filter = (m.filter + 1) % len(m.filters)
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(max(m.height-9, 3))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText(m.filterLine(), m.width)))
	b.WriteString("\n")
	if line := m.statsLine(); line != "" {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	body := m.table.View()
	if len(m.scores) == 0 {
		body = dimStyle.Italic(true).Padding(1, 4).Render("No rounds recorded yet.")
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(body)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// tabs renders the variant names with the selected one bracketed.
func (m ScoreboardModel) tabs() string {
	parts := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.variant {
			parts[i] = "[ " + v.Title + " ]"
		} else {
			parts[i] = "  " + v.Title + "  "
		}
	}
	return strings.Join(parts, " ")
}

func (m ScoreboardModel) filterLine() string {
	if len(m.filters) == 1 {
		return ""
	}
	name := m.filters[m.filter]
	if name == "" {
		name = "all"
	}
	return "difficulty: " + name
}

// statsLine summarizes the selected variant's history.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Rounds %d  ·  Wins %d (%.0f%%)  ·  Best %d  ·  Avg %.1f",
		m.stats.GamesCount, m.stats.WinsCount, m.stats.WinRate()*100, m.stats.HighScore, m.stats.AvgScore)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(scoreStore(store), width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
