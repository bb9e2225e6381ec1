package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// maxRuns is the number of runs listed per variant.
const maxRuns = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Next, k.Prev}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next variant")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev variant")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the best runs of each variant.
type ScoreboardModel struct {
	games     []registry.GameInfo
	cursor    int
	store     *storage.Store
	runs      []storage.Run
	stats     *storage.VariantStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first variant.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	if len(m.games) > 0 {
		m.load(m.games[0].ID)
	}
	return m
}

// createTable builds the runs table for the current size.
func (m *ScoreboardModel) createTable() table.Model {
	dateWidth := core.Clamp(m.width-4-6-8-8-6, 12, 20)
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: dateWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Clamp(m.height-9, 3, maxRuns)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads runs and stats of a variant.
func (m *ScoreboardModel) load(variant string) {
	m.runs, m.stats = nil, nil
	if m.store != nil {
		if runs, err := m.store.TopRuns(variant, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.Stats(variant); err == nil {
			m.stats = stats
		}
	}
	m.updateRows()
}

// updateRows fills the table from the loaded runs.
func (m *ScoreboardModel) updateRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		mark := ""
		if r.NewHigh {
			mark = " *"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d%s", r.Score, mark),
			fmt.Sprintf("%.1fs", float64(r.Ticks)/60),
			r.CreatedAt.Format("Jan 02 15:04"),
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
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// step moves the variant cursor with wraparound.
func (m *ScoreboardModel) step(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.games)) % len(m.games)
	m.load(m.games[m.cursor].ID)
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", m.games[m.cursor].Title)
	}
	b.WriteString(centerText(menuTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.cursor {
			tabs[i] = menuSelectedStyle.Render("[" + g.ID + "]")
		} else {
			tabs[i] = menuBestStyle.Render(" " + g.ID + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	if m.stats != nil && m.stats.Runs > 0 {
		summary := fmt.Sprintf("runs %d  best %d  avg %.1f", m.stats.Runs, m.stats.BestScore, m.stats.AvgScore)
		b.WriteString(centerText(menuBestStyle.Render(summary), m.width))
		b.WriteString("\n")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(box.Render(m.tableContent()), m.width))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// tableContent renders the table or an empty message.
func (m ScoreboardModel) tableContent() string {
	if len(m.runs) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4).
			Render("No runs recorded yet.")
	}
	return m.table.View()
}

// IsGoingBack returns true if the user wants to go back to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// RunScoreboard runs the scoreboard screen.
// Returns true if the user wants to go back to the menu.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
