package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bacon-invasion/internal/storage"
)

// Run table layout constants
const (
	tableMinWidth = 50
	maxRuns       = 100
)

// RunsTab selects which runs the table lists.
type RunsTab int

const (
	TabTop RunsTab = iota
	TabRecent
	TabMine
)

func (t RunsTab) String() string {
	switch t {
	case TabTop:
		return "Best"
	case TabRecent:
		return "Recent"
	case TabMine:
		return "Mine"
	}
	return "?"
}

// RunsKeyMap defines the key bindings for the run table.
type RunsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev tab"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunTable is the Bubble Tea model listing stored runs.
type RunTable struct {
	store     *storage.Store
	player    string
	tabs      []RunsTab
	tab       int
	runs      []storage.Run
	stats     *storage.Stats
	err       error
	table     table.Model
	help      help.Model
	keys      RunsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
	alone     bool // quit on back when not embedded in a session
}

// NewRunTable creates a run table. The Mine tab only appears for a named player.
func NewRunTable(store *storage.Store, player string, width, height int) RunTable {
	tabs := []RunsTab{TabTop, TabRecent}
	if player != "" {
		tabs = append(tabs, TabMine)
	}

	h := help.New()
	h.ShowAll = false

	m := RunTable{
		store:  store,
		player: player,
		tabs:   tabs,
		keys:   DefaultRunsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *RunTable) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 10},
		{Title: "Level", Width: 12},
		{Title: "Kills", Width: 6},
		{Title: "Time", Width: 7},
		{Title: "End", Width: 5},
		{Title: "Date", Width: 12},
	}

	// Give spare width to the level column
	tableWidth := m.width - 6
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if tableWidth > used {
		columns[2].Width += min(tableWidth-used, 12)
	}

	height := m.height - 9
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("52")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Tab returns the active tab.
func (m RunTable) Tab() RunsTab { return m.tabs[m.tab] }

// Runs returns the runs currently listed.
func (m RunTable) Runs() []storage.Run { return m.runs }

// load fetches the runs for the active tab.
func (m *RunTable) load() {
	m.runs, m.err = nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	switch m.Tab() {
	case TabTop:
		m.runs, m.err = m.store.TopRuns(maxRuns)
	case TabRecent:
		m.runs, m.err = m.store.RecentRuns(maxRuns)
	case TabMine:
		m.runs, m.err = m.store.PlayerRuns(m.player, maxRuns)
	}
	if m.err == nil {
		m.stats, m.err = m.store.Stats()
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *RunTable) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		player := r.Player
		if player == "" {
			player = "local"
		}
		end := "exit"
		if r.Died {
			end = "died"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			player,
			r.Level,
			fmt.Sprintf("%d", r.Kills),
			clock(r.Duration.Seconds()),
			end,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the run table.
func (m RunTable) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run table.
func (m RunTable) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.alone {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % len(m.tabs)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab - 1 + len(m.tabs)) % len(m.tabs)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run table.
func (m RunTable) View() string {
	if m.quitting || (m.alone && m.goingBack) {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("RUNS", m.width)))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("52")).
		Padding(0, 1)

	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(t.String())
		} else {
			tabs[i] = tabStyle.Render(" " + t.String() + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(statsStyle.Render(m.statsLine()))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m RunTable) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Width(tableMinWidth).
		Padding(2, 4)

	if m.err != nil {
		return emptyStyle.Render("Cannot read runs: " + m.err.Error())
	}
	if len(m.runs) == 0 {
		return emptyStyle.Render("No runs recorded yet.\nGo clear out some bacon!")
	}
	return m.table.View()
}

func (m RunTable) statsLine() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return ""
	}
	st := m.stats
	return fmt.Sprintf("%d runs  %d deaths  best %d kills  %d total  longest %s  last %s",
		st.Runs, st.Deaths, st.BestKills, st.TotalKills,
		clock(st.Longest.Seconds()), st.LastPlayed.Format(time.DateOnly))
}

// IsGoingBack returns true if the user wants to go back to the game.
func (m RunTable) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m RunTable) IsQuitting() bool {
	return m.quitting
}

// RunRunTable shows the run table on its own.
func RunRunTable(store *storage.Store, player string, width, height int) error {
	m := NewRunTable(store, player, width, height)
	m.alone = true
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
