package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bacon-invasion/internal/storage"
)

// SessionModel switches between the game and the run table.
// This is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	game     Model
	runs     *RunTable
	store    *storage.Store
	player   string
	width    int
	height   int
	quitting bool
}

// NewSessionModel creates a session that starts straight into a run.
func NewSessionModel(opts GameOptions, store *storage.Store) (SessionModel, error) {
	game, err := NewModel(opts, store)
	if err != nil {
		return SessionModel{}, err
	}
	return SessionModel{
		game:   game,
		store:  store,
		player: opts.Player,
		width:  game.opts.ScreenW,
		height: game.opts.ScreenH,
	}, nil
}

// Game returns the game model.
func (m SessionModel) Game() Model { return m.game }

// ShowingRuns reports whether the run table is open.
func (m SessionModel) ShowingRuns() bool { return m.runs != nil }

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = wsm.Width, wsm.Height
		if m.runs != nil {
			next, _ := m.runs.Update(msg)
			table := next.(RunTable)
			m.runs = &table
		}
	}

	// Ticks keep flowing to the game so its loop survives the table.
	if _, ok := msg.(tea.KeyMsg); ok && m.runs != nil {
		return m.updateRuns(msg)
	}
	return m.updateGame(msg)
}

func (m SessionModel) updateRuns(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.runs.Update(msg)
	table := next.(RunTable)

	if table.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if table.IsGoingBack() {
		m.runs = nil
		return m, nil
	}
	m.runs = &table
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.wantsRuns {
		m.game.wantsRuns = false
		table := NewRunTable(m.store, m.player, m.width, m.height)
		m.runs = &table
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.runs != nil {
		return m.runs.View()
	}
	return m.game.View()
}
