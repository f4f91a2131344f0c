package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bacon-invasion/internal/audio"
	"github.com/vovakirdan/bacon-invasion/internal/config"
	"github.com/vovakirdan/bacon-invasion/internal/core"
	"github.com/vovakirdan/bacon-invasion/internal/levels"
	"github.com/vovakirdan/bacon-invasion/internal/storage"
	"github.com/vovakirdan/bacon-invasion/internal/world"
)

// GameOptions is everything needed to start a run.
type GameOptions struct {
	Config     config.GameConfig
	Levels     []levels.Level
	Difficulty config.DifficultyPreset
	Seed       int64  // 0 picks a time-based seed per run
	Player     string // SSH user, empty for local play
	Logger     *log.Logger
	Sink       audio.Sink
	ScreenW    int
	ScreenH    int
}

// NewWorld builds a fresh World and returns it with the seed it used.
func (o GameOptions) NewWorld() (*world.World, int64, error) {
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := o.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sink := o.Sink
	if sink == nil {
		sink = audio.Nop{}
	}
	w, err := world.New(o.Config, o.Levels,
		world.WithLogger(logger),
		world.WithSink(sink),
		world.WithSeed(seed),
	)
	if err != nil {
		return nil, 0, err
	}
	return w, seed, nil
}

// Model is the Bubble Tea model running one World.
type Model struct {
	opts      GameOptions
	world     *world.World
	seed      int64
	renderer  *Renderer
	store     *storage.Store
	keys      *KeyMapper
	keypad    textinput.Model
	input     core.InputFrame
	last      time.Time
	paused    bool
	quitting  bool
	wantsRuns bool
	saved     *bool // shared across value copies so a run is stored once
}

// NewModel creates a model and its first World.
func NewModel(opts GameOptions, store *storage.Store) (Model, error) {
	w, seed, err := opts.NewWorld()
	if err != nil {
		return Model{}, err
	}
	if opts.ScreenW <= 0 || opts.ScreenH <= 0 {
		opts.ScreenW, opts.ScreenH = 80, 24
	}

	keypad := textinput.New()
	keypad.Prompt = "Code: "
	keypad.Placeholder = "####"
	keypad.CharLimit = 8
	keypad.Width = 10

	return Model{
		opts:     opts,
		world:    w,
		seed:     seed,
		renderer: NewRenderer(core.NewScreen(opts.ScreenW, opts.ScreenH), opts.Config.View),
		store:    store,
		keys:     NewKeyMapper(),
		keypad:   keypad,
		input:    core.NewInputFrame(),
		saved:    new(bool),
	}, nil
}

// World returns the running World.
func (m Model) World() *world.World { return m.world }

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Config.Timing.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if _, ok := m.world.Prompt(); ok {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.ScreenW, m.opts.ScreenH = msg.Width, msg.Height
		m.renderer.Screen().Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input during play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "b":
		if m.world.Over() {
			m.wantsRuns = true
			return m, nil
		}
	}

	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case m.input.Has(core.ActionPause) && !m.world.Over():
		m.paused = !m.paused
	case m.input.Has(core.ActionRestart) && m.world.Over():
		return m.restart()
	}
	return m, nil
}

// handlePromptKey routes keys to the keypad while a door asks for a code.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.world.SubmitCode(strings.TrimSpace(m.keypad.Value()))
		m.closeKeypad()
		return m, nil
	case "esc":
		m.world.CancelPrompt()
		m.closeKeypad()
		return m, nil
	}

	var cmd tea.Cmd
	m.keypad, cmd = m.keypad.Update(msg)
	return m, cmd
}

func (m *Model) closeKeypad() {
	m.keypad.Reset()
	m.keypad.Blur()
	m.input.Clear()
}

// handleTick advances the World by the wall time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1 / float64(m.opts.Config.Timing.TickRate)
	if !m.last.IsZero() {
		dt = now.Sub(m.last).Seconds()
	}
	m.last = now

	if !m.paused {
		m.world.Step(dt, m.input)
	}
	m.input.Clear()

	if m.world.Over() {
		m.saveRun()
	}
	if _, ok := m.world.Prompt(); ok && !m.keypad.Focused() {
		m.keypad.Reset()
		return m, tea.Batch(m.keypad.Focus(), tickCmd(m.opts.Config.Timing.TickRate))
	}
	return m, tickCmd(m.opts.Config.Timing.TickRate)
}

// restart replaces the World with a new run.
func (m Model) restart() (tea.Model, tea.Cmd) {
	w, seed, err := m.opts.NewWorld()
	if err != nil {
		m.world.Logger().Error("cannot restart", "err", err)
		return m, nil
	}
	m.world, m.seed = w, seed
	m.saved = new(bool)
	m.paused = false
	m.input.Clear()
	m.world.Logger().Info("run restarted", "seed", seed)
	return m, nil
}

// saveRun stores the current run once. Runs that never started are skipped.
func (m Model) saveRun() {
	if m.store == nil || *m.saved || m.world.Clock() == 0 {
		return
	}
	*m.saved = true

	st := m.world.State()
	run := storage.Run{
		Player:     m.opts.Player,
		Level:      st.Level,
		Kills:      st.Kills,
		Duration:   time.Duration(st.Elapsed * float64(time.Second)),
		Died:       st.GameOver,
		Difficulty: string(m.opts.Difficulty),
		Seed:       m.seed,
		Items:      st.Items,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.world.Logger().Warn("cannot save run", "err", err)
		return
	}
	m.world.Logger().Info("run saved", "level", run.Level, "kills", run.Kills, "died", run.Died)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderer.Frame(m.world, m.paused)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".bacon", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("bacon_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.renderer.Screen().String()), 0o600)
}

var keypadStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("11")).
	Padding(0, 1)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Frame(m.world, m.paused)
	out := RenderScreen(m.renderer.Screen())

	if d, ok := m.world.Prompt(); ok {
		title := "Keypad"
		if t := d.Target(); t != "" {
			title += " to " + t
		}
		box := keypadStyle.Render(title + "\n" + m.keypad.View() + "\nenter submit  esc cancel")
		out = lipgloss.Place(m.opts.ScreenW, m.opts.ScreenH, lipgloss.Center, lipgloss.Center, box,
			lipgloss.WithWhitespaceChars(" "))
	}
	return out
}

// IsQuitting returns true if the player asked to quit.
func (m Model) IsQuitting() bool { return m.quitting }

// Run starts the Bubble Tea program for a local game.
func Run(opts GameOptions, store *storage.Store) error {
	session, err := NewSessionModel(opts, store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		session,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if m, ok := final.(SessionModel); ok {
		m.game.saveRun()
	}
	return err
}
