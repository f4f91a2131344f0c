package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bacon-invasion/internal/config"
	"github.com/vovakirdan/bacon-invasion/internal/levels"
	"github.com/vovakirdan/bacon-invasion/internal/storage"
)

func testOptions(t *testing.T) GameOptions {
	t.Helper()
	defs, err := levels.Embedded().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	cfg := config.DefaultGameConfig()
	cfg.Audio.Enabled = false
	return GameOptions{
		Config:     cfg,
		Levels:     defs,
		Difficulty: config.DifficultyNormal,
		Seed:       7,
		ScreenW:    80,
		ScreenH:    24,
	}
}

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m, err := NewModel(testOptions(t), store)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return out
}

// ticks feeds n ticks spaced dt apart, starting at base.
func ticks(t *testing.T, m Model, base time.Time, n int, dt time.Duration) Model {
	t.Helper()
	for i := range n {
		m = update(t, m, TickMsg(base.Add(time.Duration(i)*dt)))
	}
	return m
}

func TestModelWalksOnKey(t *testing.T) {
	m := newTestModel(t, nil)
	start := m.World().Player().Position().X

	m = update(t, m, runeKey("d"))
	m = ticks(t, m, time.Now(), 10, 30*time.Millisecond)

	if got := m.World().Player().Position().X; got <= start {
		t.Errorf("player x = %v, expected more than %v", got, start)
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t, nil)
	base := time.Now()

	m = update(t, m, runeKey("p"))
	m = ticks(t, m, base, 5, 30*time.Millisecond)
	if m.World().Clock() != 0 {
		t.Errorf("Clock() = %v while paused, expected 0", m.World().Clock())
	}

	m = update(t, m, runeKey("p"))
	m = ticks(t, m, base.Add(time.Second), 2, 30*time.Millisecond)
	if m.World().Clock() == 0 {
		t.Error("clock did not advance after unpausing")
	}
}

func TestModelKeypadPrompt(t *testing.T) {
	m := newTestModel(t, nil)
	door := m.World().ActiveLevel().Doors()[0]

	m.World().RequestCode(door)
	m = ticks(t, m, time.Now(), 1, 30*time.Millisecond)
	if !m.keypad.Focused() {
		t.Fatal("keypad not focused while a code is asked for")
	}

	// Game keys go to the keypad, not the player.
	start := m.World().Player().Position().X
	m = update(t, m, runeKey("d"))
	m = update(t, m, runeKey("1"))
	if m.keypad.Value() != "d1" {
		t.Errorf("keypad value = %q, expected %q", m.keypad.Value(), "d1")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := m.World().Prompt(); ok {
		t.Error("prompt still open after esc")
	}
	if m.keypad.Value() != "" || m.keypad.Focused() {
		t.Error("keypad not reset after esc")
	}
	m = ticks(t, m, time.Now(), 3, 30*time.Millisecond)
	if got := m.World().Player().Position().X; got != start {
		t.Errorf("player moved to %v from keypad input", got)
	}

	m.World().RequestCode(door)
	m = update(t, m, runeKey("0"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := m.World().Prompt(); ok {
		t.Error("prompt still open after enter")
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, store)

	// A run that never ticked is not stored.
	m.saveRun()
	if n, _ := store.RunCount(); n != 0 {
		t.Fatalf("RunCount() = %d before the first tick, expected 0", n)
	}

	m = ticks(t, m, time.Now(), 3, 30*time.Millisecond)
	m.World().Player().Damage(1000)
	m = ticks(t, m, time.Now(), 3, 30*time.Millisecond)

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Error("quit produced no command")
	}
	if !next.(Model).IsQuitting() {
		t.Error("IsQuitting() = false after q")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("stored %d runs, expected 1", len(runs))
	}
	if !runs[0].Died || runs[0].Level != "Cryo I" || runs[0].Seed != 7 {
		t.Errorf("stored run = %+v, expected a death in Cryo I with seed 7", runs[0])
	}
}

func TestModelRestartAfterDeath(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, store)
	m = ticks(t, m, time.Now(), 2, 30*time.Millisecond)

	// Restart is ignored while alive.
	first := m.World()
	m = update(t, m, runeKey("r"))
	if m.World() != first {
		t.Fatal("restart replaced a live run")
	}

	first.Player().Damage(1000)
	m = ticks(t, m, time.Now(), 1, 30*time.Millisecond)
	m = update(t, m, runeKey("r"))
	if m.World() == first || m.World().Over() {
		t.Error("restart did not start a fresh run")
	}
	if n, _ := store.RunCount(); n != 1 {
		t.Errorf("RunCount() = %d, expected the dead run only", n)
	}
}

func TestSessionShowsRunsAfterDeath(t *testing.T) {
	store := openStore(t)
	s, err := NewSessionModel(testOptions(t), store)
	if err != nil {
		t.Fatalf("NewSessionModel() failed: %v", err)
	}

	step := func(msg tea.Msg) {
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	step(runeKey("b"))
	if s.ShowingRuns() {
		t.Fatal("run table opened during a live run")
	}

	step(TickMsg(time.Now()))
	s.Game().World().Player().Damage(1000)
	step(TickMsg(time.Now().Add(30 * time.Millisecond)))

	step(runeKey("b"))
	if !s.ShowingRuns() {
		t.Fatal("run table did not open after death")
	}
	if got := len(s.runs.Runs()); got != 1 {
		t.Errorf("run table lists %d runs, expected 1", got)
	}

	// Ticks still reach the game while the table is open.
	clock := s.Game().World().Clock()
	step(TickMsg(time.Now().Add(60 * time.Millisecond)))
	if s.Game().World().Clock() <= clock {
		t.Error("game clock stalled behind the run table")
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.ShowingRuns() {
		t.Error("esc did not close the run table")
	}
}
