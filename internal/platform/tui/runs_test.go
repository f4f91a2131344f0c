package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bacon-invasion/internal/storage"
)

func TestRunTableTabs(t *testing.T) {
	store := openStore(t)
	for _, r := range []storage.Run{
		{Player: "alice", Level: "Cryo I", Kills: 1, Duration: time.Minute},
		{Player: "bob", Level: "Corridor", Kills: 5, Duration: 2 * time.Minute},
		{Player: "alice", Level: "Armory", Kills: 3, Duration: time.Minute},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	tests := []struct {
		name     string
		player   string
		presses  int
		tab      RunsTab
		first    string
		expected int
	}{
		{"best first", "", 0, TabTop, "Corridor", 3},
		{"recent", "", 1, TabRecent, "Armory", 3},
		{"wraps without a player", "", 2, TabTop, "Corridor", 3},
		{"mine", "alice", 2, TabMine, "Armory", 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewRunTable(store, tc.player, 100, 30)
			for range tc.presses {
				next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
				m = next.(RunTable)
			}
			if m.Tab() != tc.tab {
				t.Errorf("Tab() = %v, expected %v", m.Tab(), tc.tab)
			}
			runs := m.Runs()
			if len(runs) != tc.expected {
				t.Fatalf("Runs() = %d, expected %d", len(runs), tc.expected)
			}
			if runs[0].Level != tc.first {
				t.Errorf("first run = %s, expected %s", runs[0].Level, tc.first)
			}
		})
	}
}

func TestRunTableWithoutStore(t *testing.T) {
	m := NewRunTable(nil, "", 80, 24)
	if len(m.Runs()) != 0 {
		t.Errorf("Runs() = %d without a store, expected 0", len(m.Runs()))
	}
	if m.View() == "" {
		t.Error("View() is empty")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(RunTable)
	if !m.IsGoingBack() || cmd != nil {
		t.Error("esc in a session should only flag going back")
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"ab", 6, "  ab"},
		{"abc", 2, "abc"},
		{"", 4, "  "},
	}
	for _, tc := range tests {
		if got := centerText(tc.text, tc.width); got != tc.expected {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tc.text, tc.width, got, tc.expected)
		}
	}
}
