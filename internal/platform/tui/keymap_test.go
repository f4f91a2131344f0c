package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bacon-invasion/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"a walks left", runeKey("a"), core.ActionLeft, false},
		{"arrow walks right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"s stops", runeKey("s"), core.ActionStop, false},
		{"up interacts", tea.KeyMsg{Type: tea.KeyUp}, core.ActionInteract, false},
		{"space fires", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire, false},
		{"tab cycles", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNextItem, false},
		{"shift+tab cycles back", tea.KeyMsg{Type: tea.KeyShiftTab}, core.ActionPrevItem, false},
		{"u uses", runeKey("u"), core.ActionUse, false},
		{"p pauses", runeKey("p"), core.ActionPause, false},
		{"r restarts", runeKey("r"), core.ActionRestart, false},
		{"q quits", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", runeKey("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), action, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("d"), &frame) {
		t.Error("MapKeyToFrame(d) reported quit")
	}
	km.MapKeyToFrame(runeKey("z"), &frame)

	if !frame.Has(core.ActionRight) {
		t.Error("frame missing ActionRight")
	}
	if frame.Has(core.ActionNone) {
		t.Error("unbound key set ActionNone")
	}
}
