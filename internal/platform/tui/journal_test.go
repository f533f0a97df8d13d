package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/storage"
)

func sampleRuns() []storage.RunRecord {
	return []storage.RunRecord{
		{ID: 3, Backend: "tui", Ticks: 900, BricksDestroyed: 12, BricksTotal: 112},
		{ID: 2, Backend: "headless", Ticks: 301, BricksDestroyed: 4, BricksTotal: 112},
		{ID: 1, Backend: "tui", Ticks: 40, BricksTotal: 112},
	}
}

func TestJournalFilterCycle(t *testing.T) {
	m := NewJournalModel(sampleRuns(), 100, 30)

	if m.Backend() != "all" || len(m.Visible()) != 3 {
		t.Fatalf("initial filter = %q with %d runs", m.Backend(), len(m.Visible()))
	}

	tab := tea.KeyMsg{Type: tea.KeyTab}
	expected := []struct {
		backend string
		count   int
	}{
		{"tui", 2},
		{"headless", 1},
		{"all", 3},
	}
	for _, e := range expected {
		updated, _ := m.Update(tab)
		m = updated.(JournalModel)
		if m.Backend() != e.backend || len(m.Visible()) != e.count {
			t.Errorf("filter = %q with %d runs, expected %q with %d",
				m.Backend(), len(m.Visible()), e.backend, e.count)
		}
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := updated.(JournalModel).Backend(); got != "headless" {
		t.Errorf("shift+tab from all should wrap to the last backend, got %q", got)
	}
}

func TestJournalQuit(t *testing.T) {
	m := NewJournalModel(sampleRuns(), 100, 30)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit the program")
	}
	if updated.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestJournalView(t *testing.T) {
	view := NewJournalModel(sampleRuns(), 100, 30).View()
	for _, want := range []string{"RUN JOURNAL", "headless", "12/112"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}

	empty := NewJournalModel(nil, 100, 30).View()
	if !strings.Contains(empty, "No runs recorded yet.") {
		t.Error("empty journal should say so")
	}
}
