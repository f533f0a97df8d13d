package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestModelForwardsKeys(t *testing.T) {
	events := make(chan core.Event, 1)
	m := NewModel("Breakout", DefaultKeyMap(), events, nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Error("key handling should not issue commands")
	}
	select {
	case ev := <-events:
		if ev != core.KeyDownEvent(core.KeyEscape) {
			t.Errorf("forwarded %+v", ev)
		}
	default:
		t.Fatal("no event forwarded")
	}

	// full buffer drops instead of blocking
	events <- core.KeyDownEvent(core.KeyOther)
	updated.(Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if len(events) != 1 {
		t.Errorf("buffer length = %d, expected 1", len(events))
	}
}

func TestModelFramesAndResize(t *testing.T) {
	var cols, rows int
	m := NewModel("Breakout", DefaultKeyMap(), make(chan core.Event, 1), func(c, r int) {
		cols, rows = c, r
	})

	if m.Init() == nil {
		t.Error("Init should set the window title")
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if cols != 120 || rows != 40 {
		t.Errorf("resize reported %dx%d", cols, rows)
	}

	updated, _ = updated.(Model).Update(frameMsg("frame"))
	if got := updated.View(); got != "frame" {
		t.Errorf("View() = %q, expected %q", got, "frame")
	}
}
