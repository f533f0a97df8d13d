package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Event
	}{
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyDownEvent(core.KeyEscape)},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.QuitEvent()},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeyDownEvent(core.KeySpace)},
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.KeyDownEvent(core.KeyOther)},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, core.KeyDownEvent(core.KeyOther)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.expected {
				t.Errorf("MapKey(%q) = %+v, expected %+v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestOnlyEscapeAndCloseQuit(t *testing.T) {
	km := DefaultKeyMap()
	quitting := 0
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEnter},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		if km.MapKey(msg).RequestsQuit() {
			quitting++
		}
	}
	if quitting != 2 {
		t.Errorf("%d keys requested quit, expected 2", quitting)
	}
}
