package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyMap defines the terminal key bindings.
type KeyMap struct {
	Quit   key.Binding // closes the session like a window close
	Escape key.Binding
	Space  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Escape, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Escape, k.Quit, k.Space}}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "close"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Space: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "unused"),
		),
	}
}

// MapKey translates a key message to a platform event.
// Terminals report no key releases, so every key becomes a KeyDown.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Event {
	switch {
	case key.Matches(msg, k.Quit):
		return core.QuitEvent()
	case key.Matches(msg, k.Escape):
		return core.KeyDownEvent(core.KeyEscape)
	case key.Matches(msg, k.Space):
		return core.KeyDownEvent(core.KeySpace)
	}
	return core.KeyDownEvent(core.KeyOther)
}
