package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Model is the Bubble Tea model that displays frames produced by the game
// loop and forwards key presses back to it.
type Model struct {
	keys   KeyMap
	title  string
	frame  string
	events chan<- core.Event
	resize func(cols, rows int)
}

// NewModel creates a model that publishes key events on events and reports
// terminal resizes through resize.
func NewModel(title string, keys KeyMap, events chan<- core.Event, resize func(cols, rows int)) Model {
	return Model{
		keys:   keys,
		title:  title,
		events: events,
		resize: resize,
	}
}

// Init sets the terminal title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.publish(m.keys.MapKey(msg))

	case tea.WindowSizeMsg:
		if m.resize != nil {
			m.resize(msg.Width, msg.Height)
		}

	case frameMsg:
		m.frame = string(msg)
	}

	return m, nil
}

// publish never blocks the program; events beyond the buffer are dropped.
func (m Model) publish(ev core.Event) {
	select {
	case m.events <- ev:
	default:
	}
}

// View returns the last frame.
func (m Model) View() string {
	return m.frame
}
