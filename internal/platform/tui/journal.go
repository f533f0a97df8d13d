package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// allBackends is the filter tab that shows every run.
const allBackends = "all"

// JournalKeyMap defines the key bindings for the run journal browser.
type JournalKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextBackend key.Binding
	PrevBackend key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextBackend, k.PrevBackend, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextBackend, k.PrevBackend, k.Quit},
	}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextBackend: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next backend"),
		),
		PrevBackend: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev backend"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// JournalModel is the Bubble Tea model for browsing recorded runs.
type JournalModel struct {
	runs     []storage.RunRecord
	backends []string // filter tabs, allBackends first
	cursor   int
	visible  []storage.RunRecord
	table    table.Model
	help     help.Model
	keys     JournalKeyMap
	width    int
	height   int
	quitting bool
}

// NewJournalModel creates a browser over runs, newest first.
func NewJournalModel(runs []storage.RunRecord, width, height int) JournalModel {
	backends := []string{allBackends}
	seen := make(map[string]bool)
	for _, r := range runs {
		if !seen[r.Backend] {
			seen[r.Backend] = true
			backends = append(backends, r.Backend)
		}
	}

	h := help.New()
	h.ShowAll = false

	m := JournalModel{
		runs:     runs,
		backends: backends,
		help:     h,
		keys:     DefaultJournalKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.applyFilter()
	return m
}

// createTable creates a new table sized to the terminal.
func (m *JournalModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Backend", Width: 9},
		{Title: "Ticks", Width: 8},
		{Title: "Overruns", Width: 9},
		{Title: "Bricks", Width: 8},
		{Title: "Errors", Width: 7},
		{Title: "Secs", Width: 7},
	}

	height := m.height - 8 // header, tabs, help and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Backend returns the active filter.
func (m JournalModel) Backend() string {
	return m.backends[m.cursor]
}

// Visible returns the runs passing the active filter.
func (m JournalModel) Visible() []storage.RunRecord {
	return m.visible
}

// applyFilter rebuilds the table rows for the active backend.
func (m *JournalModel) applyFilter() {
	want := m.Backend()
	m.visible = nil
	for _, r := range m.runs {
		if want == allBackends || r.Backend == want {
			m.visible = append(m.visible, r)
		}
	}

	rows := make([]table.Row, len(m.visible))
	for i, r := range m.visible {
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			r.Backend,
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.Overruns),
			fmt.Sprintf("%d/%d", r.BricksDestroyed, r.BricksTotal),
			fmt.Sprintf("%d", r.ErrorCount),
			fmt.Sprintf("%.1f", float64(r.DurationMs)/1000),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextBackend):
			m.cursor = (m.cursor + 1) % len(m.backends)
			m.applyFilter()
			return m, nil

		case key.Matches(msg, m.keys.PrevBackend):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.backends) - 1
			}
			m.applyFilter()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.applyFilter()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m JournalModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("RUN JOURNAL", m.width)))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.backends))
	for i, name := range m.backends {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(" " + name + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(m.visible) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		content = emptyStyle.Render("No runs recorded yet.\nPlay a session to record one!")
	} else {
		content = m.table.View()
	}
	b.WriteString(centerText(tableStyle.Render(content), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// centerText centers every line of text within width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunJournal shows the journal browser until the user quits.
func RunJournal(runs []storage.RunRecord, width, height int) error {
	p := tea.NewProgram(
		NewJournalModel(runs, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
