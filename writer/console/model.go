// Package console is a live, scrollable terminal writer built on bubbletea,
// in the same Model/Update/View idiom kingrea-The-Lattice uses for its
// interactive TUI (internal/tui/app.go), including its bubbles/list
// scrollable roster component. In embedded (miniJkind) mode it degrades to
// plain non-interactive line output instead of starting a full program,
// mirroring the original ConsoleWriter's miniJkind-aware constructor.
package console

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	unknownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// rosterItem is one line of the scrollable roster: a property (or group of
// properties) and the verdict event it last received.
type rosterItem struct {
	kind  string // "valid", "invalid", "unknown", "basestep"
	title string
	desc  string
}

func (i rosterItem) Title() string {
	switch i.kind {
	case "valid":
		return validStyle.Render(i.title)
	case "invalid":
		return invalidStyle.Render(i.title)
	case "unknown":
		return unknownStyle.Render(i.title)
	default:
		return i.title
	}
}

func (i rosterItem) Description() string { return i.desc }
func (i rosterItem) FilterValue() string { return i.title }

// rowMsg is sent into the running program whenever the Director reports a
// new event.
type rowMsg rosterItem

// quitMsg asks the program to render its final frame and exit.
type quitMsg struct{}

type model struct {
	roster list.Model
	done   bool
}

func newModel() model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "properties"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	return model{roster: l}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch t := msg.(type) {
	case rowMsg:
		cmd := m.roster.InsertItem(len(m.roster.Items()), rosterItem(t))
		return m, cmd
	case quitMsg:
		m.done = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.roster.SetSize(t.Width, t.Height-2)
		return m, nil
	case tea.KeyMsg:
		if t.String() == "ctrl+c" || t.String() == "q" {
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.roster, cmd = m.roster.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.done {
		return m.roster.View()
	}
	return m.roster.View() + "\n(press q to quit the live view; the run continues in the background)"
}

func formatRow(kind, title, format string, args ...interface{}) rowMsg {
	return rowMsg{kind: kind, title: title, desc: fmt.Sprintf(format, args...)}
}
