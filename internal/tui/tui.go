// Package tui provides a Bubble Tea terminal user interface for playlist-lab.
//
// The TUI is only a caller: every action goes through the command
// package into a session, one message at a time, inside Bubble Tea's
// update loop.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/playlist-lab/internal/command"
	"github.com/handiism/playlist-lab/internal/playlist"
	"github.com/handiism/playlist-lab/internal/session"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4A90E2")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	currentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E2784A"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)
)

// maxLogs is how many command results stay on screen.
const maxLogs = 10

// LogEntry is one command and its result.
type LogEntry struct {
	Message string
	IsError bool
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	session *session.Session
	input   textinput.Model
	logs    []LogEntry

	width  int
	height int
}

// NewModel creates a TUI model around s.
func NewModel(s *session.Session) Model {
	ti := textinput.New()
	ti.Placeholder = `add "Song name" 5 rock`
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60

	return Model{
		session: s,
		input:   ti,
		logs:    make([]LogEntry, 0),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			line := m.input.Value()
			m.input.SetValue("")
			m.run(line)
			return m, nil

		case "ctrl+n":
			m.run("next")
			return m, nil

		case "ctrl+p":
			m.run("prev")
			return m, nil

		case "ctrl+z":
			m.run("undo")
			return m, nil

		case "ctrl+r":
			m.run("recommend")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// run executes one command line and records the outcome.
func (m *Model) run(line string) {
	out, err := command.Exec(m.session, line)
	switch {
	case errors.Is(err, command.ErrEmpty):
		return
	case err != nil:
		m.addLog(LogEntry{Message: err.Error(), IsError: true})
	default:
		m.addLog(LogEntry{Message: out})
	}
}

func (m *Model) addLog(entry LogEntry) {
	m.logs = append(m.logs, entry)
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("♪ Playlist Lab"))
	b.WriteString("\n")

	b.WriteString(m.viewState())
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("Rating tree:"))
	b.WriteString("\n")
	if lines := renderTree(m.session.TreeRoot(), maxTreeLines); len(lines) > 0 {
		b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
	} else {
		b.WriteString(dimStyle.Render("  (empty)"))
	}
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("Command:"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewState() string {
	var b strings.Builder

	current := "None"
	if song, ok := m.session.Current(); ok {
		current = song.String()
	}
	b.WriteString(infoStyle.Render("Current Song: "))
	b.WriteString(currentStyle.Render(current))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render("Playlist: "))
	pos := m.session.CurrentPosition()
	songs := m.session.Songs()
	parts := make([]string, len(songs))
	for i, song := range songs {
		if i == pos {
			parts[i] = currentStyle.Render(song.Name)
		} else {
			parts[i] = song.Name
		}
	}
	b.WriteString("[" + strings.Join(parts, " ⇄ ") + "]")
	b.WriteString("\n")

	b.WriteString(infoStyle.Render("Playback History: "))
	b.WriteString(command.FormatList(m.session.History()))

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		if log.IsError {
			b.WriteString(errorStyle.Render("✗ " + log.Message))
		} else {
			b.WriteString(infoStyle.Render("› " + log.Message))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	return fmt.Sprintf("enter: run • ctrl+n/ctrl+p: %s/%s • ctrl+z: undo • ctrl+r: recommend • esc: quit",
		playlist.Next, playlist.Prev)
}

// Run starts the TUI application on s.
func Run(s *session.Session) error {
	p := tea.NewProgram(NewModel(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
