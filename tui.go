package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mididump/dump"
	"mididump/midi"
)

var (
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fff"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888"))
)

// maxEntries bounds the scrollback kept in memory
const maxEntries = 500

type entry struct {
	line       string
	filterable bool
}

type midiMsg midi.TimedMessage

type model struct {
	port      string
	msgs      <-chan midi.TimedMessage
	formatter dump.Formatter
	notesOnly bool
	entries   []entry
	count     int
	height    int
	paused    bool
	quitting  bool
}

func newModel(port string, msgs <-chan midi.TimedMessage, f dump.Formatter) model {
	m := model{
		port:      port,
		msgs:      msgs,
		formatter: f,
		notesOnly: f.NotesOnly,
		height:    24,
	}
	// Filtering happens at render time so 'f' can toggle it live
	m.formatter.NotesOnly = false
	return m
}

func listenForMessage(msgs <-chan midi.TimedMessage) tea.Cmd {
	return func() tea.Msg {
		tm, ok := <-msgs
		if !ok {
			return tea.Quit()
		}
		return midiMsg(tm)
	}
}

func (m model) Init() tea.Cmd {
	return listenForMessage(m.msgs)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "f":
			m.notesOnly = !m.notesOnly

		case "p":
			m.paused = !m.paused
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height

	case midiMsg:
		if !m.paused {
			r := dump.Decode(midi.TimedMessage(msg).Msg)
			if line, ok := m.formatter.Line(midi.TimedMessage(msg).Time, r); ok {
				m.entries = append(m.entries, entry{line: line, filterable: r.Filterable})
				if len(m.entries) > maxEntries {
					m.entries = m.entries[len(m.entries)-maxEntries:]
				}
			}
			m.count++
		}
		// Keep draining the port
		return m, listenForMessage(m.msgs)
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	// Lines visible above the status and help rows
	visible := m.height - 3
	if visible < 1 {
		visible = 1
	}

	var rows []string
	for i := len(m.entries) - 1; i >= 0 && len(rows) < visible; i-- {
		e := m.entries[i]
		if m.notesOnly && e.filterable {
			continue
		}
		style := activeStyle
		if e.filterable {
			style = dimStyle
		}
		rows = append(rows, style.Render(e.line))
	}
	// Collected newest-first, shown oldest-first
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	state := "live"
	if m.paused {
		state = "paused"
	}
	filter := "all"
	if m.notesOnly {
		filter = "notes"
	}
	status := statusStyle.Render(fmt.Sprintf("%s  %d msgs  [%s] [%s]", m.port, m.count, state, filter))
	help := dimStyle.Render("f:filter  p:pause  q:quit")

	return fmt.Sprintf("%s\n%s\n%s\n", strings.Join(rows, "\n"), status, help)
}
