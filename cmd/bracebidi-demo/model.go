package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/bracebidi/bidi"
	"github.com/iw2rmb/bracebidi/editor"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

type model struct {
	editor editor.Model
}

func newModel(opts options) model {
	cfg := editor.Config{
		Text:         opts.text,
		ShowLineNums: opts.lineNumbers,
		Style:        editor.DefaultStyle(),
		Direction:    opts.direction,
	}
	return model{editor: editor.New(cfg)}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Last row is the status line.
		m.editor = m.editor.SetSize(msg.Width, msg.Height-1)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.editor.View() + "\n" + statusStyle.Render(statusLine(m.editor))
}

func statusLine(ed editor.Model) string {
	cur := ed.Buffer().Cursor()
	return fmt.Sprintf("%d:%d  ltr %s  ctrl+q quits", cur.Row+1, cur.Col+1, formatRanges(ed.Ranges()))
}

func formatRanges(ranges []bidi.Range) string {
	if len(ranges) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		parts = append(parts, fmt.Sprintf("[%d,%d)", r.Start, r.End))
	}
	return strings.Join(parts, " ")
}
