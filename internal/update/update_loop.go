package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todolist/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(typed, m.Keys.Quit):
			m.Quitting = true
			return m, tea.Quit
		case key.Matches(typed, m.Keys.Submit):
			return m.submit()
		case key.Matches(typed, m.Keys.Up), key.Matches(typed, m.Keys.Down):
			var cmd tea.Cmd
			m.scrollback, cmd = m.scrollback.Update(typed)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.resize(typed.Width, typed.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	return m, cmd
}

// submit hands the typed line to the session, echoing it after its prompt
// the way a terminal would.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.promptInput.Value()
	m.promptInput.Reset()
	if m.prompt != "" {
		m.transcript = append(m.transcript, m.prompt+line)
	}
	resp := m.session.Handle(m.ctx, line)
	m.apply(resp)
	if resp.Exit {
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	left := width*3/5 - 4
	if left < 20 {
		left = 20
	}
	body := height - 8
	if body < 5 {
		body = 5
	}
	m.scrollback.Width = left
	m.scrollback.Height = body
	m.promptInput.Width = left
	m.helpModel.Width = width
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	status := ""
	if m.Status.Text != "" {
		status = fmt.Sprintf("status: %s", m.Status.Text)
	}
	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("todo | tasks: %d | %s", m.session.Store().Len(), m.session.State()),
		LeftPane:   m.scrollback.View(),
		RightPane:  m.checklist,
		StatusLine: status,
		StatusErr:  m.Status.IsError,
		Prompt:     m.promptInput.View(),
		Footer:     m.helpModel.View(m.Keys),
	})
}
