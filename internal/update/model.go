package update

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/todolist/internal/session"
	"github.com/sandeepkv93/todolist/internal/views"
)

// transcriptLimit bounds the scrollback kept in memory.
const transcriptLimit = 500

type StatusBar struct {
	Text    string
	IsError bool
}

// Model is the terminal UI around a session. Typed lines answer the
// session's current prompt; its output accumulates in a scrollback pane next
// to a checklist of the current tasks.
type Model struct {
	Status   StatusBar
	Keys     GlobalKeyMap
	Quitting bool

	ctx        context.Context
	session    *session.Session
	styles     views.Styles
	transcript []string
	prompt     string
	checklist  string

	promptInput textinput.Model
	scrollback  viewport.Model
	helpModel   help.Model
}

func NewModel(ctx context.Context, s *session.Session) Model {
	m := Model{
		Keys:    DefaultKeyMap(),
		ctx:     ctx,
		session: s,
		styles:  views.NewStyles(lipgloss.DefaultRenderer()),
	}
	m.initBubbleComponents()
	m.apply(s.Start(ctx))
	return m
}

func (m *Model) initBubbleComponents() {
	m.promptInput = textinput.New()
	m.promptInput.CharLimit = 1024
	m.promptInput.Width = 52
	m.promptInput.Focus()

	m.scrollback = viewport.New(56, 18)
	m.helpModel = help.New()
}

// apply appends a session response to the transcript and refreshes the
// derived widgets.
func (m *Model) apply(resp session.Response) {
	for _, msg := range resp.Messages {
		m.transcript = append(m.transcript, m.styles.Message(msg))
		switch msg.Kind {
		case session.KindSuccess, session.KindError, session.KindWarning:
			m.Status = StatusBar{Text: msg.Text, IsError: msg.Kind == session.KindError}
		}
	}
	if len(m.transcript) > transcriptLimit {
		m.transcript = m.transcript[len(m.transcript)-transcriptLimit:]
	}
	m.prompt = resp.Prompt
	m.promptInput.Prompt = m.styles.Prompt.Render(resp.Prompt)
	m.checklist = views.RenderMarkdown(views.TaskChecklistMarkdown(m.session.Store().All()))
	m.scrollback.SetContent(strings.Join(m.transcript, "\n"))
	m.scrollback.GotoBottom()
}

// Transcript returns the rendered scrollback lines.
func (m Model) Transcript() []string {
	return append([]string(nil), m.transcript...)
}

func (m Model) Prompt() string { return m.prompt }
