package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/todolist/internal/session"
)

type AppData struct {
	Header     string
	LeftPane   string
	RightPane  string
	StatusLine string
	StatusErr  bool
	Prompt     string
	Footer     string
}

// Styles colours session output. Built on a renderer bound to the output
// writer, so non-terminal writers receive the plain text unchanged.
type Styles struct {
	Heading lipgloss.Style
	Menu    lipgloss.Style
	Task    lipgloss.Style
	Done    lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Prompt  lipgloss.Style
}

func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		Heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Menu:    r.NewStyle(),
		Task:    r.NewStyle(),
		Done:    r.NewStyle().Foreground(lipgloss.Color("8")),
		Info:    r.NewStyle(),
		Success: r.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("9")),
		Prompt:  r.NewStyle().Bold(true),
	}
}

func (st Styles) Message(m session.Message) string {
	switch m.Kind {
	case session.KindBlank:
		return ""
	case session.KindHeading:
		return st.Heading.Render(m.Text)
	case session.KindMenu:
		return st.Menu.Render(m.Text)
	case session.KindTask:
		return st.Task.Render(m.Text)
	case session.KindTaskDone:
		return st.Done.Render(m.Text)
	case session.KindSuccess:
		return st.Success.Render(m.Text)
	case session.KindWarning:
		return st.Warning.Render(m.Text)
	case session.KindError:
		return st.Error.Render(m.Text)
	default:
		return st.Info.Render(m.Text)
	}
}

// Lines renders each message on its own line.
func (st Styles) Lines(msgs []session.Message) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, st.Message(m))
	}
	return out
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func RenderApp(data AppData) string {
	left := panelStyle.Width(58).Render(data.LeftPane)
	right := panelStyle.Width(40).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := statusStyle.Render(data.StatusLine)
	if data.StatusErr {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		row,
		status,
	}
	if data.Prompt != "" {
		lines = append(lines, data.Prompt)
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
