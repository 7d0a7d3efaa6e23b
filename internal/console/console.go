// Package console drives a session over plain line-oriented I/O.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/todolist/internal/session"
	"github.com/sandeepkv93/todolist/internal/views"
)

// Run blocks on one line of input per prompt until the session exits or the
// input ends. End of input is treated like choosing exit without the
// farewell, and unsaved changes are dropped either way.
func Run(ctx context.Context, s *session.Session, in io.Reader, out io.Writer) error {
	st := views.NewStyles(lipgloss.NewRenderer(out))
	rd := bufio.NewReader(in)

	resp := s.Start(ctx)
	for {
		if err := write(out, st, resp); err != nil {
			return err
		}
		if resp.Exit {
			return nil
		}
		line, err := rd.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("console: read input: %w", err)
		}
		if err != nil && line == "" {
			_, err := fmt.Fprintln(out)
			return err
		}
		resp = s.Handle(ctx, trimNewline(line))
	}
}

// trimNewline drops one trailing "\n" or "\r\n".
func trimNewline(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

func write(out io.Writer, st views.Styles, resp session.Response) error {
	for _, line := range st.Lines(resp.Messages) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	if resp.Prompt != "" {
		if _, err := fmt.Fprint(out, st.Prompt.Render(resp.Prompt)); err != nil {
			return err
		}
	}
	return nil
}
