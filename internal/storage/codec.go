package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/sandeepkv93/todolist/internal/model"
)

const (
	Separator = "|"

	statusTrue  = "True"
	statusFalse = "False"

	maxLineBytes = 1 << 20
)

// ErrInvalidEncoding reports a data file that is not UTF-8 text.
var ErrInvalidEncoding = errors.New("storage: invalid UTF-8")

// FormatLine renders a task as "description|True" or "description|False".
func FormatLine(t model.Task) string {
	status := statusFalse
	if t.Completed {
		status = statusTrue
	}
	return t.Description + Separator + status
}

// ParseLine decodes one trimmed, non-empty line, splitting on the first
// separator. Only "true" in any case is a completed task; any other status
// token reads as open, so "a|b|True" is the open task "a".
func ParseLine(line string) (model.Task, bool) {
	desc, status, ok := strings.Cut(line, Separator)
	if !ok {
		return model.Task{}, false
	}
	return model.Task{
		Description: desc,
		Completed:   strings.EqualFold(status, "true"),
	}, true
}

func EncodeTasks(w io.Writer, tasks []model.Task) error {
	bw := bufio.NewWriter(w)
	for _, t := range tasks {
		if _, err := bw.WriteString(FormatLine(t) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodeTasks reads every line of r. Blank lines are ignored and lines
// without a separator are reported in Skipped instead of failing the decode.
func DecodeTasks(r io.Reader) (LoadResult, error) {
	var out LoadResult
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	n := 0
	for sc.Scan() {
		n++
		if !utf8.Valid(sc.Bytes()) {
			return LoadResult{}, fmt.Errorf("decode line %d: %w", n, ErrInvalidEncoding)
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		task, ok := ParseLine(line)
		if !ok {
			out.Skipped = append(out.Skipped, MalformedLine{Number: n, Text: line})
			continue
		}
		out.Tasks = append(out.Tasks, task)
	}
	if err := sc.Err(); err != nil {
		return LoadResult{}, fmt.Errorf("decode line %d: %w", n+1, err)
	}
	return out, nil
}
