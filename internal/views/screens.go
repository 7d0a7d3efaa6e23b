package views

import (
	"iter"
	"strconv"
	"strings"

	"github.com/sandeepkv93/todolist/internal/model"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
	"<", `\<`,
	">", `\>`,
)

// TaskChecklistMarkdown renders the list as a markdown task list, keeping
// the positional numbers users type at the prompt.
func TaskChecklistMarkdown(tasks iter.Seq2[int, model.Task]) string {
	var b strings.Builder
	b.WriteString("## Tasks\n\n")
	empty := true
	for n, t := range tasks {
		empty = false
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		b.WriteString("- ")
		b.WriteString(box)
		b.WriteString(" **")
		b.WriteString(strconv.Itoa(n))
		b.WriteString(".** ")
		b.WriteString(markdownEscaper.Replace(t.Description))
		b.WriteString("\n")
	}
	if empty {
		b.WriteString("_No tasks yet._\n")
	}
	return b.String()
}
