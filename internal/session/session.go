// Package session implements the menu-driven task operations as a state
// machine that consumes one line of input at a time. Front ends feed it lines
// and render the returned messages; the session itself does no terminal I/O.
package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/sandeepkv93/todolist/internal/commands"
	"github.com/sandeepkv93/todolist/internal/storage"
	"github.com/sandeepkv93/todolist/internal/store"
	"go.uber.org/zap"
)

type State int

const (
	AwaitingCommand State = iota
	AwaitingDescription
	AwaitingCompleteNumber
	AwaitingDeleteNumber
	Exited
)

func (s State) String() string {
	switch s {
	case AwaitingCommand:
		return "awaiting_command"
	case AwaitingDescription:
		return "awaiting_description"
	case AwaitingCompleteNumber:
		return "awaiting_complete_number"
	case AwaitingDeleteNumber:
		return "awaiting_delete_number"
	case Exited:
		return "exited"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type Kind string

const (
	KindBlank    Kind = "blank"
	KindHeading  Kind = "heading"
	KindMenu     Kind = "menu"
	KindTask     Kind = "task"
	KindTaskDone Kind = "task_done"
	KindInfo     Kind = "info"
	KindSuccess  Kind = "success"
	KindWarning  Kind = "warning"
	KindError    Kind = "error"
)

type Message struct {
	Kind Kind
	Text string
}

// Response is everything a front end shows after one step: the messages to
// print, then the prompt to wait on. Exit means the loop is over.
type Response struct {
	Messages []Message
	Prompt   string
	Exit     bool
}

type Session struct {
	tasks  *store.Store
	repo   storage.Repository
	logger *zap.Logger
	state  State

	pending []Message
}

func New(repo storage.Repository, tasks *store.Store, logger *zap.Logger) *Session {
	if tasks == nil {
		tasks = store.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{tasks: tasks, repo: repo, logger: logger}
}

func (s *Session) State() State        { return s.state }
func (s *Session) Store() *store.Store { return s.tasks }

// Start restores the saved list and returns the first menu.
func (s *Session) Start(ctx context.Context) Response {
	s.state = AwaitingCommand
	s.load(ctx)
	return s.flush()
}

// Handle consumes one line of input in the current state.
func (s *Session) Handle(ctx context.Context, line string) Response {
	switch s.state {
	case AwaitingCommand:
		s.handleChoice(ctx, line)
	case AwaitingDescription:
		s.addTask(line)
		s.state = AwaitingCommand
	case AwaitingCompleteNumber:
		s.completeTask(line)
		s.state = AwaitingCommand
	case AwaitingDeleteNumber:
		s.deleteTask(line)
		s.state = AwaitingCommand
	case Exited:
		return Response{Exit: true}
	}
	return s.flush()
}

func (s *Session) handleChoice(ctx context.Context, line string) {
	cmd, err := commands.Parse(line)
	if err != nil {
		s.logger.Debug("invalid menu choice", zap.String("input", line))
		s.emit(KindError, fmt.Sprintf("Invalid choice. Please enter a number between %s.", choiceWords()))
		return
	}
	s.logger.Debug("menu command", zap.String("type", string(cmd.Type)))
	err = commands.Execute(cmd, commands.Handlers{
		Add: func() error {
			s.state = AwaitingDescription
			return nil
		},
		View: func() error {
			s.viewTasks()
			return nil
		},
		Complete: func() error {
			s.viewTasks()
			if s.tasks.Len() > 0 {
				s.state = AwaitingCompleteNumber
			}
			return nil
		},
		Delete: func() error {
			s.viewTasks()
			if s.tasks.Len() > 0 {
				s.state = AwaitingDeleteNumber
			}
			return nil
		},
		Save: func() error {
			s.save(ctx)
			return nil
		},
		Load: func() error {
			s.load(ctx)
			return nil
		},
		Exit: func() error {
			s.emit(KindInfo, "Exiting To-Do List. Goodbye!")
			s.state = Exited
			return nil
		},
	})
	if err != nil {
		s.logger.Error("dispatch failed", zap.Error(err))
		s.emit(KindError, fmt.Sprintf("Invalid choice. Please enter a number between %s.", choiceWords()))
	}
}

func (s *Session) emit(kind Kind, text string) {
	s.pending = append(s.pending, Message{Kind: kind, Text: text})
}

// flush closes the step: whatever the operation printed, followed by the
// menu when the next input is a command choice.
func (s *Session) flush() Response {
	if s.state == AwaitingCommand {
		s.menu()
	}
	resp := Response{Messages: s.pending, Prompt: s.prompt(), Exit: s.state == Exited}
	s.pending = nil
	return resp
}

func (s *Session) prompt() string {
	switch s.state {
	case AwaitingCommand:
		return fmt.Sprintf("Enter your choice (%s): ", commands.ChoiceRange())
	case AwaitingDescription:
		return "Enter the task description: "
	case AwaitingCompleteNumber:
		return "Enter the number of the task to mark as complete: "
	case AwaitingDeleteNumber:
		return "Enter the number of the task to delete: "
	default:
		return ""
	}
}

func (s *Session) menu() {
	s.emit(KindBlank, "")
	s.emit(KindHeading, "--- To-Do List ---")
	for _, item := range commands.Menu {
		s.emit(KindMenu, item.Token+". "+item.Label)
	}
	s.emit(KindHeading, "-------------------------")
}

func choiceWords() string {
	first, last := commands.Menu[0].Token, commands.Menu[len(commands.Menu)-1].Token
	return first + " and " + last
}

func isPathError(err error) (*fs.PathError, bool) {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr, true
	}
	return nil, false
}
