package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandeepkv93/todolist/internal/commands"
	"github.com/sandeepkv93/todolist/internal/model"
	"github.com/sandeepkv93/todolist/internal/storage"
	"github.com/sandeepkv93/todolist/internal/store"
	"go.uber.org/zap"
)

func (s *Session) addTask(line string) {
	task, err := s.tasks.Add(line)
	if err != nil {
		s.emit(KindError, "Task description cannot be empty.")
		return
	}
	s.logger.Debug("task added", zap.Int("count", s.tasks.Len()))
	s.emit(KindSuccess, fmt.Sprintf("Task '%s' added.", task.Description))
}

func (s *Session) viewTasks() {
	s.emit(KindBlank, "")
	s.emit(KindHeading, "--- Your Tasks ---")
	if s.tasks.Len() == 0 {
		s.emit(KindInfo, "No tasks in your list. Add some!")
		return
	}
	for n, t := range s.tasks.All() {
		kind := KindTask
		if t.Completed {
			kind = KindTaskDone
		}
		s.emit(kind, FormatListing(n, t))
	}
	s.emit(KindHeading, "------------------")
}

// FormatListing renders one row of the task listing, e.g. "1. [✓] Buy milk".
func FormatListing(n int, t model.Task) string {
	return fmt.Sprintf("%d. [%s] %s", n, t.Glyph(), t.Description)
}

func (s *Session) completeTask(line string) {
	n, ok := s.readTaskNumber(line)
	if !ok {
		return
	}
	task, err := s.tasks.Complete(n)
	switch {
	case errors.Is(err, store.ErrAlreadyComplete):
		s.emit(KindInfo, fmt.Sprintf("Task '%s' is already complete.", task.Description))
	case err != nil:
		s.emit(KindError, "Invalid task number.")
	default:
		s.logger.Debug("task completed", zap.Int("number", n))
		s.emit(KindSuccess, fmt.Sprintf("Task '%s' marked as complete.", task.Description))
	}
}

func (s *Session) deleteTask(line string) {
	n, ok := s.readTaskNumber(line)
	if !ok {
		return
	}
	removed, err := s.tasks.Delete(n)
	if err != nil {
		s.emit(KindError, "Invalid task number.")
		return
	}
	s.logger.Debug("task deleted", zap.Int("number", n), zap.Int("count", s.tasks.Len()))
	s.emit(KindSuccess, fmt.Sprintf("Task '%s' deleted.", removed.Description))
}

func (s *Session) readTaskNumber(line string) (int, bool) {
	n, err := commands.ParseTaskNumber(line, s.tasks.Len())
	if err == nil {
		return n, true
	}
	var ce *commands.CommandError
	if errors.As(err, &ce) && ce.Code == commands.ErrCodeOutOfRange {
		s.emit(KindError, "Invalid task number.")
	} else {
		s.emit(KindError, "Invalid input. Please enter a number.")
	}
	return 0, false
}

func (s *Session) save(ctx context.Context) {
	path := s.repo.Path()
	if err := s.repo.Save(ctx, s.tasks.Tasks()); err != nil {
		s.logger.Warn("save failed", zap.String("path", path), zap.Error(err))
		s.emit(KindError, fmt.Sprintf("Error saving tasks: %v", err))
		return
	}
	s.logger.Info("tasks saved", zap.String("path", path), zap.Int("count", s.tasks.Len()))
	s.emit(KindSuccess, fmt.Sprintf("Tasks saved to '%s' successfully!", path))
}

// load replaces the store only after the repository returned a complete
// result; on failure the current tasks stay as they are.
func (s *Session) load(ctx context.Context) {
	path := s.repo.Path()
	res, err := s.repo.Load(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		s.tasks.Replace(nil)
		s.logger.Info("no tasks file", zap.String("path", path))
		s.emit(KindInfo, fmt.Sprintf("No tasks file found at '%s'. Starting with an empty list.", path))
		return
	}
	if err != nil {
		s.logger.Warn("load failed", zap.String("path", path), zap.Error(err))
		if pathErr, ok := isPathError(err); ok {
			s.emit(KindError, fmt.Sprintf("Error loading tasks: %v", pathErr))
		} else {
			s.emit(KindError, fmt.Sprintf("An unexpected error occurred while loading tasks: %v", err))
		}
		return
	}
	for _, bad := range res.Skipped {
		s.logger.Warn("skipping malformed line", zap.String("path", path), zap.Int("line", bad.Number))
		s.emit(KindWarning, fmt.Sprintf("Warning: Skipping malformed line in file: %s", bad.Text))
	}
	s.tasks.Replace(res.Tasks)
	s.logger.Info("tasks loaded", zap.String("path", path), zap.Int("count", s.tasks.Len()))
	s.emit(KindSuccess, fmt.Sprintf("Tasks loaded from '%s' successfully!", path))
}
