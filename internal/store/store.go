// Package store holds the ordered, in-memory task list for one session.
package store

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/sandeepkv93/todolist/internal/model"
)

var (
	ErrOutOfRange      = errors.New("store: task number out of range")
	ErrAlreadyComplete = errors.New("store: task already complete")
)

// Store is an ordered sequence of tasks addressed by 1-based position.
// Deleting a task shifts every later task down by one position.
// A Store is not safe for concurrent use.
type Store struct {
	tasks []model.Task
}

func New(tasks ...model.Task) *Store {
	return &Store{tasks: slices.Clone(tasks)}
}

func (s *Store) Len() int { return len(s.tasks) }

// Add appends an open task and returns it as stored.
func (s *Store) Add(description string) (model.Task, error) {
	task, err := model.NewTask(description)
	if err != nil {
		return model.Task{}, err
	}
	s.tasks = append(s.tasks, task)
	return task, nil
}

// All yields each task with its 1-based position. It can be ranged over any
// number of times and never mutates the store.
func (s *Store) All() iter.Seq2[int, model.Task] {
	return func(yield func(int, model.Task) bool) {
		for i, t := range s.tasks {
			if !yield(i+1, t) {
				return
			}
		}
	}
}

// Tasks returns a copy of the current sequence.
func (s *Store) Tasks() []model.Task {
	return slices.Clone(s.tasks)
}

// Get returns the task at 1-based position n.
func (s *Store) Get(n int) (model.Task, error) {
	if err := s.checkRange(n); err != nil {
		return model.Task{}, err
	}
	return s.tasks[n-1], nil
}

// Complete marks the task at position n done. Completing a finished task
// returns it together with ErrAlreadyComplete and changes nothing.
func (s *Store) Complete(n int) (model.Task, error) {
	if err := s.checkRange(n); err != nil {
		return model.Task{}, err
	}
	t := &s.tasks[n-1]
	if t.Completed {
		return *t, ErrAlreadyComplete
	}
	t.Completed = true
	return *t, nil
}

// Delete removes and returns the task at position n.
func (s *Store) Delete(n int) (model.Task, error) {
	if err := s.checkRange(n); err != nil {
		return model.Task{}, err
	}
	removed := s.tasks[n-1]
	s.tasks = slices.Delete(s.tasks, n-1, n)
	return removed, nil
}

// Replace swaps the whole sequence.
func (s *Store) Replace(tasks []model.Task) {
	s.tasks = slices.Clone(tasks)
}

func (s *Store) checkRange(n int) error {
	if n < 1 || n > len(s.tasks) {
		return fmt.Errorf("%w: %d (have %d)", ErrOutOfRange, n, len(s.tasks))
	}
	return nil
}
