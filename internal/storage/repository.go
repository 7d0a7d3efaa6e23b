package storage

import (
	"context"
	"errors"

	"github.com/sandeepkv93/todolist/internal/model"
)

var ErrNotFound = errors.New("storage: not found")

type Repository interface {
	// Save replaces the persisted list with tasks.
	Save(ctx context.Context, tasks []model.Task) error
	// Load reads the persisted list. It returns ErrNotFound when nothing
	// has been saved yet.
	Load(ctx context.Context) (LoadResult, error)
	// Path names the backing location for user-facing messages.
	Path() string
}

// MalformedLine is an input line that was skipped during decoding.
type MalformedLine struct {
	Number int
	Text   string
}

type LoadResult struct {
	Tasks   []model.Task
	Skipped []MalformedLine
}
