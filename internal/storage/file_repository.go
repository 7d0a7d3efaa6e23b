package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/sandeepkv93/todolist/internal/model"
)

// DefaultFileName is the data file used when no other path is configured.
const DefaultFileName = "todo_list.txt"

// FileRepository persists tasks in a line-oriented text file.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) (*FileRepository, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New("storage: file path is required")
	}
	return &FileRepository{path: trimmed}, nil
}

func (r *FileRepository) Path() string { return r.path }

// Save writes the whole list to a sibling temp file and renames it over the
// target, so a failed write never truncates existing data. The parent
// directory must already exist.
func (r *FileRepository) Save(ctx context.Context, tasks []model.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := EncodeTasks(&buf, tasks); err != nil {
		return fmt.Errorf("storage: encode tasks: %w", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, r.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Load decodes the file in full before returning anything.
func (r *FileRepository) Load(ctx context.Context) (LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return LoadResult{}, err
	}
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LoadResult{}, fmt.Errorf("%w: %s", ErrNotFound, r.path)
		}
		return LoadResult{}, err
	}
	defer f.Close()

	res, err := DecodeTasks(f)
	if err != nil {
		return LoadResult{}, fmt.Errorf("storage: read %s: %w", r.path, err)
	}
	return res, nil
}
