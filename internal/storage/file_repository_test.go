package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sandeepkv93/todolist/internal/model"
)

func setupRepo(t *testing.T) *FileRepository {
	t.Helper()
	repo, err := NewFileRepository(filepath.Join(t.TempDir(), DefaultFileName))
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo
}

func TestNewFileRepositoryRequiresPath(t *testing.T) {
	if _, err := NewFileRepository("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	cases := map[string][]model.Task{
		"empty": nil,
		"mixed": {
			{Description: "Buy milk", Completed: true},
			{Description: "Write report"},
			{Description: "third ✓ unicode"},
		},
	}
	for name, tasks := range cases {
		t.Run(name, func(t *testing.T) {
			repo := setupRepo(t)
			if err := repo.Save(ctx, tasks); err != nil {
				t.Fatalf("save: %v", err)
			}
			res, err := repo.Load(ctx)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if len(res.Skipped) != 0 {
				t.Fatalf("unexpected skipped lines: %+v", res.Skipped)
			}
			if len(tasks) == 0 && len(res.Tasks) == 0 {
				return
			}
			if diff := cmp.Diff(tasks, res.Tasks); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSaveOverwritesAndLeavesNoTempFile(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	if err := repo.Save(ctx, []model.Task{{Description: "a"}, {Description: "b"}}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.Save(ctx, []model.Task{{Description: "c", Completed: true}}); err != nil {
		t.Fatalf("second save: %v", err)
	}
	raw, err := os.ReadFile(repo.Path())
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(raw) != "c|True\n" {
		t.Fatalf("file content = %q", raw)
	}
	if _, err := os.Stat(repo.Path() + ".tmp"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestSaveMissingDirectoryFails(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	repo, err := NewFileRepository(filepath.Join(dir, "tasks.txt"))
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	err = repo.Save(context.Background(), []model.Task{{Description: "x"}})
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("expected *fs.PathError, got %T: %v", err, err)
	}
	if _, err := os.Stat(dir); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("save must not create the directory, stat err = %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	repo := setupRepo(t)
	_, err := repo.Load(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadSkipsMalformedLine(t *testing.T) {
	repo := setupRepo(t)
	if err := os.WriteFile(repo.Path(), []byte("Buy milk|False\nno separator\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	res, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]model.Task{{Description: "Buy milk"}}, res.Tasks); diff != "" {
		t.Fatalf("tasks mismatch (-want +got):\n%s", diff)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Text != "no separator" {
		t.Fatalf("unexpected skipped lines: %+v", res.Skipped)
	}
}

func TestLoadInvalidUTF8(t *testing.T) {
	repo := setupRepo(t)
	if err := os.WriteFile(repo.Path(), []byte("ok|True\n\xc3\x28|False\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err := repo.Load(context.Background())
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		t.Fatalf("encoding failure must not look like an I/O error: %v", err)
	}
}

func TestLoadDirectoryIsPathError(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileRepository(dir)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	_, err = repo.Load(context.Background())
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("expected *fs.PathError, got %T: %v", err, err)
	}
}

func TestCanceledContext(t *testing.T) {
	repo := setupRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := repo.Save(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("save error = %v", err)
	}
	if _, err := repo.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("load error = %v", err)
	}
}
