// Package store persists the kanban board to a single JSON file
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/moby/sys/atomicwriter"

	"github.com/thenoetrevino/taskboard/internal/models"
)

// FileName is the name of the board file inside the home directory
const FileName = "tasks.json"

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// BoardStore reads and writes the board file. It keeps no state between calls:
// every Load and Save opens, reads or writes, and closes the file on its own.
type BoardStore struct {
	path string
}

// New returns a store backed by the file at path
func New(path string) *BoardStore {
	return &BoardStore{path: path}
}

// NewDefault returns a store backed by <home>/tasks.json
func NewDefault() (*BoardStore, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return New(path), nil
}

// DefaultPath returns <home>/tasks.json. A home directory that cannot be
// resolved is reported as ErrHomeDir; it is a startup problem for the caller
// to surface, not something Load or Save can recover from.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHomeDir, err)
	}
	if home == "" {
		return "", ErrHomeDir
	}
	return filepath.Join(home, FileName), nil
}

// Path returns the backing file path
func (s *BoardStore) Path() string {
	return s.path
}

// Load returns the board from disk. When the file does not exist yet the
// default board is written and returned. A file that exists but is unreadable
// or malformed is an error and is never replaced. Column and task lists in the
// result are never nil.
func (s *BoardStore) Load(ctx context.Context) (*models.KanbanData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s.seed(ctx)
		}
		return nil, ioError("read", s.path, err)
	}

	data, err := Decode(raw)
	if err != nil {
		return nil, parseError(s.path, err)
	}
	return data, nil
}

// Save replaces the board file with data, pretty-printed. The write goes to a
// temporary file in the same directory which is then renamed over the target,
// so a crash mid-write never leaves a truncated board behind. Nil and empty
// lists are both written as [], so Load returns data.Normalize().
func (s *BoardStore) Save(ctx context.Context, data *models.KanbanData) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := Encode(data)
	if err != nil {
		return ioError("write", s.path, fmt.Errorf("encode board: %w", err))
	}

	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return ioError("write", s.path, err)
	}
	if err := atomicwriter.WriteFile(s.path, content, filePerm); err != nil {
		return ioError("write", s.path, err)
	}
	return nil
}

// Reset overwrites the board file with the default board, whatever it holds
func (s *BoardStore) Reset(ctx context.Context) (*models.KanbanData, error) {
	return s.seed(ctx)
}

func (s *BoardStore) seed(ctx context.Context) (*models.KanbanData, error) {
	board := models.DefaultBoard()
	if err := s.Save(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}
