package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/store"
)

// NewTestStore returns a BoardStore backed by tasks.json in a fresh temp dir.
// The file does not exist yet, so the first Load seeds the default board.
func NewTestStore(t *testing.T) *store.BoardStore {
	t.Helper()
	return store.New(filepath.Join(t.TempDir(), store.FileName))
}

// NewSeededStore returns a BoardStore whose file already holds data
func NewSeededStore(t *testing.T, data *models.KanbanData) *store.BoardStore {
	t.Helper()
	s := NewTestStore(t)
	if err := s.Save(context.Background(), data); err != nil {
		t.Fatalf("Failed to seed test store: %v", err)
	}
	return s
}

// MemoryStore is an in-memory DataStore for tests. It hands out and keeps
// deep copies so callers can never alias its board.
type MemoryStore struct {
	mu sync.Mutex

	data *models.KanbanData

	// Injected failures
	LoadErr error
	SaveErr error

	// Tracking
	Loads int
	Saves int
}

// Compile-time verification that *MemoryStore implements store.DataStore
var _ store.DataStore = (*MemoryStore)(nil)

// NewMemoryStore creates a MemoryStore holding a copy of data
// (the default board when data is nil)
func NewMemoryStore(data *models.KanbanData) *MemoryStore {
	if data == nil {
		data = models.DefaultBoard()
	}
	return &MemoryStore{data: data.Clone()}
}

// Load returns a copy of the stored board
func (m *MemoryStore) Load(ctx context.Context) (*models.KanbanData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Loads++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.data.Clone(), nil
}

// Save replaces the stored board with a copy of data
func (m *MemoryStore) Save(ctx context.Context, data *models.KanbanData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.data = data.Clone()
	return nil
}

// Board returns a copy of the stored board without counting as a Load
func (m *MemoryStore) Board() *models.KanbanData {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data.Clone()
}

// TaskIDs lists the task IDs of a column in order, or nil if the column is missing
func TaskIDs(data *models.KanbanData, columnID string) []string {
	col, err := data.Column(columnID)
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(col.Tasks))
	for _, task := range col.Tasks {
		ids = append(ids, task.ID)
	}
	return ids
}

// SequentialIDs returns an ID generator yielding prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}

// WriteFile writes content to path, creating parent directories
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// ReadFile returns the content of path
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(raw)
}
