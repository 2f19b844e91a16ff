package store

import (
	"context"

	"github.com/thenoetrevino/taskboard/internal/models"
)

// DataStore is the load/save contract shared by the file-backed BoardStore and
// the daemon client. Consumers depend on this interface so either backend can
// sit behind the board service.
type DataStore interface {
	Load(ctx context.Context) (*models.KanbanData, error)
	Save(ctx context.Context, data *models.KanbanData) error
}

// Compile-time verification that *BoardStore implements DataStore
var _ DataStore = (*BoardStore)(nil)
