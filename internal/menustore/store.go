package menustore

import (
	"context"

	"github.com/talkincode/fudofusion/internal/domain"
)

// MenuStore persists the menu collection
type MenuStore interface {
	// Load reads every item in file order
	Load(ctx context.Context) ([]domain.MenuItem, error)

	// LoadByCategory reads the menu grouped by normalized category
	LoadByCategory(ctx context.Context) (*domain.CategoryMenu, error)

	// Save overwrites the backing storage with items
	Save(ctx context.Context, items []domain.MenuItem) error

	// Path identifies the backing storage for messages
	Path() string
}

var _ MenuStore = (*CSVStore)(nil)
