package items

import (
	"context"

	"github.com/dmitrijs2005/gophscan/internal/server/models"
)

type Repository interface {
	Upsert(ctx context.Context, it *models.Item) error
	// Get returns nil, nil for an unknown item.
	Get(ctx context.Context, event string, id int64) (*models.Item, error)
	// List returns the page f selects, ordered by id.
	List(ctx context.Context, f models.Filter) ([]models.Item, error)
	Count(ctx context.Context, f models.Filter) (int, error)
}
