package items

import (
	"context"

	"github.com/dmitrijs2005/gophscan/internal/client/models"
)

type Repository interface {
	// Get returns (nil, nil) for an item not in the cache.
	Get(ctx context.Context, event string, id int64) (*models.Item, error)
	Put(ctx context.Context, event string, items []models.Item) error
	List(ctx context.Context, event string) ([]models.Item, error)
	Clear(ctx context.Context, event string) error
}
