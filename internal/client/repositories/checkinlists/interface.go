package checkinlists

import (
	"context"

	"github.com/dmitrijs2005/gophscan/internal/client/models"
)

type Repository interface {
	// Get returns (nil, nil) for a list not in the cache.
	Get(ctx context.Context, event string, id int64) (*models.CheckInList, error)
	Put(ctx context.Context, event string, lists []models.CheckInList) error
	List(ctx context.Context, event string) ([]models.CheckInList, error)
	Clear(ctx context.Context, event string) error
}
