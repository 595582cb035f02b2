package checkinlists

import (
	"context"

	"github.com/dmitrijs2005/gophscan/internal/server/models"
)

type Repository interface {
	Upsert(ctx context.Context, l *models.CheckInList) error
	// Get returns nil, nil for an unknown list.
	Get(ctx context.Context, event string, id int64) (*models.CheckInList, error)
	List(ctx context.Context, f models.Filter) ([]models.CheckInList, error)
	Count(ctx context.Context, f models.Filter) (int, error)
}
