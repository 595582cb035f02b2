package events

import (
	"context"

	"github.com/dmitrijs2005/gophscan/internal/server/models"
)

type Repository interface {
	Upsert(ctx context.Context, ev *models.Event) error
	// Get returns nil, nil for an unknown slug.
	Get(ctx context.Context, slug string) (*models.Event, error)
}
