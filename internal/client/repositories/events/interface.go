package events

import (
	"context"

	"github.com/dmitrijs2005/gophscan/internal/client/models"
)

// Repository stores events together with their trusted keys.
type Repository interface {
	// Get returns (nil, nil) for an unknown event.
	Get(ctx context.Context, slug string) (*models.Event, error)
	// Put replaces the event and its key set.
	Put(ctx context.Context, ev *models.Event) error
	TrustedKeys(ctx context.Context, slug string) ([]models.TrustedKey, error)
}
