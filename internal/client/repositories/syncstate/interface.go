package syncstate

import (
	"context"

	"github.com/dmitrijs2005/gophscan/internal/client/models"
)

// Repository keeps one SyncState per (event, resource).
type Repository interface {
	// Get returns (nil, nil) when the resource was never synced.
	Get(ctx context.Context, event string, resource models.ResourceKind) (*models.SyncState, error)
	Set(ctx context.Context, state models.SyncState) error
	Delete(ctx context.Context, event string, resource models.ResourceKind) error
	List(ctx context.Context, event string) ([]models.SyncState, error)
}
