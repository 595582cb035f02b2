package queue

import (
	"context"

	"github.com/dmitrijs2005/gophscan/internal/client/models"
)

// Repository is the durable FIFO of locally admitted redemptions. Only the
// validator appends and only the uploader deletes.
type Repository interface {
	// Append stores q and returns its id. Ids grow monotonically.
	Append(ctx context.Context, q *models.QueuedRedemptionRequest) (int64, error)
	// Oldest returns (nil, nil) when nothing is queued for event.
	Oldest(ctx context.Context, event string) (*models.QueuedRedemptionRequest, error)
	// Delete is idempotent.
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context, event string) (int, error)
	ListBySecret(ctx context.Context, event, secret string) ([]models.QueuedRedemptionRequest, error)
}
