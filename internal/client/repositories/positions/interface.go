package positions

import (
	"context"

	"github.com/dmitrijs2005/gophscan/internal/client/models"
)

// Repository caches order positions and the check-in history that came
// with them.
type Repository interface {
	// GetBySecret returns (nil, nil) when no position carries secret.
	GetBySecret(ctx context.Context, event, secret string) (*models.OrderPosition, error)
	// Put upserts positions. A stored position's check-ins are replaced by
	// the ones it carries.
	Put(ctx context.Context, event string, positions []models.OrderPosition) error
	CheckIns(ctx context.Context, event, secret string) ([]models.CheckIn, error)
	Clear(ctx context.Context, event string) error
}
