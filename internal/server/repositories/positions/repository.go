package positions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophscan/internal/server/models"
)

// Repository stores order positions without their check-ins; those live in
// the checkins repository.
type Repository interface {
	Upsert(ctx context.Context, p *models.OrderPosition) error
	// GetBySecret returns nil, nil when no position carries secret.
	GetBySecret(ctx context.Context, event, secret string) (*models.OrderPosition, error)
	// Touch bumps UpdatedAt so the position shows up in modified_since
	// listings.
	Touch(ctx context.Context, event string, id int64, at time.Time) error
	List(ctx context.Context, f models.Filter) ([]models.OrderPosition, error)
	Count(ctx context.Context, f models.Filter) (int, error)
}
