package checkins

import (
	"context"

	"github.com/dmitrijs2005/gophscan/internal/server/models"
)

type Repository interface {
	// Insert stores c and fills in c.ID. It returns false without error when
	// a check-in with the same non-empty nonce already exists.
	Insert(ctx context.Context, c *models.CheckIn) (bool, error)
	// GetByNonce returns nil, nil for an unseen nonce.
	GetByNonce(ctx context.Context, nonce string) (*models.CheckIn, error)
	ListByPosition(ctx context.Context, event string, positionID int64) ([]models.CheckIn, error)
	// ListByPositionRange returns the check-ins of positions with ids in
	// [fromID, toID], ordered by position and date.
	ListByPositionRange(ctx context.Context, event string, fromID, toID int64) ([]models.CheckIn, error)
}
