package localcheckins

import (
	"context"

	"github.com/dmitrijs2005/gophscan/internal/client/models"
)

// Repository remembers the admissions this device made that the authority
// has confirmed. A downloaded position may carry the same check-in again;
// readers merge the two by list and date.
type Repository interface {
	// Record stores the uploaded request q. Recording a nonce twice is a
	// no-op.
	Record(ctx context.Context, q *models.QueuedRedemptionRequest) error
	ListBySecret(ctx context.Context, event, secret string) ([]models.CheckIn, error)
	Count(ctx context.Context, event string) (int, error)
}
