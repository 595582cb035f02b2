package revoked

import (
	"context"

	"github.com/dmitrijs2005/gophscan/internal/client/models"
)

// Repository caches the secrets the authority has revoked, per event.
type Repository interface {
	Contains(ctx context.Context, event, secret string) (bool, error)
	Put(ctx context.Context, event string, secrets []models.RevokedSecret) error
	Count(ctx context.Context, event string) (int, error)
	Clear(ctx context.Context, event string) error
}
