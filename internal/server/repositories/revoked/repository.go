package revoked

import (
	"context"

	"github.com/dmitrijs2005/gophscan/internal/server/models"
)

type Repository interface {
	// Upsert revokes s.Secret for s.EventSlug and fills in s.ID. Revoking a
	// secret again only bumps its UpdatedAt.
	Upsert(ctx context.Context, s *models.RevokedSecret) error
	IsRevoked(ctx context.Context, event, secret string) (bool, error)
	List(ctx context.Context, f models.Filter) ([]models.RevokedSecret, error)
	Count(ctx context.Context, f models.Filter) (int, error)
}
