// Package revoked stores ticket secrets invalidated after issuance.
package revoked

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophscan/internal/dbx"
	"github.com/dmitrijs2005/gophscan/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, s *models.RevokedSecret) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO revoked_secrets (event_slug, secret, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (event_slug, secret) DO UPDATE SET updated_at = EXCLUDED.updated_at
		RETURNING id
	`, s.EventSlug, s.Secret, s.UpdatedAt).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("failed to revoke secret: %w", err)
	}
	return nil
}

func (r *PostgresRepository) IsRevoked(ctx context.Context, event, secret string) (bool, error) {
	var found bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM revoked_secrets WHERE event_slug = $1 AND secret = $2)
	`, event, secret).Scan(&found)
	if err != nil {
		return false, fmt.Errorf("failed to look up revocation: %w", err)
	}
	return found, nil
}

func (r *PostgresRepository) List(ctx context.Context, f models.Filter) ([]models.RevokedSecret, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, event_slug, secret, updated_at FROM revoked_secrets
		WHERE event_slug = $1 AND ($2::timestamptz IS NULL OR updated_at >= $2)
		ORDER BY id
		LIMIT $3 OFFSET $4
	`, f.Event, dbx.NullTime(f.ModifiedSince), f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list revoked secrets: %w", err)
	}
	defer rows.Close()

	var out []models.RevokedSecret
	for rows.Next() {
		var s models.RevokedSecret
		if err := rows.Scan(&s.ID, &s.EventSlug, &s.Secret, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRepository) Count(ctx context.Context, f models.Filter) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM revoked_secrets
		WHERE event_slug = $1 AND ($2::timestamptz IS NULL OR updated_at >= $2)
	`, f.Event, dbx.NullTime(f.ModifiedSince)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count revoked secrets: %w", err)
	}
	return n, nil
}
