package revoked

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophscan/internal/client/models"
	"github.com/dmitrijs2005/gophscan/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Contains(ctx context.Context, event, secret string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM revoked_secrets WHERE event_slug = ? AND secret = ?
	`, event, secret).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to look up revoked secret: %w", err)
	}
	return n > 0, nil
}

// Put appends secrets; a secret already present is replaced.
func (r *SQLiteRepository) Put(ctx context.Context, event string, secrets []models.RevokedSecret) error {
	for _, s := range secrets {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO revoked_secrets (id, event_slug, secret) VALUES (?, ?, ?)
		`, s.ID, event, s.Secret)
		if err != nil {
			return fmt.Errorf("failed to put revoked secret[%d]: %w", s.ID, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) Count(ctx context.Context, event string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM revoked_secrets WHERE event_slug = ?`, event).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count revoked secrets: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context, event string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM revoked_secrets WHERE event_slug = ?`, event); err != nil {
		return fmt.Errorf("failed to clear revoked secrets: %w", err)
	}
	return nil
}
