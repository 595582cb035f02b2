// Package positions stores sold tickets (order positions) of an event.
package positions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophscan/internal/dbx"
	"github.com/dmitrijs2005/gophscan/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const columns = `id, event_slug, order_code, status, secret, item_id, variation_id, updated_at`

func (r *PostgresRepository) Upsert(ctx context.Context, p *models.OrderPosition) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO order_positions (`+columns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (event_slug, id) DO UPDATE SET
			order_code = EXCLUDED.order_code,
			status = EXCLUDED.status,
			secret = EXCLUDED.secret,
			item_id = EXCLUDED.item_id,
			variation_id = EXCLUDED.variation_id,
			updated_at = EXCLUDED.updated_at
	`, p.ID, p.EventSlug, p.OrderCode, p.Status, p.Secret, p.ItemID, p.VariationID, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert position[%d]: %w", p.ID, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (models.OrderPosition, error) {
	var p models.OrderPosition
	err := s.Scan(&p.ID, &p.EventSlug, &p.OrderCode, &p.Status, &p.Secret, &p.ItemID, &p.VariationID, &p.UpdatedAt)
	return p, err
}

func (r *PostgresRepository) GetBySecret(ctx context.Context, event, secret string) (*models.OrderPosition, error) {
	p, err := scan(r.db.QueryRowContext(ctx, `
		SELECT `+columns+` FROM order_positions WHERE event_slug = $1 AND secret = $2
	`, event, secret))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get position by secret: %w", err)
	}
	return &p, nil
}

func (r *PostgresRepository) Touch(ctx context.Context, event string, id int64, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE order_positions SET updated_at = $3 WHERE event_slug = $1 AND id = $2
	`, event, id, at)
	if err != nil {
		return fmt.Errorf("failed to touch position[%d]: %w", id, err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context, f models.Filter) ([]models.OrderPosition, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+columns+` FROM order_positions
		WHERE event_slug = $1 AND ($2::timestamptz IS NULL OR updated_at >= $2)
		ORDER BY id
		LIMIT $3 OFFSET $4
	`, f.Event, dbx.NullTime(f.ModifiedSince), f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var out []models.OrderPosition
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRepository) Count(ctx context.Context, f models.Filter) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM order_positions
		WHERE event_slug = $1 AND ($2::timestamptz IS NULL OR updated_at >= $2)
	`, f.Event, dbx.NullTime(f.ModifiedSince)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count positions: %w", err)
	}
	return n, nil
}
