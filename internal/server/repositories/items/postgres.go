// Package items stores the products sold for an event.
package items

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
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

const columns = `id, event_slug, name, active, admission, variations, updated_at`

func (r *PostgresRepository) Upsert(ctx context.Context, it *models.Item) error {
	variations, err := json.Marshal(it.Variations)
	if err != nil {
		return fmt.Errorf("failed to encode item[%d]: %w", it.ID, err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO items (`+columns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (event_slug, id) DO UPDATE SET
			name = EXCLUDED.name,
			active = EXCLUDED.active,
			admission = EXCLUDED.admission,
			variations = EXCLUDED.variations,
			updated_at = EXCLUDED.updated_at
	`, it.ID, it.EventSlug, it.Name, it.Active, it.Admission, variations, it.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert item[%d]: %w", it.ID, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (models.Item, error) {
	var (
		it         models.Item
		variations []byte
	)
	if err := s.Scan(&it.ID, &it.EventSlug, &it.Name, &it.Active, &it.Admission, &variations, &it.UpdatedAt); err != nil {
		return it, err
	}
	if err := json.Unmarshal(variations, &it.Variations); err != nil {
		return it, fmt.Errorf("failed to decode item[%d]: %w", it.ID, err)
	}
	return it, nil
}

func (r *PostgresRepository) Get(ctx context.Context, event string, id int64) (*models.Item, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+columns+` FROM items WHERE event_slug = $1 AND id = $2
	`, event, id)
	it, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item[%d]: %w", id, err)
	}
	return &it, nil
}

func (r *PostgresRepository) List(ctx context.Context, f models.Filter) ([]models.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+columns+` FROM items
		WHERE event_slug = $1 AND ($2::timestamptz IS NULL OR updated_at >= $2)
		ORDER BY id
		LIMIT $3 OFFSET $4
	`, f.Event, dbx.NullTime(f.ModifiedSince), f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var out []models.Item
	for rows.Next() {
		it, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRepository) Count(ctx context.Context, f models.Filter) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM items
		WHERE event_slug = $1 AND ($2::timestamptz IS NULL OR updated_at >= $2)
	`, f.Event, dbx.NullTime(f.ModifiedSince)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return n, nil
}
