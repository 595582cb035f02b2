// Package checkinlists stores the admission policies of an event's scan
// points.
package checkinlists

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

const columns = `id, event_slug, name, all_products, limit_products, include_pending,
	allow_multiple_entries, allow_entry_after_exit, rules, updated_at`

func (r *PostgresRepository) Upsert(ctx context.Context, l *models.CheckInList) error {
	limit, err := json.Marshal(l.LimitProducts)
	if err != nil {
		return fmt.Errorf("failed to encode list[%d]: %w", l.ID, err)
	}
	var rules any
	if len(l.Rules) > 0 {
		rules = []byte(l.Rules)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO checkin_lists (`+columns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (event_slug, id) DO UPDATE SET
			name = EXCLUDED.name,
			all_products = EXCLUDED.all_products,
			limit_products = EXCLUDED.limit_products,
			include_pending = EXCLUDED.include_pending,
			allow_multiple_entries = EXCLUDED.allow_multiple_entries,
			allow_entry_after_exit = EXCLUDED.allow_entry_after_exit,
			rules = EXCLUDED.rules,
			updated_at = EXCLUDED.updated_at
	`, l.ID, l.EventSlug, l.Name, l.AllProducts, limit, l.IncludePending,
		l.AllowMultipleEntries, l.AllowEntryAfterExit, rules, l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert list[%d]: %w", l.ID, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (models.CheckInList, error) {
	var (
		l            models.CheckInList
		limit, rules []byte
	)
	if err := s.Scan(&l.ID, &l.EventSlug, &l.Name, &l.AllProducts, &limit, &l.IncludePending,
		&l.AllowMultipleEntries, &l.AllowEntryAfterExit, &rules, &l.UpdatedAt); err != nil {
		return l, err
	}
	if err := json.Unmarshal(limit, &l.LimitProducts); err != nil {
		return l, fmt.Errorf("failed to decode list[%d]: %w", l.ID, err)
	}
	if len(rules) > 0 {
		l.Rules = json.RawMessage(rules)
	}
	return l, nil
}

func (r *PostgresRepository) Get(ctx context.Context, event string, id int64) (*models.CheckInList, error) {
	l, err := scan(r.db.QueryRowContext(ctx, `
		SELECT `+columns+` FROM checkin_lists WHERE event_slug = $1 AND id = $2
	`, event, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get list[%d]: %w", id, err)
	}
	return &l, nil
}

func (r *PostgresRepository) List(ctx context.Context, f models.Filter) ([]models.CheckInList, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+columns+` FROM checkin_lists
		WHERE event_slug = $1 AND ($2::timestamptz IS NULL OR updated_at >= $2)
		ORDER BY id
		LIMIT $3 OFFSET $4
	`, f.Event, dbx.NullTime(f.ModifiedSince), f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-in lists: %w", err)
	}
	defer rows.Close()

	var out []models.CheckInList
	for rows.Next() {
		l, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRepository) Count(ctx context.Context, f models.Filter) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM checkin_lists
		WHERE event_slug = $1 AND ($2::timestamptz IS NULL OR updated_at >= $2)
	`, f.Event, dbx.NullTime(f.ModifiedSince)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count check-in lists: %w", err)
	}
	return n, nil
}
