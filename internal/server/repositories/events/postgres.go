// Package events stores the authority's events and their trusted keys.
package events

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

func (r *PostgresRepository) Upsert(ctx context.Context, ev *models.Event) error {
	keys, err := json.Marshal(ev.ValidKeys)
	if err != nil {
		return fmt.Errorf("failed to encode keys of event[%s]: %w", ev.Slug, err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO events (slug, name, timezone, date_from, date_to, date_admission, valid_keys, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			timezone = EXCLUDED.timezone,
			date_from = EXCLUDED.date_from,
			date_to = EXCLUDED.date_to,
			date_admission = EXCLUDED.date_admission,
			valid_keys = EXCLUDED.valid_keys,
			updated_at = EXCLUDED.updated_at
	`, ev.Slug, ev.Name, ev.Timezone, ev.DateFrom, dbx.NullTime(ev.DateTo), dbx.NullTime(ev.DateAdmission), keys, ev.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert event[%s]: %w", ev.Slug, err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, slug string) (*models.Event, error) {
	var (
		ev            models.Event
		to, admission sql.NullTime
		keys          []byte
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT slug, name, timezone, date_from, date_to, date_admission, valid_keys, updated_at
		FROM events WHERE slug = $1
	`, slug).Scan(&ev.Slug, &ev.Name, &ev.Timezone, &ev.DateFrom, &to, &admission, &keys, &ev.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event[%s]: %w", slug, err)
	}

	if to.Valid {
		ev.DateTo = &to.Time
	}
	if admission.Valid {
		ev.DateAdmission = &admission.Time
	}
	if err := json.Unmarshal(keys, &ev.ValidKeys); err != nil {
		return nil, fmt.Errorf("failed to decode keys of event[%s]: %w", slug, err)
	}
	return &ev, nil
}
