package events

import (
	"context"
	"database/sql"
	"errors"
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

func (r *SQLiteRepository) Get(ctx context.Context, slug string) (*models.Event, error) {
	var (
		ev                              models.Event
		dateFrom, dateTo, dateAdmission sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT slug, name, timezone, date_from, date_to, date_admission
		FROM events WHERE slug = ?
	`, slug).Scan(&ev.Slug, &ev.Name, &ev.Timezone, &dateFrom, &dateTo, &dateAdmission)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event[%s]: %w", slug, err)
	}

	from, err := dbx.ParseNullTime(dateFrom)
	if err != nil {
		return nil, fmt.Errorf("failed to get event[%s]: %w", slug, err)
	}
	if from != nil {
		ev.DateFrom = *from
	}
	if ev.DateTo, err = dbx.ParseNullTime(dateTo); err != nil {
		return nil, fmt.Errorf("failed to get event[%s]: %w", slug, err)
	}
	if ev.DateAdmission, err = dbx.ParseNullTime(dateAdmission); err != nil {
		return nil, fmt.Errorf("failed to get event[%s]: %w", slug, err)
	}

	keys, err := r.TrustedKeys(ctx, slug)
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		ev.ValidKeys = append(ev.ValidKeys, k.PEM)
	}
	return &ev, nil
}

// Put must run inside a transaction for the key replacement to be atomic.
func (r *SQLiteRepository) Put(ctx context.Context, ev *models.Event) error {
	var from sql.NullString
	if !ev.DateFrom.IsZero() {
		from = dbx.NullTimeString(&ev.DateFrom)
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (slug, name, timezone, date_from, date_to, date_admission)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			name = excluded.name,
			timezone = excluded.timezone,
			date_from = excluded.date_from,
			date_to = excluded.date_to,
			date_admission = excluded.date_admission
	`, ev.Slug, ev.Name, ev.Timezone, from, dbx.NullTimeString(ev.DateTo), dbx.NullTimeString(ev.DateAdmission))
	if err != nil {
		return fmt.Errorf("failed to put event[%s]: %w", ev.Slug, err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM valid_keys WHERE event_slug = ?`, ev.Slug); err != nil {
		return fmt.Errorf("failed to replace keys of event[%s]: %w", ev.Slug, err)
	}
	for i, pem := range ev.ValidKeys {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO valid_keys (event_slug, position, pem) VALUES (?, ?, ?)
		`, ev.Slug, i, pem)
		if err != nil {
			return fmt.Errorf("failed to store key %d of event[%s]: %w", i, ev.Slug, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) TrustedKeys(ctx context.Context, slug string) ([]models.TrustedKey, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT pem FROM valid_keys WHERE event_slug = ? ORDER BY position
	`, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys of event[%s]: %w", slug, err)
	}
	defer rows.Close()

	var keys []models.TrustedKey
	for rows.Next() {
		k := models.TrustedKey{EventSlug: slug}
		if err := rows.Scan(&k.PEM); err != nil {
			return nil, fmt.Errorf("failed to scan key row: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate key rows: %w", err)
	}
	return keys, nil
}
