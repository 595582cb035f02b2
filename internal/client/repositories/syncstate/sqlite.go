package syncstate

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

func (r *SQLiteRepository) Get(ctx context.Context, event string, resource models.ResourceKind) (*models.SyncState, error) {
	var generatedAt, syncedAt string
	err := r.db.QueryRowContext(ctx, `
		SELECT generated_at, synced_at FROM sync_state
		WHERE event_slug = ? AND resource = ?
	`, event, string(resource)).Scan(&generatedAt, &syncedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sync state[%s/%s]: %w", event, resource, err)
	}

	at, err := dbx.ParseTime(syncedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get sync state[%s/%s]: %w", event, resource, err)
	}
	return &models.SyncState{
		EventSlug:   event,
		Resource:    resource,
		GeneratedAt: generatedAt,
		SyncedAt:    at,
	}, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, s models.SyncState) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sync_state (event_slug, resource, generated_at, synced_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(event_slug, resource) DO UPDATE SET
			generated_at = excluded.generated_at,
			synced_at = excluded.synced_at
	`, s.EventSlug, string(s.Resource), s.GeneratedAt, dbx.FormatTime(s.SyncedAt))
	if err != nil {
		return fmt.Errorf("failed to set sync state[%s/%s]: %w", s.EventSlug, s.Resource, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, event string, resource models.ResourceKind) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sync_state WHERE event_slug = ? AND resource = ?`, event, string(resource))
	if err != nil {
		return fmt.Errorf("failed to delete sync state[%s/%s]: %w", event, resource, err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, event string) ([]models.SyncState, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT resource, generated_at, synced_at FROM sync_state
		WHERE event_slug = ? ORDER BY resource
	`, event)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync state: %w", err)
	}
	defer rows.Close()

	var result []models.SyncState
	for rows.Next() {
		var resource, generatedAt, syncedAt string
		if err := rows.Scan(&resource, &generatedAt, &syncedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sync state row: %w", err)
		}
		at, err := dbx.ParseTime(syncedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sync state row: %w", err)
		}
		result = append(result, models.SyncState{
			EventSlug:   event,
			Resource:    models.ResourceKind(resource),
			GeneratedAt: generatedAt,
			SyncedAt:    at,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sync state rows: %w", err)
	}
	return result, nil
}
