package checkinlists

import (
	"context"
	"database/sql"
	"encoding/json"
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

func (r *SQLiteRepository) Get(ctx context.Context, event string, id int64) (*models.CheckInList, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT json_data FROM checkin_lists WHERE event_slug = ? AND id = ?
	`, event, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get check-in list[%d]: %w", id, err)
	}

	var l models.CheckInList
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to decode check-in list[%d]: %w", id, err)
	}
	return &l, nil
}

// Put upserts a page of check-in lists.
func (r *SQLiteRepository) Put(ctx context.Context, event string, lists []models.CheckInList) error {
	for _, l := range lists {
		data, err := json.Marshal(l)
		if err != nil {
			return fmt.Errorf("failed to encode check-in list[%d]: %w", l.ID, err)
		}
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO checkin_lists (id, event_slug, json_data) VALUES (?, ?, ?)
			ON CONFLICT(event_slug, id) DO UPDATE SET json_data = excluded.json_data
		`, l.ID, event, string(data))
		if err != nil {
			return fmt.Errorf("failed to put check-in list[%d]: %w", l.ID, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, event string) ([]models.CheckInList, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT json_data FROM checkin_lists WHERE event_slug = ? ORDER BY id
	`, event)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-in lists: %w", err)
	}
	defer rows.Close()

	var result []models.CheckInList
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan check-in list row: %w", err)
		}
		var l models.CheckInList
		if err := json.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("failed to decode check-in list row: %w", err)
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate check-in list rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context, event string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM checkin_lists WHERE event_slug = ?`, event); err != nil {
		return fmt.Errorf("failed to clear check-in lists: %w", err)
	}
	return nil
}
