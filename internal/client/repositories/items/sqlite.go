package items

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

func (r *SQLiteRepository) Get(ctx context.Context, event string, id int64) (*models.Item, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT json_data FROM items WHERE event_slug = ? AND id = ?
	`, event, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item[%d]: %w", id, err)
	}

	var it models.Item
	if err := json.Unmarshal(data, &it); err != nil {
		return nil, fmt.Errorf("failed to decode item[%d]: %w", id, err)
	}
	return &it, nil
}

// Put upserts a page of items.
func (r *SQLiteRepository) Put(ctx context.Context, event string, items []models.Item) error {
	for _, it := range items {
		data, err := json.Marshal(it)
		if err != nil {
			return fmt.Errorf("failed to encode item[%d]: %w", it.ID, err)
		}
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO items (id, event_slug, json_data) VALUES (?, ?, ?)
			ON CONFLICT(event_slug, id) DO UPDATE SET json_data = excluded.json_data
		`, it.ID, event, string(data))
		if err != nil {
			return fmt.Errorf("failed to put item[%d]: %w", it.ID, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, event string) ([]models.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT json_data FROM items WHERE event_slug = ? ORDER BY id
	`, event)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var result []models.Item
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		var it models.Item
		if err := json.Unmarshal(data, &it); err != nil {
			return nil, fmt.Errorf("failed to decode item row: %w", err)
		}
		result = append(result, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate item rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context, event string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE event_slug = ?`, event); err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}
	return nil
}
