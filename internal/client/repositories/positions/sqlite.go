package positions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophscan/internal/client/models"
	"github.com/dmitrijs2005/gophscan/internal/common"
	"github.com/dmitrijs2005/gophscan/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetBySecret(ctx context.Context, event, secret string) (*models.OrderPosition, error) {
	var (
		p         models.OrderPosition
		variation sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, order_code, status, secret, item_id, variation_id
		FROM order_positions WHERE event_slug = ? AND secret = ?
	`, event, secret).Scan(&p.ID, &p.OrderCode, &p.Status, &p.Secret, &p.ItemID, &variation)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order position: %w", err)
	}
	p.VariationID = variation.Int64

	if p.CheckIns, err = r.CheckIns(ctx, event, secret); err != nil {
		return nil, err
	}
	return &p, nil
}

// Put must run inside a transaction so that a position and its check-ins
// change together.
func (r *SQLiteRepository) Put(ctx context.Context, event string, positions []models.OrderPosition) error {
	for _, p := range positions {
		var variation sql.NullInt64
		if p.VariationID != 0 {
			variation = sql.NullInt64{Int64: p.VariationID, Valid: true}
		}
		_, err := r.db.ExecContext(ctx, `
			INSERT OR REPLACE INTO order_positions (id, event_slug, order_code, status, secret, item_id, variation_id)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, p.ID, event, p.OrderCode, p.Status, p.Secret, p.ItemID, variation)
		if err != nil {
			return fmt.Errorf("failed to put order position[%d]: %w", p.ID, err)
		}

		_, err = r.db.ExecContext(ctx, `
			DELETE FROM checkins WHERE event_slug = ? AND position_id = ?
		`, event, p.ID)
		if err != nil {
			return fmt.Errorf("failed to replace check-ins of position[%d]: %w", p.ID, err)
		}

		for _, c := range p.CheckIns {
			typ := c.Type
			if typ == "" {
				typ = common.CheckInTypeEntry
			}
			_, err := r.db.ExecContext(ctx, `
				INSERT INTO checkins (event_slug, list_id, position_id, secret, type, date)
				VALUES (?, ?, ?, ?, ?, ?)
			`, event, c.ListID, p.ID, p.Secret, typ, dbx.NullTimeString(c.Date))
			if err != nil {
				return fmt.Errorf("failed to store check-in of position[%d]: %w", p.ID, err)
			}
		}
	}
	return nil
}

func (r *SQLiteRepository) CheckIns(ctx context.Context, event, secret string) ([]models.CheckIn, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT list_id, position_id, secret, type, date
		FROM checkins WHERE event_slug = ? AND secret = ?
		ORDER BY date
	`, event, secret)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	var result []models.CheckIn
	for rows.Next() {
		var (
			c    models.CheckIn
			date sql.NullString
		)
		if err := rows.Scan(&c.ListID, &c.PositionID, &c.Secret, &c.Type, &date); err != nil {
			return nil, fmt.Errorf("failed to scan check-in row: %w", err)
		}
		if c.Date, err = dbx.ParseNullTime(date); err != nil {
			return nil, fmt.Errorf("failed to scan check-in row: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate check-in rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context, event string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM checkins WHERE event_slug = ?`, event); err != nil {
		return fmt.Errorf("failed to clear check-ins: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM order_positions WHERE event_slug = ?`, event); err != nil {
		return fmt.Errorf("failed to clear order positions: %w", err)
	}
	return nil
}
