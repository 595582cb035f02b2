package localcheckins

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

func (r *SQLiteRepository) Record(ctx context.Context, q *models.QueuedRedemptionRequest) error {
	req := q.Request
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO local_checkins (event_slug, list_id, secret, nonce, type, date)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (nonce) DO NOTHING
	`, q.EventSlug, q.ListID, req.Secret, req.Nonce, req.Type, dbx.FormatTime(req.Date))
	if err != nil {
		return fmt.Errorf("failed to record check-in[%s]: %w", req.Nonce, err)
	}
	return nil
}

func (r *SQLiteRepository) ListBySecret(ctx context.Context, event, secret string) ([]models.CheckIn, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT list_id, secret, type, date FROM local_checkins
		WHERE event_slug = ? AND secret = ?
		ORDER BY date, id
	`, event, secret)
	if err != nil {
		return nil, fmt.Errorf("failed to list local check-ins: %w", err)
	}
	defer rows.Close()

	var result []models.CheckIn
	for rows.Next() {
		var (
			c    models.CheckIn
			date string
		)
		if err := rows.Scan(&c.ListID, &c.Secret, &c.Type, &date); err != nil {
			return nil, fmt.Errorf("failed to scan local check-in row: %w", err)
		}
		at, err := dbx.ParseTime(date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse local check-in date: %w", err)
		}
		c.Date = &at
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate local check-in rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Count(ctx context.Context, event string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM local_checkins WHERE event_slug = ?`, event).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count local check-ins: %w", err)
	}
	return n, nil
}
