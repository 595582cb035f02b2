package queue

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophscan/internal/client/models"
	"github.com/dmitrijs2005/gophscan/internal/dbx"
)

const selectColumns = `SELECT id, event_slug, list_id, secret, nonce, type, date, force, ignore_unpaid, answers
	FROM queued_redemption_requests`

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Append(ctx context.Context, q *models.QueuedRedemptionRequest) (int64, error) {
	answers, err := q.AnswersJSON()
	if err != nil {
		return 0, fmt.Errorf("failed to encode answers: %w", err)
	}

	req := q.Request
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO queued_redemption_requests
			(event_slug, list_id, secret, nonce, type, date, force, ignore_unpaid, answers)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, q.EventSlug, q.ListID, req.Secret, req.Nonce, req.Type, dbx.FormatTime(req.Date),
		req.Force, req.IgnoreUnpaid, string(answers))
	if err != nil {
		return 0, fmt.Errorf("failed to queue redemption: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read queued redemption id: %w", err)
	}
	q.ID = id
	return id, nil
}

func (r *SQLiteRepository) Oldest(ctx context.Context, event string) (*models.QueuedRedemptionRequest, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE event_slug = ? ORDER BY id LIMIT 1`, event)
	q, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get oldest queued redemption: %w", err)
	}
	return q, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM queued_redemption_requests WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete queued redemption[%d]: %w", id, err)
	}
	return nil
}

func (r *SQLiteRepository) Count(ctx context.Context, event string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM queued_redemption_requests WHERE event_slug = ?
	`, event).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count queued redemptions: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) ListBySecret(ctx context.Context, event, secret string) ([]models.QueuedRedemptionRequest, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` WHERE event_slug = ? AND secret = ? ORDER BY id`, event, secret)
	if err != nil {
		return nil, fmt.Errorf("failed to list queued redemptions: %w", err)
	}
	defer rows.Close()

	var result []models.QueuedRedemptionRequest
	for rows.Next() {
		q, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan queued redemption row: %w", err)
		}
		result = append(result, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate queued redemption rows: %w", err)
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (*models.QueuedRedemptionRequest, error) {
	var (
		q             models.QueuedRedemptionRequest
		date, answers string
	)
	err := s.Scan(&q.ID, &q.EventSlug, &q.ListID, &q.Request.Secret, &q.Request.Nonce, &q.Request.Type,
		&date, &q.Request.Force, &q.Request.IgnoreUnpaid, &answers)
	if err != nil {
		return nil, err
	}
	if q.Request.Date, err = dbx.ParseTime(date); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(answers), &q.Request.Answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	if len(q.Request.Answers) == 0 {
		q.Request.Answers = nil
	}
	return &q, nil
}
