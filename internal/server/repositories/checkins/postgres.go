// Package checkins stores redemptions the authority accepted.
package checkins

import (
	"context"
	"database/sql"
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

const columns = `id, event_slug, position_id, list_id, COALESCE(nonce, ''), type, datetime, forced, device`

func (r *PostgresRepository) Insert(ctx context.Context, c *models.CheckIn) (bool, error) {
	nonce := sql.NullString{String: c.Nonce, Valid: c.Nonce != ""}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO checkins (event_slug, position_id, list_id, nonce, type, datetime, forced, device)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (nonce) DO NOTHING
		RETURNING id
	`, c.EventSlug, c.PositionID, c.ListID, nonce, c.Type, c.Date, c.Forced, c.Device).Scan(&c.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to insert check-in: %w", err)
	}
	return true, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (models.CheckIn, error) {
	var c models.CheckIn
	err := s.Scan(&c.ID, &c.EventSlug, &c.PositionID, &c.ListID, &c.Nonce, &c.Type, &c.Date, &c.Forced, &c.Device)
	return c, err
}

func (r *PostgresRepository) GetByNonce(ctx context.Context, nonce string) (*models.CheckIn, error) {
	c, err := scan(r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM checkins WHERE nonce = $1`, nonce))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get check-in[%s]: %w", nonce, err)
	}
	return &c, nil
}

func (r *PostgresRepository) ListByPosition(ctx context.Context, event string, positionID int64) ([]models.CheckIn, error) {
	return r.ListByPositionRange(ctx, event, positionID, positionID)
}

func (r *PostgresRepository) ListByPositionRange(ctx context.Context, event string, fromID, toID int64) ([]models.CheckIn, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+columns+` FROM checkins
		WHERE event_slug = $1 AND position_id BETWEEN $2 AND $3
		ORDER BY position_id, datetime, id
	`, event, fromID, toID)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	var out []models.CheckIn
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
