// Package dbx holds the database/sql plumbing shared by the scanner and the
// authority repositories: the DBTX handle satisfied by both *sql.DB and
// *sql.Tx, and helpers that scope work to a single transaction.
package dbx

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX is the subset of database/sql used by repositories.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back on error or panic; panics are re-raised.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    return queue.NewSQLiteRepository(tx).Append(ctx, req)
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) error {
	_, err := WithTxValue(ctx, db, opts, func(ctx context.Context, tx DBTX) (struct{}, error) {
		return struct{}{}, fn(ctx, tx)
	})
	return err
}

// WithTxValue is WithTx for callbacks that produce a value. The value is
// returned only if the commit succeeded, so callers never observe a result
// whose writes were rolled back.
func WithTxValue[T any](ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) (T, error)) (result T, err error) {
	var zero T

	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return zero, fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			result = zero
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			result, err = zero, fmt.Errorf("commit tx: %w", cerr)
		}
	}()

	return fn(ctx, tx)
}
