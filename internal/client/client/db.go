package client

import (
	"context"
	"database/sql"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/gophscan/internal/client/migrations"
	"github.com/dmitrijs2005/gophscan/internal/client/repositories/checkinlists"
	"github.com/dmitrijs2005/gophscan/internal/client/repositories/events"
	"github.com/dmitrijs2005/gophscan/internal/client/repositories/items"
	"github.com/dmitrijs2005/gophscan/internal/client/repositories/localcheckins"
	"github.com/dmitrijs2005/gophscan/internal/client/repositories/positions"
	"github.com/dmitrijs2005/gophscan/internal/client/repositories/queue"
	"github.com/dmitrijs2005/gophscan/internal/client/repositories/revoked"
	"github.com/dmitrijs2005/gophscan/internal/client/repositories/syncstate"
	"github.com/dmitrijs2005/gophscan/internal/dbx"
	"github.com/dmitrijs2005/gophscan/internal/filex"
)

type Repositories struct {
	Events       events.Repository
	Items        items.Repository
	CheckInLists checkinlists.Repository
	Revoked      revoked.Repository
	Positions    positions.Repository
	Queue        queue.Repository
	CheckIns     localcheckins.Repository
	SyncState    syncstate.Repository
}

// NewRepositories binds every scanner repository to db, which may be a
// transaction.
func NewRepositories(db dbx.DBTX) *Repositories {
	return &Repositories{
		Events:       events.NewSQLiteRepository(db),
		Items:        items.NewSQLiteRepository(db),
		CheckInLists: checkinlists.NewSQLiteRepository(db),
		Revoked:      revoked.NewSQLiteRepository(db),
		Positions:    positions.NewSQLiteRepository(db),
		Queue:        queue.NewSQLiteRepository(db),
		CheckIns:     localcheckins.NewSQLiteRepository(db),
		SyncState:    syncstate.NewSQLiteRepository(db),
	}
}

// sqlitePragmas lets concurrent writers wait for the lock instead of failing
// with SQLITE_BUSY.
const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

func withPragmas(dsn string) string {
	if strings.Contains(dsn, "_pragma=") || strings.Contains(dsn, ":memory:") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqlitePragmas
	}
	return "file:" + strings.TrimPrefix(dsn, "file:") + "?" + sqlitePragmas
}

// InitDatabase opens the scanner database at dsn and migrates it. The pool
// holds one connection: SQLite serializes writers anyway and a single
// connection keeps transactions from failing with SQLITE_BUSY.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", withPragmas(dsn))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
