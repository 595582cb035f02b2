package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/gophscan/internal/dbx"
	"github.com/dmitrijs2005/gophscan/internal/server/migrations"
	"github.com/dmitrijs2005/gophscan/internal/server/repositories/checkinlists"
	"github.com/dmitrijs2005/gophscan/internal/server/repositories/checkins"
	"github.com/dmitrijs2005/gophscan/internal/server/repositories/events"
	"github.com/dmitrijs2005/gophscan/internal/server/repositories/items"
	"github.com/dmitrijs2005/gophscan/internal/server/repositories/positions"
	"github.com/dmitrijs2005/gophscan/internal/server/repositories/revoked"
)

// PostgresRepositoryManager vends PostgreSQL repositories over one pool.
type PostgresRepositoryManager struct {
	db *sql.DB
}

func NewPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{db: db}
}

// OpenPostgres opens a pgx-backed pool for dsn and checks connectivity.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	return db, nil
}

func bind(db dbx.DBTX) Repositories {
	return Repositories{
		Events:       events.NewPostgresRepository(db),
		Items:        items.NewPostgresRepository(db),
		CheckInLists: checkinlists.NewPostgresRepository(db),
		Revoked:      revoked.NewPostgresRepository(db),
		Positions:    positions.NewPostgresRepository(db),
		CheckIns:     checkins.NewPostgresRepository(db),
	}
}

func (m *PostgresRepositoryManager) Repositories() Repositories {
	return bind(m.db)
}

func (m *PostgresRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	return dbx.WithTx(ctx, m.db, &sql.TxOptions{Isolation: sql.LevelSerializable}, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, bind(tx))
	})
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
