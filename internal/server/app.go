// Package server assembles the reference authority: storage, services, the
// gRPC endpoint and the optional metrics endpoint.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/gophscan/internal/clock"
	"github.com/dmitrijs2005/gophscan/internal/logging"
	"github.com/dmitrijs2005/gophscan/internal/metrics"
	"github.com/dmitrijs2005/gophscan/internal/server/config"
	"github.com/dmitrijs2005/gophscan/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophscan/internal/server/services"

	gs "github.com/dmitrijs2005/gophscan/internal/server/grpc"
)

// MemoryDSN selects the in-process store. Its data is lost on exit.
const MemoryDSN = "memory"

type App struct {
	config  *config.Config
	logger  logging.Logger
	clock   clock.Clock
	closeDB func() error

	Redemptions *services.RedemptionService
	Catalog     *services.CatalogService
	Admin       *services.AdminService
}

// NewApp opens the store named by c.DatabaseDSN and migrates it.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	var (
		rm      repomanager.RepositoryManager
		closeDB = func() error { return nil }
	)

	if c.DatabaseDSN == MemoryDSN {
		rm = repomanager.NewInMemoryRepositoryManager()
	} else {
		db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		rm = repomanager.NewPostgresRepositoryManager(db)
		closeDB = db.Close
	}

	if err := rm.RunMigrations(ctx); err != nil {
		_ = closeDB()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	clk := clock.Real()
	return &App{
		config:      c,
		logger:      logger,
		clock:       clk,
		closeDB:     closeDB,
		Redemptions: services.NewRedemptionService(rm, clk, logger),
		Catalog:     services.NewCatalogService(rm, clk, c.PageSize),
		Admin:       services.NewAdminService(rm, clk, logger),
	}, nil
}

func (app *App) Close() error {
	return app.closeDB()
}

func (app *App) startMetricsServer(ctx context.Context) error {
	reg := prometheus.NewRegistry()
	metrics.RegisterAuthority(reg)
	srv := &http.Server{Addr: app.config.MetricsAddr, Handler: metrics.Handler(reg)}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	app.logger.Info(ctx, "starting metrics endpoint", "address", app.config.MetricsAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run serves until ctx is done or one of the endpoints fails.
func (app *App) Run(ctx context.Context) error {
	app.logger.Info(ctx, "Starting app...")

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s := gs.NewGRPCServer(app.config.GRPCAddr, app.logger, app.Redemptions, app.Catalog, app.clock, app.config.SecretKey)
		return s.Run(ctx)
	})

	if app.config.MetricsAddr != "" {
		g.Go(func() error {
			return app.startMetricsServer(ctx)
		})
	}

	return g.Wait()
}
