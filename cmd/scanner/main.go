package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/gophscan/internal/client/cli"
	"github.com/dmitrijs2005/gophscan/internal/client/config"
	"github.com/dmitrijs2005/gophscan/internal/logging"
	"github.com/dmitrijs2005/gophscan/internal/metrics"
	"github.com/dmitrijs2005/gophscan/internal/tracing"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.NewText(os.Stderr, cfg.LogLevel)

	shutdown, err := tracing.Setup(ctx, "gophscan-scanner", cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("tracing: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics.RegisterScanner(reg)
		srv := &http.Server{Addr: cfg.MetricsAddr, Handler: metrics.Handler(reg)}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "metrics endpoint failed", "error", err)
			}
		}()
		defer srv.Close()
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "scanner stopped", "error", err)
	}
}
