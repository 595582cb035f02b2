package services

import (
	"context"
	"database/sql"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/gophscan/internal/client/client"
	"github.com/dmitrijs2005/gophscan/internal/client/models"
	"github.com/dmitrijs2005/gophscan/internal/clock"
	"github.com/dmitrijs2005/gophscan/internal/dbx"
	"github.com/dmitrijs2005/gophscan/internal/logging"
	"github.com/dmitrijs2005/gophscan/internal/metrics"
	"github.com/dmitrijs2005/gophscan/internal/tracing"
)

const (
	modeFull    = "full"
	modePartial = "partial"
)

type SyncService interface {
	// Sync refreshes the event and its trusted keys, then downloads the
	// remaining resources in parallel.
	Sync(ctx context.Context, event string) error
	SyncResource(ctx context.Context, event string, kind models.ResourceKind) error
	// Reset forgets the recorded timestamp of kind so that the next sync
	// downloads it in full.
	Reset(ctx context.Context, event string, kind models.ResourceKind) error
	Status(ctx context.Context, event string) ([]models.SyncState, error)
}

type syncService struct {
	db     *sql.DB
	client client.Client
	clock  clock.Clock
	logger logging.Logger
	tracer trace.Tracer
}

func NewSyncService(db *sql.DB, c client.Client, clk clock.Clock, logger logging.Logger) SyncService {
	if clk == nil {
		clk = clock.Real()
	}
	return &syncService{
		db:     db,
		client: c,
		clock:  clk,
		logger: logger.With("module", "sync"),
		tracer: tracing.Tracer("scanner"),
	}
}

// listed lists the resources downloaded page by page.
var listed = []models.ResourceKind{
	models.ResourceItems,
	models.ResourceCheckInLists,
	models.ResourceRevokedSecrets,
	models.ResourceOrderPositions,
}

func (s *syncService) Sync(ctx context.Context, event string) error {
	ctx, span := s.tracer.Start(ctx, "sync", trace.WithAttributes(attribute.String("event", event)))
	defer span.End()

	err := s.sync(ctx, event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
	}
	return err
}

func (s *syncService) sync(ctx context.Context, event string) error {
	if err := s.SyncResource(ctx, event, models.ResourceEvents); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range listed {
		g.Go(func() error {
			return s.SyncResource(gctx, event, kind)
		})
	}
	return g.Wait()
}

func (s *syncService) SyncResource(ctx context.Context, event string, kind models.ResourceKind) error {
	ctx, span := s.tracer.Start(ctx, "sync."+string(kind))
	defer span.End()

	var err error
	switch kind {
	case models.ResourceEvents:
		err = s.syncEvent(ctx, event)
	case models.ResourceItems:
		err = download(ctx, s, event, resource[models.Item]{
			kind:  kind,
			fetch: s.client.ListItems,
			store: func(ctx context.Context, r *client.Repositories, event string, rows []models.Item) error {
				return r.Items.Put(ctx, event, rows)
			},
			clear: func(ctx context.Context, r *client.Repositories, event string) error {
				return r.Items.Clear(ctx, event)
			},
		})
	case models.ResourceCheckInLists:
		err = download(ctx, s, event, resource[models.CheckInList]{
			kind:  kind,
			fetch: s.client.ListCheckInLists,
			store: func(ctx context.Context, r *client.Repositories, event string, rows []models.CheckInList) error {
				return r.CheckInLists.Put(ctx, event, rows)
			},
			clear: func(ctx context.Context, r *client.Repositories, event string) error {
				return r.CheckInLists.Clear(ctx, event)
			},
		})
	case models.ResourceRevokedSecrets:
		err = download(ctx, s, event, resource[models.RevokedSecret]{
			kind:  kind,
			fetch: s.client.ListRevokedSecrets,
			store: func(ctx context.Context, r *client.Repositories, event string, rows []models.RevokedSecret) error {
				return r.Revoked.Put(ctx, event, rows)
			},
			clear: func(ctx context.Context, r *client.Repositories, event string) error {
				return r.Revoked.Clear(ctx, event)
			},
		})
	case models.ResourceOrderPositions:
		err = download(ctx, s, event, resource[models.OrderPosition]{
			kind:  kind,
			fetch: s.client.ListOrderPositions,
			store: func(ctx context.Context, r *client.Repositories, event string, rows []models.OrderPosition) error {
				return r.Positions.Put(ctx, event, rows)
			},
			clear: func(ctx context.Context, r *client.Repositories, event string) error {
				return r.Positions.Clear(ctx, event)
			},
		})
	default:
		err = fmt.Errorf("unknown resource %q", kind)
	}

	if err != nil {
		metrics.SyncErrorsTotal.WithLabelValues(string(kind)).Inc()
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Warn(ctx, "download failed", "event", event, "resource", kind, "error", err)
	}
	return err
}

func (s *syncService) syncEvent(ctx context.Context, event string) error {
	ev, err := s.client.GetEvent(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to download event %s: %w", event, err)
	}
	now := s.clock.Now()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := client.NewRepositories(tx)
		if err := r.Events.Put(ctx, ev); err != nil {
			return err
		}
		metrics.SyncPagesTotal.WithLabelValues(string(models.ResourceEvents), modeFull).Inc()
		return r.SyncState.Set(ctx, models.SyncState{
			EventSlug:   event,
			Resource:    models.ResourceEvents,
			GeneratedAt: dbx.FormatTime(now),
			SyncedAt:    now,
		})
	})
}

func (s *syncService) Reset(ctx context.Context, event string, kind models.ResourceKind) error {
	return client.NewRepositories(s.db).SyncState.Delete(ctx, event, kind)
}

func (s *syncService) Status(ctx context.Context, event string) ([]models.SyncState, error) {
	return client.NewRepositories(s.db).SyncState.List(ctx, event)
}

type resource[T any] struct {
	kind  models.ResourceKind
	fetch func(ctx context.Context, event string, q models.PageQuery) (*models.Page[T], error)
	store func(ctx context.Context, r *client.Repositories, event string, rows []T) error
	clear func(ctx context.Context, r *client.Repositories, event string) error
}

// download fetches every page of res. Without a recorded timestamp it runs a
// full download that replaces the local rows; otherwise it asks for changes
// since the recorded timestamp. Either way the first page's timestamp is
// recorded, so rows touched while later pages were fetched are asked for
// again next time. It is written only after the last page is stored, so an
// interrupted download resumes from the old timestamp.
func download[T any](ctx context.Context, s *syncService, event string, res resource[T]) error {
	state, err := client.NewRepositories(s.db).SyncState.Get(ctx, event, res.kind)
	if err != nil {
		return err
	}

	mode := modeFull
	q := models.PageQuery{Page: 1}
	var generatedAt string
	if state != nil && state.GeneratedAt != "" {
		mode = modePartial
		q.ModifiedSince = state.GeneratedAt
		generatedAt = state.GeneratedAt
	}

	for {
		page, err := res.fetch(ctx, event, q)
		if err != nil {
			return fmt.Errorf("failed to download %s page %d: %w", res.kind, q.Page, err)
		}

		first := q.Page == 1
		err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			r := client.NewRepositories(tx)
			if mode == modeFull && first {
				if err := res.clear(ctx, r, event); err != nil {
					return err
				}
			}
			return res.store(ctx, r, event, page.Results)
		})
		if err != nil {
			return fmt.Errorf("failed to store %s page %d: %w", res.kind, q.Page, err)
		}
		metrics.SyncPagesTotal.WithLabelValues(string(res.kind), mode).Inc()

		if first && page.GeneratedAt != "" {
			generatedAt = page.GeneratedAt
		}
		if !page.HasNext {
			break
		}
		q.Page++
	}

	s.logger.Debug(ctx, "resource downloaded", "event", event, "resource", res.kind, "mode", mode, "pages", q.Page)
	return client.NewRepositories(s.db).SyncState.Set(ctx, models.SyncState{
		EventSlug:   event,
		Resource:    res.kind,
		GeneratedAt: generatedAt,
		SyncedAt:    s.clock.Now(),
	})
}
