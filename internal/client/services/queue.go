package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"

	"github.com/dmitrijs2005/gophscan/internal/client/client"
	"github.com/dmitrijs2005/gophscan/internal/client/models"
	"github.com/dmitrijs2005/gophscan/internal/dbx"
	"github.com/dmitrijs2005/gophscan/internal/logging"
	"github.com/dmitrijs2005/gophscan/internal/metrics"
	"github.com/dmitrijs2005/gophscan/internal/tracing"
)

// DrainResult counts what happened to the rows handled by one drain.
type DrainResult struct {
	// Uploaded rows were accepted by the authority.
	Uploaded int
	// Rejected rows got a business answer other than redeemed.
	Rejected int
	// Discarded rows were refused as malformed or out of scope.
	Discarded int
	// Remaining rows are still queued after the drain stopped.
	Remaining int
}

type QueueService interface {
	// Drain uploads queued redemptions of event oldest first until the
	// queue is empty or the authority cannot be reached. Concurrent calls
	// wait for each other.
	Drain(ctx context.Context, event string) (DrainResult, error)
	// TryDrain is Drain that gives up at once, reporting ran=false, when
	// another drain is in flight.
	TryDrain(ctx context.Context, event string) (res DrainResult, ran bool, err error)
	Pending(ctx context.Context, event string) (int, error)
}

type queueService struct {
	client client.Client
	db     *sql.DB
	logger logging.Logger
	tracer trace.Tracer
	sem    *semaphore.Weighted
}

func NewQueueService(c client.Client, db *sql.DB, logger logging.Logger) QueueService {
	return &queueService{
		client: c,
		db:     db,
		logger: logger.With("module", "queue"),
		tracer: tracing.Tracer("scanner"),
		sem:    semaphore.NewWeighted(1),
	}
}

func (s *queueService) Pending(ctx context.Context, event string) (int, error) {
	n, err := client.NewRepositories(s.db).Queue.Count(ctx, event)
	if err != nil {
		return 0, err
	}
	metrics.QueueDepth.Set(float64(n))
	return n, nil
}

func (s *queueService) Drain(ctx context.Context, event string) (DrainResult, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return DrainResult{}, fmt.Errorf("%w: %w", client.ErrUnavailable, err)
	}
	defer s.sem.Release(1)
	return s.drain(ctx, event)
}

func (s *queueService) TryDrain(ctx context.Context, event string) (DrainResult, bool, error) {
	if !s.sem.TryAcquire(1) {
		return DrainResult{}, false, nil
	}
	defer s.sem.Release(1)
	res, err := s.drain(ctx, event)
	return res, true, err
}

type uploadOutcome string

const (
	outcomeUploaded  uploadOutcome = "uploaded"
	outcomeRejected  uploadOutcome = "rejected"
	outcomeDiscarded uploadOutcome = "discarded"
	outcomeRetry     uploadOutcome = "retry"
)

func (s *queueService) drain(ctx context.Context, event string) (res DrainResult, err error) {
	ctx, span := s.tracer.Start(ctx, "queue.drain", trace.WithAttributes(attribute.String("event", event)))
	defer func() {
		span.SetAttributes(
			attribute.Int("uploaded", res.Uploaded),
			attribute.Int("rejected", res.Rejected),
			attribute.Int("discarded", res.Discarded),
			attribute.Int("remaining", res.Remaining),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
		}
		span.End()
	}()

	defer func() {
		if n, cerr := s.Pending(context.WithoutCancel(ctx), event); cerr == nil {
			res.Remaining = n
		}
	}()

	for {
		q, err := client.NewRepositories(s.db).Queue.Oldest(ctx, event)
		if err != nil {
			return res, err
		}
		if q == nil {
			return res, nil
		}

		outcome, err := s.upload(ctx, q)
		metrics.UploadsTotal.WithLabelValues(string(outcome)).Inc()
		if outcome == outcomeRetry {
			s.logger.Warn(ctx, "upload postponed", "id", q.ID, "error", err)
			return res, err
		}

		// The authority has answered, so the row must go even if the caller
		// gave up meanwhile. A failed settle only means one more upload of
		// the same nonce.
		if err := s.settle(context.WithoutCancel(ctx), q, outcome); err != nil {
			return res, err
		}

		switch outcome {
		case outcomeUploaded:
			res.Uploaded++
		case outcomeRejected:
			res.Rejected++
		case outcomeDiscarded:
			res.Discarded++
		}
	}
}

// settle removes an answered row. A confirmed admission moves to the local
// check-in log in the same transaction, so the device keeps counting it
// after the upload.
func (s *queueService) settle(ctx context.Context, q *models.QueuedRedemptionRequest, outcome uploadOutcome) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := client.NewRepositories(tx)
		if outcome == outcomeUploaded {
			if err := r.CheckIns.Record(ctx, q); err != nil {
				return err
			}
		}
		return r.Queue.Delete(ctx, q.ID)
	})
}

func (s *queueService) upload(ctx context.Context, q *models.QueuedRedemptionRequest) (uploadOutcome, error) {
	resp, err := s.client.Redeem(ctx, q)
	switch {
	case err == nil:
	case errors.Is(err, client.ErrRejected):
		s.logger.Warn(ctx, "authority refused queued redemption, dropping it",
			"id", q.ID, "list", q.ListID, "error", err)
		return outcomeDiscarded, nil
	default:
		return outcomeRetry, err
	}

	if resp.Status == models.StatusRedeemed {
		s.logger.Debug(ctx, "redemption uploaded", "id", q.ID, "list", q.ListID)
		return outcomeUploaded, nil
	}
	s.logger.Info(ctx, "authority overruled offline redemption",
		"id", q.ID, "list", q.ListID, "status", resp.Status, "reason", resp.Reason)
	return outcomeRejected, nil
}
