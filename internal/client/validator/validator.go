// Package validator decides offline whether a scanned ticket may pass a
// check-in list, and queues every admission for upload in the same
// transaction that produced it.
package validator

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gophscan/internal/client/facts"
	"github.com/dmitrijs2005/gophscan/internal/client/models"
	"github.com/dmitrijs2005/gophscan/internal/client/repositories/checkinlists"
	"github.com/dmitrijs2005/gophscan/internal/client/repositories/events"
	"github.com/dmitrijs2005/gophscan/internal/client/repositories/items"
	"github.com/dmitrijs2005/gophscan/internal/client/repositories/localcheckins"
	"github.com/dmitrijs2005/gophscan/internal/client/repositories/positions"
	"github.com/dmitrijs2005/gophscan/internal/client/repositories/queue"
	"github.com/dmitrijs2005/gophscan/internal/client/repositories/revoked"
	"github.com/dmitrijs2005/gophscan/internal/client/repositories/syncstate"
	"github.com/dmitrijs2005/gophscan/internal/client/revocation"
	"github.com/dmitrijs2005/gophscan/internal/client/ticket"
	"github.com/dmitrijs2005/gophscan/internal/clock"
	"github.com/dmitrijs2005/gophscan/internal/common"
	"github.com/dmitrijs2005/gophscan/internal/dbx"
	"github.com/dmitrijs2005/gophscan/internal/logging"
	"github.com/dmitrijs2005/gophscan/internal/metrics"
)

// ScanRequest is one scan to decide on.
type ScanRequest struct {
	Secret       string
	EventSlug    string
	ListID       int64
	Type         string
	Force        bool
	IgnoreUnpaid bool
	Answers      []models.Answer
}

// Decision is the outcome of a scan. Ticket, Item, Position and Facts are
// filled in as far as validation got.
type Decision struct {
	Status models.Status
	Reason models.Reason

	Ticket   *ticket.SignedTicket
	Item     *models.Item
	Position *models.OrderPosition
	Facts    *facts.Facts

	// RevocationUnknown is set when the revocation cache was missing or
	// stale at decision time.
	RevocationUnknown bool
	// Forced is set when force overrode a denial.
	Forced bool
	// Queued is the stored redemption of an admitted scan.
	Queued *models.QueuedRedemptionRequest

	cause error
}

// Admitted reports whether the holder may pass.
func (d *Decision) Admitted() bool { return d.Status == models.StatusRedeemed }

// Err returns nil for an admission and the reason's sentinel otherwise.
func (d *Decision) Err() error {
	if d.Admitted() {
		return nil
	}
	return reasonError(d.Reason, d.cause)
}

type Validator interface {
	Validate(ctx context.Context, req ScanRequest) (*Decision, error)
}

type Options struct {
	// Location overrides the event time zone for day boundaries.
	Location *time.Location
	// MaxRevocationAge marks older revocation caches as unknown; zero
	// disables the check.
	MaxRevocationAge time.Duration
	Clock            clock.Clock
	// NewNonce defaults to random UUIDs.
	NewNonce func() string
}

type validator struct {
	db     *sql.DB
	logger logging.Logger
	opts   Options
}

func NewValidator(db *sql.DB, logger logging.Logger, opts Options) Validator {
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.NewNonce == nil {
		opts.NewNonce = uuid.NewString
	}
	return &validator{db: db, logger: logger.With("module", "validator"), opts: opts}
}

// Validate decides on req. The returned error is reserved for failures that
// leave no decision, such as an unreadable cache; the scan must then be
// treated as denied.
func (v *validator) Validate(ctx context.Context, req ScanRequest) (*Decision, error) {
	start := time.Now()
	if req.Type == "" {
		req.Type = common.CheckInTypeEntry
	}
	if req.Type != common.CheckInTypeEntry && req.Type != common.CheckInTypeExit {
		return nil, fmt.Errorf("unknown check-in type %q", req.Type)
	}

	d, err := dbx.WithTxValue(ctx, v.db, nil, func(ctx context.Context, tx dbx.DBTX) (*Decision, error) {
		return v.decide(ctx, tx, req)
	})
	if err != nil {
		return nil, err
	}

	metrics.ValidationDuration.Observe(time.Since(start).Seconds())
	metrics.DecisionsTotal.WithLabelValues(string(d.Status), string(d.Reason)).Inc()
	if d.RevocationUnknown {
		metrics.RevocationUnknownTotal.Inc()
	}

	v.logger.Info(ctx, "scan decided",
		"event", req.EventSlug, "list", req.ListID, "type", req.Type,
		"status", d.Status, "reason", d.Reason, "forced", d.Forced)
	return d, nil
}

func deny(d *Decision, reason models.Reason) *Decision {
	d.Status = models.StatusError
	d.Reason = reason
	return d
}

func (v *validator) decide(ctx context.Context, tx dbx.DBTX, req ScanRequest) (*Decision, error) {
	now := v.opts.Clock.Now()

	ev, err := events.NewSQLiteRepository(tx).Get(ctx, req.EventSlug)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, fmt.Errorf("%w: %s", ErrEventNotSynced, req.EventSlug)
	}
	list, err := checkinlists.NewSQLiteRepository(tx).Get(ctx, req.EventSlug, req.ListID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, fmt.Errorf("%w: %d", ErrListNotSynced, req.ListID)
	}

	loc := v.opts.Location
	if loc == nil {
		if loc, err = ev.Location(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEventTimezone, err)
		}
	}

	d := &Decision{}

	keys, keyErrs := ticket.ParsePublicKeys(ev.ValidKeys)
	for _, e := range keyErrs {
		v.logger.Warn(ctx, "ignoring unusable event key", "event", ev.Slug, "error", e)
	}
	tk, err := ticket.Verify(req.Secret, keys)
	if err != nil {
		d.cause = err
		return deny(d, models.ReasonInvalid), nil
	}
	d.Ticket = tk

	checker := revocation.NewChecker(revoked.NewSQLiteRepository(tx), syncstate.NewSQLiteRepository(tx), v.opts.MaxRevocationAge)
	rs, err := checker.Check(ctx, ev.Slug, tk.Secret, now)
	if err != nil {
		return nil, err
	}
	switch rs {
	case revocation.Revoked:
		return deny(d, models.ReasonRevoked), nil
	case revocation.Unknown:
		d.RevocationUnknown = true
		v.logger.Warn(ctx, "revocation list missing or stale, deciding without it", "event", ev.Slug)
	}

	item, err := items.NewSQLiteRepository(tx).Get(ctx, ev.Slug, tk.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil || !item.HasVariation(tk.VariationID) || !list.Admits(item.ID) {
		return deny(d, models.ReasonProduct), nil
	}
	d.Item = item

	if (tk.ValidFrom != nil && now.Before(*tk.ValidFrom)) || (tk.ValidUntil != nil && now.After(*tk.ValidUntil)) {
		return deny(d, models.ReasonInvalidTime), nil
	}

	posRepo := positions.NewSQLiteRepository(tx)
	pos, err := posRepo.GetBySecret(ctx, ev.Slug, tk.Secret)
	if err != nil {
		return nil, err
	}
	d.Position = pos
	if pos != nil {
		switch pos.Status {
		case models.OrderStatusPending, models.OrderStatusExpired:
			if !(list.IncludePending && req.IgnoreUnpaid) {
				return deny(d, models.ReasonUnpaid), nil
			}
		case models.OrderStatusCanceled:
			return deny(d, models.ReasonCanceled), nil
		}
	}

	q := queue.NewSQLiteRepository(tx)
	queued, err := q.ListBySecret(ctx, ev.Slug, tk.Secret)
	if err != nil {
		return nil, err
	}
	confirmed, err := localcheckins.NewSQLiteRepository(tx).ListBySecret(ctx, ev.Slug, tk.Secret)
	if err != nil {
		return nil, err
	}
	var downloaded []models.CheckIn
	if pos != nil {
		downloaded = pos.CheckIns
	}

	f := facts.NewBuilder(loc).Build(now, tk, list.ID, facts.History(list.ID, queued, confirmed, downloaded))
	d.Facts = &f

	if req.Type == common.CheckInTypeEntry {
		if reason := v.entryDenial(ctx, ev, list, f, loc, now); reason != models.ReasonNone {
			if !req.Force {
				return deny(d, reason), nil
			}
			d.Forced = true
		}
	}

	d.Queued = &models.QueuedRedemptionRequest{
		EventSlug: ev.Slug,
		ListID:    list.ID,
		Request: models.RedemptionRequest{
			Secret:       tk.Secret,
			Nonce:        v.opts.NewNonce(),
			Type:         req.Type,
			Date:         now,
			Force:        req.Force,
			IgnoreUnpaid: req.IgnoreUnpaid,
			Answers:      req.Answers,
		},
	}
	if _, err := q.Append(ctx, d.Queued); err != nil {
		return nil, err
	}
	d.Status = models.StatusRedeemed
	return d, nil
}

func (v *validator) entryDenial(ctx context.Context, ev *models.Event, list *models.CheckInList, f facts.Facts, loc *time.Location, now time.Time) models.Reason {
	reason, err := EntryDenial(ev, list, f, loc, now)
	if err != nil {
		v.logger.Warn(ctx, "admission rules failed to evaluate, denying", "list", list.ID, "error", err)
	}
	return reason
}
