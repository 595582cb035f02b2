// Package services holds the authority's business logic: deciding uploaded
// redemptions, serving paginated catalog listings and importing events.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophscan/internal/client/facts"
	scanmodels "github.com/dmitrijs2005/gophscan/internal/client/models"
	"github.com/dmitrijs2005/gophscan/internal/client/ticket"
	"github.com/dmitrijs2005/gophscan/internal/client/validator"
	"github.com/dmitrijs2005/gophscan/internal/clock"
	"github.com/dmitrijs2005/gophscan/internal/common"
	"github.com/dmitrijs2005/gophscan/internal/logging"
	"github.com/dmitrijs2005/gophscan/internal/metrics"
	"github.com/dmitrijs2005/gophscan/internal/server/models"
	"github.com/dmitrijs2005/gophscan/internal/server/repositories/repomanager"
)

// RedeemRequest is one uploaded redemption. Date is when the scanner saw the
// ticket; a zero Date means now.
type RedeemRequest struct {
	Event        string
	ListID       int64
	Secret       string
	Nonce        string
	Type         string
	Date         time.Time
	Force        bool
	IgnoreUnpaid bool
	Answers      []scanmodels.Answer
	Device       string
}

// Redemption is the authority's verdict.
type Redemption struct {
	Status scanmodels.Status
	Reason scanmodels.Reason
	// Replayed is set when the nonce had already been accepted.
	Replayed bool
	Forced   bool
}

func redeemed() *Redemption {
	return &Redemption{Status: scanmodels.StatusRedeemed}
}

func denied(reason scanmodels.Reason) *Redemption {
	return &Redemption{Status: scanmodels.StatusError, Reason: reason}
}

// RedemptionService decides uploads against the authoritative store. Each
// decision and the check-in it produces commit in one transaction, and a
// nonce is accepted at most once.
type RedemptionService struct {
	repos  repomanager.RepositoryManager
	clk    clock.Clock
	logger logging.Logger
}

func NewRedemptionService(repos repomanager.RepositoryManager, clk clock.Clock, logger logging.Logger) *RedemptionService {
	return &RedemptionService{repos: repos, clk: clk, logger: logger.With("module", "redemption")}
}

func (s *RedemptionService) Redeem(ctx context.Context, req RedeemRequest) (*Redemption, error) {
	if req.Type == "" {
		req.Type = common.CheckInTypeEntry
	}
	if req.Type != common.CheckInTypeEntry && req.Type != common.CheckInTypeExit {
		return nil, fmt.Errorf("%w: check-in type %q", ErrInvalidRequest, req.Type)
	}
	if req.Nonce == "" {
		return nil, fmt.Errorf("%w: missing nonce", ErrInvalidRequest)
	}

	now := s.clk.Now()
	at := req.Date
	if at.IsZero() {
		at = now
	}

	var res *Redemption
	err := s.repos.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		res, err = s.decide(ctx, r, req, at, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.RedemptionsTotal.WithLabelValues(string(res.Status), string(res.Reason)).Inc()
	s.logger.Info(ctx, "redemption decided",
		"event", req.Event, "list", req.ListID, "type", req.Type, "device", req.Device,
		"answers", len(req.Answers), "status", res.Status, "reason", res.Reason,
		"forced", res.Forced, "replayed", res.Replayed)
	return res, nil
}

func (s *RedemptionService) decide(ctx context.Context, r repomanager.Repositories, req RedeemRequest, at, now time.Time) (*Redemption, error) {
	prev, err := r.CheckIns.GetByNonce(ctx, req.Nonce)
	if err != nil {
		return nil, err
	}
	if prev != nil {
		res := redeemed()
		res.Replayed = true
		return res, nil
	}

	ev, err := r.Events.Get(ctx, req.Event)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, fmt.Errorf("%w: %s", ErrEventNotFound, req.Event)
	}
	list, err := r.CheckInLists.Get(ctx, ev.Slug, req.ListID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, fmt.Errorf("%w: %d", ErrListNotFound, req.ListID)
	}

	keys, _ := ticket.ParsePublicKeys(ev.ValidKeys)
	tk, err := ticket.Verify(req.Secret, keys)
	if err != nil {
		return denied(scanmodels.ReasonInvalid), nil
	}
	pos, err := r.Positions.GetBySecret(ctx, ev.Slug, tk.Secret)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return denied(scanmodels.ReasonInvalid), nil
	}

	revoked, err := r.Revoked.IsRevoked(ctx, ev.Slug, tk.Secret)
	if err != nil {
		return nil, err
	}
	if revoked {
		return denied(scanmodels.ReasonRevoked), nil
	}

	stored, err := r.Items.Get(ctx, ev.Slug, pos.ItemID)
	if err != nil {
		return nil, err
	}
	policy := toScanList(list)
	if stored == nil || !toScanItem(stored).HasVariation(pos.VariationID) || !policy.Admits(stored.ID) {
		return denied(scanmodels.ReasonProduct), nil
	}

	if (tk.ValidFrom != nil && at.Before(*tk.ValidFrom)) || (tk.ValidUntil != nil && at.After(*tk.ValidUntil)) {
		return denied(scanmodels.ReasonInvalidTime), nil
	}

	switch pos.Status {
	case scanmodels.OrderStatusPending, scanmodels.OrderStatusExpired:
		if !(list.IncludePending && req.IgnoreUnpaid) {
			return denied(scanmodels.ReasonUnpaid), nil
		}
	case scanmodels.OrderStatusCanceled:
		return denied(scanmodels.ReasonCanceled), nil
	}

	res := redeemed()
	if req.Type == common.CheckInTypeEntry {
		history, err := r.CheckIns.ListByPosition(ctx, ev.Slug, pos.ID)
		if err != nil {
			return nil, err
		}
		sev := toScanEvent(ev)
		loc, err := sev.Location()
		if err != nil {
			return nil, err
		}
		f := facts.NewBuilder(loc).Build(at, tk, list.ID, toScanHistory(history))
		reason, err := validator.EntryDenial(sev, policy, f, loc, at)
		if err != nil {
			s.logger.Warn(ctx, "admission rules failed to evaluate, denying", "list", list.ID, "error", err)
		}
		if reason != scanmodels.ReasonNone {
			if !req.Force {
				return denied(reason), nil
			}
			res.Forced = true
		}
	}

	ok, err := r.CheckIns.Insert(ctx, &models.CheckIn{
		EventSlug:  ev.Slug,
		PositionID: pos.ID,
		ListID:     list.ID,
		Nonce:      req.Nonce,
		Type:       req.Type,
		Date:       at,
		Forced:     res.Forced,
		Device:     req.Device,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		res.Replayed = true
		return res, nil
	}
	if err := r.Positions.Touch(ctx, ev.Slug, pos.ID, now); err != nil {
		return nil, err
	}
	return res, nil
}
