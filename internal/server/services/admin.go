package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophscan/internal/client/ticket"
	"github.com/dmitrijs2005/gophscan/internal/clock"
	"github.com/dmitrijs2005/gophscan/internal/logging"
	"github.com/dmitrijs2005/gophscan/internal/server/models"
	"github.com/dmitrijs2005/gophscan/internal/server/repositories/repomanager"
)

// AdminService loads events into the authority and revokes tickets.
type AdminService struct {
	repos  repomanager.RepositoryManager
	clk    clock.Clock
	logger logging.Logger
}

func NewAdminService(repos repomanager.RepositoryManager, clk clock.Clock, logger logging.Logger) *AdminService {
	return &AdminService{repos: repos, clk: clk, logger: logger.With("module", "admin")}
}

// Import upserts a fixture in one transaction. Every imported row is stamped
// with the current time, so scanners pick it up on their next sync. The
// check-in history of a position is imported only the first time the
// position is seen.
func (s *AdminService) Import(ctx context.Context, fx *models.Fixture) error {
	if fx.Event.Slug == "" {
		return fmt.Errorf("%w: fixture has no event slug", ErrInvalidRequest)
	}
	now := s.clk.Now()
	slug := fx.Event.Slug

	err := s.repos.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		ev := fx.Event
		ev.UpdatedAt = now
		if err := r.Events.Upsert(ctx, &ev); err != nil {
			return err
		}
		for _, it := range fx.Items {
			it.EventSlug, it.UpdatedAt = slug, now
			if err := r.Items.Upsert(ctx, &it); err != nil {
				return err
			}
		}
		for _, l := range fx.Lists {
			l.EventSlug, l.UpdatedAt = slug, now
			if err := r.CheckInLists.Upsert(ctx, &l); err != nil {
				return err
			}
		}
		for _, rs := range fx.Revoked {
			rs.EventSlug, rs.Secret, rs.UpdatedAt = slug, canonicalSecret(rs.Secret), now
			if err := r.Revoked.Upsert(ctx, &rs); err != nil {
				return err
			}
		}
		for _, p := range fx.Positions {
			if err := importPosition(ctx, r, slug, p, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to import event[%s]: %w", slug, err)
	}

	s.logger.Info(ctx, "event imported", "event", slug,
		"items", len(fx.Items), "lists", len(fx.Lists), "revoked", len(fx.Revoked), "positions", len(fx.Positions))
	return nil
}

// canonicalSecret stores signed secrets the way scanners report them.
// Anything that is not a signed secret is kept verbatim.
func canonicalSecret(s string) string {
	if c, err := ticket.Canonical(s); err == nil {
		return c
	}
	return s
}

func importPosition(ctx context.Context, r repomanager.Repositories, slug string, p models.OrderPosition, now time.Time) error {
	p.Secret = canonicalSecret(p.Secret)
	known, err := r.Positions.GetBySecret(ctx, slug, p.Secret)
	if err != nil {
		return err
	}
	p.EventSlug, p.UpdatedAt = slug, now
	if err := r.Positions.Upsert(ctx, &p); err != nil {
		return err
	}
	if known != nil {
		return nil
	}
	for _, c := range p.CheckIns {
		c.EventSlug, c.PositionID = slug, p.ID
		if _, err := r.CheckIns.Insert(ctx, &c); err != nil {
			return err
		}
	}
	return nil
}

// Revoke invalidates secret for event.
func (s *AdminService) Revoke(ctx context.Context, event, secret string) (*models.RevokedSecret, error) {
	rs := &models.RevokedSecret{EventSlug: event, Secret: canonicalSecret(secret), UpdatedAt: s.clk.Now()}
	err := s.repos.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		ev, err := r.Events.Get(ctx, event)
		if err != nil {
			return err
		}
		if ev == nil {
			return fmt.Errorf("%w: %s", ErrEventNotFound, event)
		}
		return r.Revoked.Upsert(ctx, rs)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "secret revoked", "event", event, "id", rs.ID)
	return rs, nil
}
