package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/gophscan/internal/client/client"
	"github.com/dmitrijs2005/gophscan/internal/clock"
	"github.com/dmitrijs2005/gophscan/internal/logging"
	"github.com/dmitrijs2005/gophscan/internal/metrics"
)

type SchedulerOptions struct {
	// SyncInterval separates background rounds of drain and download.
	SyncInterval time.Duration
	// PingInterval separates reachability checks. A check that finds the
	// authority back starts a round at once.
	PingInterval time.Duration
}

// RoundResult reports one background round.
type RoundResult struct {
	Online  bool
	Drained bool
	Drain   DrainResult
	Err     error
}

// Scheduler keeps one event's local data in step with the authority: it
// uploads the queue and refreshes the caches periodically while the
// authority is reachable.
type Scheduler struct {
	event  string
	client client.Client
	queue  QueueService
	sync   SyncService
	clock  clock.Clock
	logger logging.Logger
	opts   SchedulerOptions

	online atomic.Bool

	// OnRound, when set, is called after every round.
	OnRound func(RoundResult)
}

func NewScheduler(event string, c client.Client, q QueueService, s SyncService, clk clock.Clock, logger logging.Logger, opts SchedulerOptions) *Scheduler {
	if clk == nil {
		clk = clock.Real()
	}
	if opts.SyncInterval <= 0 {
		opts.SyncInterval = time.Minute
	}
	if opts.PingInterval <= 0 {
		opts.PingInterval = opts.SyncInterval
	}
	return &Scheduler{
		event:  event,
		client: c,
		queue:  q,
		sync:   s,
		clock:  clk,
		logger: logger.With("module", "scheduler", "event", event),
		opts:   opts,
	}
}

// Online reports the outcome of the last reachability check.
func (s *Scheduler) Online() bool { return s.online.Load() }

func (s *Scheduler) ping(ctx context.Context) bool {
	err := s.client.Ping(ctx)
	up := err == nil
	if was := s.online.Swap(up); was != up {
		if up {
			s.logger.Info(ctx, "authority reachable, switching to online mode")
		} else {
			s.logger.Warn(ctx, "authority unreachable, switching to offline mode", "error", err)
		}
	}
	if up {
		metrics.Online.Set(1)
	} else {
		metrics.Online.Set(0)
	}
	return up
}

// RunOnce performs one round: uploads pending redemptions, then refreshes
// the caches. Uploading first lets the downloaded history include this
// device's redemptions. A round skips its drain when one is already running.
func (s *Scheduler) RunOnce(ctx context.Context) RoundResult {
	var res RoundResult
	defer func() {
		if s.OnRound != nil {
			s.OnRound(res)
		}
	}()

	if res.Online = s.ping(ctx); !res.Online {
		res.Err = client.ErrUnavailable
		return res
	}

	var err error
	res.Drain, res.Drained, err = s.queue.TryDrain(ctx, s.event)
	if err != nil {
		res.Err = fmt.Errorf("drain: %w", err)
		return res
	}
	if res.Drained && res.Drain != (DrainResult{}) {
		s.logger.Info(ctx, "queue drained",
			"uploaded", res.Drain.Uploaded,
			"rejected", res.Drain.Rejected,
			"discarded", res.Drain.Discarded,
			"remaining", res.Drain.Remaining)
	}

	if err := s.sync.Sync(ctx, s.event); err != nil {
		res.Err = fmt.Errorf("sync: %w", err)
	}
	return res
}

// Run starts with a round and keeps going until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	roundTicker := s.clock.NewTicker(s.opts.SyncInterval)
	defer roundTicker.Stop()
	pingTicker := s.clock.NewTicker(s.opts.PingInterval)
	defer pingTicker.Stop()

	s.logRound(ctx, s.RunOnce(ctx))
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-roundTicker.C:
			s.logRound(ctx, s.RunOnce(ctx))
		case <-pingTicker.C:
			if !s.Online() && s.ping(ctx) {
				s.logRound(ctx, s.RunOnce(ctx))
			}
		}
	}
}

func (s *Scheduler) logRound(ctx context.Context, res RoundResult) {
	if res.Err != nil && res.Online && ctx.Err() == nil {
		s.logger.Warn(ctx, "background round failed", "error", res.Err)
	}
}
