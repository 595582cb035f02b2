package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophscan/internal/client/client"
	"github.com/dmitrijs2005/gophscan/internal/client/models"
	"github.com/dmitrijs2005/gophscan/internal/client/repositories/queue"
	"github.com/dmitrijs2005/gophscan/internal/common"
	"github.com/dmitrijs2005/gophscan/internal/dbx"
)

// ---- fake client ----

type pager[T any] struct {
	pages   []*models.Page[T]
	failAt  int
	queries []models.PageQuery
}

func (p *pager[T]) list(q models.PageQuery) (*models.Page[T], error) {
	p.queries = append(p.queries, q)
	if p.failAt == q.Page {
		return nil, client.ErrUnavailable
	}
	if len(p.pages) == 0 {
		return &models.Page[T]{}, nil
	}
	return p.pages[q.Page-1], nil
}

type fakeClient struct {
	mu    sync.Mutex
	calls []string

	pingErr  error
	redeem   func(ctx context.Context, q *models.QueuedRedemptionRequest) (*models.RedemptionResponse, error)
	redeemed []models.QueuedRedemptionRequest

	event    *models.Event
	eventErr error

	items     pager[models.Item]
	lists     pager[models.CheckInList]
	revoked   pager[models.RevokedSecret]
	positions pager[models.OrderPosition]
}

func (f *fakeClient) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Ping(context.Context) error {
	f.record("ping")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pingErr
}

func (f *fakeClient) Redeem(ctx context.Context, q *models.QueuedRedemptionRequest) (*models.RedemptionResponse, error) {
	f.record("redeem")
	f.mu.Lock()
	f.redeemed = append(f.redeemed, *q)
	fn := f.redeem
	f.mu.Unlock()
	if fn == nil {
		return &models.RedemptionResponse{Status: models.StatusRedeemed}, nil
	}
	return fn(ctx, q)
}

func (f *fakeClient) GetEvent(context.Context, string) (*models.Event, error) {
	f.record("event")
	if f.eventErr != nil {
		return nil, f.eventErr
	}
	return f.event, nil
}

func (f *fakeClient) ListItems(_ context.Context, _ string, q models.PageQuery) (*models.Page[models.Item], error) {
	f.record("items")
	return f.items.list(q)
}

func (f *fakeClient) ListCheckInLists(_ context.Context, _ string, q models.PageQuery) (*models.Page[models.CheckInList], error) {
	f.record("checkinlists")
	return f.lists.list(q)
}

func (f *fakeClient) ListRevokedSecrets(_ context.Context, _ string, q models.PageQuery) (*models.Page[models.RevokedSecret], error) {
	f.record("revokedsecrets")
	return f.revoked.list(q)
}

func (f *fakeClient) ListOrderPositions(_ context.Context, _ string, q models.PageQuery) (*models.Page[models.OrderPosition], error) {
	f.record("orderpositions")
	return f.positions.list(q)
}

// ---- helpers ----

var t0 = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func enqueue(t *testing.T, db dbx.DBTX, secret string, at time.Time) *models.QueuedRedemptionRequest {
	t.Helper()
	q := &models.QueuedRedemptionRequest{
		EventSlug: "demo",
		ListID:    1,
		Request: models.RedemptionRequest{
			Secret: secret,
			Nonce:  "nonce-" + secret,
			Type:   common.CheckInTypeEntry,
			Date:   at,
		},
	}
	_, err := queue.NewSQLiteRepository(db).Append(context.Background(), q)
	require.NoError(t, err)
	return q
}
