package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophscan/internal/client/client"
	"github.com/dmitrijs2005/gophscan/internal/client/models"
	"github.com/dmitrijs2005/gophscan/internal/client/testdb"
	"github.com/dmitrijs2005/gophscan/internal/clock"
	"github.com/dmitrijs2005/gophscan/internal/logging"
)

func newSyncService(t *testing.T, fc *fakeClient) (SyncService, *sql.DB, *clock.FakeClock) {
	t.Helper()
	db := testdb.Open(t)
	clk := clock.Fake(t0)
	return NewSyncService(db, fc, clk, logging.Discard()), db, clk
}

func itemPage(generatedAt string, hasNext bool, ids ...int64) *models.Page[models.Item] {
	p := &models.Page[models.Item]{GeneratedAt: generatedAt, HasNext: hasNext, Count: len(ids)}
	for _, id := range ids {
		p.Results = append(p.Results, models.Item{ID: id, Name: "item", Admission: true})
	}
	return p
}

func itemIDs(t *testing.T, db *sql.DB) []int64 {
	t.Helper()
	items, err := client.NewRepositories(db).Items.List(context.Background(), "demo")
	require.NoError(t, err)
	var ids []int64
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func state(t *testing.T, db *sql.DB, kind models.ResourceKind) *models.SyncState {
	t.Helper()
	st, err := client.NewRepositories(db).SyncState.Get(context.Background(), "demo", kind)
	require.NoError(t, err)
	return st
}

func TestSyncResource_FullRecordsFirstPageTimestamp(t *testing.T) {
	fc := &fakeClient{}
	fc.items.pages = []*models.Page[models.Item]{
		itemPage("g1", true, 1, 2),
		itemPage("g2", false, 3),
	}
	svc, db, _ := newSyncService(t, fc)

	require.NoError(t, svc.SyncResource(context.Background(), "demo", models.ResourceItems))

	assert.Equal(t, []models.PageQuery{{Page: 1}, {Page: 2}}, fc.items.queries)
	assert.ElementsMatch(t, []int64{1, 2, 3}, itemIDs(t, db))

	st := state(t, db, models.ResourceItems)
	require.NotNil(t, st)
	assert.Equal(t, "g1", st.GeneratedAt)
	assert.True(t, t0.Equal(st.SyncedAt))
}

func TestSyncResource_PartialAsksSinceRecordedTimestamp(t *testing.T) {
	fc := &fakeClient{}
	fc.items.pages = []*models.Page[models.Item]{itemPage("g1", false, 1)}
	svc, db, clk := newSyncService(t, fc)
	require.NoError(t, svc.SyncResource(context.Background(), "demo", models.ResourceItems))

	clk.Advance(time.Minute)
	fc.items.queries = nil
	fc.items.pages = []*models.Page[models.Item]{
		itemPage("g2", true, 2),
		itemPage("g3", false, 3),
	}
	require.NoError(t, svc.SyncResource(context.Background(), "demo", models.ResourceItems))

	assert.Equal(t, []models.PageQuery{
		{Page: 1, ModifiedSince: "g1"},
		{Page: 2, ModifiedSince: "g1"},
	}, fc.items.queries)
	assert.ElementsMatch(t, []int64{1, 2, 3}, itemIDs(t, db))

	st := state(t, db, models.ResourceItems)
	assert.Equal(t, "g2", st.GeneratedAt, "first page's timestamp")
	assert.True(t, t0.Add(time.Minute).Equal(st.SyncedAt))
}

func TestSyncResource_InterruptedFullSyncRecordsNothing(t *testing.T) {
	fc := &fakeClient{}
	fc.items.pages = []*models.Page[models.Item]{
		itemPage("g1", true, 1),
		itemPage("g2", false, 2),
	}
	fc.items.failAt = 2
	svc, db, _ := newSyncService(t, fc)

	err := svc.SyncResource(context.Background(), "demo", models.ResourceItems)
	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.Nil(t, state(t, db, models.ResourceItems))

	fc.items.failAt = 0
	fc.items.queries = nil
	require.NoError(t, svc.SyncResource(context.Background(), "demo", models.ResourceItems))
	assert.Equal(t, models.PageQuery{Page: 1}, fc.items.queries[0])
	assert.ElementsMatch(t, []int64{1, 2}, itemIDs(t, db))
}

func TestSyncResource_InterruptedPartialSyncKeepsOldTimestamp(t *testing.T) {
	fc := &fakeClient{}
	fc.items.pages = []*models.Page[models.Item]{itemPage("g1", false, 1)}
	svc, db, _ := newSyncService(t, fc)
	require.NoError(t, svc.SyncResource(context.Background(), "demo", models.ResourceItems))

	fc.items.queries = nil
	fc.items.pages = []*models.Page[models.Item]{
		itemPage("g2", true, 2),
		itemPage("g3", false, 3),
	}
	fc.items.failAt = 2
	err := svc.SyncResource(context.Background(), "demo", models.ResourceItems)
	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.Equal(t, "g1", state(t, db, models.ResourceItems).GeneratedAt)
	assert.ElementsMatch(t, []int64{1, 2}, itemIDs(t, db), "stored pages are kept")

	fc.items.failAt = 0
	fc.items.queries = nil
	require.NoError(t, svc.SyncResource(context.Background(), "demo", models.ResourceItems))
	assert.Equal(t, []models.PageQuery{
		{Page: 1, ModifiedSince: "g1"},
		{Page: 2, ModifiedSince: "g1"},
	}, fc.items.queries)
	assert.ElementsMatch(t, []int64{1, 2, 3}, itemIDs(t, db))
	assert.Equal(t, "g2", state(t, db, models.ResourceItems).GeneratedAt)
}

func TestSyncResource_FullReplacesLocalRows(t *testing.T) {
	fc := &fakeClient{}
	svc, db, _ := newSyncService(t, fc)
	require.NoError(t, client.NewRepositories(db).Items.Put(context.Background(), "demo", []models.Item{{ID: 99}}))

	fc.items.pages = []*models.Page[models.Item]{itemPage("g1", false, 1)}
	require.NoError(t, svc.SyncResource(context.Background(), "demo", models.ResourceItems))

	assert.Equal(t, []int64{1}, itemIDs(t, db))
}

func TestSyncResource_PartialKeepsTimestampWhenPageHasNone(t *testing.T) {
	fc := &fakeClient{}
	fc.items.pages = []*models.Page[models.Item]{itemPage("g1", false, 1)}
	svc, db, _ := newSyncService(t, fc)
	require.NoError(t, svc.SyncResource(context.Background(), "demo", models.ResourceItems))

	fc.items.pages = []*models.Page[models.Item]{itemPage("", false)}
	require.NoError(t, svc.SyncResource(context.Background(), "demo", models.ResourceItems))
	assert.Equal(t, "g1", state(t, db, models.ResourceItems).GeneratedAt)
}

func TestReset_ForcesFullSync(t *testing.T) {
	fc := &fakeClient{}
	fc.items.pages = []*models.Page[models.Item]{itemPage("g1", false, 1)}
	svc, _, _ := newSyncService(t, fc)
	require.NoError(t, svc.SyncResource(context.Background(), "demo", models.ResourceItems))

	require.NoError(t, svc.Reset(context.Background(), "demo", models.ResourceItems))
	fc.items.queries = nil
	require.NoError(t, svc.SyncResource(context.Background(), "demo", models.ResourceItems))
	assert.Equal(t, []models.PageQuery{{Page: 1}}, fc.items.queries)
}

func TestSync_AllResources(t *testing.T) {
	at := t0.Add(-time.Hour)
	fc := &fakeClient{
		event: &models.Event{
			Slug:      "demo",
			Name:      "Demo",
			Timezone:  "UTC",
			DateFrom:  t0,
			ValidKeys: []string{"key-1", "key-2"},
		},
	}
	fc.items.pages = []*models.Page[models.Item]{itemPage("g1", false, 1)}
	fc.lists.pages = []*models.Page[models.CheckInList]{{
		GeneratedAt: "g1",
		Results:     []models.CheckInList{{ID: 5, Name: "Main", AllProducts: true}},
	}}
	fc.revoked.pages = []*models.Page[models.RevokedSecret]{{
		GeneratedAt: "g1",
		Results:     []models.RevokedSecret{{ID: 1, Secret: "gone"}},
	}}
	fc.positions.pages = []*models.Page[models.OrderPosition]{{
		GeneratedAt: "g1",
		Results: []models.OrderPosition{{
			ID: 7, OrderCode: "ABC", Status: models.OrderStatusPaid, Secret: "s7", ItemID: 1,
			CheckIns: []models.CheckIn{{ListID: 5, Type: "entry", Date: &at}},
		}},
	}}
	svc, db, _ := newSyncService(t, fc)
	ctx := context.Background()

	require.NoError(t, svc.Sync(ctx, "demo"))
	assert.Equal(t, "event", fc.Calls()[0])

	repos := client.NewRepositories(db)
	ev, err := repos.Events.Get(ctx, "demo")
	require.NoError(t, err)
	require.NotNil(t, ev)
	assert.Equal(t, []string{"key-1", "key-2"}, ev.ValidKeys)

	list, err := repos.CheckInLists.Get(ctx, "demo", 5)
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Equal(t, "Main", list.Name)

	revoked, err := repos.Revoked.Contains(ctx, "demo", "gone")
	require.NoError(t, err)
	assert.True(t, revoked)

	checkins, err := repos.Positions.CheckIns(ctx, "demo", "s7")
	require.NoError(t, err)
	require.Len(t, checkins, 1)
	assert.True(t, at.Equal(*checkins[0].Date))

	states, err := svc.Status(ctx, "demo")
	require.NoError(t, err)
	assert.Len(t, states, 5)
}

func TestSync_EventFailureStopsRound(t *testing.T) {
	fc := &fakeClient{eventErr: client.ErrUnavailable}
	svc, _, _ := newSyncService(t, fc)

	err := svc.Sync(context.Background(), "demo")
	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.Equal(t, []string{"event"}, fc.Calls())
}

func TestSyncResource_Unknown(t *testing.T) {
	svc, _, _ := newSyncService(t, &fakeClient{})
	assert.Error(t, svc.SyncResource(context.Background(), "demo", models.ResourceKind("nope")))
}
