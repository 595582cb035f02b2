package localcheckins

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophscan/internal/client/models"
	"github.com/dmitrijs2005/gophscan/internal/client/testdb"
	"github.com/dmitrijs2005/gophscan/internal/common"
)

var t0 = time.Date(2026, 6, 12, 10, 0, 0, 0, time.UTC)

func uploaded(nonce, secret string, at time.Time) *models.QueuedRedemptionRequest {
	return &models.QueuedRedemptionRequest{
		EventSlug: "ev",
		ListID:    1,
		Request: models.RedemptionRequest{
			Secret: secret,
			Nonce:  nonce,
			Type:   common.CheckInTypeEntry,
			Date:   at,
		},
	}
}

func TestRecordList(t *testing.T) {
	r := NewSQLiteRepository(testdb.Open(t))
	ctx := context.Background()

	require.NoError(t, r.Record(ctx, uploaded("n2", "aaa", t0.Add(time.Hour))))
	require.NoError(t, r.Record(ctx, uploaded("n1", "aaa", t0)))
	require.NoError(t, r.Record(ctx, uploaded("n3", "bbb", t0)))

	got, err := r.ListBySecret(ctx, "ev", "aaa")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, t0.Equal(*got[0].Date))
	assert.Equal(t, int64(1), got[0].ListID)
	assert.Equal(t, common.CheckInTypeEntry, got[0].Type)
	assert.True(t, t0.Add(time.Hour).Equal(*got[1].Date))

	got, err = r.ListBySecret(ctx, "other", "aaa")
	require.NoError(t, err)
	assert.Empty(t, got, "check-ins are scoped by event")
}

func TestRecord_SameNonceOnce(t *testing.T) {
	r := NewSQLiteRepository(testdb.Open(t))
	ctx := context.Background()

	require.NoError(t, r.Record(ctx, uploaded("n1", "aaa", t0)))
	require.NoError(t, r.Record(ctx, uploaded("n1", "aaa", t0)))

	n, err := r.Count(ctx, "ev")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecord_DBErrorWrapped(t *testing.T) {
	db := testdb.Open(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	err := r.Record(context.Background(), uploaded("n1", "aaa", t0))
	assert.ErrorContains(t, err, "failed to record check-in[n1]")
}
