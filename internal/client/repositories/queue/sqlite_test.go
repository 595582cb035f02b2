package queue

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophscan/internal/client/models"
	"github.com/dmitrijs2005/gophscan/internal/client/testdb"
)

var base = time.Date(2026, 6, 12, 10, 0, 0, 0, time.UTC)

func request(secret, nonce string, offset time.Duration) *models.QueuedRedemptionRequest {
	return &models.QueuedRedemptionRequest{
		EventSlug: "ev",
		ListID:    1,
		Request: models.RedemptionRequest{
			Secret: secret,
			Nonce:  nonce,
			Type:   "entry",
			Date:   base.Add(offset),
		},
	}
}

func TestAppendOldest_FIFO(t *testing.T) {
	r := NewSQLiteRepository(testdb.Open(t))
	ctx := context.Background()

	first := request("a", "n1", 0)
	first.Request.Force = true
	first.Request.Answers = []models.Answer{{QuestionID: 4, Value: "yes"}}
	id1, err := r.Append(ctx, first)
	require.NoError(t, err)
	id2, err := r.Append(ctx, request("b", "n2", time.Second))
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	got, err := r.Oldest(ctx, "ev")
	require.NoError(t, err)
	if diff := cmp.Diff(first, got); diff != "" {
		t.Errorf("queued request mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, r.Delete(ctx, id1))
	got, err = r.Oldest(ctx, "ev")
	require.NoError(t, err)
	assert.Equal(t, id2, got.ID)
}

func TestOldest_Empty_ReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(testdb.Open(t))

	got, err := r.Oldest(context.Background(), "ev")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAppend_RejectsSameListSecretDate(t *testing.T) {
	r := NewSQLiteRepository(testdb.Open(t))
	ctx := context.Background()

	_, err := r.Append(ctx, request("a", "n1", 0))
	require.NoError(t, err)
	_, err = r.Append(ctx, request("a", "n2", 0))
	assert.Error(t, err)

	n, err := r.Count(ctx, "ev")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDelete_IsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(testdb.Open(t))
	ctx := context.Background()

	id, err := r.Append(ctx, request("a", "n1", 0))
	require.NoError(t, err)
	require.NoError(t, r.Delete(ctx, id))
	require.NoError(t, r.Delete(ctx, id))

	n, err := r.Count(ctx, "ev")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestListBySecret(t *testing.T) {
	r := NewSQLiteRepository(testdb.Open(t))
	ctx := context.Background()

	for i, s := range []string{"a", "b", "a"} {
		_, err := r.Append(ctx, request(s, s+string(rune('0'+i)), time.Duration(i)*time.Minute))
		require.NoError(t, err)
	}

	got, err := r.ListBySecret(ctx, "ev", "a")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Request.Date.Before(got[1].Request.Date))
	assert.Nil(t, got[0].Request.Answers)
}

func TestAppend_DBErrorWrapped(t *testing.T) {
	db := testdb.Open(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	_, err := r.Append(context.Background(), request("a", "n", 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to queue redemption")
}
