package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophscan/internal/server/models"
)

func TestImport_HistoryOnlyForNewPositions(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	fx := *w.fixture
	fx.Positions = []models.OrderPosition{
		{ID: 1, OrderCode: "Opaid", Status: "p", Secret: w.tickets["paid"], ItemID: 7,
			CheckIns: []models.CheckIn{{ListID: 1, Type: "entry", Date: t0}}},
		{ID: 8, OrderCode: "Onew", Status: "p", Secret: w.tickets["unsold"], ItemID: 7,
			CheckIns: []models.CheckIn{{ListID: 1, Type: "entry", Date: t0}}},
	}
	require.NoError(t, w.admin.Import(ctx, &fx))
	require.NoError(t, w.admin.Import(ctx, &fx))

	r := w.repos.Repositories()
	known, err := r.CheckIns.ListByPosition(ctx, "conf", 1)
	require.NoError(t, err)
	assert.Empty(t, known)

	fresh, err := r.CheckIns.ListByPosition(ctx, "conf", 8)
	require.NoError(t, err)
	assert.Len(t, fresh, 1)
}

func TestImport_RequiresSlug(t *testing.T) {
	w := newWorld(t)
	err := w.admin.Import(context.Background(), &models.Fixture{})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestRevoke(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	rs, err := w.admin.Revoke(ctx, "conf", "s")
	require.NoError(t, err)
	assert.NotZero(t, rs.ID)

	_, err = w.admin.Revoke(ctx, "nope", "s")
	assert.ErrorIs(t, err, ErrEventNotFound)
}
