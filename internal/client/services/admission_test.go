package services

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophscan/internal/client/client"
	"github.com/dmitrijs2005/gophscan/internal/client/models"
	"github.com/dmitrijs2005/gophscan/internal/client/testdb"
	"github.com/dmitrijs2005/gophscan/internal/client/ticket"
	"github.com/dmitrijs2005/gophscan/internal/client/validator"
	"github.com/dmitrijs2005/gophscan/internal/clock"
	"github.com/dmitrijs2005/gophscan/internal/logging"
)

func TestUploadedAdmissionStillCountsForRules(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	clk := clock.Fake(t0)

	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	pem, err := ticket.EncodePublicKey(pub)
	require.NoError(t, err)
	secret, err := ticket.Encode(ticket.Payload{Seed: "once-a-day", ItemID: 1}, priv)
	require.NoError(t, err)

	repos := client.NewRepositories(db)
	require.NoError(t, repos.Events.Put(ctx, &models.Event{
		Slug: "demo", Name: "Demo", Timezone: "UTC", DateFrom: t0.Add(-time.Hour), ValidKeys: []string{pem},
	}))
	require.NoError(t, repos.Items.Put(ctx, "demo", []models.Item{{ID: 1, Name: "Day pass", Active: true, Admission: true}}))
	require.NoError(t, repos.CheckInLists.Put(ctx, "demo", []models.CheckInList{{
		ID: 1, Name: "Main", AllProducts: true, AllowMultipleEntries: true, AllowEntryAfterExit: true,
		Rules: json.RawMessage(`{"<": [{"var": "entries_today"}, 1]}`),
	}}))
	require.NoError(t, repos.SyncState.Set(ctx, models.SyncState{
		EventSlug: "demo", Resource: models.ResourceRevokedSecrets, GeneratedAt: "g0", SyncedAt: t0,
	}))

	v := validator.NewValidator(db, logging.Discard(), validator.Options{Clock: clk, MaxRevocationAge: time.Hour})
	q := NewQueueService(&fakeClient{}, db, logging.Discard())
	scan := validator.ScanRequest{EventSlug: "demo", ListID: 1, Secret: secret}

	d, err := v.Validate(ctx, scan)
	require.NoError(t, err)
	require.Equal(t, models.StatusRedeemed, d.Status)

	res, err := q.Drain(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, DrainResult{Uploaded: 1}, res)

	clk.Advance(10 * time.Minute)
	d, err = v.Validate(ctx, scan)
	require.NoError(t, err)
	assert.Equal(t, models.StatusError, d.Status)
	assert.Equal(t, models.ReasonRule, d.Reason)
	assert.Equal(t, 1, d.Facts.EntriesToday)
}
