package services

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophscan/internal/client/ticket"
	"github.com/dmitrijs2005/gophscan/internal/clock"
	"github.com/dmitrijs2005/gophscan/internal/logging"
	"github.com/dmitrijs2005/gophscan/internal/server/models"
	"github.com/dmitrijs2005/gophscan/internal/server/repositories/repomanager"
)

var t0 = time.Date(2026, 6, 12, 9, 0, 0, 0, time.UTC)

// world is an authority with one imported event:
//
//	items: 7 (variations 1, 2), 8
//	lists: 1 main (item 7 only), 2 lounge (rules, multiple entries),
//	       3 pending-friendly (all products, include pending)
//	tickets: paid, paid2, pending, canceled, other (item 8), future,
//	         revoked, unsold (signed but no position)
type world struct {
	repos   *repomanager.InMemoryRepositoryManager
	clk     *clock.FakeClock
	redeem  *RedemptionService
	catalog *CatalogService
	admin   *AdminService
	tickets map[string]string
	fixture *models.Fixture
}

func newWorld(t *testing.T) *world {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	pem, err := ticket.EncodePublicKey(pub)
	require.NoError(t, err)

	mint := func(seed string, item int64, p ticket.Payload) string {
		p.Seed, p.ItemID = seed, item
		s, err := ticket.Encode(p, priv)
		require.NoError(t, err)
		return s
	}
	later := t0.Add(48 * time.Hour)
	tickets := map[string]string{
		"paid":     mint("paid", 7, ticket.Payload{}),
		"paid2":    mint("paid2", 7, ticket.Payload{VariationID: 2}),
		"pending":  mint("pending", 7, ticket.Payload{}),
		"canceled": mint("canceled", 7, ticket.Payload{}),
		"other":    mint("other", 8, ticket.Payload{}),
		"future":   mint("future", 7, ticket.Payload{ValidFrom: &later}),
		"revoked":  mint("revoked", 7, ticket.Payload{}),
		"unsold":   mint("unsold", 7, ticket.Payload{}),
	}

	pos := func(id int64, name, status string, item int64) models.OrderPosition {
		return models.OrderPosition{ID: id, OrderCode: "O" + name, Status: status, Secret: tickets[name], ItemID: item}
	}
	fx := &models.Fixture{
		Event: models.Event{Slug: "conf", Name: "Conference", Timezone: "UTC", DateFrom: t0, ValidKeys: []string{pem}},
		Items: []models.Item{
			{ID: 7, Name: "Day pass", Active: true, Admission: true, Variations: []models.Variation{{ID: 1, Value: "Fri"}, {ID: 2, Value: "Sat"}}},
			{ID: 8, Name: "T-shirt", Active: true},
		},
		Lists: []models.CheckInList{
			{ID: 1, Name: "Main", LimitProducts: []int64{7}, AllowEntryAfterExit: true},
			{ID: 2, Name: "Lounge", AllProducts: true, AllowMultipleEntries: true,
				Rules: json.RawMessage(`{"<":[{"var":"entries_today"},2]}`)},
			{ID: 3, Name: "Box office", AllProducts: true, IncludePending: true},
		},
		Revoked: []models.RevokedSecret{{Secret: tickets["revoked"]}},
		Positions: []models.OrderPosition{
			pos(1, "paid", "p", 7),
			pos(2, "paid2", "p", 7),
			pos(3, "pending", "n", 7),
			pos(4, "canceled", "c", 7),
			pos(5, "other", "p", 8),
			pos(6, "future", "p", 7),
			pos(7, "revoked", "p", 7),
		},
	}
	fx.Positions[1].VariationID = 2

	repos := repomanager.NewInMemoryRepositoryManager()
	clk := clock.Fake(t0)
	w := &world{
		repos:   repos,
		clk:     clk,
		redeem:  NewRedemptionService(repos, clk, logging.Discard()),
		catalog: NewCatalogService(repos, clk, 2),
		admin:   NewAdminService(repos, clk, logging.Discard()),
		tickets: tickets,
		fixture: fx,
	}
	require.NoError(t, w.admin.Import(context.Background(), fx))
	return w
}

func (w *world) req(name string, list int64, nonce string) RedeemRequest {
	return RedeemRequest{Event: "conf", ListID: list, Secret: w.tickets[name], Nonce: nonce, Type: "entry", Date: w.clk.Now()}
}
