// Package repomanager bundles the authority repositories behind one handle
// that also scopes work to transactions and owns schema migrations.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gophscan/internal/server/repositories/checkinlists"
	"github.com/dmitrijs2005/gophscan/internal/server/repositories/checkins"
	"github.com/dmitrijs2005/gophscan/internal/server/repositories/events"
	"github.com/dmitrijs2005/gophscan/internal/server/repositories/items"
	"github.com/dmitrijs2005/gophscan/internal/server/repositories/positions"
	"github.com/dmitrijs2005/gophscan/internal/server/repositories/revoked"
)

// Repositories is one consistent view of the store.
type Repositories struct {
	Events       events.Repository
	Items        items.Repository
	CheckInLists checkinlists.Repository
	Revoked      revoked.Repository
	Positions    positions.Repository
	CheckIns     checkins.Repository
}

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	// Repositories returns repositories outside of any transaction.
	Repositories() Repositories
	// WithTx runs fn with repositories bound to one serializable
	// transaction, committed when fn returns nil.
	WithTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error
}
