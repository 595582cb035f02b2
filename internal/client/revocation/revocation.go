// Package revocation answers whether a ticket secret has been revoked, using
// only the locally cached revocation list.
package revocation

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophscan/internal/client/models"
)

type Status int

const (
	// Unknown means the cache cannot vouch for the secret: the list was
	// never downloaded or is older than the allowed age.
	Unknown Status = iota
	NotRevoked
	Revoked
)

func (s Status) String() string {
	switch s {
	case NotRevoked:
		return "not_revoked"
	case Revoked:
		return "revoked"
	}
	return "unknown"
}

type SecretStore interface {
	Contains(ctx context.Context, event, secret string) (bool, error)
}

type StateStore interface {
	Get(ctx context.Context, event string, resource models.ResourceKind) (*models.SyncState, error)
}

type Checker struct {
	secrets SecretStore
	states  StateStore
	maxAge  time.Duration
}

// NewChecker builds a checker. maxAge of zero disables the staleness check.
func NewChecker(secrets SecretStore, states StateStore, maxAge time.Duration) *Checker {
	return &Checker{secrets: secrets, states: states, maxAge: maxAge}
}

// Check classifies secret at instant now. A cached revocation is final even
// when the cache is stale.
func (c *Checker) Check(ctx context.Context, event, secret string, now time.Time) (Status, error) {
	revoked, err := c.secrets.Contains(ctx, event, secret)
	if err != nil {
		return Unknown, fmt.Errorf("revocation lookup: %w", err)
	}
	if revoked {
		return Revoked, nil
	}

	st, err := c.states.Get(ctx, event, models.ResourceRevokedSecrets)
	if err != nil {
		return Unknown, fmt.Errorf("revocation sync state: %w", err)
	}
	if st == nil {
		return Unknown, nil
	}
	if c.maxAge > 0 && now.Sub(st.SyncedAt) > c.maxAge {
		return Unknown, nil
	}
	return NotRevoked, nil
}
