// Package models holds the scanner-side domain types: the cached catalog
// (events, trusted keys, items, check-in lists, order positions), the
// redemption queue rows and the sync bookkeeping around them.
package models

import (
	"fmt"
	"time"
)

// Event is the cached view of an event. ValidKeys are base64-encoded PEM
// Ed25519 public keys allowed to sign tickets for this event.
type Event struct {
	Slug          string
	Name          string
	Timezone      string
	DateFrom      time.Time
	DateTo        *time.Time
	DateAdmission *time.Time
	ValidKeys     []string
}

// Location resolves the event timezone. An empty name means UTC; a name the
// tz database does not know is an error.
func (e *Event) Location() (*time.Location, error) {
	if e == nil || e.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return nil, fmt.Errorf("event %s timezone: %w", e.Slug, err)
	}
	return loc, nil
}

// TrustedKey is one public key entitled to sign tickets of an event.
type TrustedKey struct {
	EventSlug string
	PEM       string
}

// RevokedSecret is a ticket secret invalidated by the authority.
type RevokedSecret struct {
	ID     int64
	Secret string
}
