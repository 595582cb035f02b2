// Package models holds the authority's stored entities. Every listed entity
// carries UpdatedAt, which drives modified_since listings.
package models

import (
	"encoding/json"
	"time"
)

type Event struct {
	Slug          string     `json:"slug"`
	Name          string     `json:"name"`
	Timezone      string     `json:"timezone"`
	DateFrom      time.Time  `json:"date_from"`
	DateTo        *time.Time `json:"date_to,omitempty"`
	DateAdmission *time.Time `json:"date_admission,omitempty"`
	ValidKeys     []string   `json:"valid_keys"`
	UpdatedAt     time.Time  `json:"-"`
}

type Variation struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

type Item struct {
	ID         int64       `json:"id"`
	EventSlug  string      `json:"-"`
	Name       string      `json:"name"`
	Active     bool        `json:"active"`
	Admission  bool        `json:"admission"`
	Variations []Variation `json:"variations,omitempty"`
	UpdatedAt  time.Time   `json:"-"`
}

type CheckInList struct {
	ID                   int64           `json:"id"`
	EventSlug            string          `json:"-"`
	Name                 string          `json:"name"`
	AllProducts          bool            `json:"all_products"`
	LimitProducts        []int64         `json:"limit_products,omitempty"`
	IncludePending       bool            `json:"include_pending"`
	AllowMultipleEntries bool            `json:"allow_multiple_entries"`
	AllowEntryAfterExit  bool            `json:"allow_entry_after_exit"`
	Rules                json.RawMessage `json:"rules,omitempty"`
	UpdatedAt            time.Time       `json:"-"`
}

type RevokedSecret struct {
	ID        int64     `json:"id"`
	EventSlug string    `json:"-"`
	Secret    string    `json:"secret"`
	UpdatedAt time.Time `json:"-"`
}

// OrderPosition is one sold ticket. Secret is the full signed ticket string
// printed on the QR code.
type OrderPosition struct {
	ID          int64     `json:"id"`
	EventSlug   string    `json:"-"`
	OrderCode   string    `json:"order"`
	Status      string    `json:"status"`
	Secret      string    `json:"secret"`
	ItemID      int64     `json:"item"`
	VariationID int64     `json:"variation,omitempty"`
	CheckIns    []CheckIn `json:"checkins,omitempty"`
	UpdatedAt   time.Time `json:"-"`
}

// CheckIn is an accepted redemption. Nonce is the scanner's idempotency key
// and is unique across the authority.
type CheckIn struct {
	ID         int64     `json:"-"`
	EventSlug  string    `json:"-"`
	PositionID int64     `json:"-"`
	ListID     int64     `json:"list"`
	Nonce      string    `json:"nonce,omitempty"`
	Type       string    `json:"type"`
	Date       time.Time `json:"datetime"`
	Forced     bool      `json:"forced,omitempty"`
	Device     string    `json:"device,omitempty"`
}

// Filter selects one page of a per-event listing. A nil ModifiedSince lists
// everything.
type Filter struct {
	Event         string
	ModifiedSince *time.Time
	Limit         int
	Offset        int
}

// Fixture is the import format of the authority: one event with its catalog
// and sold tickets.
type Fixture struct {
	Event     Event           `json:"event"`
	Items     []Item          `json:"items"`
	Lists     []CheckInList   `json:"checkin_lists"`
	Revoked   []RevokedSecret `json:"revoked_secrets"`
	Positions []OrderPosition `json:"positions"`
}
