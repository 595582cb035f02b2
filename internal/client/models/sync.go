package models

import "time"

// ResourceKind names a downloadable catalog resource.
type ResourceKind string

const (
	ResourceEvents         ResourceKind = "events"
	ResourceItems          ResourceKind = "items"
	ResourceCheckInLists   ResourceKind = "checkinlists"
	ResourceRevokedSecrets ResourceKind = "revokedsecrets"
	ResourceOrderPositions ResourceKind = "orderpositions"
)

// PageQuery selects one page of a listing. ModifiedSince is the authority's
// generated_at of a previous sync; empty means everything.
type PageQuery struct {
	Page          int
	ModifiedSince string
}

// Page is one page of a listing.
type Page[T any] struct {
	Results     []T
	Count       int
	HasNext     bool
	HasPrevious bool
	GeneratedAt string
}

// SyncState records how far a resource of an event has been downloaded.
// GeneratedAt is opaque and only ever echoed back to the authority.
type SyncState struct {
	EventSlug   string
	Resource    ResourceKind
	GeneratedAt string
	SyncedAt    time.Time
}
