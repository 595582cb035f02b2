package models

import (
	"encoding/json"
	"slices"
)

// Item is a product a ticket can grant.
type Item struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Active     bool        `json:"active"`
	Admission  bool        `json:"admission"`
	Variations []Variation `json:"variations"`
}

type Variation struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

// HasVariation reports whether id is one of the item's variations. A zero id
// means "no variation" and always matches.
func (i *Item) HasVariation(id int64) bool {
	if id == 0 {
		return true
	}
	return slices.ContainsFunc(i.Variations, func(v Variation) bool { return v.ID == id })
}

// CheckInList is the admission policy of one scan point.
type CheckInList struct {
	ID                   int64           `json:"id"`
	Name                 string          `json:"name"`
	AllProducts          bool            `json:"all_products"`
	LimitProducts        []int64         `json:"limit_products"`
	IncludePending       bool            `json:"include_pending"`
	AllowMultipleEntries bool            `json:"allow_multiple_entries"`
	AllowEntryAfterExit  bool            `json:"allow_entry_after_exit"`
	Rules                json.RawMessage `json:"rules,omitempty"`
}

// Admits reports whether items of the given id may be checked in on the list.
func (l *CheckInList) Admits(itemID int64) bool {
	return l.AllProducts || slices.Contains(l.LimitProducts, itemID)
}

// HasRules reports whether the list carries a non-empty rule expression.
func (l *CheckInList) HasRules() bool {
	switch string(l.Rules) {
	case "", "null", "{}":
		return false
	}
	return true
}
