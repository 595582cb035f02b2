package services

import (
	scanmodels "github.com/dmitrijs2005/gophscan/internal/client/models"
	"github.com/dmitrijs2005/gophscan/internal/server/models"
)

// The admission policy is shared with the scanner and speaks the scanner's
// types; these helpers translate stored rows into them.

func toScanEvent(ev *models.Event) *scanmodels.Event {
	return &scanmodels.Event{
		Slug:          ev.Slug,
		Name:          ev.Name,
		Timezone:      ev.Timezone,
		DateFrom:      ev.DateFrom,
		DateTo:        ev.DateTo,
		DateAdmission: ev.DateAdmission,
		ValidKeys:     ev.ValidKeys,
	}
}

func toScanList(l *models.CheckInList) *scanmodels.CheckInList {
	return &scanmodels.CheckInList{
		ID:                   l.ID,
		Name:                 l.Name,
		AllProducts:          l.AllProducts,
		LimitProducts:        l.LimitProducts,
		IncludePending:       l.IncludePending,
		AllowMultipleEntries: l.AllowMultipleEntries,
		AllowEntryAfterExit:  l.AllowEntryAfterExit,
		Rules:                l.Rules,
	}
}

func toScanItem(it *models.Item) *scanmodels.Item {
	out := &scanmodels.Item{ID: it.ID, Name: it.Name, Active: it.Active, Admission: it.Admission}
	for _, v := range it.Variations {
		out.Variations = append(out.Variations, scanmodels.Variation{ID: v.ID, Value: v.Value})
	}
	return out
}

func toScanHistory(in []models.CheckIn) []scanmodels.CheckIn {
	out := make([]scanmodels.CheckIn, 0, len(in))
	for _, c := range in {
		at := c.Date
		out = append(out, scanmodels.CheckIn{ListID: c.ListID, PositionID: c.PositionID, Type: c.Type, Date: &at})
	}
	return out
}
