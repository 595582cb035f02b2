package validator

import (
	"time"

	"github.com/dmitrijs2005/gophscan/internal/client/facts"
	"github.com/dmitrijs2005/gophscan/internal/client/models"
	"github.com/dmitrijs2005/gophscan/internal/client/rules"
	"github.com/dmitrijs2005/gophscan/internal/common"
)

// EntryDenial applies the entry-only checks of list: admission rules first,
// then the re-entry policy. It returns ReasonNone when the entry may pass.
// A rule that fails to evaluate denies with ReasonRule and reports why.
func EntryDenial(ev *models.Event, list *models.CheckInList, f facts.Facts, loc *time.Location, now time.Time) (models.Reason, error) {
	if list.HasRules() {
		env := rules.Env{
			Vars:          f.Vars(),
			Now:           now,
			Location:      loc,
			DateTo:        ev.DateTo,
			DateAdmission: ev.DateAdmission,
		}
		if !ev.DateFrom.IsZero() {
			from := ev.DateFrom
			env.DateFrom = &from
		}
		ok, err := rules.Evaluate(list.Rules, env)
		if err != nil || !ok {
			return models.ReasonRule, err
		}
	}

	afterExit := f.LastType == common.CheckInTypeExit
	if afterExit && !list.AllowEntryAfterExit {
		return models.ReasonAlreadyRedeemed, nil
	}
	if !list.AllowMultipleEntries && f.EntriesNumber > 0 && !afterExit {
		return models.ReasonAlreadyRedeemed, nil
	}
	return models.ReasonNone, nil
}
