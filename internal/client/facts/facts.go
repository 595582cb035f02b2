// Package facts derives the situational values admission rules are evaluated
// against: the current time and weekday, the ticket's product and variation,
// and counts over the ticket's check-in history on a list.
package facts

import (
	"sort"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophscan/internal/client/models"
	"github.com/dmitrijs2005/gophscan/internal/client/ticket"
	"github.com/dmitrijs2005/gophscan/internal/common"
)

type Facts struct {
	Now        time.Time
	ISOWeekday int
	Product    int64
	Variation  string

	EntriesNumber int
	EntriesToday  int
	EntriesDays   int

	// LastType is the type of the most recent dated check-in, or "" when
	// there is none.
	LastType string
}

// Vars exposes the facts under the names rules refer to.
func (f Facts) Vars() map[string]any {
	return map[string]any{
		"now":            f.Now.Format(time.RFC3339),
		"now_isoweekday": f.ISOWeekday,
		"product":        f.Product,
		"variation":      f.Variation,
		"entries_number": f.EntriesNumber,
		"entries_today":  f.EntriesToday,
		"entries_days":   f.EntriesDays,
	}
}

// Builder computes facts in a fixed time zone, normally the event's.
type Builder struct {
	loc *time.Location
}

func NewBuilder(loc *time.Location) *Builder {
	if loc == nil {
		loc = time.UTC
	}
	return &Builder{loc: loc}
}

func (b *Builder) Location() *time.Location { return b.loc }

// Build evaluates facts for t scanned on listID at now. history may contain
// records of other lists; they are ignored.
func (b *Builder) Build(now time.Time, t *ticket.SignedTicket, listID int64, history []models.CheckIn) Facts {
	now = now.In(b.loc)
	f := Facts{
		Now:        now,
		ISOWeekday: ISOWeekday(now),
		Product:    t.ItemID,
	}
	if t.VariationID > 0 {
		f.Variation = strconv.FormatInt(t.VariationID, 10)
	}

	type day struct {
		y int
		m time.Month
		d int
	}
	days := make(map[day]struct{})
	var last *models.CheckIn

	for i := range history {
		c := &history[i]
		if c.ListID != listID || c.Date == nil {
			continue
		}
		if last == nil || !c.Date.Before(*last.Date) {
			last = c
		}
		if c.Type != common.CheckInTypeEntry {
			continue
		}

		f.EntriesNumber++
		local := c.Date.In(b.loc)
		if sameDay(local, now) {
			f.EntriesToday++
		}
		y, m, d := local.Date()
		days[day{y, m, d}] = struct{}{}
	}

	f.EntriesDays = len(days)
	if last != nil {
		f.LastType = last.Type
	}
	return f
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ISOWeekday numbers days Monday=1 to Sunday=7. The count starts from a
// Sunday=1 numbering, shifted down one with Sunday wrapping to 7.
func ISOWeekday(t time.Time) int {
	sundayOne := int(t.Weekday()) + 1
	wd := sundayOne - 1
	if wd == 0 {
		wd = 7
	}
	return wd
}

// History merges queued redemptions with recorded check-ins of one list,
// such as those confirmed by this device or downloaded with a position.
// Records sharing a list and date (to the microsecond) are kept once, the
// queued one winning, then the earlier source. The result is ordered by date.
func History(listID int64, queued []models.QueuedRedemptionRequest, recorded ...[]models.CheckIn) []models.CheckIn {
	type key struct {
		list int64
		at   int64
	}
	seen := make(map[key]struct{})
	out := make([]models.CheckIn, 0, len(queued))

	add := func(c models.CheckIn) {
		if c.ListID != listID || c.Date == nil {
			return
		}
		k := key{c.ListID, c.Date.UnixMicro()}
		if _, dup := seen[k]; dup {
			return
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}

	for _, q := range queued {
		d := q.Request.Date
		add(models.CheckIn{
			ListID: q.ListID,
			Secret: q.Request.Secret,
			Type:   q.Request.Type,
			Date:   &d,
		})
	}
	for _, cs := range recorded {
		for _, c := range cs {
			add(c)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(*out[j].Date) })
	return out
}
