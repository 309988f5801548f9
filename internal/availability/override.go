package availability

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"zapis/internal/model"
)

// DayRule is the resolved override decision for a single date.
type DayRule struct {
	// Working is meaningful only when Blocked is nil; a windowed override
	// leaves the day-level status to the cycle default.
	Working bool
	// Blocked, when non-nil, excludes a sub-interval of an otherwise-open
	// day at the slot level.
	Blocked *Interval
}

// ResolveOverride scans overrides in list order and applies the first one
// whose date range contains the given date; later overlapping overrides are
// ignored for that date. Returns false if no override matches.
//
// The scan order is the precedence policy. Callers are expected to build the
// list with OrderOverrides: seeded blackout dates first, then configured
// overrides by ascending date_from, ties keeping insertion order.
func ResolveOverride(date time.Time, overrides []model.ScheduleOverride) (DayRule, bool) {
	for i := range overrides {
		o := &overrides[i]
		if !o.Contains(date) {
			continue
		}

		if o.HasWindow() {
			from, errFrom := model.ParseClock(o.TimeFrom)
			to, errTo := model.ParseClock(o.TimeTo)
			if errFrom == nil && errTo == nil && from < to {
				return DayRule{Working: true, Blocked: &Interval{Start: from, End: to}}, true
			}
			// Unparsable window: degrade to a full-day decision.
		}

		return DayRule{Working: o.IsWorking}, true
	}
	return DayRule{}, false
}

// OrderOverrides builds the evaluation list ResolveOverride expects:
// permanent blackout dates seeded up front as regular closed-day overrides,
// followed by the configured overrides stable-sorted by ascending date_from.
// Keeping blackouts as ordinary list entries keeps the resolver uniform,
// with no special-cased dates inside the scan.
func OrderOverrides(overrides []model.ScheduleOverride, blackoutDates ...time.Time) []model.ScheduleOverride {
	ordered := make([]model.ScheduleOverride, 0, len(overrides)+len(blackoutDates))

	for _, d := range blackoutDates {
		day := model.DateOnly(d)
		ordered = append(ordered, model.ScheduleOverride{
			ID:        uuid.NewString(),
			DateFrom:  day,
			DateTo:    day,
			IsWorking: false,
			Reason:    "blackout date",
		})
	}

	configured := make([]model.ScheduleOverride, len(overrides))
	copy(configured, overrides)
	sort.SliceStable(configured, func(i, j int) bool {
		return configured[i].DateFrom.Before(configured[j].DateFrom)
	})

	return append(ordered, configured...)
}
