// Package availability decides, for any calendar date, whether the salon is
// open and which discrete time slots remain free once existing bookings and
// manual schedule overrides are taken into account.
//
// The engine is a pure computation layer: it holds no persistent state and
// performs no I/O. Callers fetch a Snapshot from storage and every query is
// a deterministic function of that snapshot. Write-time arbitration between
// concurrent bookers is owned by the storage layer, not the engine.
package availability

import (
	"time"

	"github.com/rs/zerolog"

	"zapis/internal/model"
)

// Snapshot carries the read-only data one availability query runs over.
// Missing overrides or bookings are represented as empty slices, which
// degrades the result to cycle-only availability.
type Snapshot struct {
	Settings  model.WorkCycleSettings
	Overrides []model.ScheduleOverride
	Services  []model.Service
	Bookings  []model.Booking
}

// Engine answers day-level and slot-level availability queries.
type Engine struct {
	log zerolog.Logger
}

// New creates an engine. The logger is used at debug level only.
func New(log zerolog.Logger) *Engine {
	return &Engine{log: log}
}

// IsWorkingDay reports whether the salon is open on the given date: the
// first matching full-day override decides, otherwise the work cycle does.
// A windowed override does not change day-level status.
func (e *Engine) IsWorkingDay(date time.Time, snap Snapshot) bool {
	if rule, ok := ResolveOverride(date, snap.Overrides); ok && rule.Blocked == nil {
		return rule.Working
	}
	return IsDefaultWorkingDay(date, snap.Settings.AnchorDate)
}

// AvailableSlots returns the free slot start times ("HH:MM", ascending) for
// booking the selected services on the given date. Returns nil for a closed
// day.
//
// Callers must validate that serviceIDs is non-empty before querying: an
// empty selection has zero total duration, which makes every slot trivially
// non-overlapping. The engine does not reject it.
func (e *Engine) AvailableSlots(date time.Time, serviceIDs []string, snap Snapshot) []string {
	if !e.IsWorkingDay(date, snap) {
		return nil
	}

	duration := model.TotalDuration(snap.Services, serviceIDs)

	var blocked *Interval
	if rule, ok := ResolveOverride(date, snap.Overrides); ok {
		blocked = rule.Blocked
	}

	busy := OccupiedIntervals(date, snap.Bookings, snap.Services)
	free := FilterAvailable(GenerateSlots(date), busy, duration, blocked)

	out := make([]string, len(free))
	for i, m := range free {
		out[i] = model.FormatClock(m)
	}

	e.log.Debug().
		Str("date", date.Format(model.DateLayout)).
		Int("duration_min", duration).
		Int("busy", len(busy)).
		Int("free", len(out)).
		Msg("availability computed")

	return out
}
