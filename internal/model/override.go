package model

import (
	"fmt"
	"time"
)

// ScheduleOverride is a manually configured exception to the work cycle.
//
// A full-day override (no time window) determines the status of every date
// in [DateFrom, DateTo]. A windowed override means the day itself stays open
// but slots overlapping [TimeFrom, TimeTo) are blocked.
type ScheduleOverride struct {
	ID        string    `json:"id"`
	DateFrom  time.Time `json:"date_from"`
	DateTo    time.Time `json:"date_to"`
	IsWorking bool      `json:"is_working"`
	TimeFrom  string    `json:"time_from,omitempty"` // "HH:MM", set only with TimeTo
	TimeTo    string    `json:"time_to,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// HasWindow reports whether the override blocks a partial time window
// instead of deciding the whole day.
func (o *ScheduleOverride) HasWindow() bool {
	return o.TimeFrom != "" && o.TimeTo != ""
}

// Contains reports whether date falls inside [DateFrom, DateTo], inclusive.
func (o *ScheduleOverride) Contains(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(o.DateFrom)) && !d.After(DateOnly(o.DateTo))
}

// Validate enforces the authoring-time invariants: DateFrom <= DateTo and,
// for a windowed override, TimeFrom < TimeTo. The availability engine
// assumes overrides passed to it already satisfy these.
func (o *ScheduleOverride) Validate() error {
	if DateOnly(o.DateFrom).After(DateOnly(o.DateTo)) {
		return fmt.Errorf("date_from %s is after date_to %s",
			o.DateFrom.Format(DateLayout), o.DateTo.Format(DateLayout))
	}

	if o.TimeFrom == "" && o.TimeTo == "" {
		return nil
	}
	if o.TimeFrom == "" || o.TimeTo == "" {
		return fmt.Errorf("time window requires both time_from and time_to")
	}

	from, err := ParseClock(o.TimeFrom)
	if err != nil {
		return fmt.Errorf("time_from: %w", err)
	}
	to, err := ParseClock(o.TimeTo)
	if err != nil {
		return fmt.Errorf("time_to: %w", err)
	}
	if from >= to {
		return fmt.Errorf("time_from %s must be before time_to %s", o.TimeFrom, o.TimeTo)
	}
	return nil
}
