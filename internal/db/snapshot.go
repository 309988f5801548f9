package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"zapis/internal/availability"
)

// LoadSnapshot assembles the read-only data one availability query needs for
// a date. Failed override or booking reads degrade to empty lists, which
// makes the engine strictly more permissive; the joined error reports the
// degradation so callers can surface it without failing the query.
func (db *DB) LoadSnapshot(ctx context.Context, date time.Time, blackoutDates []time.Time) (availability.Snapshot, error) {
	var degraded []error

	settings, err := db.GetWorkCycleSettings(ctx)
	if err != nil {
		degraded = append(degraded, err)
	}

	overrides, err := db.ListOverrides(ctx)
	if err != nil {
		degraded = append(degraded, fmt.Errorf("overrides degraded to empty: %w", err))
		overrides = nil
	}

	services, err := db.ListServices(ctx, false)
	if err != nil {
		degraded = append(degraded, fmt.Errorf("services degraded to empty: %w", err))
		services = nil
	}

	bookings, err := db.ListBookingsByDate(ctx, date)
	if err != nil {
		degraded = append(degraded, fmt.Errorf("bookings degraded to empty: %w", err))
		bookings = nil
	}

	return availability.Snapshot{
		Settings:  settings,
		Overrides: availability.OrderOverrides(overrides, blackoutDates...),
		Services:  services,
		Bookings:  bookings,
	}, errors.Join(degraded...)
}
