package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"zapis/internal/model"
)

// ListOverrides returns all schedule overrides ordered by ascending
// date_from, ties broken by creation order. This is the scan order the
// availability resolver documents for first-match precedence.
func (db *DB) ListOverrides(ctx context.Context) ([]model.ScheduleOverride, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, date_from, date_to, is_working,
		       COALESCE(time_from, ''), COALESCE(time_to, ''), COALESCE(reason, ''),
		       created_at
		FROM schedule_overrides
		ORDER BY date_from ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}
	defer rows.Close()

	var overrides []model.ScheduleOverride
	for rows.Next() {
		var o model.ScheduleOverride
		var dateFrom, dateTo string
		if err := rows.Scan(&o.ID, &dateFrom, &dateTo, &o.IsWorking,
			&o.TimeFrom, &o.TimeTo, &o.Reason, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan override: %w", err)
		}
		if o.DateFrom, err = model.ParseDate(dateFrom); err != nil {
			return nil, fmt.Errorf("override %s date_from: %w", o.ID, err)
		}
		if o.DateTo, err = model.ParseDate(dateTo); err != nil {
			return nil, fmt.Errorf("override %s date_to: %w", o.ID, err)
		}
		overrides = append(overrides, o)
	}
	return overrides, rows.Err()
}

// CreateOverride validates and stores a schedule override. Malformed
// overrides are rejected here, at authoring time; the availability engine
// assumes stored overrides are well-formed.
func (db *DB) CreateOverride(ctx context.Context, o *model.ScheduleOverride) error {
	if o == nil {
		return fmt.Errorf("override is nil")
	}
	if err := o.Validate(); err != nil {
		return fmt.Errorf("invalid override: %w", err)
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO schedule_overrides (id, date_from, date_to, is_working, time_from, time_to, reason)
		VALUES (?, ?, ?, ?, NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''))`,
		o.ID,
		model.DateOnly(o.DateFrom).Format(model.DateLayout),
		model.DateOnly(o.DateTo).Format(model.DateLayout),
		o.IsWorking, o.TimeFrom, o.TimeTo, o.Reason,
	)
	if err != nil {
		return fmt.Errorf("create override: %w", err)
	}
	return nil
}

// DeleteOverride removes an override by ID.
func (db *DB) DeleteOverride(ctx context.Context, id string) error {
	res, err := db.ExecContext(ctx, "DELETE FROM schedule_overrides WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete override: %w", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetDayOff blocks a single date, the ScheduleManager "day off" action.
func (db *DB) SetDayOff(ctx context.Context, date string, reason string) error {
	day, err := model.ParseDate(date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	return db.CreateOverride(ctx, &model.ScheduleOverride{
		ID:        uuid.NewString(),
		DateFrom:  day,
		DateTo:    day,
		IsWorking: false,
		Reason:    reason,
	})
}
