package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"zapis/internal/availability"
	"zapis/internal/model"
)

// querier lets booking reads run either on the pool or inside a transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// ListBookingsByDate returns all bookings for a calendar date with their
// service IDs attached, ordered by booking time. Cancelled bookings are
// included; the availability engine decides who occupies time.
func (db *DB) ListBookingsByDate(ctx context.Context, date time.Time) ([]model.Booking, error) {
	return listBookings(ctx, db.DB, "b.booking_date = ?", model.DateOnly(date).Format(model.DateLayout))
}

// ListBookingsByUser returns a user's bookings, newest date first.
func (db *DB) ListBookingsByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	bookings, err := listBookings(ctx, db.DB, "b.user_id = ?", userID)
	if err != nil {
		return nil, err
	}
	// listBookings orders ascending; profile screens want newest first.
	for i, j := 0, len(bookings)-1; i < j; i, j = i+1, j-1 {
		bookings[i], bookings[j] = bookings[j], bookings[i]
	}
	return bookings, nil
}

// ListBookingsInRange returns bookings with booking_date in [from, to].
func (db *DB) ListBookingsInRange(ctx context.Context, from, to time.Time) ([]model.Booking, error) {
	return listBookings(ctx, db.DB, "b.booking_date >= ? AND b.booking_date <= ?",
		model.DateOnly(from).Format(model.DateLayout),
		model.DateOnly(to).Format(model.DateLayout))
}

func listBookings(ctx context.Context, q querier, where string, args ...any) ([]model.Booking, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT b.id, b.user_id, b.booking_date, b.booking_time, b.status,
		       COALESCE(b.notes, ''), b.created_at, b.updated_at, bs.service_id
		FROM bookings b
		LEFT JOIN booking_services bs ON bs.booking_id = b.id
		WHERE `+where+`
		ORDER BY b.booking_date ASC, b.booking_time ASC, b.id ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []model.Booking
	index := make(map[string]int)
	for rows.Next() {
		var b model.Booking
		var dateStr string
		var serviceID sql.NullString
		if err := rows.Scan(&b.ID, &b.UserID, &dateStr, &b.BookingTime, &b.Status,
			&b.Notes, &b.CreatedAt, &b.UpdatedAt, &serviceID); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}

		if i, ok := index[b.ID]; ok {
			if serviceID.Valid {
				bookings[i].ServiceIDs = append(bookings[i].ServiceIDs, serviceID.String)
			}
			continue
		}

		if b.BookingDate, err = model.ParseDate(dateStr); err != nil {
			return nil, fmt.Errorf("booking %s date: %w", b.ID, err)
		}
		if serviceID.Valid {
			b.ServiceIDs = []string{serviceID.String}
		}
		index[b.ID] = len(bookings)
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// CreateBooking inserts a booking after re-checking interval overlap against
// the occupying bookings already stored for that date. The engine's answer
// may be stale by the time a client submits, so this check is the final
// arbiter between concurrent bookers; losing it returns ErrSlotTaken.
func (db *DB) CreateBooking(ctx context.Context, b *model.Booking, services []model.Service) error {
	if b == nil {
		return fmt.Errorf("booking is nil")
	}
	if len(b.ServiceIDs) == 0 {
		return fmt.Errorf("booking requires at least one service")
	}
	start, err := model.ParseClock(b.BookingTime)
	if err != nil {
		return fmt.Errorf("invalid booking_time: %w", err)
	}
	duration := model.TotalDuration(services, b.ServiceIDs)
	if duration <= 0 {
		return fmt.Errorf("selected services have no duration")
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = model.StatusPending
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	existing, err := listBookings(ctx, tx, "b.booking_date = ?",
		model.DateOnly(b.BookingDate).Format(model.DateLayout))
	if err != nil {
		return fmt.Errorf("load existing bookings: %w", err)
	}

	requested := availability.Interval{Start: start, End: start + duration}
	for _, interval := range availability.OccupiedIntervals(b.BookingDate, existing, services) {
		if requested.Overlaps(interval) {
			return ErrSlotTaken
		}
	}

	now := time.Now()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO bookings (id, user_id, booking_date, booking_time, status, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, NULLIF(?, ''), ?, ?)`,
		b.ID, b.UserID, model.DateOnly(b.BookingDate).Format(model.DateLayout),
		model.FormatClock(start), b.Status, b.Notes, now, now,
	); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	for _, serviceID := range b.ServiceIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO booking_services (booking_id, service_id) VALUES (?, ?)",
			b.ID, serviceID,
		); err != nil {
			return fmt.Errorf("attach service %s: %w", serviceID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit booking: %w", err)
	}
	return nil
}

// UpdateBookingStatus moves a booking through the admin workflow
// (pending -> confirmed/cancelled/completed).
func (db *DB) UpdateBookingStatus(ctx context.Context, id, status string) error {
	if !model.ValidStatus(status) {
		return fmt.Errorf("unknown status %q", status)
	}
	res, err := db.ExecContext(ctx,
		"UPDATE bookings SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		status, id,
	)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
