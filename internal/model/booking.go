package model

import "time"

// Booking statuses. Only pending and confirmed bookings occupy time;
// cancelled ones are inert for availability purposes.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Booking is an appointment record. It occupies the half-open interval
// [BookingTime, BookingTime + sum of its service durations).
type Booking struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ServiceIDs  []string  `json:"service_ids"`
	BookingDate time.Time `json:"booking_date"`
	BookingTime string    `json:"booking_time"` // "HH:MM"
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Occupies reports whether the booking reserves time on the calendar.
func (b *Booking) Occupies() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// StartMinute returns the booking's start as minutes since midnight.
// A malformed time yields 0 rather than an error; stored bookings are
// validated at write time.
func (b *Booking) StartMinute() int {
	m, err := ParseClock(b.BookingTime)
	if err != nil {
		return 0
	}
	return m
}

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}
