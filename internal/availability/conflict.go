package availability

import (
	"time"

	"zapis/internal/model"
)

// Interval is a half-open [Start, End) range in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open intervals intersect. Boundary
// contact (one interval ending exactly where the other starts) is not an
// overlap, so back-to-back bookings are allowed.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// OccupiedIntervals collects the time reserved by occupying bookings on the
// given date. Cancelled and completed bookings reserve nothing, and a
// booking whose services resolve to zero total duration is skipped.
func OccupiedIntervals(date time.Time, bookings []model.Booking, services []model.Service) []Interval {
	var busy []Interval
	for i := range bookings {
		b := &bookings[i]
		if !b.Occupies() || !model.SameDate(b.BookingDate, date) {
			continue
		}
		duration := model.TotalDuration(services, b.ServiceIDs)
		if duration <= 0 {
			continue
		}
		start := b.StartMinute()
		busy = append(busy, Interval{Start: start, End: start + duration})
	}
	return busy
}

// FilterAvailable removes candidate slots whose derived interval
// [slot, slot+duration) overlaps the blocked window (if any) or any busy
// interval. Input order is preserved.
func FilterAvailable(slots []int, busy []Interval, durationMinutes int, blocked *Interval) []int {
	free := make([]int, 0, len(slots))

	for _, slot := range slots {
		candidate := Interval{Start: slot, End: slot + durationMinutes}

		if blocked != nil && candidate.Overlaps(*blocked) {
			continue
		}

		conflict := false
		for _, b := range busy {
			if candidate.Overlaps(b) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		free = append(free, slot)
	}

	return free
}
