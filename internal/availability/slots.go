package availability

import "time"

// Business hours: doors open 09:00 every working day; close 20:00 on
// Monday-Saturday and 18:00 on Sunday. Slots start every 15 minutes.
const (
	SlotStepMinutes = 15
	openMinute      = 9 * 60
)

func closeMinute(date time.Time) int {
	if date.Weekday() == time.Sunday {
		return 18 * 60
	}
	return 20 * 60
}

// GenerateSlots enumerates every candidate slot start on the 15-minute grid
// within [open, close) for the date, in ascending order. Day-level openness
// and conflicts are decided elsewhere; this is the full grid.
func GenerateSlots(date time.Time) []int {
	var slots []int
	for m := openMinute; m < closeMinute(date); m += SlotStepMinutes {
		slots = append(slots, m)
	}
	return slots
}
