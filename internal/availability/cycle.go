package availability

import (
	"time"

	"zapis/internal/model"
)

// The salon works a fixed rotation: 2 days on, 2 days off, anchored at a
// configurable start date (day 0 of the cycle).
const (
	cycleLength        = 4
	workingDaysInCycle = 2
)

// IsDefaultWorkingDay classifies a date as working or non-working by the
// cycle alone, before any overrides are applied. The cycle day is computed
// with a mathematical modulo so dates before the anchor normalize into
// [0, cycleLength) instead of going negative.
func IsDefaultWorkingDay(date, anchor time.Time) bool {
	daysDiff := int(model.DateOnly(date).Sub(model.DateOnly(anchor)) / (24 * time.Hour))
	cycleDay := ((daysDiff % cycleLength) + cycleLength) % cycleLength
	return cycleDay < workingDaysInCycle
}
