package availability

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zapis/internal/model"
)

func testSnapshot() Snapshot {
	return Snapshot{
		Settings: model.WorkCycleSettings{AnchorDate: testAnchor},
		Services: []model.Service{
			{ID: "manicure", Duration: 60},
			{ID: "design", Duration: 30},
			{ID: "correction", Duration: 15},
		},
	}
}

func testEngine() *Engine {
	return New(zerolog.Nop())
}

func TestEngine_IsWorkingDay_CycleOnly(t *testing.T) {
	e := testEngine()
	snap := testSnapshot()

	assert.True(t, e.IsWorkingDay(date(2025, time.October, 25), snap))
	assert.True(t, e.IsWorkingDay(date(2025, time.October, 26), snap))
	assert.False(t, e.IsWorkingDay(date(2025, time.October, 27), snap))
	assert.False(t, e.IsWorkingDay(date(2025, time.October, 28), snap))
	assert.True(t, e.IsWorkingDay(date(2025, time.October, 29), snap))
}

func TestEngine_IsWorkingDay_VacationRange(t *testing.T) {
	e := testEngine()
	snap := testSnapshot()
	snap.Overrides = OrderOverrides([]model.ScheduleOverride{
		fullDayOverride(date(2025, time.November, 1), date(2025, time.November, 5), false),
	})

	for d := 1; d <= 5; d++ {
		assert.False(t, e.IsWorkingDay(date(2025, time.November, d), snap),
			"2025-11-%02d must be closed by the vacation override", d)
	}
	assert.True(t, e.IsWorkingDay(date(2025, time.November, 6), snap))
}

func TestEngine_IsWorkingDay_ExtraWorkingDay(t *testing.T) {
	e := testEngine()
	snap := testSnapshot()
	closed := date(2025, time.October, 27) // cycle day 2
	snap.Overrides = OrderOverrides([]model.ScheduleOverride{
		fullDayOverride(closed, closed, true),
	})

	assert.True(t, e.IsWorkingDay(closed, snap))
}

func TestEngine_AvailableSlots_ClosedDay(t *testing.T) {
	e := testEngine()
	snap := testSnapshot()

	assert.Empty(t, e.AvailableSlots(date(2025, time.October, 27), []string{"manicure"}, snap))
}

func TestEngine_AvailableSlots_BlockedWindow(t *testing.T) {
	e := testEngine()
	snap := testSnapshot()
	day := date(2025, time.November, 10) // cycle day 0, open
	snap.Overrides = OrderOverrides([]model.ScheduleOverride{
		{DateFrom: day, DateTo: day, IsWorking: false, TimeFrom: "12:00", TimeTo: "13:00"},
	})

	// A 15-minute request loses exactly the slots inside the window.
	slots := e.AvailableSlots(day, []string{"correction"}, snap)
	require.NotEmpty(t, slots)
	assert.Contains(t, slots, "11:45")
	assert.NotContains(t, slots, "12:00")
	assert.NotContains(t, slots, "12:45")
	assert.Contains(t, slots, "13:00")

	// A 30-minute request additionally loses 11:45, which reaches into it.
	slots = e.AvailableSlots(day, []string{"design"}, snap)
	assert.NotContains(t, slots, "11:45")
	assert.Contains(t, slots, "11:30")
	assert.Contains(t, slots, "13:00")
}

func TestEngine_AvailableSlots_BookingConflict(t *testing.T) {
	e := testEngine()
	snap := testSnapshot()
	day := date(2025, time.October, 29)
	snap.Bookings = []model.Booking{
		{BookingDate: day, BookingTime: "10:00", ServiceIDs: []string{"manicure"}, Status: model.StatusConfirmed},
	}

	slots := e.AvailableSlots(day, []string{"design"}, snap)
	assert.NotContains(t, slots, "10:15")
	assert.NotContains(t, slots, "09:45") // 30 min from 09:45 overlaps [10:00, 11:00)
	assert.Contains(t, slots, "09:00")
	assert.Contains(t, slots, "09:30")
	assert.Contains(t, slots, "11:00") // back-to-back with the existing booking
}

func TestEngine_AvailableSlots_CancelledBookingIsInert(t *testing.T) {
	e := testEngine()
	snap := testSnapshot()
	day := date(2025, time.October, 29)
	snap.Bookings = []model.Booking{
		{BookingDate: day, BookingTime: "10:00", ServiceIDs: []string{"manicure"}, Status: model.StatusCancelled},
	}

	slots := e.AvailableSlots(day, []string{"design"}, snap)
	assert.Contains(t, slots, "10:15")
}

func TestEngine_AvailableSlots_MultiServiceDuration(t *testing.T) {
	e := testEngine()
	snap := testSnapshot()
	day := date(2025, time.October, 29)
	snap.Bookings = []model.Booking{
		{BookingDate: day, BookingTime: "11:00", ServiceIDs: []string{"manicure"}, Status: model.StatusPending},
	}

	// manicure + design = 90 minutes; the last start that still clears the
	// 11:00 booking is 09:30.
	slots := e.AvailableSlots(day, []string{"manicure", "design"}, snap)
	assert.Contains(t, slots, "09:30")
	assert.NotContains(t, slots, "09:45")
	assert.Contains(t, slots, "12:00")
}

func TestEngine_AvailableSlots_WithinBusinessHours(t *testing.T) {
	e := testEngine()
	snap := testSnapshot()

	saturday := e.AvailableSlots(date(2025, time.October, 25), []string{"design"}, snap)
	require.NotEmpty(t, saturday)
	assert.Equal(t, "09:00", saturday[0])
	assert.Equal(t, "19:45", saturday[len(saturday)-1])

	sunday := e.AvailableSlots(date(2025, time.October, 26), []string{"design"}, snap)
	require.NotEmpty(t, sunday)
	assert.Equal(t, "17:45", sunday[len(sunday)-1])
}

func TestEngine_AvailableSlots_EmptySnapshotsDegrade(t *testing.T) {
	// Missing override and booking snapshots behave as empty lists: the
	// engine falls back to cycle-only availability.
	e := testEngine()
	snap := Snapshot{Settings: model.WorkCycleSettings{AnchorDate: testAnchor}}

	slots := e.AvailableSlots(date(2025, time.October, 25), []string{"manicure"}, snap)
	assert.Len(t, slots, 44)
}
