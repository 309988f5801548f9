package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"20:45", 1245, false},
		{"12:30:00", 750, false}, // seconds are accepted and ignored
		{"00:00", 0, false},
		{"24:00", 0, true},
		{"10:60", 0, true},
		{"1030", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.minutes, got, "input %q", tt.in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:00", FormatClock(540))
	assert.Equal(t, "00:05", FormatClock(5))
	assert.Equal(t, "19:45", FormatClock(1185))
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("EET", 2*3600)
	ts := time.Date(2025, time.November, 10, 23, 59, 0, 0, loc)
	assert.Equal(t, day(2025, time.November, 10), DateOnly(ts))
}

func TestTotalDuration(t *testing.T) {
	services := []Service{
		{ID: "a", Duration: 60, Price: 350},
		{ID: "b", Duration: 30, Price: 150},
	}

	assert.Equal(t, 90, TotalDuration(services, []string{"a", "b"}))
	assert.Equal(t, 60, TotalDuration(services, []string{"a", "missing"}))
	assert.Equal(t, 0, TotalDuration(services, nil))
	assert.Equal(t, 500.0, TotalPrice(services, []string{"a", "b"}))
}

func TestBooking_Occupies(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).Occupies())
	assert.True(t, (&Booking{Status: StatusConfirmed}).Occupies())
	assert.False(t, (&Booking{Status: StatusCancelled}).Occupies())
	assert.False(t, (&Booking{Status: StatusCompleted}).Occupies())
}

func TestScheduleOverride_Contains(t *testing.T) {
	o := ScheduleOverride{
		DateFrom: day(2025, time.November, 1),
		DateTo:   day(2025, time.November, 5),
	}

	assert.True(t, o.Contains(day(2025, time.November, 1)))
	assert.True(t, o.Contains(day(2025, time.November, 5)))
	assert.False(t, o.Contains(day(2025, time.October, 31)))
	assert.False(t, o.Contains(day(2025, time.November, 6)))
}

func TestScheduleOverride_Validate(t *testing.T) {
	valid := ScheduleOverride{
		DateFrom: day(2025, time.November, 1),
		DateTo:   day(2025, time.November, 5),
	}
	assert.NoError(t, valid.Validate())

	reversed := ScheduleOverride{
		DateFrom: day(2025, time.November, 5),
		DateTo:   day(2025, time.November, 1),
	}
	assert.Error(t, reversed.Validate())

	window := ScheduleOverride{
		DateFrom: day(2025, time.November, 10),
		DateTo:   day(2025, time.November, 10),
		TimeFrom: "12:00",
		TimeTo:   "13:00",
	}
	assert.NoError(t, window.Validate())

	badWindow := window
	badWindow.TimeFrom = "13:00"
	badWindow.TimeTo = "12:00"
	assert.Error(t, badWindow.Validate())

	halfWindow := window
	halfWindow.TimeTo = ""
	assert.Error(t, halfWindow.Validate())
}

func TestParseWorkCycleSettings(t *testing.T) {
	parsed := ParseWorkCycleSettings("2025-10-25")
	assert.Equal(t, day(2025, time.October, 25), parsed.AnchorDate)

	// Unparsable values fall back to the default anchor, never fatal.
	fallback := ParseWorkCycleSettings("not-a-date")
	assert.Equal(t, DefaultAnchorDate, fallback.AnchorDate)
}
