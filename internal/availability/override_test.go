package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zapis/internal/model"
)

func fullDayOverride(from, to time.Time, working bool) model.ScheduleOverride {
	return model.ScheduleOverride{DateFrom: from, DateTo: to, IsWorking: working}
}

func TestResolveOverride_NoMatch(t *testing.T) {
	overrides := []model.ScheduleOverride{
		fullDayOverride(date(2025, time.November, 1), date(2025, time.November, 5), false),
	}

	_, ok := ResolveOverride(date(2025, time.November, 6), overrides)
	assert.False(t, ok)
}

func TestResolveOverride_FullDayRange(t *testing.T) {
	overrides := []model.ScheduleOverride{
		fullDayOverride(date(2025, time.November, 1), date(2025, time.November, 5), false),
	}

	for d := 1; d <= 5; d++ {
		rule, ok := ResolveOverride(date(2025, time.November, d), overrides)
		require.True(t, ok, "day %d should match", d)
		assert.False(t, rule.Working)
		assert.Nil(t, rule.Blocked)
	}
}

func TestResolveOverride_TimeWindow(t *testing.T) {
	day := date(2025, time.November, 10)
	overrides := []model.ScheduleOverride{
		{DateFrom: day, DateTo: day, IsWorking: false, TimeFrom: "12:00", TimeTo: "13:00"},
	}

	rule, ok := ResolveOverride(day, overrides)
	require.True(t, ok)
	// The day itself stays open; only the window is excluded.
	assert.True(t, rule.Working)
	require.NotNil(t, rule.Blocked)
	assert.Equal(t, Interval{Start: 12 * 60, End: 13 * 60}, *rule.Blocked)
}

func TestResolveOverride_FirstMatchWins(t *testing.T) {
	day := date(2025, time.November, 3)
	overrides := []model.ScheduleOverride{
		fullDayOverride(date(2025, time.November, 1), date(2025, time.November, 5), false),
		fullDayOverride(day, day, true), // ignored: an earlier entry already covers the date
	}

	rule, ok := ResolveOverride(day, overrides)
	require.True(t, ok)
	assert.False(t, rule.Working)
}

func TestResolveOverride_MalformedWindowDegrades(t *testing.T) {
	day := date(2025, time.November, 10)
	overrides := []model.ScheduleOverride{
		{DateFrom: day, DateTo: day, IsWorking: false, TimeFrom: "14:00", TimeTo: "bogus"},
	}

	rule, ok := ResolveOverride(day, overrides)
	require.True(t, ok)
	assert.False(t, rule.Working)
	assert.Nil(t, rule.Blocked)
}

func TestOrderOverrides_SortsByDateFrom(t *testing.T) {
	a := fullDayOverride(date(2025, time.December, 1), date(2025, time.December, 2), false)
	b := fullDayOverride(date(2025, time.November, 1), date(2025, time.November, 2), false)

	ordered := OrderOverrides([]model.ScheduleOverride{a, b})
	require.Len(t, ordered, 2)
	assert.Equal(t, b.DateFrom, ordered[0].DateFrom)
	assert.Equal(t, a.DateFrom, ordered[1].DateFrom)
}

func TestOrderOverrides_StableOnTies(t *testing.T) {
	day := date(2025, time.November, 1)
	first := model.ScheduleOverride{DateFrom: day, DateTo: day, IsWorking: true, Reason: "first"}
	second := model.ScheduleOverride{DateFrom: day, DateTo: day, IsWorking: false, Reason: "second"}

	ordered := OrderOverrides([]model.ScheduleOverride{first, second})
	require.Len(t, ordered, 2)
	assert.Equal(t, "first", ordered[0].Reason)
	assert.Equal(t, "second", ordered[1].Reason)
}

func TestOrderOverrides_BlackoutTakesPrecedence(t *testing.T) {
	blackout := date(2025, time.November, 20)
	// A configured override trying to open the blackout date loses: seeded
	// blackouts precede everything in the scan.
	overrides := OrderOverrides(
		[]model.ScheduleOverride{fullDayOverride(blackout, blackout, true)},
		blackout,
	)

	rule, ok := ResolveOverride(blackout, overrides)
	require.True(t, ok)
	assert.False(t, rule.Working)
}
