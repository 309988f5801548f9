package model

import "time"

// SettingWorkCycleStart is the admin_settings key holding the cycle anchor.
const SettingWorkCycleStart = "work_cycle_start"

// DefaultAnchorDate is used when the work_cycle_start setting is missing or
// unparsable. Matches the anchor the business launched with.
var DefaultAnchorDate = time.Date(2025, time.October, 25, 0, 0, 0, 0, time.UTC)

// WorkCycleSettings defines day 0 of the repeating work cycle. Loaded once
// per session and immutable during a query.
type WorkCycleSettings struct {
	AnchorDate time.Time `json:"anchor_date"`
}

// ParseWorkCycleSettings builds settings from the raw setting value,
// falling back to DefaultAnchorDate on any parse failure.
func ParseWorkCycleSettings(value string) WorkCycleSettings {
	anchor, err := ParseDate(value)
	if err != nil {
		return WorkCycleSettings{AnchorDate: DefaultAnchorDate}
	}
	return WorkCycleSettings{AnchorDate: anchor}
}
