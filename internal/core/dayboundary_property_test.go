package core

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

// For any instant and reset hour, the month key equals the date key's month
// prefix except during the shift window: the first day of a month, before
// the reset hour.
func TestEffectiveMonth_MatchesDateOutsideShiftWindow(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		resetHour := rapid.IntRange(0, 23).Draw(rt, "resetHour")
		day := rapid.IntRange(1, 28).Draw(rt, "day")
		hour := rapid.IntRange(0, 23).Draw(rt, "hour")
		month := rapid.IntRange(1, 12).Draw(rt, "month")
		year := rapid.IntRange(2020, 2030).Draw(rt, "year")

		now := time.Date(year, time.Month(month), day, hour, 0, 0, 0, time.UTC)
		date := EffectiveDate(now, "UTC", resetHour)
		got := EffectiveMonth(now, "UTC", resetHour)

		if day == 1 && hour < resetHour {
			if got == MonthOfDate(date) {
				rt.Errorf("month %q not shifted during the reset window at %v", got, now)
			}
		} else {
			if got != MonthOfDate(date) {
				rt.Errorf("month %q disagrees with date %q at %v", got, date, now)
			}
		}
	})
}

// The shifted month is always exactly one calendar month before the wall
// month, including across the year boundary.
func TestEffectiveMonth_ShiftIsOneMonthBack(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		resetHour := rapid.IntRange(1, 23).Draw(rt, "resetHour")
		hour := rapid.IntRange(0, resetHour-1).Draw(rt, "hour")
		month := rapid.IntRange(1, 12).Draw(rt, "month")
		year := rapid.IntRange(2020, 2030).Draw(rt, "year")

		now := time.Date(year, time.Month(month), 1, hour, 0, 0, 0, time.UTC)
		got := EffectiveMonth(now, "UTC", resetHour)
		want := now.AddDate(0, -1, 0).Format(MonthLayout)
		if got != want {
			rt.Errorf("EffectiveMonth(%v) = %q, want %q", now, got, want)
		}
	})
}
