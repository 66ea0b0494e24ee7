// Package core contains the temporal task-state and strike-ledger engine:
// day boundary resolution, task classification, ledger aggregation, the
// completion and recap watchers, and edit-revision tracking.
package core

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date key format used throughout the ledger.
const DateLayout = "2006-01-02"

// MonthLayout is the month key format used for monthly aggregates.
const MonthLayout = "2006-01"

// loadLocation resolves an IANA zone name, failing closed to UTC when the
// name is empty or unknown to the host timezone database.
func loadLocation(timezone string) *time.Location {
	if timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// EffectiveDate returns the calendar date (YYYY-MM-DD) a ledger event at
// instant t belongs to. The date key is the literal wall-clock date in the
// user's zone; the reset hour does not shift it. Only the month key is
// reset-adjusted (see EffectiveMonth) - the two keys are intentionally
// computed under different rules.
func EffectiveDate(t time.Time, timezone string, resetHour int) string {
	return t.In(loadLocation(timezone)).Format(DateLayout)
}

// EffectiveMonth returns the month key (YYYY-MM) for monthly aggregates.
// During the first day of a calendar month, hours before the reset hour
// still count toward the previous month, rolling the year back across
// January 1st.
func EffectiveMonth(t time.Time, timezone string, resetHour int) string {
	wall := t.In(loadLocation(timezone))
	year, month, day := wall.Date()
	if day == 1 && wall.Hour() < resetHour {
		if month == time.January {
			return fmt.Sprintf("%04d-%02d", year-1, time.December)
		}
		return fmt.Sprintf("%04d-%02d", year, month-1)
	}
	return fmt.Sprintf("%04d-%02d", year, month)
}

// WallHour returns the wall-clock hour (0-23) of t in the user's zone,
// used for due-hour expiry checks.
func WallHour(t time.Time, timezone string) int {
	return t.In(loadLocation(timezone)).Hour()
}

// MonthOfDate returns the YYYY-MM prefix of a YYYY-MM-DD date key.
func MonthOfDate(date string) string {
	if len(date) < len(MonthLayout) {
		return date
	}
	return date[:len(MonthLayout)]
}
