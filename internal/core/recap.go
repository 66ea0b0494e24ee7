package core

import "github.com/admiralsuez/shakshuka/pkg/models"

// RecapGenerator watches the effective date and produces a one-time summary
// of the previous day when the date advances. The last-recap date lives on
// the caller-owned WatcherState, initialised empty ("never recapped").
type RecapGenerator struct {
	state *models.WatcherState
}

// NewRecapGenerator creates a generator over the shared watcher state.
func NewRecapGenerator(state *models.WatcherState) *RecapGenerator {
	return &RecapGenerator{state: state}
}

// Evaluate compares the stored last-recap date against today. On a date
// advance it computes the daily summary for the previously recorded date
// and returns it when that day saw any activity. The stored date advances
// to today unconditionally, so the same transition never re-fires - not
// even when no payload was emitted. A date regression (a timezone change
// moving the effective date backward) is quiet and never rewinds the
// recorded date.
func (g *RecapGenerator) Evaluate(entries []models.StrikeEntry, today string) *models.RecapSummary {
	previous := g.state.LastRecapDate
	if previous == today {
		return nil
	}
	// Date keys are YYYY-MM-DD, so lexicographic order is chronological.
	if previous != "" && today < previous {
		return nil
	}
	g.state.LastRecapDate = today

	// First run ever: nothing to recap, just record today.
	if previous == "" {
		return nil
	}

	stats := DailyAggregate(entries, previous)
	if stats.Empty() {
		return nil
	}
	return &models.RecapSummary{
		Date:      previous,
		Total:     stats.Total,
		Completed: stats.Completed,
		Struck:    stats.Struck,
		Expired:   stats.Expired,
	}
}
