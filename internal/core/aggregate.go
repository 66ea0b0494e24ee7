package core

import (
	"sort"

	"github.com/admiralsuez/shakshuka/pkg/models"
)

// MonthlyAggregate counts ledger entries whose date falls within monthKey,
// bucketed by action. Expired entries are deduplicated to at most one per
// (task, date), and a day already covered by a strike or completed entry for
// the same task contributes no expired count at all - the task was handled,
// the stale expired record is a leftover.
func MonthlyAggregate(entries []models.StrikeEntry, monthKey string) models.MonthlyStats {
	stats := models.MonthlyStats{Month: monthKey}

	handled := make(map[[2]string]bool)
	for _, e := range entries {
		if MonthOfDate(e.Date) == monthKey && e.Handles() {
			handled[[2]string{e.TaskID, e.Date}] = true
		}
	}

	expiredSeen := make(map[[2]string]bool)
	for _, e := range entries {
		if MonthOfDate(e.Date) != monthKey {
			continue
		}
		switch e.Action {
		case models.ActionStrike:
			stats.Strikes++
		case models.ActionCompleted:
			stats.Completed++
		case models.ActionExpired:
			key := [2]string{e.TaskID, e.Date}
			if handled[key] || expiredSeen[key] {
				continue
			}
			expiredSeen[key] = true
			stats.Expired++
		}
	}
	return stats
}

// DailyAggregate summarises one effective day: distinct tasks touched,
// per-action counts, and the event timestamps in ascending order.
func DailyAggregate(entries []models.StrikeEntry, date string) models.DailyStats {
	stats := models.DailyStats{Date: date}

	tasks := make(map[string]bool)
	for _, e := range entries {
		if e.Date != date {
			continue
		}
		tasks[e.TaskID] = true
		switch e.Action {
		case models.ActionStrike:
			stats.Struck++
		case models.ActionCompleted:
			stats.Completed++
		case models.ActionExpired:
			stats.Expired++
		}
		stats.Times = append(stats.Times, e.Timestamp)
	}
	stats.Total = len(tasks)
	sort.Slice(stats.Times, func(i, j int) bool {
		return stats.Times[i].Before(stats.Times[j])
	})
	return stats
}

// TasksAddedInMonth counts tasks whose creation instant, mapped through the
// resolver's literal date rule, falls within the month key.
func TasksAddedInMonth(tasks []models.Task, monthKey, timezone string) int {
	count := 0
	for _, t := range tasks {
		created := EffectiveDate(t.CreatedAt, timezone, 0)
		if MonthOfDate(created) == monthKey {
			count++
		}
	}
	return count
}

// LiveExpiredCount recomputes the number of currently expired tasks from the
// classifier. Stored expired counters are caches; when they disagree with
// this value, this value wins.
func LiveExpiredCount(tasks []models.Task, entries []models.StrikeEntry, today string, currentHour int) int {
	return len(Classify(tasks, entries, today, currentHour).Expired)
}
