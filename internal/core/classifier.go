package core

import (
	"sort"

	"github.com/admiralsuez/shakshuka/pkg/models"
)

// Partition is the disjoint classification of a task set relative to the
// current effective day.
type Partition struct {
	Active    []models.Task
	Expired   []models.Task
	Completed []models.Task
}

// Classify recomputes the Active/Expired/Completed partition from scratch.
// It is a pure function of its inputs: tasks, a ledger snapshot, today's
// effective date, and the current wall-clock hour.
//
// A task is Expired when it is not completed, has no non-expired ledger
// entry for today, and either its due date lies strictly before today or -
// when no due date is set - its due hour has been reached. Everything not
// completed and not expired is Active.
func Classify(tasks []models.Task, entries []models.StrikeEntry, today string, currentHour int) Partition {
	var p Partition
	for _, t := range tasks {
		switch {
		case t.Completed:
			p.Completed = append(p.Completed, t)
		case isExpired(t, entries, today, currentHour):
			p.Expired = append(p.Expired, t)
		default:
			p.Active = append(p.Active, t)
		}
	}

	// Tasks already handled today sink below not-yet-handled ones so the
	// UI can keep done-for-today items visible at the bottom. The sort is
	// stable, preserving the caller's ordering within each bucket.
	sort.SliceStable(p.Active, func(i, j int) bool {
		hi := HandledToday(entries, p.Active[i].ID, today)
		hj := HandledToday(entries, p.Active[j].ID, today)
		return !hi && hj
	})

	return p
}

func isExpired(t models.Task, entries []models.StrikeEntry, today string, currentHour int) bool {
	if HandledToday(entries, t.ID, today) {
		return false
	}
	if t.HasDueDate() {
		// Date keys are YYYY-MM-DD, so lexicographic order is
		// chronological order.
		return today > t.DueDate
	}
	if t.DueHour != nil {
		return currentHour >= *t.DueHour
	}
	return false
}

// AllCleared reports whether the Active partition is non-empty and every
// active task has been handled for today. Vacuously false with no active
// tasks: there is nothing to clear.
func (p Partition) AllCleared(entries []models.StrikeEntry, today string) bool {
	if len(p.Active) == 0 {
		return false
	}
	for _, t := range p.Active {
		if !HandledToday(entries, t.ID, today) {
			return false
		}
	}
	return true
}
