package core

import (
	"time"

	"github.com/admiralsuez/shakshuka/pkg/models"
)

// Diff computes the structural difference between two states of the same
// task over the closed editable field set. Tag comparison ignores order.
// An empty diff means the edit was a no-op: the caller must not bump the
// revision or append an update record.
func Diff(oldTask, newTask models.Task) models.TaskDiff {
	var d models.TaskDiff

	if oldTask.Title != newTask.Title {
		d.Title = &models.StringChange{Old: oldTask.Title, New: newTask.Title}
	}
	if oldTask.Notes != newTask.Notes {
		d.Notes = &models.StringChange{Old: oldTask.Notes, New: newTask.Notes}
	}
	if oldTask.DueDate != newTask.DueDate {
		d.DueDate = &models.StringChange{Old: oldTask.DueDate, New: newTask.DueDate}
	}
	if !equalHour(oldTask.DueHour, newTask.DueHour) {
		d.DueHour = &models.HourChange{Old: oldTask.DueHour, New: newTask.DueHour}
	}
	if !equalTagSet(oldTask.Tags, newTask.Tags) {
		d.Tags = &models.TagsChange{Old: oldTask.Tags, New: newTask.Tags}
	}
	if oldTask.Completed != newTask.Completed {
		d.Completed = &models.BoolChange{Old: oldTask.Completed, New: newTask.Completed}
	}

	return d
}

// ApplyEdit finalises a non-empty edit: bumps the revision by exactly one,
// stamps UpdatedAt, and builds the update record carrying the diff plus a
// full post-edit snapshot. Returns the updated task and a nil record when
// the diff is empty.
func ApplyEdit(oldTask, newTask models.Task, updateID string, now time.Time) (models.Task, *models.UpdateRecord) {
	diff := Diff(oldTask, newTask)
	if diff.Empty() {
		return oldTask, nil
	}

	newTask.ID = oldTask.ID
	newTask.CreatedAt = oldTask.CreatedAt
	newTask.Revision = oldTask.Revision + 1
	newTask.UpdatedAt = now

	return newTask, &models.UpdateRecord{
		UpdateID:  updateID,
		TaskID:    newTask.ID,
		Timestamp: now,
		Diff:      diff,
		Snapshot:  newTask,
	}
}

func equalHour(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// equalTagSet compares tag slices as sets. Duplicate tags collapse; tasks
// carry lowercase deduplicated tags by construction.
func equalTagSet(a, b []string) bool {
	set := make(map[string]int, len(a))
	for _, t := range a {
		set[t] = 1
	}
	for _, t := range b {
		if _, ok := set[t]; !ok {
			return false
		}
		set[t] = 2
	}
	for _, v := range set {
		if v != 2 {
			return false
		}
	}
	return true
}
