package core

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/admiralsuez/shakshuka/pkg/models"
)

func taskGen() *rapid.Generator[models.Task] {
	return rapid.Custom(func(rt *rapid.T) models.Task {
		t := models.Task{
			ID:    rapid.StringMatching(`[a-z0-9]{8}`).Draw(rt, "id"),
			Title: rapid.StringN(1, 40, -1).Draw(rt, "title"),
			Notes: rapid.StringN(0, 80, -1).Draw(rt, "notes"),
			Tags:  rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,8}`), 0, 4).Draw(rt, "tags"),
		}
		if rapid.Bool().Draw(rt, "hasDueDate") {
			t.DueDate = rapid.StringMatching(`202[0-9]-(0[1-9]|1[0-2])-(0[1-9]|1[0-9]|2[0-8])`).Draw(rt, "dueDate")
		}
		if rapid.Bool().Draw(rt, "hasDueHour") {
			h := rapid.IntRange(0, 23).Draw(rt, "dueHour")
			t.DueHour = &h
		}
		t.Completed = rapid.Bool().Draw(rt, "completed")
		return t
	})
}

// Diff of a task against itself is always empty.
func TestDiff_IdentityProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		task := taskGen().Draw(rt, "task")
		if d := Diff(task, task); !d.Empty() {
			rt.Errorf("Diff(t, t) = %+v, want empty", d)
		}
	})
}

// ApplyEdit either changes nothing (nil record) or bumps the revision by
// exactly one and snapshots the result.
func TestApplyEdit_RevisionStepProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		oldTask := taskGen().Draw(rt, "old")
		newTask := taskGen().Draw(rt, "new")
		newTask.ID = oldTask.ID
		oldTask.Revision = rapid.IntRange(0, 100).Draw(rt, "revision")

		now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		updated, rec := ApplyEdit(oldTask, newTask, "u-1", now)

		if rec == nil {
			if updated.Revision != oldTask.Revision {
				rt.Errorf("nil record but revision moved %d -> %d", oldTask.Revision, updated.Revision)
			}
			return
		}
		if updated.Revision != oldTask.Revision+1 {
			rt.Errorf("revision %d -> %d, want +1", oldTask.Revision, updated.Revision)
		}
		if rec.Snapshot.Revision != updated.Revision {
			rt.Errorf("snapshot revision %d != task revision %d", rec.Snapshot.Revision, updated.Revision)
		}
		if updated.ID != oldTask.ID || !updated.CreatedAt.Equal(oldTask.CreatedAt) {
			rt.Errorf("identity fields changed: %+v", updated)
		}
	})
}

// Tag permutation never produces a diff on its own.
func TestDiff_TagPermutationProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		task := taskGen().Draw(rt, "task")
		perm := rapid.Permutation(task.Tags).Draw(rt, "perm")

		shuffled := task
		shuffled.Tags = perm
		if d := Diff(task, shuffled); !d.Empty() {
			rt.Errorf("tag permutation produced diff %+v", d)
		}
	})
}
