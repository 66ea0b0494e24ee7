package core

import (
	"testing"
	"time"

	"github.com/admiralsuez/shakshuka/pkg/models"
)

func task(id, title string) models.Task {
	return models.Task{ID: id, Title: title}
}

func TestClassify_Buckets(t *testing.T) {
	hour := 16
	tasks := []models.Task{
		task("active", "walk"),
		{ID: "done", Title: "archive", Completed: true},
		{ID: "overdue", Title: "report", DueDate: "2024-02-28"},
	}

	p := Classify(tasks, nil, "2024-03-01", hour)
	if len(p.Active) != 1 || p.Active[0].ID != "active" {
		t.Errorf("Active = %+v, want [active]", p.Active)
	}
	if len(p.Completed) != 1 || p.Completed[0].ID != "done" {
		t.Errorf("Completed = %+v, want [done]", p.Completed)
	}
	if len(p.Expired) != 1 || p.Expired[0].ID != "overdue" {
		t.Errorf("Expired = %+v, want [overdue]", p.Expired)
	}
}

func TestClassify_DueDateBoundary(t *testing.T) {
	// Due today is not yet overdue; overdue starts the day after.
	due := models.Task{ID: "a", Title: "taxes", DueDate: "2024-03-01"}

	p := Classify([]models.Task{due}, nil, "2024-03-01", 23)
	if len(p.Active) != 1 {
		t.Errorf("task due today classified as %+v, want Active", p)
	}

	p = Classify([]models.Task{due}, nil, "2024-03-02", 0)
	if len(p.Expired) != 1 {
		t.Errorf("task due yesterday classified as %+v, want Expired", p)
	}
}

func TestClassify_DueHourBoundary(t *testing.T) {
	h := 17
	due := models.Task{ID: "a", Title: "standup", DueHour: &h}

	p := Classify([]models.Task{due}, nil, "2024-03-01", 16)
	if len(p.Active) != 1 {
		t.Errorf("before due hour classified as %+v, want Active", p)
	}

	p = Classify([]models.Task{due}, nil, "2024-03-01", 17)
	if len(p.Expired) != 1 {
		t.Errorf("at due hour classified as %+v, want Expired", p)
	}
}

func TestClassify_DueDateSupersedesDueHour(t *testing.T) {
	h := 8
	due := models.Task{ID: "a", Title: "ship", DueDate: "2024-03-05", DueHour: &h}

	// The hour has passed but the date has not: not expired.
	p := Classify([]models.Task{due}, nil, "2024-03-01", 12)
	if len(p.Active) != 1 {
		t.Errorf("future due date with past due hour classified as %+v, want Active", p)
	}
}

func TestClassify_HandledTodayBlocksExpiry(t *testing.T) {
	due := models.Task{ID: "a", Title: "report", DueDate: "2024-02-20"}
	entries := []models.StrikeEntry{
		{TaskID: "a", Date: "2024-03-01", Action: models.ActionStrike, Timestamp: time.Now()},
	}

	p := Classify([]models.Task{due}, entries, "2024-03-01", 12)
	if len(p.Active) != 1 {
		t.Errorf("handled overdue task classified as %+v, want Active", p)
	}

	// An expired entry does not shield the task.
	entries[0].Action = models.ActionExpired
	p = Classify([]models.Task{due}, entries, "2024-03-01", 12)
	if len(p.Expired) != 1 {
		t.Errorf("overdue task with only expired entry classified as %+v, want Expired", p)
	}
}

func TestClassify_HandledTasksSinkInActive(t *testing.T) {
	tasks := []models.Task{task("a", "first"), task("b", "second"), task("c", "third")}
	entries := []models.StrikeEntry{
		{TaskID: "a", Date: "2024-03-01", Action: models.ActionStrike, Timestamp: time.Now()},
	}

	p := Classify(tasks, entries, "2024-03-01", 12)
	if len(p.Active) != 3 {
		t.Fatalf("Active = %d tasks, want 3", len(p.Active))
	}
	// Unhandled b and c keep their relative order; handled a sinks.
	if p.Active[0].ID != "b" || p.Active[1].ID != "c" || p.Active[2].ID != "a" {
		t.Errorf("Active order = %s,%s,%s, want b,c,a",
			p.Active[0].ID, p.Active[1].ID, p.Active[2].ID)
	}
}

func TestAllCleared(t *testing.T) {
	tasks := []models.Task{task("a", "one"), task("b", "two")}
	today := "2024-03-01"

	p := Classify(tasks, nil, today, 12)
	if p.AllCleared(nil, today) {
		t.Error("AllCleared with unhandled tasks = true, want false")
	}

	entries := []models.StrikeEntry{
		{TaskID: "a", Date: today, Action: models.ActionStrike, Timestamp: time.Now()},
		{TaskID: "b", Date: today, Action: models.ActionCompleted, Timestamp: time.Now()},
	}
	p = Classify(tasks, entries, today, 12)
	if !p.AllCleared(entries, today) {
		t.Error("AllCleared with every task handled = false, want true")
	}

	// No active tasks at all: vacuously not cleared.
	p = Classify(nil, nil, today, 12)
	if p.AllCleared(nil, today) {
		t.Error("AllCleared with no active tasks = true, want false")
	}
}
