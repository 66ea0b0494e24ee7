package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/admiralsuez/shakshuka/pkg/models"
)

func TestTaskManager_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	m := NewTaskManager(dir)

	h := 17
	tasks := []models.Task{
		{ID: "a", Title: "walk", CreatedAt: time.Now().UTC(), Tags: []string{"health"}},
		{ID: "b", Title: "report", DueDate: "2024-03-05", DueHour: &h},
	}
	if err := m.ReplaceAll(tasks); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	got, err := m.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("LoadAll = %d tasks, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].DueDate != "2024-03-05" {
		t.Errorf("round trip lost data: %+v", got)
	}
	if got[1].DueHour == nil || *got[1].DueHour != 17 {
		t.Errorf("DueHour = %v, want 17", got[1].DueHour)
	}
}

func TestTaskManager_LoadMissingFile(t *testing.T) {
	m := NewTaskManager(t.TempDir())
	got, err := m.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll on missing file failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("LoadAll = %d tasks, want 0", len(got))
	}
}

func TestLoadCollection_MalformedElementDropped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, tasksFile)
	// The second element is not an object; it is dropped, the rest survive.
	data := `[{"id":"a","title":"walk"},"garbage",{"id":"b","title":"run"}]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	got, err := NewTaskManager(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("LoadAll = %d tasks, want 2 valid ones", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("surviving tasks = %+v, want a and b", got)
	}
}

func TestLoadCollection_NonArrayFileDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, tasksFile)
	if err := os.WriteFile(path, []byte(`{"not":"an array"}`), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	got, err := NewTaskManager(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("LoadAll = %d tasks, want 0", len(got))
	}
}

func TestSaveCollection_NilWritesEmptyArray(t *testing.T) {
	dir := t.TempDir()
	m := NewLedgerManager(dir)
	if err := m.ReplaceAll(nil); err != nil {
		t.Fatalf("ReplaceAll(nil) failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ledgerFile))
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("file contents = %q, want %q", data, "[]")
	}
}

func TestLedgerManager_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	m := NewLedgerManager(dir)

	now := time.Now().UTC()
	entries := []models.StrikeEntry{
		{TaskID: "b", Date: "2024-03-01", Action: models.ActionStrike, Timestamp: now},
		{TaskID: "a", Date: "2024-03-01", Action: models.ActionExpired, Timestamp: now.Add(-time.Hour)},
	}
	if err := m.ReplaceAll(entries); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	got, err := m.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(got) != 2 || got[0].TaskID != "b" || got[1].TaskID != "a" {
		t.Errorf("append order not preserved: %+v", got)
	}
}

func TestStateManager_ZeroStateOnMissingOrCorrupt(t *testing.T) {
	dir := t.TempDir()
	m := NewStateManager(dir)

	state, err := m.Load()
	if err != nil {
		t.Fatalf("Load on missing file failed: %v", err)
	}
	if state.LastRecapDate != "" || len(state.UsedMessageIDs) != 0 {
		t.Errorf("state = %+v, want zero", state)
	}

	if err := os.WriteFile(filepath.Join(dir, stateFile), []byte("{{{"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	state, err = m.Load()
	if err != nil {
		t.Fatalf("Load on corrupt file failed: %v", err)
	}
	if state.LastRecapDate != "" {
		t.Errorf("corrupt state = %+v, want zero", state)
	}
}

func TestStateManager_RoundTrip(t *testing.T) {
	m := NewStateManager(t.TempDir())
	want := models.WatcherState{
		LastRecapDate:  "2024-03-01",
		UsedMessageIDs: []string{"clean-sweep", "all-done"},
	}
	if err := m.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.LastRecapDate != want.LastRecapDate || len(got.UsedMessageIDs) != 2 {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestStatsManager_UpsertByMonth(t *testing.T) {
	m := NewStatsManager(t.TempDir())

	if err := m.Save(models.MonthlyStats{Month: "2024-02", Strikes: 5}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := m.Save(models.MonthlyStats{Month: "2024-03", Strikes: 1}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	// Overwrite the March record.
	if err := m.Save(models.MonthlyStats{Month: "2024-03", Strikes: 7}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	feb, err := m.Load("2024-02")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if feb.Strikes != 5 {
		t.Errorf("February strikes = %d, want 5", feb.Strikes)
	}
	mar, err := m.Load("2024-03")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if mar.Strikes != 7 {
		t.Errorf("March strikes = %d, want 7 after upsert", mar.Strikes)
	}
}

func TestStatsManager_MissingMonthIsFreshZero(t *testing.T) {
	m := NewStatsManager(t.TempDir())
	got, err := m.Load("2024-03")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Month != "2024-03" || got.Strikes != 0 {
		t.Errorf("missing month = %+v, want fresh zero record", got)
	}
}
