package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/admiralsuez/shakshuka/pkg/models"
)

func TestSettingsManager_DefaultsWhenMissing(t *testing.T) {
	m := NewSettingsManager(t.TempDir())
	got, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.ResetHour != models.DefaultResetHour {
		t.Errorf("ResetHour = %d, want %d", got.ResetHour, models.DefaultResetHour)
	}
	if got.Timezone == "" {
		t.Error("Timezone is empty, want host zone or UTC")
	}
}

func TestSettingsManager_RoundTrip(t *testing.T) {
	m := NewSettingsManager(t.TempDir())
	want := models.Settings{ResetHour: 4, Timezone: "Asia/Tokyo"}
	if err := m.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestSettingsManager_OutOfRangeResetHourFallsBack(t *testing.T) {
	dir := t.TempDir()
	data := "reset_hour: 25\ntimezone: UTC\n"
	if err := os.WriteFile(filepath.Join(dir, settingsFile), []byte(data), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	got, err := NewSettingsManager(dir).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.ResetHour != models.DefaultResetHour {
		t.Errorf("ResetHour = %d, want default %d", got.ResetHour, models.DefaultResetHour)
	}
	if got.Timezone != "UTC" {
		t.Errorf("Timezone = %q, want %q", got.Timezone, "UTC")
	}
}

func TestSettingsManager_UnparseableFileDegradesToDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, settingsFile), []byte("reset_hour: [unclosed"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	got, err := NewSettingsManager(dir).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.ResetHour != models.DefaultResetHour {
		t.Errorf("ResetHour = %d, want default %d", got.ResetHour, models.DefaultResetHour)
	}
}

func TestHostZone_NeverEmpty(t *testing.T) {
	if got := HostZone(); got == "" || got == "Local" {
		t.Errorf("HostZone = %q, want a concrete zone name", got)
	}
}
