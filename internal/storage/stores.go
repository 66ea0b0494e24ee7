package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/admiralsuez/shakshuka/pkg/models"
)

// File names of the persisted collections under the base directory.
const (
	tasksFile   = "tasks.json"
	ledgerFile  = "ledger.json"
	updatesFile = "updates.json"
	stateFile   = "state.json"
	statsFile   = "monthly_stats.json"
)

// TaskManager persists the task collection as a whole-file JSON array.
type TaskManager struct {
	path string
}

// NewTaskManager creates a TaskManager backed by tasks.json in basePath.
func NewTaskManager(basePath string) *TaskManager {
	return &TaskManager{path: filepath.Join(basePath, tasksFile)}
}

func (m *TaskManager) LoadAll() ([]models.Task, error) {
	return loadCollection[models.Task](m.path)
}

func (m *TaskManager) ReplaceAll(tasks []models.Task) error {
	return saveCollection(m.path, tasks)
}

// LedgerManager persists the strike ledger. Append order is preserved by
// the array ordering on disk.
type LedgerManager struct {
	path string
}

// NewLedgerManager creates a LedgerManager backed by ledger.json in basePath.
func NewLedgerManager(basePath string) *LedgerManager {
	return &LedgerManager{path: filepath.Join(basePath, ledgerFile)}
}

func (m *LedgerManager) LoadAll() ([]models.StrikeEntry, error) {
	return loadCollection[models.StrikeEntry](m.path)
}

func (m *LedgerManager) ReplaceAll(entries []models.StrikeEntry) error {
	return saveCollection(m.path, entries)
}

// UpdateManager persists the append-only edit-history records.
type UpdateManager struct {
	path string
}

// NewUpdateManager creates an UpdateManager backed by updates.json in basePath.
func NewUpdateManager(basePath string) *UpdateManager {
	return &UpdateManager{path: filepath.Join(basePath, updatesFile)}
}

func (m *UpdateManager) LoadAll() ([]models.UpdateRecord, error) {
	return loadCollection[models.UpdateRecord](m.path)
}

func (m *UpdateManager) ReplaceAll(records []models.UpdateRecord) error {
	return saveCollection(m.path, records)
}

// StateManager persists the watcher state object. A missing or unreadable
// file yields the zero state: never recapped, no message consumed.
type StateManager struct {
	path string
}

// NewStateManager creates a StateManager backed by state.json in basePath.
func NewStateManager(basePath string) *StateManager {
	return &StateManager{path: filepath.Join(basePath, stateFile)}
}

func (m *StateManager) Load() (models.WatcherState, error) {
	var state models.WatcherState
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return state, fmt.Errorf("reading state: %w", err)
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return models.WatcherState{}, nil
	}
	return state, nil
}

func (m *StateManager) Save(state models.WatcherState) error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0o750); err != nil {
		return fmt.Errorf("saving state: creating directory: %w", err)
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("saving state: marshaling: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o600); err != nil {
		return fmt.Errorf("saving state: writing: %w", err)
	}
	return nil
}

// StatsManager persists the cached monthly aggregates keyed by month. The
// cache is derived data: a corrupted or missing record loads as a fresh
// zero record for the requested month.
type StatsManager struct {
	path string
}

// NewStatsManager creates a StatsManager backed by monthly_stats.json in basePath.
func NewStatsManager(basePath string) *StatsManager {
	return &StatsManager{path: filepath.Join(basePath, statsFile)}
}

func (m *StatsManager) Load(month string) (models.MonthlyStats, error) {
	all, err := loadCollection[models.MonthlyStats](m.path)
	if err != nil {
		return models.MonthlyStats{Month: month}, nil
	}
	for _, s := range all {
		if s.Month == month {
			return s, nil
		}
	}
	return models.MonthlyStats{Month: month}, nil
}

func (m *StatsManager) Save(stats models.MonthlyStats) error {
	all, err := loadCollection[models.MonthlyStats](m.path)
	if err != nil {
		all = nil
	}
	replaced := false
	for i, s := range all {
		if s.Month == stats.Month {
			all[i] = stats
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, stats)
	}
	return saveCollection(m.path, all)
}
