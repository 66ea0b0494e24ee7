package core

import (
	"sort"

	"github.com/admiralsuez/shakshuka/pkg/models"
)

// LedgerStore is the subset of storage.LedgerManager that the ledger needs.
// Defining it here keeps core independent of the storage package.
type LedgerStore interface {
	LoadAll() ([]models.StrikeEntry, error)
	ReplaceAll(entries []models.StrikeEntry) error
}

// Ledger is the append-only event store of per-day strike/completed/expired
// records. The in-memory slice preserves append order, which UndoLast relies
// on; persistence is a whole-collection replace handled by the caller's
// flush schedule.
type Ledger struct {
	store   LedgerStore
	entries []models.StrikeEntry
}

// NewLedger creates a Ledger over the given store. Call Load before use.
func NewLedger(store LedgerStore) *Ledger {
	return &Ledger{store: store}
}

// Load replaces the in-memory entries with the store's contents. A missing
// or partially malformed backing file yields the valid subset.
func (l *Ledger) Load() error {
	entries, err := l.store.LoadAll()
	if err != nil {
		return err
	}
	l.entries = entries
	return nil
}

// Append adds an entry. No deduplication happens here: callers check
// "already handled today" first, and the aggregator enforces
// at-most-one-expired-per-day at read time.
func (l *Ledger) Append(entry models.StrikeEntry) {
	l.entries = append(l.entries, entry)
}

// UndoLast removes the single most recently appended entry for the given
// task on the given effective date. Returns false (no-op) when no matching
// entry exists.
//
// The removal operates on the authoritative persisted state, not a
// possibly-stale in-memory copy: unflushed appends are pushed to the store
// first, then the collection is re-read. On persistence failure the
// in-memory copy stays authoritative and is used as-is.
func (l *Ledger) UndoLast(taskID, date string) bool {
	if err := l.store.ReplaceAll(l.entries); err == nil {
		if fresh, err := l.store.LoadAll(); err == nil {
			l.entries = fresh
		}
	}
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].TaskID == taskID && l.entries[i].Date == date {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries returns the in-memory entries in append order.
func (l *Ledger) Entries() []models.StrikeEntry {
	return l.entries
}

// EntriesForDate returns entries stamped with the given effective date.
func (l *Ledger) EntriesForDate(date string) []models.StrikeEntry {
	var out []models.StrikeEntry
	for _, e := range l.entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// EntriesForMonth returns entries whose date falls within the month key.
func (l *Ledger) EntriesForMonth(monthKey string) []models.StrikeEntry {
	var out []models.StrikeEntry
	for _, e := range l.entries {
		if MonthOfDate(e.Date) == monthKey {
			out = append(out, e)
		}
	}
	return out
}

// EntriesForTask returns entries referencing the given task, in append
// order. Entries for deleted tasks are still returned; callers tolerate
// dangling references.
func (l *Ledger) EntriesForTask(taskID string) []models.StrikeEntry {
	var out []models.StrikeEntry
	for _, e := range l.entries {
		if e.TaskID == taskID {
			out = append(out, e)
		}
	}
	return out
}

// SortedByRecency returns a copy of the given entries ordered newest first.
func SortedByRecency(entries []models.StrikeEntry) []models.StrikeEntry {
	out := make([]models.StrikeEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// HandledToday reports whether any non-expired entry exists for the task on
// the given effective date.
func HandledToday(entries []models.StrikeEntry, taskID, date string) bool {
	for _, e := range entries {
		if e.TaskID == taskID && e.Date == date && e.Handles() {
			return true
		}
	}
	return false
}
