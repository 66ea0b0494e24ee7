package core

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/admiralsuez/shakshuka/pkg/models"
)

// PollInterval is how often a host process samples wall-clock time to catch
// reset-hour crossings while open. Evaluation is idempotent under repeated
// firing within the same minute.
const PollInterval = time.Minute

// TaskStore is the subset of storage.TaskManager that the engine needs.
type TaskStore interface {
	LoadAll() ([]models.Task, error)
	ReplaceAll(tasks []models.Task) error
}

// UpdateStore is the subset of storage.UpdateManager that the engine needs.
type UpdateStore interface {
	LoadAll() ([]models.UpdateRecord, error)
	ReplaceAll(records []models.UpdateRecord) error
}

// StateStore persists the watcher state (last recap date, consumed
// celebration message IDs) across sessions.
type StateStore interface {
	Load() (models.WatcherState, error)
	Save(state models.WatcherState) error
}

// StatsStore persists the cached monthly aggregate. The cache is advisory:
// reads always prefer live recomputation from the ledger.
type StatsStore interface {
	Load(month string) (models.MonthlyStats, error)
	Save(stats models.MonthlyStats) error
}

// Scheduler requests a debounced persistence flush. Implementations are
// fire-and-forget; a failed write leaves in-memory state authoritative.
type Scheduler interface {
	Mark()
}

// EventRecorder receives engine events for the observability log. A nil
// recorder disables event emission.
type EventRecorder interface {
	Record(eventType, message string, data map[string]any)
}

// EvalResult is the outcome of one evaluation pass. Entries is the ledger
// snapshot the partition was computed from, so consumers can render
// handled-today markers without re-reading the ledger.
type EvalResult struct {
	Date        string
	Month       string
	Hour        int
	Partition   Partition
	Entries     []models.StrikeEntry
	Celebration *models.Celebration
	Recap       *models.RecapSummary
}

// Engine is the single-writer coordinator over the task set, the strike
// ledger, the update log, and the two stateful watchers. All methods are
// safe for the one-writer-plus-flusher model.
type Engine struct {
	mu sync.Mutex

	tasks    []models.Task
	ledger   *Ledger
	updates  []models.UpdateRecord
	state    models.WatcherState
	settings models.Settings

	detector *CompletionDetector
	recap    *RecapGenerator

	taskStore   TaskStore
	updateStore UpdateStore
	stateStore  StateStore
	statsStore  StatsStore

	scheduler Scheduler
	events    EventRecorder
}

// NewEngine wires an engine over its stores. scheduler and events may be
// nil. Call Load before use.
func NewEngine(tasks TaskStore, ledger LedgerStore, updates UpdateStore, state StateStore, stats StatsStore, settings models.Settings, scheduler Scheduler, events EventRecorder) *Engine {
	e := &Engine{
		ledger:      NewLedger(ledger),
		settings:    settings,
		taskStore:   tasks,
		updateStore: updates,
		stateStore:  state,
		statsStore:  stats,
		scheduler:   scheduler,
		events:      events,
	}
	e.detector = NewCompletionDetector(&e.state)
	e.recap = NewRecapGenerator(&e.state)
	return e
}

// AttachScheduler installs the persistence scheduler after construction.
// The flusher needs the engine's FlushAll, so the two are wired in stages.
func (e *Engine) AttachScheduler(s Scheduler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scheduler = s
}

// Load reads every collection from its store. Malformed elements have
// already been dropped by the storage layer; a load error on any collection
// degrades that collection to empty rather than failing the engine.
func (e *Engine) Load() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	tasks, err := e.taskStore.LoadAll()
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	e.tasks = tasks

	if err := e.ledger.Load(); err != nil {
		return fmt.Errorf("loading ledger: %w", err)
	}

	updates, err := e.updateStore.LoadAll()
	if err != nil {
		return fmt.Errorf("loading updates: %w", err)
	}
	e.updates = updates

	state, err := e.stateStore.Load()
	if err != nil {
		return fmt.Errorf("loading watcher state: %w", err)
	}
	e.state = state

	return nil
}

// Settings returns the current temporal settings.
func (e *Engine) Settings() models.Settings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

// UpdateSettings replaces the temporal settings. The change affects
// subsequent classifications only; past ledger entries keep their stamps.
func (e *Engine) UpdateSettings(s models.Settings) error {
	if s.ResetHour < 0 || s.ResetHour > 23 {
		return fmt.Errorf("updating settings: reset hour %d out of range", s.ResetHour)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings = s
	return nil
}

// Tasks returns a copy of the current task set.
func (e *Engine) Tasks() []models.Task {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Task, len(e.tasks))
	copy(out, e.tasks)
	return out
}

// Evaluate runs one pass: resolve the effective day, stamp expired entries,
// classify, and drive the completion and recap watchers. It is invoked on
// the poll tick and after every mutation.
func (e *Engine) Evaluate(now time.Time) EvalResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := EffectiveDate(now, e.settings.Timezone, e.settings.ResetHour)
	month := EffectiveMonth(now, e.settings.Timezone, e.settings.ResetHour)
	hour := WallHour(now, e.settings.Timezone)

	dirty := e.stampExpired(today, hour, now)

	partition := Classify(e.tasks, e.ledger.Entries(), today, hour)

	entries := make([]models.StrikeEntry, len(e.ledger.Entries()))
	copy(entries, e.ledger.Entries())

	result := EvalResult{
		Date:      today,
		Month:     month,
		Hour:      hour,
		Partition: partition,
		Entries:   entries,
	}

	result.Celebration = e.detector.Evaluate(partition, e.ledger.Entries(), today, now)
	if result.Celebration != nil {
		dirty = true
		e.record("tasks.all_cleared", "all active tasks handled", map[string]any{
			"date":       today,
			"message_id": result.Celebration.MessageID,
		})
	}

	prevRecapDate := e.state.LastRecapDate
	result.Recap = e.recap.Evaluate(e.ledger.Entries(), today)
	if e.state.LastRecapDate != prevRecapDate {
		dirty = true
		if prevRecapDate != "" {
			e.record("day.advanced", "effective day advanced", map[string]any{
				"from": prevRecapDate,
				"to":   today,
			})
		}
	}
	if result.Recap != nil {
		e.record("recap.generated", "previous day recap", map[string]any{
			"date":  result.Recap.Date,
			"total": result.Recap.Total,
		})
	}

	// Refresh the cached monthly aggregate. Best-effort: the cache is
	// advisory and reads recompute from the ledger anyway.
	if e.statsStore != nil {
		stats := MonthlyAggregate(e.ledger.Entries(), month)
		stats.TasksAdded = TasksAddedInMonth(e.tasks, month, e.settings.Timezone)
		_ = e.statsStore.Save(stats)
	}

	if dirty {
		e.markDirty()
	}
	return result
}

// stampExpired appends at most one expired entry per overdue, unhandled
// task for today. Reports whether anything was appended.
func (e *Engine) stampExpired(today string, hour int, now time.Time) bool {
	entries := e.ledger.Entries()
	appended := false
	for _, t := range e.tasks {
		if t.Completed || !isExpired(t, entries, today, hour) {
			continue
		}
		if hasExpiredEntry(entries, t.ID, today) {
			continue
		}
		e.ledger.Append(models.StrikeEntry{
			TaskID:    t.ID,
			Date:      today,
			Timestamp: now,
			Action:    models.ActionExpired,
		})
		appended = true
	}
	return appended
}

func hasExpiredEntry(entries []models.StrikeEntry, taskID, date string) bool {
	for _, e := range entries {
		if e.TaskID == taskID && e.Date == date && e.Action == models.ActionExpired {
			return true
		}
	}
	return false
}

// AddTask creates a task at revision 0 and appends it to the set.
func (e *Engine) AddTask(title, notes, dueDate string, dueHour *int, tags []string, now time.Time) (models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, fmt.Errorf("adding task: title must not be empty")
	}
	if dueHour != nil && (*dueHour < 0 || *dueHour > 23) {
		return models.Task{}, fmt.Errorf("adding task: due hour %d out of range", *dueHour)
	}

	task := models.Task{
		ID:        uuid.NewString(),
		Title:     title,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
		DueDate:   dueDate,
		DueHour:   dueHour,
		Tags:      normalizeTags(tags),
	}

	e.mu.Lock()
	e.tasks = append(e.tasks, task)
	e.markDirty()
	e.mu.Unlock()

	e.record("task.created", task.Title, map[string]any{"task_id": task.ID})
	return task, nil
}

// EditTask applies mutate to a copy of the task. A no-op edit leaves the
// task untouched; otherwise the revision bumps by one and an update record
// with the diff and a full snapshot is appended.
func (e *Engine) EditTask(taskID string, mutate func(*models.Task), now time.Time) (models.Task, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.taskIndex(taskID)
	if idx < 0 {
		return models.Task{}, fmt.Errorf("editing task %s: not found", taskID)
	}

	oldTask := e.tasks[idx]
	newTask := oldTask
	newTask.Tags = append([]string(nil), oldTask.Tags...)
	mutate(&newTask)
	newTask.Tags = normalizeTags(newTask.Tags)

	updated, rec := ApplyEdit(oldTask, newTask, uuid.NewString(), now)
	if rec == nil {
		return oldTask, nil
	}

	e.tasks[idx] = updated
	e.updates = append(e.updates, *rec)
	e.markDirty()

	e.record("task.updated", updated.Title, map[string]any{
		"task_id":  updated.ID,
		"revision": updated.Revision,
		"fields":   rec.Diff.FieldNames(),
	})
	return updated, nil
}

// ToggleComplete flips the permanent completed flag through the edit path,
// so the flip is revisioned and diffed like any other edit. Completing a
// task also stamps a completed ledger entry for today unless the task is
// already handled.
func (e *Engine) ToggleComplete(taskID string, now time.Time) (models.Task, error) {
	task, err := e.EditTask(taskID, func(t *models.Task) {
		t.Completed = !t.Completed
	}, now)
	if err != nil {
		return models.Task{}, err
	}

	if task.Completed {
		e.mu.Lock()
		today := EffectiveDate(now, e.settings.Timezone, e.settings.ResetHour)
		if !HandledToday(e.ledger.Entries(), taskID, today) {
			e.ledger.Append(models.StrikeEntry{
				TaskID:    taskID,
				Date:      today,
				Timestamp: now,
				Action:    models.ActionCompleted,
			})
			e.markDirty()
		}
		e.mu.Unlock()
	}
	return task, nil
}

// DeleteTask removes the task from the set. Ledger and update entries that
// reference it become dangling and are deliberately kept: historical
// aggregates are never retroactively revised.
func (e *Engine) DeleteTask(taskID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.taskIndex(taskID)
	if idx < 0 {
		return fmt.Errorf("deleting task %s: not found", taskID)
	}
	e.tasks = append(e.tasks[:idx], e.tasks[idx+1:]...)
	e.markDirty()

	e.record("task.deleted", taskID, map[string]any{"task_id": taskID})
	return nil
}

// Strike marks the task handled for today without completing it. Striking
// a task that is already handled today is rejected; the ledger never
// deduplicates on its own.
func (e *Engine) Strike(taskID, note string, now time.Time) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.taskIndex(taskID) < 0 {
		return fmt.Errorf("striking task %s: not found", taskID)
	}

	today := EffectiveDate(now, e.settings.Timezone, e.settings.ResetHour)
	if HandledToday(e.ledger.Entries(), taskID, today) {
		return fmt.Errorf("striking task %s: already handled on %s", taskID, today)
	}

	e.ledger.Append(models.StrikeEntry{
		TaskID:    taskID,
		Date:      today,
		Note:      note,
		Timestamp: now,
		Action:    models.ActionStrike,
	})
	e.markDirty()

	e.record("strike.recorded", taskID, map[string]any{"task_id": taskID, "date": today})
	return nil
}

// Undo removes the most recent ledger entry for the task on today's
// effective date. Silent no-op when nothing matches.
func (e *Engine) Undo(taskID string, now time.Time) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := EffectiveDate(now, e.settings.Timezone, e.settings.ResetHour)
	removed := e.ledger.UndoLast(taskID, today)
	if removed {
		e.markDirty()
		e.record("strike.undone", taskID, map[string]any{"task_id": taskID, "date": today})
	}
	return removed
}

// History returns the update records for a task, newest first.
func (e *Engine) History(taskID string) []models.UpdateRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []models.UpdateRecord
	for _, r := range e.updates {
		if r.TaskID == taskID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// MonthStats computes the live monthly aggregate for the month containing
// now. The stored cache is ignored except as a fallback the storage layer
// already defaults to zero.
func (e *Engine) MonthStats(now time.Time) models.MonthlyStats {
	e.mu.Lock()
	defer e.mu.Unlock()

	month := EffectiveMonth(now, e.settings.Timezone, e.settings.ResetHour)
	stats := MonthlyAggregate(e.ledger.Entries(), month)
	stats.TasksAdded = TasksAddedInMonth(e.tasks, month, e.settings.Timezone)
	return stats
}

// DayStats computes the daily aggregate for the given effective date.
func (e *Engine) DayStats(date string) models.DailyStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return DailyAggregate(e.ledger.Entries(), date)
}

// LedgerEntries returns a copy of the full ledger in append order.
func (e *Engine) LedgerEntries() []models.StrikeEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	entries := e.ledger.Entries()
	out := make([]models.StrikeEntry, len(entries))
	copy(out, entries)
	return out
}

// AcknowledgeCelebration marks the pending celebration as displayed.
func (e *Engine) AcknowledgeCelebration() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.detector.Acknowledge()
}

// FlushAll writes every collection through its store. Called by the
// debounced flusher and on shutdown. A failed write is reported but leaves
// the in-memory state untouched and authoritative.
func (e *Engine) FlushAll() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if e.taskStore != nil {
		keep(e.taskStore.ReplaceAll(e.tasks))
	}
	keep(e.ledger.store.ReplaceAll(e.ledger.Entries()))
	if e.updateStore != nil {
		keep(e.updateStore.ReplaceAll(e.updates))
	}
	if e.stateStore != nil {
		keep(e.stateStore.Save(e.state))
	}
	return firstErr
}

func (e *Engine) taskIndex(taskID string) int {
	for i, t := range e.tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}

func (e *Engine) markDirty() {
	if e.scheduler != nil {
		e.scheduler.Mark()
	}
}

func (e *Engine) record(eventType, message string, data map[string]any) {
	if e.events != nil {
		e.events.Record(eventType, message, data)
	}
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
