package models

import "time"

// StrikeAction is the kind of event recorded in the strike ledger.
type StrikeAction string

const (
	ActionStrike    StrikeAction = "strike"
	ActionCompleted StrikeAction = "completed"
	ActionExpired   StrikeAction = "expired"
)

// Task represents a recurring daily task tracked against the user's
// reset-hour day. Revision increases by exactly 1 on every persisted edit.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes,omitempty"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Revision  int       `json:"revision"`
	// DueDate is a calendar date (YYYY-MM-DD) in the user's zone.
	// When set it supersedes DueHour.
	DueDate string `json:"due_date,omitempty"`
	// DueHour is the legacy deadline-by-hour (0-23). Nil when unset.
	DueHour *int     `json:"due_hour,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// HasDueDate reports whether the task carries a date-level deadline.
func (t Task) HasDueDate() bool { return t.DueDate != "" }

// StrikeEntry is a single ledger record. Entries are immutable once written;
// the only mutation is removal of the most recent entry for a given task on
// the current effective day (undo).
type StrikeEntry struct {
	TaskID    string       `json:"task_id"`
	Date      string       `json:"date"` // effective day, YYYY-MM-DD
	Note      string       `json:"note,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
	Action    StrikeAction `json:"action"`
}

// Handles reports whether the entry marks its task as handled for its day.
// Expired entries never count as handling.
func (e StrikeEntry) Handles() bool { return e.Action != ActionExpired }
