package models

import "time"

// MonthlyStats aggregates ledger activity for one effective month.
type MonthlyStats struct {
	Month      string `json:"month"` // YYYY-MM
	Strikes    int    `json:"strikes"`
	Completed  int    `json:"completed"`
	Expired    int    `json:"expired"`
	TasksAdded int    `json:"tasks_added"`
}

// DailyStats aggregates ledger activity for one effective day. Times holds
// the event timestamps in ascending order.
type DailyStats struct {
	Date      string      `json:"date"`
	Total     int         `json:"total"` // distinct tasks touched
	Struck    int         `json:"struck"`
	Completed int         `json:"completed"`
	Expired   int         `json:"expired"`
	Times     []time.Time `json:"times,omitempty"`
}

// Empty reports whether no task was touched that day.
func (d DailyStats) Empty() bool { return d.Total == 0 }

// RecapSummary is the one-shot payload emitted when the effective day
// advances and the previous day saw any activity.
type RecapSummary struct {
	Date      string `json:"date"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Struck    int    `json:"struck"`
	Expired   int    `json:"expired"`
}

// Celebration is the one-shot payload emitted when every active task has
// been handled for the day.
type Celebration struct {
	Date      string    `json:"date"`
	MessageID string    `json:"message_id"`
	Message   string    `json:"message"`
	FiredAt   time.Time `json:"fired_at"`
}
