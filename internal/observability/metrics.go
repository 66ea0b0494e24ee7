package observability

import (
	"fmt"
	"time"
)

// Metrics holds operational counts derived from the event log.
type Metrics struct {
	TasksCreated    int        `json:"tasks_created"`
	TasksUpdated    int        `json:"tasks_updated"`
	TasksDeleted    int        `json:"tasks_deleted"`
	StrikesRecorded int        `json:"strikes_recorded"`
	StrikesUndone   int        `json:"strikes_undone"`
	DaysCleared     int        `json:"days_cleared"`
	RecapsGenerated int        `json:"recaps_generated"`
	EventCount      int        `json:"event_count"`
	OldestEvent     *time.Time `json:"oldest_event,omitempty"`
	NewestEvent     *time.Time `json:"newest_event,omitempty"`
}

// MetricsCalculator derives metrics from the event log.
type MetricsCalculator interface {
	Calculate(since time.Time) (*Metrics, error)
}

type metricsCalculator struct {
	eventLog EventLog
}

// NewMetricsCalculator creates a MetricsCalculator over the given EventLog.
func NewMetricsCalculator(eventLog EventLog) MetricsCalculator {
	return &metricsCalculator{eventLog: eventLog}
}

// Calculate reads all events since the given time and aggregates them.
func (mc *metricsCalculator) Calculate(since time.Time) (*Metrics, error) {
	events, err := mc.eventLog.Read(EventFilter{Since: &since})
	if err != nil {
		return nil, fmt.Errorf("reading events for metrics: %w", err)
	}

	m := &Metrics{EventCount: len(events)}
	for i, event := range events {
		if i == 0 {
			t := event.Time
			m.OldestEvent = &t
		}
		t := event.Time
		m.NewestEvent = &t

		switch event.Type {
		case "task.created":
			m.TasksCreated++
		case "task.updated":
			m.TasksUpdated++
		case "task.deleted":
			m.TasksDeleted++
		case "strike.recorded":
			m.StrikesRecorded++
		case "strike.undone":
			m.StrikesUndone++
		case "tasks.all_cleared":
			m.DaysCleared++
		case "recap.generated":
			m.RecapsGenerated++
		}
	}
	return m, nil
}
