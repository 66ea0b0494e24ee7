package models

import "time"

// StringChange records an edit to a string-valued task field.
type StringChange struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// BoolChange records an edit to a boolean task field.
type BoolChange struct {
	Old bool `json:"old"`
	New bool `json:"new"`
}

// HourChange records an edit to the optional due-hour field. Nil means unset.
type HourChange struct {
	Old *int `json:"old"`
	New *int `json:"new"`
}

// TagsChange records an edit to the tag set. Comparison is order-independent;
// the stored values keep the task's own ordering.
type TagsChange struct {
	Old []string `json:"old"`
	New []string `json:"new"`
}

// TaskDiff is a structural diff over the closed set of editable task fields.
// A nil field means the field did not change.
type TaskDiff struct {
	Title     *StringChange `json:"title,omitempty"`
	Notes     *StringChange `json:"notes,omitempty"`
	DueDate   *StringChange `json:"due_date,omitempty"`
	DueHour   *HourChange   `json:"due_hour,omitempty"`
	Tags      *TagsChange   `json:"tags,omitempty"`
	Completed *BoolChange   `json:"completed,omitempty"`
}

// Empty reports whether no field changed.
func (d TaskDiff) Empty() bool {
	return d.Title == nil && d.Notes == nil && d.DueDate == nil &&
		d.DueHour == nil && d.Tags == nil && d.Completed == nil
}

// FieldNames returns the names of the changed fields, in declaration order.
func (d TaskDiff) FieldNames() []string {
	var names []string
	if d.Title != nil {
		names = append(names, "title")
	}
	if d.Notes != nil {
		names = append(names, "notes")
	}
	if d.DueDate != nil {
		names = append(names, "due_date")
	}
	if d.DueHour != nil {
		names = append(names, "due_hour")
	}
	if d.Tags != nil {
		names = append(names, "tags")
	}
	if d.Completed != nil {
		names = append(names, "completed")
	}
	return names
}

// UpdateRecord is one append-only edit-history record. The snapshot carries
// the complete post-edit task state so history display never has to replay
// the diff chain.
type UpdateRecord struct {
	UpdateID  string    `json:"update_id"`
	TaskID    string    `json:"task_id"`
	Timestamp time.Time `json:"timestamp"`
	Diff      TaskDiff  `json:"diff"`
	Snapshot  Task      `json:"snapshot"`
}
