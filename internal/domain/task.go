package domain

import "time"

type Task struct {
	ID      string
	OwnerID string
	Title   string
	Type    TaskType
	Kind    TaskKind

	// Timing. PlannedStart and PlannedEnd are either both set or both nil;
	// when set, PlannedEnd is strictly after PlannedStart.
	PlannedStart *time.Time
	PlannedEnd   *time.Time
	DueAt        *time.Time
	EstimateMin  int
	Priority     int

	Done           bool
	ScheduleSource ScheduleSource

	// Anchor identity, set only for anchor tasks. An anchor is unique per
	// (owner, anchor date, key).
	AnchorKey  string
	AnchorDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Scheduled reports whether the task has a committed time slot.
func (t *Task) Scheduled() bool {
	return t.PlannedStart != nil && t.PlannedEnd != nil
}

// Movable reports whether conflict resolution may reassign this task's slot.
// Anchor and system tasks are pinned.
func (t *Task) Movable() bool {
	return t.Type == TaskTypeUser
}

// SetSlot assigns a planned interval and records how it was produced.
func (t *Task) SetSlot(start, end time.Time, source ScheduleSource) {
	s, e := start, end
	t.PlannedStart = &s
	t.PlannedEnd = &e
	t.ScheduleSource = source
}

// ClearSlot returns the task to the backlog.
func (t *Task) ClearSlot() {
	t.PlannedStart = nil
	t.PlannedEnd = nil
	t.ScheduleSource = SourceManual
}
