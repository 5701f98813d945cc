package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/necomav/dayplan/internal/domain"
)

// Profile returns a routine with predictable values for scheduling tests:
// wake 07:30 + 45min buffer, bed 23:45 - 15min buffer, 45-minute meals with
// a 5-minute cooldown, 90-minute workouts with 20 minutes of one-way travel.
func Profile(ownerID string) *domain.RoutineProfile {
	return domain.DefaultRoutineProfile(ownerID)
}

// BacklogTask builds an unscheduled user task.
func BacklogTask(ownerID, title string, estimateMin, priority int, createdAt time.Time) *domain.Task {
	return &domain.Task{
		ID:             uuid.NewString(),
		OwnerID:        ownerID,
		Title:          title,
		Type:           domain.TaskTypeUser,
		Kind:           domain.KindOther,
		EstimateMin:    estimateMin,
		Priority:       priority,
		ScheduleSource: domain.SourceManual,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}
}

// ScheduledTask builds a committed user task occupying [start, end).
func ScheduledTask(ownerID, title string, start, end time.Time) *domain.Task {
	t := BacklogTask(ownerID, title, int(end.Sub(start)/time.Minute), domain.PriorityNormal, start.Add(-24*time.Hour))
	t.SetSlot(start, end, domain.SourceManual)
	return t
}

// SystemTask builds a committed system task, immovable for conflict
// resolution.
func SystemTask(ownerID, title string, start, end time.Time) *domain.Task {
	t := ScheduledTask(ownerID, title, start, end)
	t.Type = domain.TaskTypeSystem
	t.ScheduleSource = domain.SourceSystem
	return t
}

// At builds a naive local instant on the given day.
func At(day time.Time, hour, min int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, hour, min, 0, 0, day.Location())
}

// Day builds a calendar day at midnight.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
