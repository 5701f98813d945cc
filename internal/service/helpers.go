package service

import (
	"context"
	"errors"
	"time"

	"github.com/necomav/dayplan/internal/domain"
	"github.com/necomav/dayplan/internal/repository"
	"github.com/necomav/dayplan/internal/scheduler"
)

// loadProfile fetches an owner's routine, falling back to defaults when no
// row exists yet.
func loadProfile(ctx context.Context, profiles repository.ProfileRepo, ownerID string) (*domain.RoutineProfile, error) {
	p, err := profiles.Get(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.DefaultRoutineProfile(ownerID), nil
		}
		return nil, err
	}
	return p, nil
}

// persistTask creates the task if it is not stored yet, otherwise updates it.
func persistTask(ctx context.Context, tasks repository.TaskRepo, t *domain.Task, now time.Time) error {
	t.UpdatedAt = now
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	_, err := tasks.GetByID(ctx, t.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return tasks.Create(ctx, t)
		}
		return err
	}
	return tasks.Update(ctx, t)
}

// overlappingTasks returns the committed tasks on the interval's day whose
// stored interval intersects it, excluding the task being committed itself
// and anything already done.
func overlappingTasks(ctx context.Context, tasks repository.TaskRepo, ownerID, selfID string, iv scheduler.Interval) ([]*domain.Task, error) {
	committed, err := tasks.ListScheduledForDay(ctx, ownerID, iv.Start)
	if err != nil {
		return nil, err
	}
	var conflicts []*domain.Task
	for _, t := range committed {
		if t.ID == selfID || t.Done || !t.Scheduled() {
			continue
		}
		if (scheduler.Interval{Start: *t.PlannedStart, End: *t.PlannedEnd}).Overlaps(iv) {
			conflicts = append(conflicts, t)
		}
	}
	return conflicts, nil
}

// startOfDay truncates an instant to its calendar day.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
