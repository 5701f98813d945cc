package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/necomav/dayplan/internal/domain"
	"github.com/necomav/dayplan/internal/testutil"
)

func anchorTask(ownerID, key string, day time.Time, start, end time.Time) *domain.Task {
	d := day
	now := start.Add(-time.Hour)
	t := &domain.Task{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       key,
		Type:        domain.TaskTypeAnchor,
		Kind:        domain.KindMeal,
		EstimateMin: int(end.Sub(start) / time.Minute),
		Priority:    domain.PriorityNormal,
		AnchorKey:   key,
		AnchorDate:  &d,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	t.SetSlot(start, end, domain.SourceSystem)
	return t
}

func TestTaskRepo_CreateGetRoundTrip(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	day := testutil.Day(2026, 9, 1)

	task := testutil.ScheduledTask("u1", "standup", testutil.At(day, 10, 0), testutil.At(day, 10, 30))
	due := testutil.At(day, 18, 0)
	task.DueAt = &due
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.OwnerID, got.OwnerID)
	assert.Equal(t, task.Title, got.Title)
	assert.Equal(t, domain.TaskTypeUser, got.Type)
	assert.Equal(t, testutil.At(day, 10, 0), *got.PlannedStart)
	assert.Equal(t, testutil.At(day, 10, 30), *got.PlannedEnd)
	assert.Equal(t, due, *got.DueAt)
	assert.Equal(t, 30, got.EstimateMin)
	assert.False(t, got.Done)
}

func TestTaskRepo_GetByIDNotFound(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_UpdateChangesSlot(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	day := testutil.Day(2026, 9, 1)

	task := testutil.ScheduledTask("u1", "standup", testutil.At(day, 10, 0), testutil.At(day, 10, 30))
	require.NoError(t, repo.Create(ctx, task))

	task.SetSlot(testutil.At(day, 15, 0), testutil.At(day, 15, 30), domain.SourceAssistant)
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, testutil.At(day, 15, 0), *got.PlannedStart)
	assert.Equal(t, domain.SourceAssistant, got.ScheduleSource)
}

func TestTaskRepo_Delete(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	day := testutil.Day(2026, 9, 1)

	task := testutil.ScheduledTask("u1", "standup", testutil.At(day, 10, 0), testutil.At(day, 10, 30))
	require.NoError(t, repo.Create(ctx, task))
	require.NoError(t, repo.Delete(ctx, task.ID))

	_, err := repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_ListScheduledForDay(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	day := testutil.Day(2026, 9, 1)
	next := testutil.Day(2026, 9, 2)

	late := testutil.ScheduledTask("u1", "late", testutil.At(day, 16, 0), testutil.At(day, 17, 0))
	early := testutil.ScheduledTask("u1", "early", testutil.At(day, 9, 0), testutil.At(day, 10, 0))
	otherDay := testutil.ScheduledTask("u1", "tomorrow", testutil.At(next, 9, 0), testutil.At(next, 10, 0))
	otherOwner := testutil.ScheduledTask("u2", "not mine", testutil.At(day, 9, 0), testutil.At(day, 10, 0))
	backlog := testutil.BacklogTask("u1", "someday", 30, domain.PriorityNormal, testutil.At(day, 0, 0))
	for _, task := range []*domain.Task{late, early, otherDay, otherOwner, backlog} {
		require.NoError(t, repo.Create(ctx, task))
	}

	got, err := repo.ListScheduledForDay(ctx, "u1", day)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, early.ID, got[0].ID)
	assert.Equal(t, late.ID, got[1].ID)
}

func TestTaskRepo_ListBacklogOrderAndFilter(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	day := testutil.Day(2026, 9, 1)
	base := testutil.At(day, 0, 0)

	lowOld := testutil.BacklogTask("u1", "low old", 30, domain.PriorityLow, base.AddDate(0, 0, -3))
	highNew := testutil.BacklogTask("u1", "high new", 30, domain.PriorityHigh, base.AddDate(0, 0, -1))
	highOld := testutil.BacklogTask("u1", "high old", 30, domain.PriorityHigh, base.AddDate(0, 0, -2))
	done := testutil.BacklogTask("u1", "done", 30, domain.PriorityHigh, base.AddDate(0, 0, -4))
	done.Done = true
	scheduled := testutil.ScheduledTask("u1", "scheduled", testutil.At(day, 9, 0), testutil.At(day, 10, 0))
	anchor := anchorTask("u1", domain.AnchorLunch, day, testutil.At(day, 12, 0), testutil.At(day, 12, 45))
	for _, task := range []*domain.Task{lowOld, highNew, highOld, done, scheduled, anchor} {
		require.NoError(t, repo.Create(ctx, task))
	}

	got, err := repo.ListBacklog(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	// priority first, then creation order within a priority
	assert.Equal(t, highOld.ID, got[0].ID)
	assert.Equal(t, highNew.ID, got[1].ID)
	assert.Equal(t, lowOld.ID, got[2].ID)
}

func TestTaskRepo_HasWorkoutInRange(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	day := testutil.Day(2026, 9, 1)

	workout := testutil.ScheduledTask("u1", "gym", testutil.At(day, 9, 0), testutil.At(day, 10, 30))
	workout.Kind = domain.KindWorkout
	require.NoError(t, repo.Create(ctx, workout))

	exists, err := repo.HasWorkoutInRange(ctx, "u1", day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.True(t, exists)

	// the range end is exclusive
	exists, err = repo.HasWorkoutInRange(ctx, "u1", day.AddDate(0, 0, -1), day)
	require.NoError(t, err)
	assert.False(t, exists)

	// done workouts no longer count
	workout.Done = true
	require.NoError(t, repo.Update(ctx, workout))
	exists, err = repo.HasWorkoutInRange(ctx, "u1", day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTaskRepo_AnchorsScopedToDay(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	day1 := testutil.Day(2026, 9, 1)
	day2 := testutil.Day(2026, 9, 2)

	a1 := anchorTask("u1", domain.AnchorLunch, day1, testutil.At(day1, 12, 0), testutil.At(day1, 12, 45))
	a2 := anchorTask("u1", domain.AnchorLunch, day2, testutil.At(day2, 12, 30), testutil.At(day2, 13, 15))
	require.NoError(t, repo.Create(ctx, a1))
	require.NoError(t, repo.Create(ctx, a2))

	got, err := repo.GetAnchor(ctx, "u1", day1, domain.AnchorLunch)
	require.NoError(t, err)
	assert.Equal(t, a1.ID, got.ID)

	got, err = repo.GetAnchor(ctx, "u1", day2, domain.AnchorLunch)
	require.NoError(t, err)
	assert.Equal(t, a2.ID, got.ID)

	_, err = repo.GetAnchor(ctx, "u1", day1, domain.AnchorDinner)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_DeleteMealAnchorsKeepsMorning(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	day := testutil.Day(2026, 9, 1)

	lunch := anchorTask("u1", domain.AnchorLunch, day, testutil.At(day, 12, 0), testutil.At(day, 12, 45))
	morning := anchorTask("u1", domain.AnchorMorning, day, testutil.At(day, 7, 30), testutil.At(day, 8, 15))
	morning.Kind = domain.KindMorning
	require.NoError(t, repo.Create(ctx, lunch))
	require.NoError(t, repo.Create(ctx, morning))

	require.NoError(t, repo.DeleteMealAnchors(ctx, "u1", day))

	_, err := repo.GetAnchor(ctx, "u1", day, domain.AnchorLunch)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetAnchor(ctx, "u1", day, domain.AnchorMorning)
	assert.NoError(t, err)
}
