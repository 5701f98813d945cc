package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/necomav/dayplan/internal/domain"
	"github.com/necomav/dayplan/internal/testutil"
)

func TestBusyIntervals_MealReservesCooldown(t *testing.T) {
	day := testutil.Day(2026, 9, 1)
	p := testutil.Profile("u1")

	meal := testutil.ScheduledTask("u1", "breakfast", testutil.At(day, 8, 15), testutil.At(day, 9, 0))
	meal.Kind = domain.KindMeal

	busy := BusyIntervals([]*domain.Task{meal}, p)

	require.Len(t, busy, 1)
	assert.Equal(t, testutil.At(day, 8, 15), busy[0].Start)
	assert.Equal(t, testutil.At(day, 9, 5), busy[0].End)
}

func TestBusyIntervals_WorkoutReservesTravelBothSides(t *testing.T) {
	day := testutil.Day(2026, 9, 1)
	p := testutil.Profile("u1")

	workout := testutil.ScheduledTask("u1", "gym", testutil.At(day, 17, 0), testutil.At(day, 18, 30))
	workout.Kind = domain.KindWorkout

	busy := BusyIntervals([]*domain.Task{workout}, p)

	require.Len(t, busy, 1)
	assert.Equal(t, testutil.At(day, 16, 40), busy[0].Start)
	assert.Equal(t, testutil.At(day, 18, 50), busy[0].End)
}

func TestBusyIntervals_SkipsDoneAndUnscheduled(t *testing.T) {
	day := testutil.Day(2026, 9, 1)
	p := testutil.Profile("u1")

	done := testutil.ScheduledTask("u1", "done", testutil.At(day, 9, 0), testutil.At(day, 10, 0))
	done.Done = true
	backlog := testutil.BacklogTask("u1", "someday", 30, domain.PriorityNormal, testutil.At(day, 0, 0))

	assert.Empty(t, BusyIntervals([]*domain.Task{done, backlog}, p))
}

func TestBusyIntervals_ExpansionMergesAdjacentTasks(t *testing.T) {
	day := testutil.Day(2026, 9, 1)
	p := testutil.Profile("u1")

	meal := testutil.ScheduledTask("u1", "lunch", testutil.At(day, 12, 0), testutil.At(day, 12, 45))
	meal.Kind = domain.KindMeal
	// starts inside the meal's cooldown, so the footprints coalesce
	call := testutil.ScheduledTask("u1", "call", testutil.At(day, 12, 48), testutil.At(day, 13, 30))

	busy := BusyIntervals([]*domain.Task{call, meal}, p)

	require.Len(t, busy, 1)
	assert.Equal(t, testutil.At(day, 12, 0), busy[0].Start)
	assert.Equal(t, testutil.At(day, 13, 30), busy[0].End)
}

func TestKindPadding(t *testing.T) {
	p := testutil.Profile("u1")

	lead, lag := KindPadding(domain.KindMeal, p)
	assert.Equal(t, 0, lead)
	assert.Equal(t, p.MealBufferAfterMin, lag)

	lead, lag = KindPadding(domain.KindWorkout, p)
	assert.Equal(t, p.TravelOnewayMin, lead)
	assert.Equal(t, p.TravelOnewayMin, lag)

	lead, lag = KindPadding(domain.KindOther, p)
	assert.Zero(t, lead)
	assert.Zero(t, lag)
}
