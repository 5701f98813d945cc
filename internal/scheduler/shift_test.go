package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/necomav/dayplan/internal/domain"
	"github.com/necomav/dayplan/internal/testutil"
)

func TestPlanShift_PushesBackToBackTasks(t *testing.T) {
	day := testutil.Day(2026, 9, 1)
	p := testutil.Profile("u1")
	window := Interval{Start: testutil.At(day, 8, 15), End: testutil.At(day, 23, 30)}

	a := testutil.ScheduledTask("u1", "a", testutil.At(day, 10, 0), testutil.At(day, 11, 0))
	b := testutil.ScheduledTask("u1", "b", testutil.At(day, 11, 10), testutil.At(day, 12, 10))
	inserted := Interval{Start: testutil.At(day, 10, 0), End: testutil.At(day, 11, 0)}

	moves, outcome := PlanShift([]*domain.Task{b, a}, inserted, window, p)

	require.Equal(t, ShiftOK, outcome)
	require.Len(t, moves, 2)

	// a lands right after the insertion, b cascades past a plus the
	// 10-minute buffer
	assert.Equal(t, a.ID, moves[0].TaskID)
	assert.Equal(t, testutil.At(day, 11, 0), moves[0].Slot.Start)
	assert.Equal(t, testutil.At(day, 12, 0), moves[0].Slot.End)

	assert.Equal(t, b.ID, moves[1].TaskID)
	assert.Equal(t, testutil.At(day, 12, 10), moves[1].Slot.Start)
	assert.Equal(t, testutil.At(day, 13, 10), moves[1].Slot.End)
}

func TestPlanShift_BlockedByPinnedTask(t *testing.T) {
	day := testutil.Day(2026, 9, 1)
	p := testutil.Profile("u1")
	window := Interval{Start: testutil.At(day, 8, 15), End: testutil.At(day, 23, 30)}

	anchor := testutil.SystemTask("u1", "lunch", testutil.At(day, 12, 0), testutil.At(day, 12, 45))
	inserted := Interval{Start: testutil.At(day, 12, 30), End: testutil.At(day, 13, 30)}

	moves, outcome := PlanShift([]*domain.Task{anchor}, inserted, window, p)

	assert.Equal(t, ShiftBlocked, outcome)
	assert.Nil(t, moves)
}

func TestPlanShift_TasksEndingBeforeInsertionStayPut(t *testing.T) {
	day := testutil.Day(2026, 9, 1)
	p := testutil.Profile("u1")
	window := Interval{Start: testutil.At(day, 8, 15), End: testutil.At(day, 23, 30)}

	earlier := testutil.ScheduledTask("u1", "earlier", testutil.At(day, 9, 0), testutil.At(day, 10, 0))
	inserted := Interval{Start: testutil.At(day, 10, 0), End: testutil.At(day, 11, 0)}

	moves, outcome := PlanShift([]*domain.Task{earlier}, inserted, window, p)

	assert.Equal(t, ShiftOK, outcome)
	assert.Empty(t, moves)
}

func TestPlanShift_NonOverlappingLaterTaskKeepsSlot(t *testing.T) {
	day := testutil.Day(2026, 9, 1)
	p := testutil.Profile("u1")
	window := Interval{Start: testutil.At(day, 8, 15), End: testutil.At(day, 23, 30)}

	later := testutil.ScheduledTask("u1", "later", testutil.At(day, 15, 0), testutil.At(day, 16, 0))
	inserted := Interval{Start: testutil.At(day, 9, 0), End: testutil.At(day, 10, 0)}

	moves, outcome := PlanShift([]*domain.Task{later}, inserted, window, p)

	require.Equal(t, ShiftOK, outcome)
	require.Len(t, moves, 1)
	// pushed no earlier than its own original start, so it does not move
	assert.Equal(t, testutil.At(day, 15, 0), moves[0].Slot.Start)
	assert.Equal(t, testutil.At(day, 16, 0), moves[0].Slot.End)
}

func TestPlanShift_CascadeJumpsPinnedTask(t *testing.T) {
	day := testutil.Day(2026, 9, 1)
	p := testutil.Profile("u1")
	window := Interval{Start: testutil.At(day, 8, 15), End: testutil.At(day, 23, 30)}

	moved := testutil.ScheduledTask("u1", "moved", testutil.At(day, 10, 0), testutil.At(day, 11, 0))
	anchor := testutil.SystemTask("u1", "lunch", testutil.At(day, 11, 15), testutil.At(day, 12, 0))
	inserted := Interval{Start: testutil.At(day, 10, 0), End: testutil.At(day, 11, 0)}

	moves, outcome := PlanShift([]*domain.Task{moved, anchor}, inserted, window, p)

	require.Equal(t, ShiftOK, outcome)
	require.Len(t, moves, 1)
	// no room for an hour between the 11:00 cursor and the anchor at 11:15
	assert.Equal(t, testutil.At(day, 12, 0), moves[0].Slot.Start)
}

func TestPlanShift_NoRoomLeftInWindow(t *testing.T) {
	day := testutil.Day(2026, 9, 1)
	p := testutil.Profile("u1")
	window := Interval{Start: testutil.At(day, 8, 15), End: testutil.At(day, 12, 0)}

	crowded := testutil.ScheduledTask("u1", "crowded", testutil.At(day, 10, 0), testutil.At(day, 11, 30))
	inserted := Interval{Start: testutil.At(day, 10, 0), End: testutil.At(day, 11, 0)}

	moves, outcome := PlanShift([]*domain.Task{crowded}, inserted, window, p)

	assert.Equal(t, ShiftNoSpace, outcome)
	assert.Nil(t, moves)
}

func TestPlanShift_FinalCursorPastWindowEndFails(t *testing.T) {
	day := testutil.Day(2026, 9, 1)
	p := testutil.Profile("u1")
	window := Interval{Start: testutil.At(day, 8, 15), End: testutil.At(day, 12, 0)}

	task := testutil.ScheduledTask("u1", "task", testutil.At(day, 10, 0), testutil.At(day, 11, 0))
	inserted := Interval{Start: testutil.At(day, 10, 0), End: testutil.At(day, 11, 0)}

	// the task fits at 11:00-12:00 exactly, but the trailing buffer would
	// spill past the window end
	moves, outcome := PlanShift([]*domain.Task{task}, inserted, window, p)

	assert.Equal(t, ShiftNoSpace, outcome)
	assert.Nil(t, moves)
}

func TestPlanShift_MovedMealKeepsCooldownClearance(t *testing.T) {
	day := testutil.Day(2026, 9, 1)
	p := testutil.Profile("u1")
	window := Interval{Start: testutil.At(day, 8, 15), End: testutil.At(day, 23, 30)}

	meal := testutil.ScheduledTask("u1", "snack", testutil.At(day, 10, 0), testutil.At(day, 10, 45))
	meal.Kind = domain.KindMeal
	// pinned task right where the meal would otherwise land
	fixed := testutil.SystemTask("u1", "standup", testutil.At(day, 11, 45), testutil.At(day, 12, 0))
	inserted := Interval{Start: testutil.At(day, 10, 0), End: testutil.At(day, 11, 0)}

	moves, outcome := PlanShift([]*domain.Task{meal, fixed}, inserted, window, p)

	require.Equal(t, ShiftOK, outcome)
	require.Len(t, moves, 1)
	// an 11:00 start would end 11:45 with the 5m cooldown reaching 11:50,
	// inside the pinned task, so the meal lands after it
	assert.Equal(t, testutil.At(day, 12, 0), moves[0].Slot.Start)
	assert.Equal(t, testutil.At(day, 12, 45), moves[0].Slot.End)
}
