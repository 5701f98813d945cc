package scheduler

import (
	"sort"

	"github.com/necomav/dayplan/internal/domain"
)

// ShiftOutcome classifies the result of a cascade-shift computation.
type ShiftOutcome string

const (
	ShiftOK      ShiftOutcome = "ok"
	ShiftBlocked ShiftOutcome = "blocked"
	ShiftNoSpace ShiftOutcome = "no_space"
)

// Move reassigns one task to a new stored interval.
type Move struct {
	TaskID string
	Slot   Interval
}

// PlanShift computes the cascade needed to free the inserted interval.
//
// Fixed blockers are non-user tasks plus user tasks already ending before
// the insertion start; any blocker overlapping the inserted interval fails
// the shift as blocked. The remaining user tasks are movable and are pushed,
// in ascending original-start order, to the earliest slot at or after both
// the running cursor and their own original start. Each placed task's
// footprint joins the busy set before the next is attempted, and its end
// plus the inter-task buffer becomes the next cursor. A task that cannot be
// placed, or a final cursor past the window end, fails as no_space.
//
// The computation is pure; callers persist the returned moves.
func PlanShift(tasks []*domain.Task, inserted Interval, window Interval, p *domain.RoutineProfile) ([]Move, ShiftOutcome) {
	var busy []Interval
	var movable []*domain.Task

	for _, t := range tasks {
		if !t.Scheduled() || t.Done {
			continue
		}
		stored := Interval{Start: *t.PlannedStart, End: *t.PlannedEnd}
		if !t.Movable() || !t.PlannedEnd.After(inserted.Start) {
			if stored.Overlaps(inserted) {
				return nil, ShiftBlocked
			}
			busy = append(busy, ExpandByKind(stored, t.Kind, p))
			continue
		}
		movable = append(movable, t)
	}

	sort.SliceStable(movable, func(i, j int) bool {
		return movable[i].PlannedStart.Before(*movable[j].PlannedStart)
	})

	busy = MergeIntervals(append(busy, inserted))
	buffer := minutes(p.TaskBufferMin)
	cursor := inserted.End

	var moves []Move
	for _, t := range movable {
		d := t.PlannedEnd.Sub(*t.PlannedStart)
		lead, lag := KindPadding(t.Kind, p)

		notBefore := cursor
		if t.PlannedStart.After(notBefore) {
			notBefore = *t.PlannedStart
		}

		gaps := FreeGaps(busy, window)
		footStart, ok := FirstFit(gaps, minutes(lead)+d+minutes(lag), notBefore)
		if !ok {
			return nil, ShiftNoSpace
		}

		start := footStart.Add(minutes(lead))
		slot := Interval{Start: start, End: start.Add(d)}
		moves = append(moves, Move{TaskID: t.ID, Slot: slot})

		busy = MergeIntervals(append(busy, ExpandByKind(slot, t.Kind, p)))
		cursor = slot.End.Add(buffer)
	}

	if len(moves) > 0 && cursor.After(window.End) {
		return nil, ShiftNoSpace
	}
	return moves, ShiftOK
}
