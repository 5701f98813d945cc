package scheduler

import (
	"github.com/necomav/dayplan/internal/domain"
)

// BusyIntervals converts committed tasks into kind-expanded busy intervals
// and merges overlaps. Meals reserve a cooldown after the stored interval;
// workouts reserve one-way travel on both sides. Done and unscheduled tasks
// contribute nothing.
func BusyIntervals(tasks []*domain.Task, p *domain.RoutineProfile) []Interval {
	var raw []Interval
	for _, t := range tasks {
		if !t.Scheduled() || t.Done {
			continue
		}
		raw = append(raw, ExpandByKind(Interval{Start: *t.PlannedStart, End: *t.PlannedEnd}, t.Kind, p))
	}
	return MergeIntervals(raw)
}

// ExpandByKind widens a stored task interval to its true calendar footprint.
func ExpandByKind(iv Interval, kind domain.TaskKind, p *domain.RoutineProfile) Interval {
	switch kind {
	case domain.KindMeal:
		iv.End = iv.End.Add(minutes(p.MealBufferAfterMin))
	case domain.KindWorkout:
		iv.Start = iv.Start.Add(-minutes(p.TravelOnewayMin))
		iv.End = iv.End.Add(minutes(p.TravelOnewayMin))
	}
	return iv
}

// KindPadding returns the lead and lag a kind's footprint adds around the
// stored interval, in the same units ExpandByKind applies them.
func KindPadding(kind domain.TaskKind, p *domain.RoutineProfile) (lead, lag int) {
	switch kind {
	case domain.KindMeal:
		return 0, p.MealBufferAfterMin
	case domain.KindWorkout:
		return p.TravelOnewayMin, p.TravelOnewayMin
	}
	return 0, 0
}
