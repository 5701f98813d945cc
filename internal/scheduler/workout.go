package scheduler

import "time"

// FitWorkout finds the earliest departure instant whose full footprint
// (travel + core + travel) fits a gap, no earlier than notBefore. The
// returned interval covers only the in-place core; the surrounding travel is
// reserved later by busy expansion, so the visible task duration understates
// the calendar footprint by twice the travel time.
func FitWorkout(gaps []Gap, coreMin, travelMin int, notBefore time.Time) (Interval, bool) {
	total := minutes(coreMin + 2*travelMin)
	depart, ok := FirstFit(gaps, total, notBefore)
	if !ok {
		return Interval{}, false
	}
	start := depart.Add(minutes(travelMin))
	return Interval{Start: start, End: start.Add(minutes(coreMin))}, true
}
