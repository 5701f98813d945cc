package scheduler

import (
	"sort"
	"time"
)

// Interval is a half-open [Start, End) time range.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Overlaps reports whether two half-open intervals intersect.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Gap is a free time range, the complement of busy time within a window.
type Gap struct {
	Start time.Time
	End   time.Time
}

func (g Gap) Duration() time.Duration {
	return g.End.Sub(g.Start)
}

// MergeIntervals sorts intervals by start and coalesces overlapping or
// touching neighbors into a sorted, non-overlapping list. The input slice
// is not modified.
func MergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !iv.Start.After(last.End) {
			if iv.End.After(last.End) {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// FreeGaps computes the complement of the busy intervals inside the window,
// preserving leading and trailing free segments. Busy must be sorted and
// non-overlapping (the output of MergeIntervals). An exhausted window yields
// an empty list.
func FreeGaps(busy []Interval, window Interval) []Gap {
	if !window.End.After(window.Start) {
		return nil
	}

	var gaps []Gap
	cursor := window.Start
	for _, b := range busy {
		if !b.End.After(cursor) {
			continue
		}
		if !b.Start.Before(window.End) {
			break
		}
		if b.Start.After(cursor) {
			end := b.Start
			if end.After(window.End) {
				end = window.End
			}
			gaps = append(gaps, Gap{Start: cursor, End: end})
		}
		cursor = b.End
		if !cursor.Before(window.End) {
			return gaps
		}
	}
	if cursor.Before(window.End) {
		gaps = append(gaps, Gap{Start: cursor, End: window.End})
	}
	return gaps
}

// FirstFit returns the earliest start within the gaps that can hold a block
// of the given duration, no earlier than notBefore.
func FirstFit(gaps []Gap, d time.Duration, notBefore time.Time) (time.Time, bool) {
	for _, g := range gaps {
		start := g.Start
		if start.Before(notBefore) {
			start = notBefore
		}
		if g.End.Sub(start) >= d {
			return start, true
		}
	}
	return time.Time{}, false
}

// FirstFitWithin is FirstFit additionally bounded above: the placed block
// must end at or before latest.
func FirstFitWithin(gaps []Gap, d time.Duration, notBefore, latest time.Time) (time.Time, bool) {
	for _, g := range gaps {
		start := g.Start
		if start.Before(notBefore) {
			start = notBefore
		}
		end := g.End
		if end.After(latest) {
			end = latest
		}
		if end.Sub(start) >= d {
			return start, true
		}
	}
	return time.Time{}, false
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
