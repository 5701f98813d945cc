package scheduler

import (
	"fmt"
	"time"

	"github.com/necomav/dayplan/internal/domain"
)

// DayWindow bounds the usable planning time of one calendar day. The morning
// buffer [MorningStart, MorningEnd) precedes DayStart.
type DayWindow struct {
	DayStart     time.Time
	DayEnd       time.Time
	MorningStart time.Time
	MorningEnd   time.Time
}

// Window returns the usable window as an interval.
func (w DayWindow) Window() Interval {
	return Interval{Start: w.DayStart, End: w.DayEnd}
}

// ComputeDayWindow derives the day's usable window and morning anchor bounds
// from the routine profile. A bedtime at or before the wake time belongs to
// the next day. When now falls on the same day, DayStart is clamped forward
// so today's window never starts in the past. A window where DayEnd is not
// after DayStart is valid and simply yields no free time downstream.
func ComputeDayWindow(day time.Time, p *domain.RoutineProfile, now *time.Time) DayWindow {
	wake := CombineClock(day, p.WakeTime)
	bed := CombineClock(day, p.BedTime)
	if !bed.After(wake) {
		bed = bed.AddDate(0, 0, 1)
	}

	w := DayWindow{
		MorningStart: wake,
		MorningEnd:   wake.Add(minutes(p.PostWakeBufferMin)),
	}
	w.DayStart = w.MorningEnd
	if now != nil && SameDay(*now, day) {
		n := ceilToMinute(*now)
		if n.After(w.DayStart) {
			w.DayStart = n
		}
	}
	w.DayEnd = bed.Add(-minutes(p.PreSleepBufferMin))
	return w
}

// CombineClock anchors a 24-hour "HH:MM" clock value onto the given calendar
// day. Clock strings are validated by the configuration layer; a malformed
// value collapses to midnight.
func CombineClock(day time.Time, hhmm string) time.Time {
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil {
		h, m = 0, 0
	}
	y, mo, d := day.Date()
	return time.Date(y, mo, d, h, m, 0, 0, day.Location())
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func ceilToMinute(t time.Time) time.Time {
	truncated := t.Truncate(time.Minute)
	if truncated.Equal(t) {
		return t
	}
	return truncated.Add(time.Minute)
}
