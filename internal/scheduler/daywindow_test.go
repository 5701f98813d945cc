package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/necomav/dayplan/internal/testutil"
)

func TestComputeDayWindow_DefaultRoutine(t *testing.T) {
	day := testutil.Day(2026, 9, 1)
	p := testutil.Profile("u1")

	w := ComputeDayWindow(day, p, nil)

	// wake 07:30 + 45m buffer, bed 23:45 - 15m buffer
	assert.Equal(t, testutil.At(day, 7, 30), w.MorningStart)
	assert.Equal(t, testutil.At(day, 8, 15), w.MorningEnd)
	assert.Equal(t, testutil.At(day, 8, 15), w.DayStart)
	assert.Equal(t, testutil.At(day, 23, 30), w.DayEnd)
}

func TestComputeDayWindow_BedtimePastMidnight(t *testing.T) {
	day := testutil.Day(2026, 9, 1)
	p := testutil.Profile("u1")
	p.BedTime = "01:00"

	w := ComputeDayWindow(day, p, nil)

	next := testutil.Day(2026, 9, 2)
	assert.Equal(t, testutil.At(next, 0, 45), w.DayEnd)
	assert.True(t, w.DayEnd.After(w.DayStart))
}

func TestComputeDayWindow_NowClampsTodayForward(t *testing.T) {
	day := testutil.Day(2026, 9, 1)
	p := testutil.Profile("u1")

	now := time.Date(2026, 9, 1, 14, 23, 30, 0, time.UTC)
	w := ComputeDayWindow(day, p, &now)

	// clamped up to the next whole minute
	assert.Equal(t, testutil.At(day, 14, 24), w.DayStart)
	assert.Equal(t, testutil.At(day, 8, 15), w.MorningEnd)
	assert.Equal(t, testutil.At(day, 23, 30), w.DayEnd)
}

func TestComputeDayWindow_NowBeforeMorningEndDoesNotClamp(t *testing.T) {
	day := testutil.Day(2026, 9, 1)
	p := testutil.Profile("u1")

	now := testutil.At(day, 6, 0)
	w := ComputeDayWindow(day, p, &now)

	assert.Equal(t, testutil.At(day, 8, 15), w.DayStart)
}

func TestComputeDayWindow_NowOnOtherDayIgnored(t *testing.T) {
	day := testutil.Day(2026, 9, 1)
	p := testutil.Profile("u1")

	now := testutil.At(testutil.Day(2026, 9, 2), 18, 0)
	w := ComputeDayWindow(day, p, &now)

	assert.Equal(t, testutil.At(day, 8, 15), w.DayStart)
}

func TestComputeDayWindow_LateNowYieldsEmptyWindow(t *testing.T) {
	day := testutil.Day(2026, 9, 1)
	p := testutil.Profile("u1")

	now := testutil.At(day, 23, 45)
	w := ComputeDayWindow(day, p, &now)

	assert.False(t, w.DayEnd.After(w.DayStart))
	assert.Empty(t, FreeGaps(nil, w.Window()))
}

func TestCombineClock(t *testing.T) {
	day := testutil.Day(2026, 9, 1)

	assert.Equal(t, testutil.At(day, 7, 30), CombineClock(day, "07:30"))
	assert.Equal(t, testutil.At(day, 0, 0), CombineClock(day, "bogus"))
}

func TestSameDay(t *testing.T) {
	day := testutil.Day(2026, 9, 1)

	assert.True(t, SameDay(testutil.At(day, 0, 0), testutil.At(day, 23, 59)))
	assert.False(t, SameDay(testutil.At(day, 23, 59), testutil.At(testutil.Day(2026, 9, 2), 0, 0)))
}
