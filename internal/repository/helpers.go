package repository

import (
	"database/sql"
	"time"
)

// Timestamps are stored as naive local text. Minute precision is all the
// engine ever produces, and the layout sorts lexicographically.
const (
	dateLayout = "2006-01-02"
	timeLayout = "2006-01-02T15:04"
)

// parseNullableTime parses a sql.NullString into a *time.Time using the given
// layout. Returns nil for NULL, empty, or unparseable values.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a SQLite storage value:
// nil becomes SQL NULL, otherwise the formatted string.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

// dayBounds returns the [start, next day start) text range for a calendar day.
func dayBounds(day time.Time) (string, string) {
	y, m, d := day.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	return start.Format(timeLayout), start.AddDate(0, 0, 1).Format(timeLayout)
}
