package contract

import "time"

// AutoplanRequest asks for backlog placement across consecutive days.
type AutoplanRequest struct {
	OwnerID string
	Start   time.Time
	Days    int
	// Now clamps today's window so placement never starts in the past.
	// Nil means no clamping (planning a future range).
	Now *time.Time
}

// DaySummary reports one day's outcome. Placement failures are not errors;
// unplaced tasks simply stay in the backlog.
type DaySummary struct {
	Date           time.Time
	AnchorsPresent int
	ScheduledCount int
}

type AutoplanResponse struct {
	Days []DaySummary
}

// AnchorStatus records which anchors exist for a day after EnsureAnchors.
// A meal that has no fitting gap inside its window is simply absent.
type AnchorStatus struct {
	Morning   bool
	Breakfast bool
	Lunch     bool
	Dinner    bool
}

// Present counts the anchors placed.
func (s AnchorStatus) Present() int {
	n := 0
	for _, ok := range []bool{s.Morning, s.Breakfast, s.Lunch, s.Dinner} {
		if ok {
			n++
		}
	}
	return n
}
