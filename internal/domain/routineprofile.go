package domain

// MealWindow is the time-of-day range a meal anchor may be placed in.
// From and To are 24-hour "HH:MM" strings, validated upstream.
type MealWindow struct {
	From string
	To   string
}

// RoutineProfile holds per-owner scheduling preferences. It is read as an
// immutable snapshot for the duration of one engine computation.
type RoutineProfile struct {
	OwnerID string

	WakeTime          string
	BedTime           string
	PostWakeBufferMin int
	PreSleepBufferMin int

	Breakfast          MealWindow
	Lunch              MealWindow
	Dinner             MealWindow
	MealDurationMin    int
	MealBufferAfterMin int

	WorkoutEnabled  bool
	WorkoutBlockMin int
	TravelOnewayMin int
	RestDays        int
	WorkoutNoSunday bool

	WorkStart string
	WorkEnd   string

	// LatestTaskEnd optionally caps autoplanned task ends; empty means no cap.
	LatestTaskEnd string
	TaskBufferMin int
}

// MealSlot pairs an anchor key with its configured window, in the fixed
// placement order breakfast, lunch, dinner.
type MealSlot struct {
	Key    string
	Window MealWindow
}

// MealSlots returns the meal anchors in placement order.
func (p *RoutineProfile) MealSlots() []MealSlot {
	return []MealSlot{
		{Key: AnchorBreakfast, Window: p.Breakfast},
		{Key: AnchorLunch, Window: p.Lunch},
		{Key: AnchorDinner, Window: p.Dinner},
	}
}

// DefaultRoutineProfile returns the profile seeded for new owners.
func DefaultRoutineProfile(ownerID string) *RoutineProfile {
	return &RoutineProfile{
		OwnerID:            ownerID,
		WakeTime:           "07:30",
		BedTime:            "23:45",
		PostWakeBufferMin:  45,
		PreSleepBufferMin:  15,
		Breakfast:          MealWindow{From: "07:00", To: "10:00"},
		Lunch:              MealWindow{From: "12:00", To: "15:00"},
		Dinner:             MealWindow{From: "18:00", To: "21:00"},
		MealDurationMin:    45,
		MealBufferAfterMin: 5,
		WorkoutEnabled:     true,
		WorkoutBlockMin:    90,
		TravelOnewayMin:    20,
		RestDays:           1,
		WorkoutNoSunday:    true,
		WorkStart:          "10:00",
		WorkEnd:            "19:00",
		TaskBufferMin:      10,
	}
}
