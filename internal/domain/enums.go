package domain

type TaskType string

const (
	TaskTypeUser   TaskType = "user"
	TaskTypeAnchor TaskType = "anchor"
	TaskTypeSystem TaskType = "system"
)

type TaskKind string

const (
	KindMeal    TaskKind = "meal"
	KindWorkout TaskKind = "workout"
	KindMorning TaskKind = "morning"
	KindWork    TaskKind = "work"
	KindOther   TaskKind = "other"
)

type ScheduleSource string

const (
	SourceManual    ScheduleSource = "manual"
	SourceAutoplan  ScheduleSource = "autoplan"
	SourceSystem    ScheduleSource = "system"
	SourceAssistant ScheduleSource = "assistant"
)

// Priorities: 1 is most urgent, 3 least. The autoplanner consumes the
// backlog in ascending priority order.
const (
	PriorityHigh   = 1
	PriorityNormal = 2
	PriorityLow    = 3
)

// Anchor keys identify the fixed daily anchors maintained by the engine.
const (
	AnchorMorning   = "morning"
	AnchorBreakfast = "breakfast"
	AnchorLunch     = "lunch"
	AnchorDinner    = "dinner"
)

// ValidTaskKinds is the canonical set of accepted task kind strings.
var ValidTaskKinds = map[string]bool{
	"meal": true, "workout": true, "morning": true,
	"work": true, "other": true,
}
