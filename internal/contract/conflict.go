package contract

import (
	"github.com/necomav/dayplan/internal/domain"
	"github.com/necomav/dayplan/internal/scheduler"
)

// StrategyKind selects how a time conflict is resolved. The front end maps
// user input onto this tagged variant; the engine never parses text.
type StrategyKind string

const (
	StrategyReplace StrategyKind = "replace"
	StrategyMove    StrategyKind = "move"
	StrategyShift   StrategyKind = "shift"
	StrategyCancel  StrategyKind = "cancel"
)

// Strategy is a resolution choice. MoveTo is consulted only for StrategyMove;
// nil means the engine searches forward for the next free slot itself.
type Strategy struct {
	Kind   StrategyKind
	MoveTo *scheduler.Interval
}

// Outcome classifies a commit or resolution result.
type Outcome string

const (
	// OutcomeOK: the task (and any moved tasks) were persisted.
	OutcomeOK Outcome = "ok"
	// OutcomeConflict: the requested interval overlaps existing tasks and a
	// strategy is awaited. Conflicts and Requested describe the collision.
	OutcomeConflict Outcome = "conflict"
	// OutcomeBlocked: the strategy is impossible because a fixed (anchor or
	// system) task stands in the way.
	OutcomeBlocked Outcome = "blocked"
	// OutcomeNoSpace: no arrangement fits within the day window.
	OutcomeNoSpace Outcome = "no_space"
	// OutcomeCancelled: the caller abandoned the commit; nothing persisted.
	OutcomeCancelled Outcome = "cancelled"
)

// CommitRequest asks to commit a task at an explicit interval.
type CommitRequest struct {
	Task      *domain.Task
	Requested scheduler.Interval
	Source    domain.ScheduleSource
}

// CommitResult reports a commit or resolution attempt. On OutcomeConflict,
// Requested holds the interval to re-enter resolution with (it may differ
// from the original request after an explicit move to another busy slot).
type CommitResult struct {
	Outcome   Outcome
	Task      *domain.Task
	Conflicts []*domain.Task
	Moved     []*domain.Task
	Requested scheduler.Interval
}
