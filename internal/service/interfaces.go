package service

import (
	"context"
	"time"

	"github.com/necomav/dayplan/internal/contract"
	"github.com/necomav/dayplan/internal/domain"
)

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListDay(ctx context.Context, ownerID string, day time.Time) ([]*domain.Task, error)
	ListBacklog(ctx context.Context, ownerID string) ([]*domain.Task, error)
	MarkDone(ctx context.Context, id string) error
	// Unschedule returns a committed task to the backlog.
	Unschedule(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ProfileService interface {
	Get(ctx context.Context, ownerID string) (*domain.RoutineProfile, error)
	Update(ctx context.Context, p *domain.RoutineProfile) error
}

// AnchorService maintains the fixed daily anchors: one morning block plus up
// to three meals, recomputed deterministically on every invocation.
type AnchorService interface {
	EnsureAnchors(ctx context.Context, ownerID string, day time.Time, now *time.Time) (contract.AnchorStatus, error)
}

// AutoplanService greedily places backlog tasks across consecutive days.
type AutoplanService interface {
	Autoplan(ctx context.Context, req contract.AutoplanRequest) (*contract.AutoplanResponse, error)
}

// ScheduleService commits tasks at explicit times and resolves conflicts.
type ScheduleService interface {
	// Commit persists the task at the requested interval, or reports the
	// overlapping tasks so the caller can pick a resolution strategy.
	Commit(ctx context.Context, req contract.CommitRequest) (*contract.CommitResult, error)
	// Resolve executes a chosen strategy against the same request. A move to
	// an interval that itself conflicts yields OutcomeConflict with the new
	// candidate as Requested, re-entering the protocol.
	Resolve(ctx context.Context, req contract.CommitRequest, strategy contract.Strategy) (*contract.CommitResult, error)
}
