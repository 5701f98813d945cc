package repository

import (
	"context"
	"errors"
	"time"

	"github.com/necomav/dayplan/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error

	// ListScheduledForDay returns an owner's committed tasks whose planned
	// start falls on the given calendar day, ordered by start.
	ListScheduledForDay(ctx context.Context, ownerID string, day time.Time) ([]*domain.Task, error)

	// ListBacklog returns an owner's unscheduled, not-done user tasks in
	// autoplan consumption order: priority ascending, then creation order.
	ListBacklog(ctx context.Context, ownerID string) ([]*domain.Task, error)

	// HasWorkoutInRange reports whether any workout is committed with a
	// planned start in [from, to).
	HasWorkoutInRange(ctx context.Context, ownerID string, from, to time.Time) (bool, error)

	// GetAnchor fetches the anchor identified by (owner, day, key), or
	// ErrNotFound.
	GetAnchor(ctx context.Context, ownerID string, day time.Time, key string) (*domain.Task, error)

	// DeleteMealAnchors removes all of a day's meal anchors so they can be
	// recomputed from scratch. The morning anchor is left alone.
	DeleteMealAnchors(ctx context.Context, ownerID string, day time.Time) error
}

type ProfileRepo interface {
	Get(ctx context.Context, ownerID string) (*domain.RoutineProfile, error)
	Upsert(ctx context.Context, p *domain.RoutineProfile) error
}
