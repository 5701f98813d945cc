package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/necomav/dayplan/internal/domain"
	"github.com/necomav/dayplan/internal/repository"
)

type taskService struct {
	tasks repository.TaskRepo
}

func NewTaskService(tasks repository.TaskRepo) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.OwnerID == "" {
		return fmt.Errorf("task owner is required")
	}
	if t.Title == "" {
		return fmt.Errorf("task title is required")
	}
	if (t.PlannedStart == nil) != (t.PlannedEnd == nil) {
		return fmt.Errorf("planned start and end must be set together")
	}
	if t.PlannedStart != nil && !t.PlannedEnd.After(*t.PlannedStart) {
		return fmt.Errorf("planned end must be after planned start")
	}

	if t.Type == "" {
		t.Type = domain.TaskTypeUser
	}
	if t.Kind == "" {
		t.Kind = domain.KindOther
	} else if !domain.ValidTaskKinds[string(t.Kind)] {
		return fmt.Errorf("unknown task kind %q", t.Kind)
	}
	if t.Priority == 0 {
		t.Priority = domain.PriorityNormal
	}
	if t.EstimateMin <= 0 {
		t.EstimateMin = 30
	}
	if t.ScheduleSource == "" {
		t.ScheduleSource = domain.SourceManual
	}

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListDay(ctx context.Context, ownerID string, day time.Time) ([]*domain.Task, error) {
	return s.tasks.ListScheduledForDay(ctx, ownerID, day)
}

func (s *taskService) ListBacklog(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	return s.tasks.ListBacklog(ctx, ownerID)
}

func (s *taskService) MarkDone(ctx context.Context, id string) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	t.Done = true
	t.UpdatedAt = time.Now()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Unschedule(ctx context.Context, id string) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	t.ClearSlot()
	t.UpdatedAt = time.Now()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
