package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/necomav/dayplan/internal/contract"
	"github.com/necomav/dayplan/internal/db"
	"github.com/necomav/dayplan/internal/domain"
	"github.com/necomav/dayplan/internal/repository"
	"github.com/necomav/dayplan/internal/scheduler"
)

// moveSearchDays bounds the forward search when a move strategy is chosen
// without an explicit target.
const moveSearchDays = 3

type scheduleService struct {
	tasks    repository.TaskRepo
	profiles repository.ProfileRepo
	uow      db.UnitOfWork
}

func NewScheduleService(tasks repository.TaskRepo, profiles repository.ProfileRepo, uow db.UnitOfWork) ScheduleService {
	return &scheduleService{tasks: tasks, profiles: profiles, uow: uow}
}

func (s *scheduleService) Commit(ctx context.Context, req contract.CommitRequest) (*contract.CommitResult, error) {
	conflicts, err := overlappingTasks(ctx, s.tasks, req.Task.OwnerID, req.Task.ID, req.Requested)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return &contract.CommitResult{
			Outcome:   contract.OutcomeConflict,
			Task:      req.Task,
			Conflicts: conflicts,
			Requested: req.Requested,
		}, nil
	}
	if err := s.persistAt(ctx, s.tasks, req.Task, req.Requested, req.Source); err != nil {
		return nil, err
	}
	return &contract.CommitResult{Outcome: contract.OutcomeOK, Task: req.Task}, nil
}

func (s *scheduleService) Resolve(ctx context.Context, req contract.CommitRequest, strategy contract.Strategy) (*contract.CommitResult, error) {
	switch strategy.Kind {
	case contract.StrategyCancel:
		return &contract.CommitResult{Outcome: contract.OutcomeCancelled, Task: req.Task}, nil
	case contract.StrategyReplace:
		return s.resolveReplace(ctx, req)
	case contract.StrategyMove:
		return s.resolveMove(ctx, req, strategy.MoveTo)
	case contract.StrategyShift:
		return s.resolveShift(ctx, req)
	}
	return nil, fmt.Errorf("unknown strategy %q", strategy.Kind)
}

// resolveReplace deletes the overlapping tasks and commits the new one at
// the requested interval. Rejected outright when any overlapping task is an
// anchor or system task.
func (s *scheduleService) resolveReplace(ctx context.Context, req contract.CommitRequest) (*contract.CommitResult, error) {
	conflicts, err := overlappingTasks(ctx, s.tasks, req.Task.OwnerID, req.Task.ID, req.Requested)
	if err != nil {
		return nil, err
	}
	for _, c := range conflicts {
		if !c.Movable() {
			return &contract.CommitResult{
				Outcome:   contract.OutcomeBlocked,
				Task:      req.Task,
				Conflicts: conflicts,
				Requested: req.Requested,
			}, nil
		}
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		for _, c := range conflicts {
			if err := txTasks.Delete(ctx, c.ID); err != nil {
				return err
			}
		}
		return s.persistAt(ctx, txTasks, req.Task, req.Requested, req.Source)
	})
	if err != nil {
		return nil, err
	}
	return &contract.CommitResult{Outcome: contract.OutcomeOK, Task: req.Task}, nil
}

// resolveMove commits the new task at an alternative interval. With an
// explicit target that itself conflicts, the caller re-enters resolution
// with the target as the new requested interval. Without a target, the next
// free slot at or after the original start is searched across the following
// days.
func (s *scheduleService) resolveMove(ctx context.Context, req contract.CommitRequest, to *scheduler.Interval) (*contract.CommitResult, error) {
	if to != nil {
		conflicts, err := overlappingTasks(ctx, s.tasks, req.Task.OwnerID, req.Task.ID, *to)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			return &contract.CommitResult{
				Outcome:   contract.OutcomeConflict,
				Task:      req.Task,
				Conflicts: conflicts,
				Requested: *to,
			}, nil
		}
		if err := s.persistAt(ctx, s.tasks, req.Task, *to, req.Source); err != nil {
			return nil, err
		}
		return &contract.CommitResult{Outcome: contract.OutcomeOK, Task: req.Task}, nil
	}

	profile, err := loadProfile(ctx, s.profiles, req.Task.OwnerID)
	if err != nil {
		return nil, err
	}

	d := req.Requested.Duration()
	for offset := 0; offset <= moveSearchDays; offset++ {
		day := startOfDay(req.Requested.Start).AddDate(0, 0, offset)
		w := scheduler.ComputeDayWindow(day, profile, nil)

		committed, err := s.tasks.ListScheduledForDay(ctx, req.Task.OwnerID, day)
		if err != nil {
			return nil, err
		}
		committed = excludeTask(committed, req.Task.ID)
		busy := scheduler.BusyIntervals(committed, profile)
		gaps := scheduler.FreeGaps(busy, w.Window())

		notBefore := w.DayStart
		if offset == 0 && req.Requested.Start.After(notBefore) {
			notBefore = req.Requested.Start
		}
		start, ok := scheduler.FirstFit(gaps, d, notBefore)
		if !ok {
			continue
		}
		slot := scheduler.Interval{Start: start, End: start.Add(d)}
		if err := s.persistAt(ctx, s.tasks, req.Task, slot, domain.SourceAssistant); err != nil {
			return nil, err
		}
		return &contract.CommitResult{Outcome: contract.OutcomeOK, Task: req.Task}, nil
	}
	return &contract.CommitResult{Outcome: contract.OutcomeNoSpace, Task: req.Task, Requested: req.Requested}, nil
}

// resolveShift pushes movable overlapping tasks later via the cascade plan
// and persists the new task plus every move in one transaction. Moved tasks
// are tagged with the assistant schedule source.
func (s *scheduleService) resolveShift(ctx context.Context, req contract.CommitRequest) (*contract.CommitResult, error) {
	profile, err := loadProfile(ctx, s.profiles, req.Task.OwnerID)
	if err != nil {
		return nil, err
	}

	day := startOfDay(req.Requested.Start)
	w := scheduler.ComputeDayWindow(day, profile, nil)

	committed, err := s.tasks.ListScheduledForDay(ctx, req.Task.OwnerID, day)
	if err != nil {
		return nil, err
	}
	committed = excludeTask(committed, req.Task.ID)

	moves, outcome := scheduler.PlanShift(committed, req.Requested, w.Window(), profile)
	switch outcome {
	case scheduler.ShiftBlocked:
		return &contract.CommitResult{Outcome: contract.OutcomeBlocked, Task: req.Task, Requested: req.Requested}, nil
	case scheduler.ShiftNoSpace:
		return &contract.CommitResult{Outcome: contract.OutcomeNoSpace, Task: req.Task, Requested: req.Requested}, nil
	}

	var moved []*domain.Task
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		for _, mv := range moves {
			t, err := txTasks.GetByID(ctx, mv.TaskID)
			if err != nil {
				return err
			}
			t.SetSlot(mv.Slot.Start, mv.Slot.End, domain.SourceAssistant)
			t.UpdatedAt = time.Now()
			if err := txTasks.Update(ctx, t); err != nil {
				return err
			}
			moved = append(moved, t)
		}
		return s.persistAt(ctx, txTasks, req.Task, req.Requested, req.Source)
	})
	if err != nil {
		return nil, err
	}
	return &contract.CommitResult{Outcome: contract.OutcomeOK, Task: req.Task, Moved: moved}, nil
}

// persistAt assigns the slot and writes the task. Callers hand over bare
// title/estimate structs for new tasks, so identity defaults are filled in
// here before the insert.
func (s *scheduleService) persistAt(ctx context.Context, tasks repository.TaskRepo, t *domain.Task, slot scheduler.Interval, source domain.ScheduleSource) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Type == "" {
		t.Type = domain.TaskTypeUser
	}
	if t.Kind == "" {
		t.Kind = domain.KindOther
	}
	if t.Priority == 0 {
		t.Priority = domain.PriorityNormal
	}
	if t.EstimateMin <= 0 {
		t.EstimateMin = int(slot.Duration() / time.Minute)
	}
	if source == "" {
		source = domain.SourceManual
	}
	t.SetSlot(slot.Start, slot.End, source)
	return persistTask(ctx, tasks, t, time.Now())
}

func excludeTask(tasks []*domain.Task, id string) []*domain.Task {
	if id == "" {
		return tasks
	}
	var out []*domain.Task
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}
