package service

import (
	"context"
	"time"

	"github.com/necomav/dayplan/internal/contract"
	"github.com/necomav/dayplan/internal/domain"
	"github.com/necomav/dayplan/internal/repository"
	"github.com/necomav/dayplan/internal/scheduler"
)

type autoplanService struct {
	tasks    repository.TaskRepo
	profiles repository.ProfileRepo
	anchors  AnchorService
}

func NewAutoplanService(tasks repository.TaskRepo, profiles repository.ProfileRepo, anchors AnchorService) AutoplanService {
	return &autoplanService{tasks: tasks, profiles: profiles, anchors: anchors}
}

// Autoplan walks the requested days in order. Each day gets its anchors
// first, then backlog tasks are attempted in (priority, creation) order
// against freshly derived busy state. A task that fits nowhere today stays
// in the backlog and is retried on the next day of the run; placement
// failures never abort the operation.
func (s *autoplanService) Autoplan(ctx context.Context, req contract.AutoplanRequest) (*contract.AutoplanResponse, error) {
	days := req.Days
	if days <= 0 {
		days = 1
	}

	profile, err := loadProfile(ctx, s.profiles, req.OwnerID)
	if err != nil {
		return nil, err
	}

	resp := &contract.AutoplanResponse{}
	for i := 0; i < days; i++ {
		day := startOfDay(req.Start).AddDate(0, 0, i)

		status, err := s.anchors.EnsureAnchors(ctx, req.OwnerID, day, req.Now)
		if err != nil {
			return nil, err
		}

		w := scheduler.ComputeDayWindow(day, profile, req.Now)
		window := w.Window()
		if profile.LatestTaskEnd != "" {
			latest := scheduler.CombineClock(day, profile.LatestTaskEnd)
			if latest.Before(window.End) {
				window.End = latest
			}
		}

		backlog, err := s.tasks.ListBacklog(ctx, req.OwnerID)
		if err != nil {
			return nil, err
		}

		scheduled := 0
		for _, t := range backlog {
			placed, err := s.placeTask(ctx, t, day, window, profile)
			if err != nil {
				return nil, err
			}
			if placed {
				scheduled++
			}
		}

		resp.Days = append(resp.Days, contract.DaySummary{
			Date:           day,
			AnchorsPresent: status.Present(),
			ScheduledCount: scheduled,
		})
	}
	return resp, nil
}

// placeTask attempts one backlog task against the day's current gaps. Busy
// state is re-derived from the store on every attempt so each successful
// placement is visible to the next.
func (s *autoplanService) placeTask(ctx context.Context, t *domain.Task, day time.Time, window scheduler.Interval, profile *domain.RoutineProfile) (bool, error) {
	committed, err := s.tasks.ListScheduledForDay(ctx, t.OwnerID, day)
	if err != nil {
		return false, err
	}
	busy := scheduler.BusyIntervals(committed, profile)
	gaps := scheduler.FreeGaps(busy, window)

	if t.Kind == domain.KindWorkout {
		allowed, err := s.workoutAllowed(ctx, t.OwnerID, day, profile)
		if err != nil || !allowed {
			return false, err
		}
		core := t.EstimateMin
		if core < profile.WorkoutBlockMin {
			core = profile.WorkoutBlockMin
		}
		slot, ok := scheduler.FitWorkout(gaps, core, profile.TravelOnewayMin, window.Start)
		if !ok {
			return false, nil
		}
		t.SetSlot(slot.Start, slot.End, domain.SourceAutoplan)
	} else {
		d := time.Duration(t.EstimateMin) * time.Minute
		start, ok := scheduler.FirstFit(gaps, d, window.Start)
		if !ok {
			return false, nil
		}
		t.SetSlot(start, start.Add(d), domain.SourceAutoplan)
	}

	t.UpdatedAt = time.Now()
	if err := s.tasks.Update(ctx, t); err != nil {
		return false, err
	}
	return true, nil
}

// workoutAllowed applies the workout scheduling rules: the feature must be
// enabled, Sundays may be excluded, and a committed workout within the rest
// window (including earlier in the same day) blocks another.
func (s *autoplanService) workoutAllowed(ctx context.Context, ownerID string, day time.Time, profile *domain.RoutineProfile) (bool, error) {
	if !profile.WorkoutEnabled {
		return false, nil
	}
	if profile.WorkoutNoSunday && day.Weekday() == time.Sunday {
		return false, nil
	}
	from := startOfDay(day).AddDate(0, 0, -profile.RestDays)
	to := startOfDay(day).AddDate(0, 0, 1)
	exists, err := s.tasks.HasWorkoutInRange(ctx, ownerID, from, to)
	if err != nil {
		return false, err
	}
	return !exists, nil
}
