package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/necomav/dayplan/internal/contract"
	"github.com/necomav/dayplan/internal/domain"
	"github.com/necomav/dayplan/internal/repository"
	"github.com/necomav/dayplan/internal/scheduler"
)

type anchorService struct {
	tasks    repository.TaskRepo
	profiles repository.ProfileRepo
}

func NewAnchorService(tasks repository.TaskRepo, profiles repository.ProfileRepo) AnchorService {
	return &anchorService{tasks: tasks, profiles: profiles}
}

// EnsureAnchors rewrites the morning anchor from the day window, then places
// breakfast, lunch and dinner in that order, recomputing busy state between
// meals so each placement can influence the next. A meal with no fitting gap
// inside its clipped window is skipped, not an error. The search is fully
// deterministic, so repeated calls with unchanged inputs reproduce identical
// timings.
func (s *anchorService) EnsureAnchors(ctx context.Context, ownerID string, day time.Time, now *time.Time) (contract.AnchorStatus, error) {
	var status contract.AnchorStatus

	profile, err := loadProfile(ctx, s.profiles, ownerID)
	if err != nil {
		return status, err
	}
	w := scheduler.ComputeDayWindow(day, profile, now)

	// The morning anchor defines the start of the window; it needs no gap
	// search and is written unconditionally.
	if err := s.writeAnchor(ctx, ownerID, day, domain.AnchorMorning, domain.KindMorning, w.MorningStart, w.MorningEnd); err != nil {
		return status, err
	}
	status.Morning = true

	// Meals are recomputed from scratch each call.
	if err := s.tasks.DeleteMealAnchors(ctx, ownerID, day); err != nil {
		return status, err
	}

	mealDur := time.Duration(profile.MealDurationMin) * time.Minute
	for _, slot := range profile.MealSlots() {
		committed, err := s.tasks.ListScheduledForDay(ctx, ownerID, day)
		if err != nil {
			return status, err
		}
		busy := scheduler.BusyIntervals(committed, profile)
		gaps := scheduler.FreeGaps(busy, w.Window())

		lo := scheduler.CombineClock(day, slot.Window.From)
		if lo.Before(w.DayStart) {
			lo = w.DayStart
		}
		hi := scheduler.CombineClock(day, slot.Window.To)

		start, ok := scheduler.FirstFitWithin(gaps, mealDur, lo, hi)
		if !ok {
			continue
		}
		if err := s.writeAnchor(ctx, ownerID, day, slot.Key, domain.KindMeal, start, start.Add(mealDur)); err != nil {
			return status, err
		}
		switch slot.Key {
		case domain.AnchorBreakfast:
			status.Breakfast = true
		case domain.AnchorLunch:
			status.Lunch = true
		case domain.AnchorDinner:
			status.Dinner = true
		}
	}

	return status, nil
}

func (s *anchorService) writeAnchor(ctx context.Context, ownerID string, day time.Time, key string, kind domain.TaskKind, start, end time.Time) error {
	existing, err := s.tasks.GetAnchor(ctx, ownerID, day, key)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	now := time.Now()
	if existing != nil {
		existing.SetSlot(start, end, domain.SourceSystem)
		existing.UpdatedAt = now
		return s.tasks.Update(ctx, existing)
	}

	anchorDay := startOfDay(day)
	t := &domain.Task{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       anchorTitle(key),
		Type:        domain.TaskTypeAnchor,
		Kind:        kind,
		EstimateMin: int(end.Sub(start) / time.Minute),
		Priority:    domain.PriorityNormal,
		AnchorKey:   key,
		AnchorDate:  &anchorDay,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	t.SetSlot(start, end, domain.SourceSystem)
	return s.tasks.Create(ctx, t)
}

func anchorTitle(key string) string {
	switch key {
	case domain.AnchorMorning:
		return "Morning routine"
	case domain.AnchorBreakfast:
		return "Breakfast"
	case domain.AnchorLunch:
		return "Lunch"
	case domain.AnchorDinner:
		return "Dinner"
	}
	return key
}
