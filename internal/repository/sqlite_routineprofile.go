package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/necomav/dayplan/internal/db"
	"github.com/necomav/dayplan/internal/domain"
)

const profileColumns = `owner_id, wake_time, bed_time, post_wake_buffer_min, pre_sleep_buffer_min,
		breakfast_from, breakfast_to, lunch_from, lunch_to, dinner_from, dinner_to,
		meal_duration_min, meal_buffer_after_min,
		workout_enabled, workout_block_min, travel_oneway_min, rest_days, workout_no_sunday,
		work_start, work_end, latest_task_end, task_buffer_min`

// SQLiteProfileRepo implements ProfileRepo over a DBTX.
type SQLiteProfileRepo struct {
	db db.DBTX
}

func NewSQLiteProfileRepo(dbtx db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: dbtx}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context, ownerID string) (*domain.RoutineProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM routine_profiles WHERE owner_id = ?`
	row := r.db.QueryRowContext(ctx, query, ownerID)

	var p domain.RoutineProfile
	var workoutEnabledInt, noSundayInt int
	err := row.Scan(
		&p.OwnerID, &p.WakeTime, &p.BedTime, &p.PostWakeBufferMin, &p.PreSleepBufferMin,
		&p.Breakfast.From, &p.Breakfast.To, &p.Lunch.From, &p.Lunch.To, &p.Dinner.From, &p.Dinner.To,
		&p.MealDurationMin, &p.MealBufferAfterMin,
		&workoutEnabledInt, &p.WorkoutBlockMin, &p.TravelOnewayMin, &p.RestDays, &noSundayInt,
		&p.WorkStart, &p.WorkEnd, &p.LatestTaskEnd, &p.TaskBufferMin,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("routine profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning routine profile: %w", err)
	}
	p.WorkoutEnabled = intToBool(workoutEnabledInt)
	p.WorkoutNoSunday = intToBool(noSundayInt)
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.RoutineProfile) error {
	query := `INSERT INTO routine_profiles (` + profileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(owner_id) DO UPDATE SET
			wake_time = excluded.wake_time,
			bed_time = excluded.bed_time,
			post_wake_buffer_min = excluded.post_wake_buffer_min,
			pre_sleep_buffer_min = excluded.pre_sleep_buffer_min,
			breakfast_from = excluded.breakfast_from,
			breakfast_to = excluded.breakfast_to,
			lunch_from = excluded.lunch_from,
			lunch_to = excluded.lunch_to,
			dinner_from = excluded.dinner_from,
			dinner_to = excluded.dinner_to,
			meal_duration_min = excluded.meal_duration_min,
			meal_buffer_after_min = excluded.meal_buffer_after_min,
			workout_enabled = excluded.workout_enabled,
			workout_block_min = excluded.workout_block_min,
			travel_oneway_min = excluded.travel_oneway_min,
			rest_days = excluded.rest_days,
			workout_no_sunday = excluded.workout_no_sunday,
			work_start = excluded.work_start,
			work_end = excluded.work_end,
			latest_task_end = excluded.latest_task_end,
			task_buffer_min = excluded.task_buffer_min`
	_, err := r.db.ExecContext(ctx, query,
		p.OwnerID, p.WakeTime, p.BedTime, p.PostWakeBufferMin, p.PreSleepBufferMin,
		p.Breakfast.From, p.Breakfast.To, p.Lunch.From, p.Lunch.To, p.Dinner.From, p.Dinner.To,
		p.MealDurationMin, p.MealBufferAfterMin,
		boolToInt(p.WorkoutEnabled), p.WorkoutBlockMin, p.TravelOnewayMin, p.RestDays, boolToInt(p.WorkoutNoSunday),
		p.WorkStart, p.WorkEnd, p.LatestTaskEnd, p.TaskBufferMin,
	)
	if err != nil {
		return fmt.Errorf("upserting routine profile: %w", err)
	}
	return nil
}
