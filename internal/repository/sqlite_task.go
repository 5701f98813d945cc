package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/necomav/dayplan/internal/db"
	"github.com/necomav/dayplan/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, owner_id, title, task_type, kind,
		planned_start, planned_end, due_at, estimate_min, priority,
		done, schedule_source, anchor_key, anchor_date, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo over a DBTX, so the same repository
// works against the database handle or a transaction.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(dbtx db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: dbtx}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.OwnerID,
		t.Title,
		string(t.Type),
		string(t.Kind),
		nullableTimeToString(t.PlannedStart, timeLayout),
		nullableTimeToString(t.PlannedEnd, timeLayout),
		nullableTimeToString(t.DueAt, timeLayout),
		t.EstimateMin,
		t.Priority,
		boolToInt(t.Done),
		string(t.ScheduleSource),
		t.AnchorKey,
		nullableTimeToString(t.AnchorDate, dateLayout),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return r.scanTask(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET owner_id = ?, title = ?, task_type = ?, kind = ?,
		planned_start = ?, planned_end = ?, due_at = ?, estimate_min = ?, priority = ?,
		done = ?, schedule_source = ?, anchor_key = ?, anchor_date = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		t.OwnerID,
		t.Title,
		string(t.Type),
		string(t.Kind),
		nullableTimeToString(t.PlannedStart, timeLayout),
		nullableTimeToString(t.PlannedEnd, timeLayout),
		nullableTimeToString(t.DueAt, timeLayout),
		t.EstimateMin,
		t.Priority,
		boolToInt(t.Done),
		string(t.ScheduleSource),
		t.AnchorKey,
		nullableTimeToString(t.AnchorDate, dateLayout),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) ListScheduledForDay(ctx context.Context, ownerID string, day time.Time) ([]*domain.Task, error) {
	from, to := dayBounds(day)
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE owner_id = ? AND planned_start >= ? AND planned_start < ?
		ORDER BY planned_start`
	rows, err := r.db.QueryContext(ctx, query, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing scheduled tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListBacklog(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE owner_id = ? AND task_type = 'user' AND done = 0 AND planned_start IS NULL
		ORDER BY priority, created_at`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing backlog: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) HasWorkoutInRange(ctx context.Context, ownerID string, from, to time.Time) (bool, error) {
	query := `SELECT COUNT(*) FROM tasks
		WHERE owner_id = ? AND kind = 'workout' AND done = 0
		  AND planned_start IS NOT NULL AND planned_start >= ? AND planned_start < ?`
	var count int
	err := r.db.QueryRowContext(ctx, query, ownerID,
		from.Format(timeLayout), to.Format(timeLayout)).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking workouts in range: %w", err)
	}
	return count > 0, nil
}

func (r *SQLiteTaskRepo) GetAnchor(ctx context.Context, ownerID string, day time.Time, key string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE owner_id = ? AND anchor_date = ? AND anchor_key = ?`
	row := r.db.QueryRowContext(ctx, query, ownerID, day.Format(dateLayout), key)
	return r.scanTask(row)
}

func (r *SQLiteTaskRepo) DeleteMealAnchors(ctx context.Context, ownerID string, day time.Time) error {
	query := `DELETE FROM tasks
		WHERE owner_id = ? AND anchor_date = ? AND anchor_key != '' AND kind = 'meal'`
	if _, err := r.db.ExecContext(ctx, query, ownerID, day.Format(dateLayout)); err != nil {
		return fmt.Errorf("deleting meal anchors: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var typeStr, kindStr, sourceStr string
	var plannedStartStr, plannedEndStr, dueAtStr, anchorDateStr sql.NullString
	var doneInt int
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&t.ID, &t.OwnerID, &t.Title, &typeStr, &kindStr,
		&plannedStartStr, &plannedEndStr, &dueAtStr, &t.EstimateMin, &t.Priority,
		&doneInt, &sourceStr, &t.AnchorKey, &anchorDateStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return populateTask(&t, typeStr, kindStr, sourceStr,
		plannedStartStr, plannedEndStr, dueAtStr, anchorDateStr, doneInt, createdAtStr, updatedAtStr)
}

func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var typeStr, kindStr, sourceStr string
		var plannedStartStr, plannedEndStr, dueAtStr, anchorDateStr sql.NullString
		var doneInt int
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&t.ID, &t.OwnerID, &t.Title, &typeStr, &kindStr,
			&plannedStartStr, &plannedEndStr, &dueAtStr, &t.EstimateMin, &t.Priority,
			&doneInt, &sourceStr, &t.AnchorKey, &anchorDateStr, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}

		task, err := populateTask(&t, typeStr, kindStr, sourceStr,
			plannedStartStr, plannedEndStr, dueAtStr, anchorDateStr, doneInt, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func populateTask(
	t *domain.Task,
	typeStr, kindStr, sourceStr string,
	plannedStartStr, plannedEndStr, dueAtStr, anchorDateStr sql.NullString,
	doneInt int,
	createdAtStr, updatedAtStr string,
) (*domain.Task, error) {
	t.Type = domain.TaskType(typeStr)
	t.Kind = domain.TaskKind(kindStr)
	t.ScheduleSource = domain.ScheduleSource(sourceStr)
	t.Done = intToBool(doneInt)

	t.PlannedStart = parseNullableTime(plannedStartStr, timeLayout)
	t.PlannedEnd = parseNullableTime(plannedEndStr, timeLayout)
	t.DueAt = parseNullableTime(dueAtStr, timeLayout)
	t.AnchorDate = parseNullableTime(anchorDateStr, dateLayout)

	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return t, nil
}
