package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations in order.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id              TEXT PRIMARY KEY,
		owner_id        TEXT NOT NULL,
		title           TEXT NOT NULL,
		task_type       TEXT NOT NULL DEFAULT 'user'
		                CHECK(task_type IN ('user','anchor','system')),
		kind            TEXT NOT NULL DEFAULT 'other'
		                CHECK(kind IN ('meal','workout','morning','work','other')),
		planned_start   TEXT,
		planned_end     TEXT,
		due_at          TEXT,
		estimate_min    INTEGER NOT NULL DEFAULT 30,
		priority        INTEGER NOT NULL DEFAULT 2
		                CHECK(priority BETWEEN 1 AND 3),
		done            INTEGER NOT NULL DEFAULT 0,
		schedule_source TEXT NOT NULL DEFAULT 'manual'
		                CHECK(schedule_source IN ('manual','autoplan','system','assistant')),
		anchor_key      TEXT NOT NULL DEFAULT '',
		anchor_date     TEXT,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_owner_start ON tasks(owner_id, planned_start)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_owner_backlog ON tasks(owner_id, task_type, done)`,

	// Anchor identity is scoped per owner, day and key so recomputing one
	// day's anchors never clobbers another day's.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_tasks_anchor
		ON tasks(owner_id, anchor_date, anchor_key) WHERE anchor_key != ''`,

	`CREATE TABLE IF NOT EXISTS routine_profiles (
		owner_id              TEXT PRIMARY KEY,
		wake_time             TEXT NOT NULL DEFAULT '07:30',
		bed_time              TEXT NOT NULL DEFAULT '23:45',
		post_wake_buffer_min  INTEGER NOT NULL DEFAULT 45,
		pre_sleep_buffer_min  INTEGER NOT NULL DEFAULT 15,
		breakfast_from        TEXT NOT NULL DEFAULT '07:00',
		breakfast_to          TEXT NOT NULL DEFAULT '10:00',
		lunch_from            TEXT NOT NULL DEFAULT '12:00',
		lunch_to              TEXT NOT NULL DEFAULT '15:00',
		dinner_from           TEXT NOT NULL DEFAULT '18:00',
		dinner_to             TEXT NOT NULL DEFAULT '21:00',
		meal_duration_min     INTEGER NOT NULL DEFAULT 45,
		meal_buffer_after_min INTEGER NOT NULL DEFAULT 5,
		workout_enabled       INTEGER NOT NULL DEFAULT 1,
		workout_block_min     INTEGER NOT NULL DEFAULT 90,
		travel_oneway_min     INTEGER NOT NULL DEFAULT 20,
		rest_days             INTEGER NOT NULL DEFAULT 1,
		workout_no_sunday     INTEGER NOT NULL DEFAULT 1,
		work_start            TEXT NOT NULL DEFAULT '10:00',
		work_end              TEXT NOT NULL DEFAULT '19:00',
		latest_task_end       TEXT NOT NULL DEFAULT '',
		task_buffer_min       INTEGER NOT NULL DEFAULT 10
	)`,

	// Seed the default owner's routine
	`INSERT OR IGNORE INTO routine_profiles (owner_id) VALUES ('default')`,
}
