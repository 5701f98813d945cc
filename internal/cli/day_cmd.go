package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/necomav/dayplan/internal/scheduler"
)

func newDayCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show the schedule and free gaps for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			now := time.Now()
			day := now
			if date != "" {
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}
				day = parsed
			}

			// Anchors are maintained on view, so the day always shows its
			// morning block and meals.
			var clamp *time.Time
			if scheduler.SameDay(now, day) {
				clamp = &now
			}
			err := app.Locks.WithLock(app.Owner, func() error {
				_, err := app.Anchors.EnsureAnchors(ctx, app.Owner, day, clamp)
				return err
			})
			if err != nil {
				return err
			}

			profile, err := app.Profile.Get(ctx, app.Owner)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.ListDay(ctx, app.Owner, day)
			if err != nil {
				return err
			}

			w := scheduler.ComputeDayWindow(day, profile, clamp)
			busy := scheduler.BusyIntervals(tasks, profile)
			gaps := scheduler.FreeGaps(busy, w.Window())

			fmt.Print(formatDaySchedule(day, w, tasks, gaps))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (YYYY-MM-DD), default today")
	return cmd
}
