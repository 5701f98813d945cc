package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/necomav/dayplan/internal/contract"
	"github.com/necomav/dayplan/internal/domain"
	"github.com/necomav/dayplan/internal/scheduler"
)

const atLayout = "2006-01-02T15:04"

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskUnscheduleCmd(app),
		newTaskRmCmd(app),
	)
	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var at, due, kind, onConflict, moveTo string
	var minutes, priority int

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a task to the backlog, or commit it at an explicit time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			t := &domain.Task{
				OwnerID:     app.Owner,
				Title:       args[0],
				Kind:        domain.TaskKind(kind),
				EstimateMin: minutes,
				Priority:    priority,
			}
			if due != "" {
				d, err := time.Parse(atLayout, due)
				if err != nil {
					return fmt.Errorf("parsing --due: %w", err)
				}
				t.DueAt = &d
			}

			if at == "" {
				if err := app.Tasks.Create(ctx, t); err != nil {
					return err
				}
				fmt.Printf("added to backlog: %s\n", t.Title)
				return nil
			}

			start, err := time.Parse(atLayout, at)
			if err != nil {
				return fmt.Errorf("parsing --at: %w", err)
			}
			if minutes <= 0 {
				minutes = 30
			}
			requested := scheduler.Interval{Start: start, End: start.Add(time.Duration(minutes) * time.Minute)}

			var explicitMove *scheduler.Interval
			if moveTo != "" {
				ms, err := time.Parse(atLayout, moveTo)
				if err != nil {
					return fmt.Errorf("parsing --move-to: %w", err)
				}
				explicitMove = &scheduler.Interval{Start: ms, End: ms.Add(requested.Duration())}
			}

			return app.Locks.WithLock(app.Owner, func() error {
				return commitWithResolution(ctx, app, t, requested, strings.ToLower(onConflict), explicitMove)
			})
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Commit at an explicit start time (YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVar(&due, "due", "", "Soft deadline (YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVar(&kind, "kind", "other", "Task kind: meal, workout, morning, work, other")
	cmd.Flags().StringVar(&onConflict, "on-conflict", "", "Non-interactive strategy: replace, move, shift, cancel")
	cmd.Flags().StringVar(&moveTo, "move-to", "", "Explicit move target used with --on-conflict=move")
	cmd.Flags().IntVar(&minutes, "minutes", 30, "Estimated duration in minutes")
	cmd.Flags().IntVar(&priority, "priority", domain.PriorityNormal, "Priority: 1 high .. 3 low")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List backlog tasks in autoplan order",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.ListBacklog(context.Background(), app.Owner)
			if err != nil {
				return err
			}
			fmt.Print(formatBacklog(tasks))
			return nil
		},
	}
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Tasks.MarkDone(context.Background(), args[0])
		},
	}
}

func newTaskUnscheduleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unschedule ID",
		Short: "Return a committed task to the backlog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Tasks.Unschedule(context.Background(), args[0])
		},
	}
}

func newTaskRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Tasks.Delete(context.Background(), args[0])
		},
	}
}

// commitWithResolution drives the conflict protocol: commit, and while the
// outcome is a conflict, pick a strategy (flag or interactive prompt) and
// resolve against the current requested interval.
func commitWithResolution(ctx context.Context, app *App, t *domain.Task, requested scheduler.Interval, onConflict string, explicitMove *scheduler.Interval) error {
	req := contract.CommitRequest{Task: t, Requested: requested, Source: domain.SourceManual}

	res, err := app.Schedule.Commit(ctx, req)
	if err != nil {
		return err
	}

	for res.Outcome == contract.OutcomeConflict {
		fmt.Print(formatConflicts(res.Conflicts))

		strategy, err := chooseStrategy(app, onConflict, explicitMove)
		if err != nil {
			return err
		}
		// An explicit move target applies once; a re-entered conflict is
		// resolved against the new candidate interval.
		onConflict, explicitMove = "", nil

		req.Requested = res.Requested
		res, err = app.Schedule.Resolve(ctx, req, strategy)
		if err != nil {
			return err
		}
	}

	switch res.Outcome {
	case contract.OutcomeOK:
		fmt.Printf("scheduled: %s %s–%s\n", t.Title,
			t.PlannedStart.Format(atLayout), t.PlannedEnd.Format("15:04"))
		for _, m := range res.Moved {
			fmt.Printf("moved: %s → %s–%s\n", m.Title,
				m.PlannedStart.Format("15:04"), m.PlannedEnd.Format("15:04"))
		}
	case contract.OutcomeBlocked:
		fmt.Println(warnStyle.Render("blocked: a fixed task is in the way"))
	case contract.OutcomeNoSpace:
		fmt.Println(warnStyle.Render("no space: nothing fits within the day window"))
	case contract.OutcomeCancelled:
		fmt.Println("cancelled, nothing changed")
	}
	return nil
}
