package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/necomav/dayplan/internal/contract"
)

func newPlanCmd(app *App) *cobra.Command {
	var date string
	var days int

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Autoplan the backlog across the coming days",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			now := time.Now()
			start := now
			if date != "" {
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}
				start = parsed
			}

			req := contract.AutoplanRequest{
				OwnerID: app.Owner,
				Start:   start,
				Days:    days,
				Now:     &now,
			}

			var resp *contract.AutoplanResponse
			err := app.Locks.WithLock(app.Owner, func() error {
				var planErr error
				resp, planErr = app.Autoplan.Autoplan(ctx, req)
				return planErr
			})
			if err != nil {
				return err
			}

			fmt.Print(formatPlanSummary(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "First day to plan (YYYY-MM-DD), default today")
	cmd.Flags().IntVar(&days, "days", 1, "Number of consecutive days to plan")
	return cmd
}
