package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit the routine profile",
	}
	cmd.AddCommand(newProfileShowCmd(app), newProfileSetCmd(app))
	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the routine profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profile.Get(context.Background(), app.Owner)
			if err != nil {
				return err
			}
			fmt.Println(headerStyle.Render("Routine for " + p.OwnerID))
			fmt.Printf("  wake %s (+%dm buffer)   bed %s (-%dm buffer)\n",
				p.WakeTime, p.PostWakeBufferMin, p.BedTime, p.PreSleepBufferMin)
			fmt.Printf("  breakfast %s–%s  lunch %s–%s  dinner %s–%s  (%dm +%dm cooldown)\n",
				p.Breakfast.From, p.Breakfast.To, p.Lunch.From, p.Lunch.To,
				p.Dinner.From, p.Dinner.To, p.MealDurationMin, p.MealBufferAfterMin)
			fmt.Printf("  workout: enabled=%v block=%dm travel=%dm rest-days=%d no-sunday=%v\n",
				p.WorkoutEnabled, p.WorkoutBlockMin, p.TravelOnewayMin, p.RestDays, p.WorkoutNoSunday)
			fmt.Printf("  work %s–%s  task buffer %dm", p.WorkStart, p.WorkEnd, p.TaskBufferMin)
			if p.LatestTaskEnd != "" {
				fmt.Printf("  latest task end %s", p.LatestTaskEnd)
			}
			fmt.Println()
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var wake, bed, workStart, workEnd, latestEnd string
	var postWake, preSleep, mealDur, mealBuffer, workoutBlock, travel, restDays, taskBuffer int
	var workoutEnabled, noSunday bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update routine fields; unset flags keep their current value",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Profile.Get(ctx, app.Owner)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("wake") {
				p.WakeTime = wake
			}
			if cmd.Flags().Changed("bed") {
				p.BedTime = bed
			}
			if cmd.Flags().Changed("post-wake") {
				p.PostWakeBufferMin = postWake
			}
			if cmd.Flags().Changed("pre-sleep") {
				p.PreSleepBufferMin = preSleep
			}
			if cmd.Flags().Changed("meal-minutes") {
				p.MealDurationMin = mealDur
			}
			if cmd.Flags().Changed("meal-buffer") {
				p.MealBufferAfterMin = mealBuffer
			}
			if cmd.Flags().Changed("workout") {
				p.WorkoutEnabled = workoutEnabled
			}
			if cmd.Flags().Changed("workout-block") {
				p.WorkoutBlockMin = workoutBlock
			}
			if cmd.Flags().Changed("travel") {
				p.TravelOnewayMin = travel
			}
			if cmd.Flags().Changed("rest-days") {
				p.RestDays = restDays
			}
			if cmd.Flags().Changed("no-sunday") {
				p.WorkoutNoSunday = noSunday
			}
			if cmd.Flags().Changed("work-start") {
				p.WorkStart = workStart
			}
			if cmd.Flags().Changed("work-end") {
				p.WorkEnd = workEnd
			}
			if cmd.Flags().Changed("latest-end") {
				p.LatestTaskEnd = latestEnd
			}
			if cmd.Flags().Changed("task-buffer") {
				p.TaskBufferMin = taskBuffer
			}

			return app.Profile.Update(ctx, p)
		},
	}

	cmd.Flags().StringVar(&wake, "wake", "", "Wake time (HH:MM)")
	cmd.Flags().StringVar(&bed, "bed", "", "Bed time (HH:MM)")
	cmd.Flags().IntVar(&postWake, "post-wake", 0, "Post-wake buffer minutes")
	cmd.Flags().IntVar(&preSleep, "pre-sleep", 0, "Pre-sleep buffer minutes")
	cmd.Flags().IntVar(&mealDur, "meal-minutes", 0, "Meal duration minutes")
	cmd.Flags().IntVar(&mealBuffer, "meal-buffer", 0, "Post-meal cooldown minutes")
	cmd.Flags().BoolVar(&workoutEnabled, "workout", true, "Enable workout planning")
	cmd.Flags().IntVar(&workoutBlock, "workout-block", 0, "Workout core block minutes")
	cmd.Flags().IntVar(&travel, "travel", 0, "One-way travel minutes to the gym")
	cmd.Flags().IntVar(&restDays, "rest-days", 0, "Rest days between workouts")
	cmd.Flags().BoolVar(&noSunday, "no-sunday", true, "Skip workouts on Sundays")
	cmd.Flags().StringVar(&workStart, "work-start", "", "Work hours start (HH:MM)")
	cmd.Flags().StringVar(&workEnd, "work-end", "", "Work hours end (HH:MM)")
	cmd.Flags().StringVar(&latestEnd, "latest-end", "", "Latest autoplanned task end (HH:MM)")
	cmd.Flags().IntVar(&taskBuffer, "task-buffer", 0, "Inter-task buffer minutes for shifts")

	return cmd
}
