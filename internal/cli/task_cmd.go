package cli

import (
	"fmt"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "List and update scheduled tasks",
	}

	cmd.AddCommand(
		newTaskListCmd(app),
		newTaskStatusCmd(app, "done", "Mark a scheduled task as done", domain.ScheduledDone),
		newTaskStatusCmd(app, "skip", "Mark a scheduled task as skipped", domain.ScheduledSkipped),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var date, planID string
	var week int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List scheduled tasks for a day (default today) or a plan week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var tasks []*domain.ScheduledTask

			switch {
			case planID != "":
				if date != "" {
					return fmt.Errorf("use either --date or --plan/--week")
				}
				if week < 1 {
					return fmt.Errorf("--week is required with --plan")
				}
				id, err := resolvePlanID(ctx, app, planID)
				if err != nil {
					return err
				}
				if tasks, err = app.Tasks.ListByWeek(ctx, id, week); err != nil {
					return err
				}
			case week > 0:
				return fmt.Errorf("--plan is required with --week")
			default:
				day := app.now()
				if date != "" {
					var err error
					if day, err = parseDate("date", date); err != nil {
						return err
					}
				}
				var err error
				if tasks, err = app.Tasks.ListForDay(ctx, day); err != nil {
					return err
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to list (YYYY-MM-DD)")
	cmd.Flags().StringVar(&planID, "plan", "", "Plan ID or prefix")
	cmd.Flags().IntVar(&week, "week", 0, "Week number within --plan")

	return cmd
}

func newTaskStatusCmd(app *App, use, short string, status domain.ScheduledTaskStatus) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if status == domain.ScheduledDone {
				err = app.Tasks.MarkDone(cmd.Context(), args[0])
			} else {
				err = app.Tasks.Skip(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %s %s\n", formatter.TruncID(args[0]), formatter.TaskStatusPill(status))
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a scheduled task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", formatter.TruncID(args[0]))
			return nil
		},
	}
}
