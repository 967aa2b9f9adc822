package cli

import (
	"fmt"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate, import and inspect multi-week plans",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(app),
		newPlanImportCmd(app),
		newPlanShowCmd(app),
		newPlanListCmd(app),
		newPlanRemoveCmd(app),
	)

	return cmd
}

func newPlanGenerateCmd(app *App) *cobra.Command {
	var goalID, title, start string
	var weeks int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a plan for a goal with the configured LLM",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGoalID(cmd.Context(), app, goalID)
			if err != nil {
				return err
			}
			req := contract.GeneratePlanRequest{GoalID: id, Title: title, WeekCount: weeks}
			if start != "" {
				if req.StartDate, err = parseDate("start date", start); err != nil {
					return err
				}
			}

			if app.interactive() {
				stop := formatter.StartSpinner(cmd.ErrOrStderr(), fmt.Sprintf("Generating a %d-week plan...", weeks))
				defer stop()
			}
			plan, err := app.Plans.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}

			printPlanCreated(cmd, "Generated", plan)
			return nil
		},
	}

	cmd.Flags().StringVar(&goalID, "goal", "", "Goal ID or prefix")
	cmd.Flags().IntVar(&weeks, "weeks", 4, "Number of weeks")
	cmd.Flags().StringVar(&start, "start", "", "First day (YYYY-MM-DD), snapped back to Monday; defaults to this week")
	cmd.Flags().StringVar(&title, "title", "", "Plan title (defaults to the goal title)")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

func newPlanImportCmd(app *App) *cobra.Command {
	var goalID string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a plan from a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.ImportPlanRequest{Path: args[0]}
			if goalID != "" {
				id, err := resolveGoalID(cmd.Context(), app, goalID)
				if err != nil {
					return err
				}
				req.GoalID = id
			}

			plan, err := app.Plans.Import(cmd.Context(), req)
			if err != nil {
				return err
			}

			printPlanCreated(cmd, "Imported", plan)
			return nil
		},
	}

	cmd.Flags().StringVar(&goalID, "goal", "", "Attach the plan to this goal")

	return cmd
}

func printPlanCreated(cmd *cobra.Command, verb string, plan *domain.Plan) {
	tasks := 0
	for _, w := range plan.Weeks {
		tasks += len(w.Tasks)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s plan %s (%d weeks, %d tasks)\n\n", verb, formatter.Bold(plan.Title), plan.WeekCount, tasks)
	fmt.Fprint(out, formatter.FormatPlan(plan))
	fmt.Fprintf(out, "\n%s\n", formatter.Dim("Next: studyplan schedule --plan "+plan.ID[:8]+" --week 1"))
}

func newPlanShowCmd(app *App) *cobra.Command {
	var week int

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a plan, or one week of it with --week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolvePlanID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}

			if week > 0 {
				w, err := app.Plans.GetWeek(cmd.Context(), id, week)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeek(w))
				return nil
			}

			plan, err := app.Plans.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(plan))
			return nil
		},
	}

	cmd.Flags().IntVar(&week, "week", 0, "Show the tasks of this week")

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	var goalID string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			if goalID != "" {
				id, err := resolveGoalID(cmd.Context(), app, goalID)
				if err != nil {
					return err
				}
				goalID = id
			}
			plans, err := app.Plans.List(cmd.Context(), goalID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanList(plans))
			return nil
		},
	}

	cmd.Flags().StringVar(&goalID, "goal", "", "Only plans of this goal")

	return cmd
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a plan and its scheduled tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolvePlanID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Plans.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
