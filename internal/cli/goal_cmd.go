package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/spf13/cobra"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage learning goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalRemoveCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var v goalFormValues

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a learning goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(v.Title) == "" {
				if !app.interactive() {
					return fmt.Errorf("--title is required")
				}
				if err := runForm(cmd, goalForm(&v)); err != nil {
					return err
				}
			}

			g := &domain.Goal{
				Title:       v.Title,
				Description: v.Description,
				Subject:     v.Subject,
			}
			if v.Target != "" {
				target, err := parseDate("target date", v.Target)
				if err != nil {
					return err
				}
				g.TargetDate = &target
			}

			if err := app.Goals.Create(cmd.Context(), g); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created goal %s %s\n", formatter.Bold(g.Title), formatter.TruncID(g.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&v.Title, "title", "", "Goal title")
	cmd.Flags().StringVar(&v.Description, "description", "", "Longer description passed to the plan generator")
	cmd.Flags().StringVar(&v.Subject, "subject", "", "Subject, e.g. chinese")
	cmd.Flags().StringVar(&v.Target, "target", "", "Target date (YYYY-MM-DD)")

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := app.Goals.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGoalList(goals, app.now()))
			return nil
		},
	}
}

func newGoalRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a goal together with its plans and scheduled tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGoalID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			g, err := app.Goals.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			if !force && app.interactive() {
				confirmed := false
				if err := runForm(cmd, wizardConfirm(fmt.Sprintf("Delete %q and all of its plans?", g.Title), &confirmed)); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			if err := app.Goals.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted goal %s\n", formatter.Bold(g.Title))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")

	return cmd
}
