package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/service"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	var planID string
	var week int
	var replace bool
	var avail availabilityFlags

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Place a plan week (or the whole plan) into concrete time slots",
		Long: `Schedule splits each task of the week across the selected study days and
packs the pieces into the daily window, easiest first. Work that does not
fit is reported, not stored.

--days, --from and --to override the saved settings for a single week.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolvePlanID(cmd.Context(), app, planID)
			if err != nil {
				return err
			}

			var responses []*contract.ScheduleWeekResponse
			if week > 0 {
				req := contract.ScheduleWeekRequest{PlanID: id, WeekNumber: week, Replace: replace}
				if avail.changed(cmd.Flags()) {
					s, err := app.Settings.Get(cmd.Context())
					if err != nil {
						return err
					}
					avail.apply(cmd.Flags(), s)
					req.Settings = s
				}
				resp, err := app.Schedule.ScheduleWeek(cmd.Context(), req)
				if err != nil {
					return scheduleError(err)
				}
				responses = append(responses, resp)
			} else {
				if avail.changed(cmd.Flags()) {
					return fmt.Errorf("--days, --from and --to need --week")
				}
				responses, err = app.Schedule.SchedulePlan(cmd.Context(), id, replace)
				if err != nil {
					return scheduleError(err)
				}
			}

			out := cmd.OutOrStdout()
			for i, resp := range responses {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprint(out, formatter.FormatScheduleResult(resp))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan ID or prefix")
	cmd.Flags().IntVar(&week, "week", 0, "Week number (default: every week of the plan)")
	cmd.Flags().BoolVar(&replace, "replace", false, "Drop tasks already scheduled for the week first")
	avail.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func scheduleError(err error) error {
	if errors.Is(err, service.ErrAlreadyScheduled) {
		return fmt.Errorf("%w (use --replace to reschedule)", err)
	}
	return err
}
