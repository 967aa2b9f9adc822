package cli

import (
	"fmt"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change study days, daily window and time zone",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
		newSettingsEditCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(s))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var avail availabilityFlags
	var tz string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change individual settings",
		Example: `  studyplan settings set --days mon,wed,fri --from 19:00 --to 21:30
  studyplan settings set --tz Asia/Shanghai`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !avail.changed(cmd.Flags()) && !cmd.Flags().Changed("tz") {
				return fmt.Errorf("nothing to change (use --days, --from, --to or --tz)")
			}

			s, err := app.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			avail.apply(cmd.Flags(), s)
			if cmd.Flags().Changed("tz") {
				s.Timezone = tz
			}

			if err := app.Settings.Update(cmd.Context(), s); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(s))
			return nil
		},
	}

	avail.register(cmd.Flags())
	cmd.Flags().StringVar(&tz, "tz", "", "IANA time zone, empty for the system zone")

	return cmd
}

func newSettingsEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit settings in an interactive form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("settings edit needs an interactive terminal; use settings set")
			}

			current, err := app.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			values := newSettingsFormValues(current)
			if err := runForm(cmd, settingsForm(values)); err != nil {
				return err
			}

			s, err := values.settings()
			if err != nil {
				return err
			}
			if err := app.Settings.Update(cmd.Context(), s); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(s))
			return nil
		},
	}
}
