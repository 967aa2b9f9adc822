package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/keyring"
	"github.com/spf13/cobra"
)

func newAPIKeyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apikey",
		Short: "Store or remove the Anthropic API key in the OS keyring",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set [KEY]",
			Short: "Store the API key (prompts when KEY is omitted)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if app.APIKeys == nil {
					return keyring.ErrKeyringUnavailable
				}
				var key string
				if len(args) == 1 {
					key = args[0]
				} else {
					if !app.interactive() {
						return fmt.Errorf("pass the key as an argument or run interactively")
					}
					if err := runForm(cmd, apiKeyForm(&key)); err != nil {
						return err
					}
				}

				if err := app.APIKeys.Set(strings.TrimSpace(key)); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "API key stored in the OS keyring.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove the stored API key",
			RunE: func(cmd *cobra.Command, args []string) error {
				if app.APIKeys == nil {
					return keyring.ErrKeyringUnavailable
				}
				err := app.APIKeys.Delete()
				if errors.Is(err, keyring.ErrNotFound) {
					fmt.Fprintln(cmd.OutOrStdout(), "No API key was stored.")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "API key removed.")
				return nil
			},
		},
	)

	return cmd
}
