package cli

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/service"
	"github.com/spf13/cobra"
)

// APIKeyStore persists the hosted LLM API key. *keyring.Store satisfies it.
type APIKeyStore interface {
	Set(key string) error
	Delete() error
}

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Goals    service.GoalService
	Plans    service.PlanService
	Schedule service.ScheduleService
	Tasks    service.TaskService
	Settings service.SettingsService
	APIKeys  APIKeyStore

	// IsInteractive reports whether stdin is a terminal. Forms and the
	// generation spinner only run when it returns true.
	IsInteractive func() bool
	// Now defaults to time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "studyplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "studyplan",
		Short:         "Weekly study planner and task scheduler",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGoalCmd(app),
		newPlanCmd(app),
		newScheduleCmd(app),
		newTaskCmd(app),
		newSettingsCmd(app),
		newAPIKeyCmd(app),
	)

	return root
}
