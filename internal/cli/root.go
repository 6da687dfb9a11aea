package cli

import (
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/repository"
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/service"
	"github.com/spf13/cobra"
)

// App holds the service and repository handles used by CLI commands.
type App struct {
	Session   service.SessionService
	Schedules repository.ScheduleRepo

	// IsInteractive reports whether stdin is a terminal. The bare
	// "studyplan" invocation opens the shell on a terminal and runs a
	// piped script otherwise.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "studyplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "studyplan",
		Short: "Multi-subject study scheduler chatbot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return runScript(app, cmd, "")
			}
			return runShell(app)
		},
	}

	root.AddCommand(
		newShellCmd(app),
		newRunCmd(app),
		newSchedulesCmd(app),
		newExportCmd(app),
	)

	return root
}
