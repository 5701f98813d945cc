package cli

import (
	"github.com/spf13/cobra"

	"github.com/necomav/dayplan/internal/ownerlock"
	"github.com/necomav/dayplan/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks    service.TaskService
	Profile  service.ProfileService
	Anchors  service.AnchorService
	Autoplan service.AutoplanService
	Schedule service.ScheduleService

	// Locks serializes heavy operations per owner; the engine does not
	// arbitrate concurrent invocations itself.
	Locks *ownerlock.MutexMap

	// Owner is the acting owner id for all commands.
	Owner string

	// IsInteractive reports whether stdin is a terminal; conflict prompts
	// are only shown interactively.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "dayplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dayplan",
		Short: "Personal day planner: anchors, backlog autoplanning and conflict-aware scheduling",
	}

	root.AddCommand(
		newProfileCmd(app),
		newTaskCmd(app),
		newDayCmd(app),
		newPlanCmd(app),
	)

	return root
}
