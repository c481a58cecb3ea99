package cli

import (
	"net/http"

	"github.com/alexanderramin/timeledger/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Employees service.EmployeeService
	Clock     service.ClockService
	Tasks     service.TaskService
	Stats     service.StatsService
	Import    service.ImportService

	// Currency is appended to money amounts in all output.
	Currency string
	// EventLimit is the default number of entries 'clock list' shows.
	EventLimit int

	// HTTPAddr is the default listen address of 'serve'.
	HTTPAddr string
	// Handler builds the HTTP API served by 'serve'. Nil disables the command.
	Handler func() http.Handler

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "timeledger" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "timeledger",
		Short:         "Employee time tracking and task statistics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newEmployeeCmd(app),
		newClockCmd(app),
		newTaskCmd(app),
		newStatsCmd(app),
		newImportCmd(app),
		newServeCmd(app),
		newPanelCmd(app),
	)

	return root
}
