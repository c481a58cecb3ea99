package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPanelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "panel",
		Short: "Browse employees, tasks and time entries interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("panel needs an interactive terminal; use 'timeledger stats' instead")
			}
			p := tea.NewProgram(newPanelModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
