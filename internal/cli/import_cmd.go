package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import employees, time entries and tasks from a JSON export",
		Long: `Import a JSON export with "employees", "time_entries", "tasks" and
"task_assignments" arrays. The file is validated as a whole and imported in a
single transaction; nothing is written when any row is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.Import(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d employees, %d time entries, %d tasks, %d assignments\n",
				result.EmployeeCount, result.EventCount, result.TaskCount, result.AssignmentCount)
			return nil
		},
	}
}
