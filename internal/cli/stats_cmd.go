package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/timeledger/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "stats [EMPLOYEE]",
		Short: "Show worked hours, completed tasks and compensation",
		Long: `Show the statistics of one employee, or a summary row for every
employee with --all (the default when no employee is given).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if all || len(args) == 0 {
				results, err := app.Stats.AllReports(ctx)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReportList(results, app.Currency))
				return nil
			}

			subjectID, err := resolveEmployeeID(ctx, app, args[0])
			if err != nil {
				return err
			}
			report, err := app.Stats.EmployeeReport(ctx, subjectID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(report, app.Currency))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Summarize every employee")
	return cmd
}
