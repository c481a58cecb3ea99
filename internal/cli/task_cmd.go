package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/timeledger/internal/cli/formatter"
	"github.com/alexanderramin/timeledger/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks and assignments",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskAssignCmd(app),
		newTaskStatusCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var customer, description string
	var compensation float64

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := &domain.Task{
				Title:        args[0],
				CustomerName: customer,
				Description:  description,
			}
			if cmd.Flags().Changed("compensation") {
				t.SpecialCompensation = &compensation
			}
			if err := app.Tasks.Create(context.Background(), t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s %s\n", t.Title, formatter.TruncID(t.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "Customer name")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().Float64Var(&compensation, "compensation", 0, "Special compensation paid on completion")
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var employee string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally only those assigned to one employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if employee == "" {
				tasks, err := app.Tasks.List(ctx)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(tasks, app.Currency))
				return nil
			}

			subjectID, err := resolveEmployeeID(ctx, app, employee)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.ListForEmployee(ctx, subjectID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAssignedTasks(tasks, app.Currency))
			return nil
		},
	}

	cmd.Flags().StringVarP(&employee, "employee", "e", "", "Only tasks assigned to this employee")
	return cmd
}

func newTaskAssignCmd(app *App) *cobra.Command {
	var employee, notes string

	cmd := &cobra.Command{
		Use:   "assign TASK",
		Short: "Assign a task to an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			subjectID, err := resolveEmployeeID(ctx, app, employee)
			if err != nil {
				return err
			}
			if _, err := app.Tasks.Assign(ctx, taskID, subjectID, notes); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Assigned task %s to %s\n", formatter.TruncID(taskID), formatter.TruncID(subjectID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&employee, "employee", "e", "", "Employee ID, ID prefix or email")
	cmd.Flags().StringVar(&notes, "notes", "", "Progress notes")
	_ = cmd.MarkFlagRequired("employee")
	return cmd
}

func newTaskStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status TASK STATUS",
		Short: "Change a task's status (pending, assigned, in_progress, completed, cancelled)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			status := domain.TaskStatus(strings.ReplaceAll(strings.ToLower(args[1]), "-", "_"))
			task, err := app.Tasks.SetStatus(ctx, taskID, status)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", task.Title, formatter.TaskStatusPill(task.Status))
			return nil
		},
	}
}
