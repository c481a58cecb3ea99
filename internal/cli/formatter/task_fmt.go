package formatter

import (
	"github.com/alexanderramin/timeledger/internal/domain"
)

// FormatTaskList renders tasks as a table.
func FormatTaskList(tasks []domain.Task, currency string) string {
	if len(tasks) == 0 {
		return Dim("No tasks.") + "\n"
	}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			TruncID(t.ID),
			Bold(t.Title),
			OrDash(t.CustomerName),
			TaskStatusPill(t.Status),
			compensationCell(t.SpecialCompensation, currency),
		})
	}
	return RenderTable([]string{"ID", "TITLE", "CUSTOMER", "STATUS", "BONUS"}, rows)
}

// FormatAssignedTasks renders an employee's tasks with their progress notes.
func FormatAssignedTasks(tasks []domain.AssignedTask, currency string) string {
	if len(tasks) == 0 {
		return Dim("No assigned tasks.") + "\n"
	}
	rows := make([][]string, 0, len(tasks))
	for _, at := range tasks {
		rows = append(rows, []string{
			Bold(at.Task.Title),
			OrDash(at.Task.CustomerName),
			TaskStatusPill(at.Task.Status),
			compensationCell(at.Task.SpecialCompensation, currency),
			OrDash(at.Assignment.ProgressNotes),
		})
	}
	return RenderTable([]string{"TITLE", "CUSTOMER", "STATUS", "BONUS", "NOTES"}, rows)
}

func compensationCell(c *float64, currency string) string {
	if c == nil {
		return Dim("--")
	}
	return StyleYellow.Render(FormatMoney(*c, currency))
}
