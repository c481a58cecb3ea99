package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/timeledger/internal/domain"
	"github.com/alexanderramin/timeledger/internal/service"
)

const taskBarWidth = 10

// FormatReport renders the full statistics view of one employee: summary
// box, sessions, tasks and the recent time entries.
func FormatReport(r *service.Report, currency string) string {
	var b strings.Builder

	b.WriteString(RenderBox(r.Employee.FullName(), FormatReportSummary(r, currency)))
	b.WriteString("\n\n")

	b.WriteString(Header("Sessions"))
	b.WriteString("\n")
	if len(r.Sessions) == 0 {
		b.WriteString(Dim("No completed sessions.") + "\n")
	} else {
		rows := make([][]string, 0, len(r.Sessions))
		for _, s := range r.Sessions {
			rows = append(rows, []string{
				HumanDate(s.Start),
				s.Start.Local().Format("15:04"),
				s.End.Local().Format("15:04"),
				FormatDuration(s.Paused),
				StyleBlue.Render(FormatHours(s.WorkedHours)),
			})
		}
		b.WriteString(RenderTable([]string{"DATE", "IN", "OUT", "PAUSED", "WORKED"}, rows))
	}

	b.WriteString("\n")
	b.WriteString(Header("Tasks"))
	b.WriteString("\n")
	b.WriteString(FormatAssignedTasks(r.Tasks, currency))

	b.WriteString("\n")
	b.WriteString(Header("Time entries"))
	b.WriteString("\n")
	b.WriteString(FormatEvents(r.RecentEvents))

	return b.String()
}

// FormatReportSummary renders the lines shown in the box atop a report.
func FormatReportSummary(r *service.Report, currency string) string {
	completed, total := taskCounts(r.Tasks)
	lines := []string{
		fmt.Sprintf("%s %s", Dim("Status:      "), StateIndicator(r.Final)),
		fmt.Sprintf("%s %s", Dim("Worked:      "), StyleBlue.Render(FormatHours(r.Summary.TotalWorkedHours))),
		fmt.Sprintf("%s %s", Dim("Completed:   "), RenderProgress(completed, total, taskBarWidth)),
		fmt.Sprintf("%s %s", Dim("Compensation:"), StyleYellow.Render(FormatMoney(r.Summary.TotalCompensation, currency))),
	}
	if r.Ignored > 0 {
		lines = append(lines, StyleYellow.Render(fmt.Sprintf("⚠ %d out-of-sequence time entries were skipped", r.Ignored)))
	}
	return strings.Join(lines, "\n")
}

func taskCounts(tasks []domain.AssignedTask) (completed, total int) {
	for _, t := range tasks {
		total++
		if t.Task.Status == domain.TaskCompleted {
			completed++
		}
	}
	return completed, total
}

// FormatReportList renders one summary row per employee. Employees whose
// log could not be evaluated show the error instead of numbers.
func FormatReportList(results []service.ReportResult, currency string) string {
	if len(results) == 0 {
		return Dim("No employees yet.") + "\n"
	}
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			rows = append(rows, []string{
				TruncID(res.Employee.ID),
				Bold(res.Employee.FullName()),
				StyleRed.Render("error"),
				"", "", StyleRed.Render(res.Err.Error()),
			})
			continue
		}
		r := res.Report
		rows = append(rows, []string{
			TruncID(res.Employee.ID),
			Bold(res.Employee.FullName()),
			StateIndicator(r.Final),
			StyleBlue.Render(FormatHours(r.Summary.TotalWorkedHours)),
			fmt.Sprintf("%d", r.Summary.CompletedCount),
			StyleYellow.Render(FormatMoney(r.Summary.TotalCompensation, currency)),
		})
	}
	return RenderTable([]string{"ID", "NAME", "STATE", "HOURS", "DONE", "COMPENSATION"}, rows)
}
