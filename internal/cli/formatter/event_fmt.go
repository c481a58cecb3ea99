package formatter

import "github.com/alexanderramin/timeledger/internal/domain"

// FormatEvents renders clock events in the order given.
func FormatEvents(events []domain.ClockEvent) string {
	if len(events) == 0 {
		return Dim("No time entries.") + "\n"
	}
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			TruncID(e.ID),
			EventKindLabel(e.Kind),
			EventTime(e.Timestamp),
			OrDash(e.Note),
		})
	}
	return RenderTable([]string{"ID", "TYPE", "TIME", "NOTE"}, rows)
}

// FormatRecorded confirms a single recorded event.
func FormatRecorded(e *domain.ClockEvent, employeeName string) string {
	return StyleGreen.Render("✔ ") + EventKindLabel(e.Kind) + " recorded for " +
		Bold(employeeName) + Dim(" at "+EventTime(e.Timestamp)) + "\n"
}
