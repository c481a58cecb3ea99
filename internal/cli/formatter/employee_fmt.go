package formatter

import (
	"fmt"

	"github.com/alexanderramin/timeledger/internal/domain"
)

// FormatEmployeeList renders all employees as a table.
func FormatEmployeeList(employees []*domain.Employee) string {
	if len(employees) == 0 {
		return Dim("No employees yet. Add one with 'timeledger employee add'.") + "\n"
	}
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{
			TruncID(e.ID),
			Bold(e.FullName()),
			OrDash(e.Email),
			RoleBadge(e.Role),
			Dim(HumanDate(e.CreatedAt)),
		})
	}
	return RenderTable([]string{"ID", "NAME", "EMAIL", "ROLE", "SINCE"}, rows)
}

// FormatEmployee renders a single employee card.
func FormatEmployee(e *domain.Employee) string {
	content := fmt.Sprintf("%s  %s\n%s %s\n%s %s\n%s %s",
		StylePurple.Render("["+e.Initials()+"]"), Bold(e.FullName()),
		Dim("ID:   "), e.ID,
		Dim("Email:"), OrDash(e.Email),
		Dim("Role: "), RoleBadge(e.Role),
	)
	return RenderBox("Employee", content)
}
