package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/timeledger/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		inner := StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
		return boxStyle.Render(inner)
	}
	return boxStyle.Render(content)
}

// FormatHours renders worked hours with one decimal, e.g. "7.5h".
func FormatHours(h float64) string {
	if h < 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		h = 0
	}
	return fmt.Sprintf("%.1fh", h)
}

// FormatMoney renders an amount with two decimals and the currency symbol.
func FormatMoney(amount float64, currency string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	if currency == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}

// FormatDuration renders a pause length as "45m" or "1h 15m".
func FormatDuration(d time.Duration) string {
	min := int(d.Round(time.Minute).Minutes())
	if min <= 0 {
		return "0m"
	}
	h, m := min/60, min%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	return HumanDateFrom(t, time.Now())
}

// HumanDateFrom is HumanDate relative to now.
func HumanDateFrom(t, now time.Time) string {
	t = t.In(now.Location())
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// EventTime renders an event timestamp as "Jan 2, 2006 15:04" in local time.
func EventTime(t time.Time) string {
	return t.Local().Format("Jan 2, 2006 15:04")
}

// EventKindLabel returns the colored display label of an event kind.
// Unknown kinds are shown verbatim in red.
func EventKindLabel(k domain.EventKind) string {
	switch k {
	case domain.EventCheckIn:
		return StyleGreen.Render(k.Label())
	case domain.EventCheckOut:
		return StyleBlue.Render(k.Label())
	case domain.EventPauseStart, domain.EventPauseEnd:
		return StyleYellow.Render(k.Label())
	default:
		return StyleRed.Render(k.Label())
	}
}

// TaskStatusPill returns a colored status indicator for task status.
func TaskStatusPill(status domain.TaskStatus) string {
	switch status {
	case domain.TaskPending:
		return StyleBlue.Render("○ " + status.Label())
	case domain.TaskAssigned:
		return StylePurple.Render("◆ " + status.Label())
	case domain.TaskInProgress:
		return StyleGreen.Render("● " + status.Label())
	case domain.TaskCompleted:
		return StyleDim.Render("✔ " + status.Label())
	case domain.TaskCancelled:
		return StyleDim.Render("✖ " + status.Label())
	default:
		return StyleDim.Render(string(status))
	}
}

// RoleBadge returns a styled role label.
func RoleBadge(r domain.EmployeeRole) string {
	if r == domain.RoleAdmin {
		return StylePurple.Render("admin")
	}
	return StyleDim.Render(string(r))
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// OrDash returns s, or a dimmed "--" when s is empty.
func OrDash(s string) string {
	if s == "" {
		return Dim("--")
	}
	return s
}
