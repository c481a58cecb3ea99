package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/timeledger/internal/cli/formatter"
	"github.com/alexanderramin/timeledger/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ledgerHuhTheme styles huh forms with the formatter palette: orange accents
// on the focused field, everything dim once blurred.
func ledgerHuhTheme() *huh.Theme {
	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	t := huh.ThemeBase()

	f := &t.Focused
	f.Title = fg(formatter.ColorHeader).Bold(true)
	f.Description = fg(formatter.ColorDim)
	f.SelectSelector = fg(formatter.ColorHeader)
	f.SelectedOption = fg(formatter.ColorGreen)
	f.UnselectedOption = fg(formatter.ColorFg)
	f.FocusedButton = fg(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	f.BlurredButton = fg(formatter.ColorDim).Padding(0, 1)
	f.TextInput.Cursor = fg(formatter.ColorHeader)
	f.TextInput.Prompt = fg(formatter.ColorHeader)
	f.TextInput.Text = fg(formatter.ColorFg)
	f.TextInput.Placeholder = fg(formatter.ColorDim)

	b := &t.Blurred
	for _, s := range []*lipgloss.Style{
		&b.Title, &b.SelectSelector, &b.SelectedOption, &b.UnselectedOption,
		&b.TextInput.Prompt, &b.TextInput.Text,
	} {
		*s = fg(formatter.ColorDim)
	}

	return t
}

// employeeOptions builds select options labelled "Name (email)".
func employeeOptions(employees []*domain.Employee) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(employees))
	for _, e := range employees {
		label := e.FullName()
		if e.Email != "" {
			label = fmt.Sprintf("%s (%s)", label, e.Email)
		}
		options = append(options, huh.NewOption(label, e.ID))
	}
	return options
}

func eventKindOptions() []huh.Option[domain.EventKind] {
	options := make([]huh.Option[domain.EventKind], 0, len(domain.EventKinds))
	for _, k := range domain.EventKinds {
		options = append(options, huh.NewOption(k.Label(), k))
	}
	return options
}

// wizardClockEvent asks for the employee and the kind of event to record.
// It returns nil when there are no employees to pick from.
func wizardClockEvent(ctx context.Context, app *App, subjectID *string, kind *domain.EventKind, note *string) *huh.Form {
	employees, err := app.Employees.List(ctx)
	if err != nil || len(employees) == 0 {
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Who?").
				Options(employeeOptions(employees)...).
				Value(subjectID),
			huh.NewSelect[domain.EventKind]().
				Title("Record").
				Options(eventKindOptions()...).
				Value(kind),
			huh.NewInput().
				Title("Note (optional)").
				Value(note),
		),
	).WithTheme(ledgerHuhTheme()).WithShowHelp(false)
}
