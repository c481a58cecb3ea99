package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/timeledger/internal/cli/formatter"
	"github.com/alexanderramin/timeledger/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// reportsLoadedMsg carries the result of loading every employee's summary.
type reportsLoadedMsg struct {
	results []service.ReportResult
	err     error
}

// employeeListView lists every employee with their clock state and totals.
type employeeListView struct {
	state   *panelState
	results []service.ReportResult
	cursor  int
	loading bool
	err     error
}

func newEmployeeListView(state *panelState) *employeeListView {
	return &employeeListView{state: state, loading: true}
}

func (v *employeeListView) ID() ViewID    { return ViewEmployeeList }
func (v *employeeListView) Title() string { return "Employees" }

func (v *employeeListView) ShortHelp() []key.Binding {
	return []key.Binding{keyUp, keyDown, keySelect}
}

func (v *employeeListView) Init() tea.Cmd {
	return v.load()
}

func (v *employeeListView) load() tea.Cmd {
	stats := v.state.App.Stats
	return func() tea.Msg {
		results, err := stats.AllReports(context.Background())
		return reportsLoadedMsg{results: results, err: err}
	}
}

func (v *employeeListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.results = msg.results
		if v.cursor >= len(v.results) {
			v.cursor = max(len(v.results)-1, 0)
		}
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyUp):
			if v.cursor > 0 {
				v.cursor--
			}
		case key.Matches(msg, keyDown):
			if v.cursor < len(v.results)-1 {
				v.cursor++
			}
		case key.Matches(msg, keySelect):
			if v.cursor < len(v.results) {
				return v, pushView(newEmployeeDetailView(v.state, v.results[v.cursor].Employee))
			}
		}
	}
	return v, nil
}

func (v *employeeListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading employees...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if len(v.results) == 0 {
		return "\n  " + formatter.Dim("No employees yet.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, res := range v.results {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		var detail string
		if res.Err != nil {
			detail = formatter.StyleRed.Render("⚠ " + res.Err.Error())
		} else {
			detail = fmt.Sprintf("%s  %s  %s",
				formatter.StateIndicator(res.Report.Final),
				formatter.StyleBlue.Render(formatter.FormatHours(res.Report.Summary.TotalWorkedHours)),
				formatter.StyleYellow.Render(formatter.FormatMoney(res.Report.Summary.TotalCompensation, v.state.App.Currency)),
			)
		}

		fmt.Fprintf(&b, "%s%s  %s\n", cursor, nameStyle.Render(padRight(res.Employee.FullName(), 24)), detail)
	}
	return b.String()
}

// padRight pads s with spaces to width runes, truncating longer strings.
func padRight(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
