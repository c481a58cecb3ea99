package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/timeledger/internal/cli/formatter"
	"github.com/alexanderramin/timeledger/internal/domain"
	"github.com/alexanderramin/timeledger/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type detailTab int

const (
	tabTasks detailTab = iota
	tabTime
)

func (t detailTab) String() string {
	if t == tabTime {
		return "Time entries"
	}
	return "Tasks"
}

// reportLoadedMsg carries one employee's report.
type reportLoadedMsg struct {
	subjectID string
	report    *service.Report
	err       error
}

// employeeDetailView shows one employee's summary with a Tasks tab and a
// Time entries tab.
type employeeDetailView struct {
	state    *panelState
	employee *domain.Employee
	report   *service.Report
	tab      detailTab
	loading  bool
	err      error
	vp       viewport.Model
}

func newEmployeeDetailView(state *panelState, employee *domain.Employee) *employeeDetailView {
	vp := viewport.New(max(state.Width, 20), state.ContentHeight())
	return &employeeDetailView{
		state:    state,
		employee: employee,
		loading:  true,
		vp:       vp,
	}
}

func (v *employeeDetailView) ID() ViewID    { return ViewEmployeeDetail }
func (v *employeeDetailView) Title() string { return v.employee.FullName() }

func (v *employeeDetailView) ShortHelp() []key.Binding {
	return []key.Binding{keyTab, keyUp, keyDown}
}

func (v *employeeDetailView) Init() tea.Cmd {
	return v.load()
}

func (v *employeeDetailView) load() tea.Cmd {
	stats := v.state.App.Stats
	subjectID := v.employee.ID
	return func() tea.Msg {
		report, err := stats.EmployeeReport(context.Background(), subjectID)
		return reportLoadedMsg{subjectID: subjectID, report: report, err: err}
	}
}

func (v *employeeDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		if msg.subjectID != v.employee.ID {
			return v, nil
		}
		v.loading = false
		v.err = msg.err
		v.report = msg.report
		v.vp.SetContent(v.body())
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.WindowSizeMsg:
		v.vp.Width = max(msg.Width, 20)
		v.vp.Height = v.state.ContentHeight()
		return v, nil

	case tea.KeyMsg:
		if key.Matches(msg, keyTab) {
			v.tab = (v.tab + 1) % 2
			v.vp.SetContent(v.body())
			v.vp.GotoTop()
			return v, nil
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *employeeDetailView) body() string {
	if v.report == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(formatter.RenderBox(v.employee.FullName(), formatter.FormatReportSummary(v.report, v.state.App.Currency)))
	b.WriteString("\n\n")
	b.WriteString(v.renderTabs())
	b.WriteString("\n\n")
	switch v.tab {
	case tabTasks:
		b.WriteString(formatter.FormatAssignedTasks(v.report.Tasks, v.state.App.Currency))
	case tabTime:
		b.WriteString(formatter.FormatEvents(v.report.RecentEvents))
	}
	return b.String()
}

func (v *employeeDetailView) renderTabs() string {
	tabs := make([]string, 0, 2)
	for _, t := range []detailTab{tabTasks, tabTime} {
		if t == v.tab {
			tabs = append(tabs, formatter.StyleHeader.Render("["+t.String()+"]"))
		} else {
			tabs = append(tabs, formatter.Dim(" "+t.String()+" "))
		}
	}
	return strings.Join(tabs, " ")
}

func (v *employeeDetailView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading report...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	return v.vp.View()
}
