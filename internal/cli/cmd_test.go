package cli

import (
	"bytes"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/timeledger/internal/domain"
	"github.com/alexanderramin/timeledger/internal/repository"
	"github.com/alexanderramin/timeledger/internal/service"
	"github.com/alexanderramin/timeledger/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testAppWithDB wires a full App backed by an in-memory DB and also returns
// the database so tests can seed rows the services would reject.
func testAppWithDB(t *testing.T) (*App, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	employees := repository.NewSQLiteEmployeeRepo(database)
	events := repository.NewSQLiteClockEventRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	assignments := repository.NewSQLiteAssignmentRepo(database)

	return &App{
		Employees:  service.NewEmployeeService(employees),
		Clock:      service.NewClockService(events, employees),
		Tasks:      service.NewTaskService(tasks, assignments, uow),
		Stats:      service.NewStatsService(employees, events, tasks, assignments, 50),
		Import:     service.NewImportService(uow),
		Currency:   "€",
		EventLimit: 50,
		HTTPAddr:   "127.0.0.1:0",
		// Handler left nil; the API has its own tests.
	}, database
}

func testApp(t *testing.T) *App {
	t.Helper()
	app, _ := testAppWithDB(t)
	return app
}

func seedEmployee(t *testing.T, app *App, first, last string, opts ...testutil.EmployeeOption) *domain.Employee {
	t.Helper()
	e := testutil.NewTestEmployee(first, last, opts...)
	require.NoError(t, app.Employees.Create(context.Background(), e))
	return e
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- employee ---

func TestEmployeeAddAndList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "employee", "add", "--first", "Ada", "--last", "Lovelace", "--email", "ada@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Created employee Ada Lovelace")

	out, err = executeCmd(t, app, "employee", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "ada@example.com")
}

func TestEmployeeAdd_AdminRole(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "emp", "add", "--first", "Grace", "--admin")
	require.NoError(t, err)

	list, err := app.Employees.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.RoleAdmin, list[0].Role)
}

func TestEmployeeAdd_RequiresFirstName(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "employee", "add", "--last", "Nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first")
}

func TestEmployeeAdd_InvalidEmail(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "employee", "add", "--first", "Ada", "--email", "not-an-email")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestEmployeeShow_ByEmail(t *testing.T) {
	app := testApp(t)
	seedEmployee(t, app, "Ada", "Lovelace", testutil.WithEmail("ada@example.com"))

	out, err := executeCmd(t, app, "employee", "show", "ADA@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada Lovelace")
}

func TestEmployeeRemove_RequiresForce(t *testing.T) {
	app := testApp(t)
	e := seedEmployee(t, app, "Ada", "Lovelace")

	_, err := executeCmd(t, app, "employee", "remove", e.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = executeCmd(t, app, "employee", "remove", e.ID[:8], "--force")
	require.NoError(t, err)

	_, err = app.Employees.GetByID(context.Background(), e.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEmployeeShow_UnknownEmployee(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "employee", "show", "zzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "employee not found")
}

func TestPickMatch(t *testing.T) {
	id, err := pickMatch("task", "ab", []string{"abc"})
	require.NoError(t, err)
	assert.Equal(t, "abc", id)

	_, err = pickMatch("task", "ab", []string{"abc", "abd"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")

	_, err = pickMatch("task", "ab", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

// --- clock ---

func TestClock_FullDayThenStats(t *testing.T) {
	app := testApp(t)
	e := seedEmployee(t, app, "Ada", "Lovelace")

	steps := []struct {
		sub string
		at  string
	}{
		{"in", "2025-03-10T08:00:00Z"},
		{"pause", "2025-03-10T12:00:00Z"},
		{"resume", "2025-03-10T12:30:00Z"},
		{"out", "2025-03-10T16:00:00Z"},
	}
	for _, s := range steps {
		out, err := executeCmd(t, app, "clock", s.sub, "--employee", e.ID, "--at", s.at)
		require.NoError(t, err, s.sub)
		assert.Contains(t, out, "recorded for")
	}

	out, err := executeCmd(t, app, "stats", e.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "7.5h")
	assert.Contains(t, out, "OFF")
}

func TestClockRecord_KindFlag(t *testing.T) {
	app := testApp(t)
	e := seedEmployee(t, app, "Ada", "Lovelace")

	out, err := executeCmd(t, app, "clock", "record", "-e", e.ID, "--kind", "pause-start", "--note", "coffee")
	require.NoError(t, err)
	assert.Contains(t, out, "Pause Start")

	events, err := app.Clock.ListRecent(context.Background(), e.ID, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventPauseStart, events[0].Kind)
	assert.Equal(t, "coffee", events[0].Note)
}

func TestClockRecord_RejectsUnknownKind(t *testing.T) {
	app := testApp(t)
	e := seedEmployee(t, app, "Ada", "Lovelace")

	_, err := executeCmd(t, app, "clock", "record", "-e", e.ID, "--kind", "lunch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown event kind")
}

func TestClockIn_UnknownEmployee(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "clock", "in", "--employee", "nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "employee not found")
}

func TestClockList_NewestFirst(t *testing.T) {
	app := testApp(t)
	e := seedEmployee(t, app, "Ada", "Lovelace")

	_, err := executeCmd(t, app, "clock", "in", "-e", e.ID, "--at", "2025-03-10T08:00:00Z")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "clock", "out", "-e", e.ID, "--at", "2025-03-10T09:00:00Z")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "clock", "list", "-e", e.ID)
	require.NoError(t, err)
	assert.Less(t, bytes.Index([]byte(out), []byte("Check-Out")), bytes.Index([]byte(out), []byte("Check-In")))

	out, err = executeCmd(t, app, "clock", "list", "-e", e.ID, "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Check-Out")
	assert.NotContains(t, out, "Check-In")
}

func TestClock_BareShowsHelpWhenNotInteractive(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "clock")
	require.NoError(t, err)
	assert.Contains(t, out, "Available Commands")
}

func TestParseEventTime(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC)

	got, err := parseEventTime("", now)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	got, err = parseEventTime("2025-03-09T08:00:00+01:00", now)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 3, 9, 7, 0, 0, 0, time.UTC)))

	got, err = parseEventTime("08:30", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC), got)

	_, err = parseEventTime("yesterday", now)
	assert.Error(t, err)
}

// --- task ---

func TestTask_AddAssignCompleteAndStats(t *testing.T) {
	app := testApp(t)
	e := seedEmployee(t, app, "Ada", "Lovelace")

	_, err := executeCmd(t, app, "task", "add", "Install boiler", "--customer", "ACME", "--compensation", "15.5")
	require.NoError(t, err)

	tasks, err := app.Tasks.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	taskID := tasks[0].ID

	_, err = executeCmd(t, app, "task", "assign", taskID[:8], "--employee", e.ID, "--notes", "bring tools")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "task", "status", taskID, "completed")
	require.NoError(t, err)
	assert.Contains(t, out, "Completed")

	out, err = executeCmd(t, app, "task", "list", "--employee", e.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Install boiler")
	assert.Contains(t, out, "bring tools")

	out, err = executeCmd(t, app, "stats", e.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "15.50 €")
	assert.Contains(t, out, "1/1")
}

func TestTaskStatus_AcceptsDashedNames(t *testing.T) {
	app := testApp(t)
	task := testutil.NewTestTask("Paint fence")
	require.NoError(t, app.Tasks.Create(context.Background(), task))

	_, err := executeCmd(t, app, "task", "status", task.ID, "in-progress")
	require.NoError(t, err)

	got, err := app.Tasks.GetByID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, got.Status)
}

func TestTaskStatus_TerminalTaskRejected(t *testing.T) {
	app := testApp(t)
	task := testutil.NewTestTask("Paint fence", testutil.WithTaskStatus(domain.TaskCancelled))
	require.NoError(t, app.Tasks.Create(context.Background(), task))

	_, err := executeCmd(t, app, "task", "status", task.ID, "completed")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestTaskAdd_NoCompensationFlagLeavesNil(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "add", "Sweep")
	require.NoError(t, err)

	tasks, err := app.Tasks.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Nil(t, tasks[0].SpecialCompensation)
}

// --- stats ---

func TestStatsAll_IsolatesBrokenLog(t *testing.T) {
	app, database := testAppWithDB(t)
	good := seedEmployee(t, app, "Ada", "Lovelace")
	bad := seedEmployee(t, app, "Bob", "Builder")

	events := repository.NewSQLiteClockEventRepo(database)
	for _, e := range testutil.NewTestDay(good.ID, 8, 8, 1) {
		require.NoError(t, events.Create(context.Background(), e))
	}
	require.NoError(t, events.Create(context.Background(), testutil.NewTestEvent(bad.ID, "lunch", testutil.At(12))))

	out, err := executeCmd(t, app, "stats", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "7.0h")
	assert.Contains(t, out, "Bob Builder")
	assert.Contains(t, out, "lunch")

	_, err = executeCmd(t, app, "stats", bad.ID)
	require.Error(t, err)
}

func TestStats_NoEmployees(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "No employees yet.")
}

// --- import ---

func TestImportCmd(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "export.json")
	data := `{
  "employees": [{"id": "u1", "first_name": "Ada", "last_name": "Lovelace", "email": "ada@example.com"}],
  "time_entries": [
    {"id": "e1", "user_id": "u1", "entry_type": "check_in", "timestamp": "2025-03-10T08:00:00Z"},
    {"id": "e2", "user_id": "u1", "entry_type": "check_out", "timestamp": "2025-03-10T12:00:00Z"}
  ],
  "tasks": [{"id": "t1", "title": "Install boiler", "status": "completed", "special_compensation": 20}],
  "task_assignments": [{"task_id": "t1", "user_id": "u1"}]
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, err := executeCmd(t, app, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 employees, 2 time entries, 1 tasks, 1 assignments")

	out, err = executeCmd(t, app, "stats", "u1")
	require.NoError(t, err)
	assert.Contains(t, out, "4.0h")
	assert.Contains(t, out, "20.00 €")
}

func TestImportCmd_MissingFile(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "import", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

// --- serve / panel ---

func TestServe_WithoutHandler(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestPanel_RequiresTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "panel")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
