package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/timeledger/internal/domain"
	"github.com/alexanderramin/timeledger/internal/repository"
	"github.com/alexanderramin/timeledger/internal/teatest"
	"github.com/alexanderramin/timeledger/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// panelDriver wraps teatest.Driver with access to the panel's view stack.
type panelDriver struct {
	*teatest.Driver
}

// newPanelDriver builds the panel, sizes it and drains Init, which loads the
// employee list from the in-memory database.
func newPanelDriver(t *testing.T, app *App) *panelDriver {
	t.Helper()
	d := teatest.New(t, newPanelModel(app),
		teatest.WithSize(120, 40),
		teatest.WithCmdTimeout(2*time.Second),
	)
	d.DrainInit()
	return &panelDriver{Driver: d}
}

func (d *panelDriver) model() panelModel {
	return d.Model.(panelModel)
}

func (d *panelDriver) ActiveViewID() ViewID {
	m := d.model()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

func (d *panelDriver) StackDepth() int {
	return len(d.model().viewStack)
}

// seedPanelData creates two employees; Ada has a worked day and a completed task.
func seedPanelData(t *testing.T) (*App, *domain.Employee, *domain.Employee) {
	t.Helper()
	app, database := testAppWithDB(t)
	ctx := context.Background()

	ada := seedEmployee(t, app, "Ada", "Lovelace")
	bob := seedEmployee(t, app, "Bob", "Builder")

	events := repository.NewSQLiteClockEventRepo(database)
	for _, e := range testutil.NewTestDay(ada.ID, 8, 8, 1) {
		require.NoError(t, events.Create(ctx, e))
	}

	task := testutil.NewTestTask("Install boiler", testutil.WithCompensation(12))
	require.NoError(t, app.Tasks.Create(ctx, task))
	_, err := app.Tasks.Assign(ctx, task.ID, ada.ID, "")
	require.NoError(t, err)
	_, err = app.Tasks.SetStatus(ctx, task.ID, domain.TaskCompleted)
	require.NoError(t, err)

	return app, ada, bob
}

func TestPanel_ListsEmployees(t *testing.T) {
	app, _, _ := seedPanelData(t)
	d := newPanelDriver(t, app)

	assert.Equal(t, ViewEmployeeList, d.ActiveViewID())
	d.RequireViewContains("timeledger", "Employees", "Bob Builder", "Ada Lovelace", "7.0h", "12.00 €")
}

func TestPanel_EmptyDatabase(t *testing.T) {
	d := newPanelDriver(t, testApp(t))

	d.RequireViewContains("No employees yet.")
	d.PressEnter()
	assert.Equal(t, 1, d.StackDepth())
}

func TestPanel_OpenDetailAndSwitchTabs(t *testing.T) {
	app, _, _ := seedPanelData(t)
	d := newPanelDriver(t, app)

	// Employees are ordered by last name: Builder before Lovelace.
	d.PressDown()
	d.PressEnter()

	require.Equal(t, ViewEmployeeDetail, d.ActiveViewID())
	d.RequireViewContains("Employees › Ada Lovelace", "[Tasks]", "Install boiler")
	d.RequireViewNotContains("Check-In")

	d.PressTab()
	d.RequireViewContains("[Time entries]", "Check-In", "Check-Out")
	d.RequireViewNotContains("Install boiler")

	d.PressTab()
	d.RequireViewContains("[Tasks]", "Install boiler")
}

func TestPanel_EscReturnsToList(t *testing.T) {
	app, _, _ := seedPanelData(t)
	d := newPanelDriver(t, app)

	d.PressEnter()
	require.Equal(t, ViewEmployeeDetail, d.ActiveViewID())
	d.RequireViewContains("Bob Builder", "No assigned tasks.")

	d.PressEsc()
	assert.Equal(t, ViewEmployeeList, d.ActiveViewID())
	assert.Equal(t, 1, d.StackDepth())

	// Esc on the root view is a no-op.
	d.PressEsc()
	assert.Equal(t, 1, d.StackDepth())
	assert.False(t, d.Quitting)
}

func TestPanel_RefreshPicksUpNewData(t *testing.T) {
	app, _, bob := seedPanelData(t)
	d := newPanelDriver(t, app)

	ctx := context.Background()
	_, err := app.Clock.Record(ctx, bob.ID, domain.EventCheckIn, time.Now().Add(-time.Hour), "")
	require.NoError(t, err)

	d.RequireViewNotContains("WORKING")
	d.PressKey('r')
	d.RequireViewContains("WORKING")
}

func TestPanel_ShowsBrokenLogInline(t *testing.T) {
	app, database := testAppWithDB(t)
	bad := seedEmployee(t, app, "Bob", "Builder")
	events := repository.NewSQLiteClockEventRepo(database)
	require.NoError(t, events.Create(context.Background(), testutil.NewTestEvent(bad.ID, "lunch", testutil.At(12))))

	d := newPanelDriver(t, app)
	d.RequireViewContains("Bob Builder", "invalid event kind")

	d.PressEnter()
	d.RequireViewContains("Error:", "invalid event kind")
}

func TestPanel_CursorStaysInBounds(t *testing.T) {
	app, _, _ := seedPanelData(t)
	d := newPanelDriver(t, app)

	d.PressUp()
	d.PressKey('j')
	d.PressKey('j')
	d.PressKey('j')
	d.PressEnter()
	d.RequireViewContains("Ada Lovelace", "Install boiler")
}

func TestPanel_ListRefreshedWhileDetailOpen(t *testing.T) {
	app, _, bob := seedPanelData(t)
	d := newPanelDriver(t, app)

	d.PressEnter()
	require.Equal(t, ViewEmployeeDetail, d.ActiveViewID())

	_, err := app.Clock.Record(context.Background(), bob.ID, domain.EventCheckIn, time.Now().Add(-time.Hour), "")
	require.NoError(t, err)
	d.PressKey('r')
	d.RequireViewContains("WORKING")

	d.PressEsc()
	d.RequireViewContains("WORKING")
}

func TestPanel_Quit(t *testing.T) {
	app, _, _ := seedPanelData(t)
	d := newPanelDriver(t, app)

	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}

func TestPanel_CtrlCQuitsFromDetail(t *testing.T) {
	app, _, _ := seedPanelData(t)
	d := newPanelDriver(t, app)

	d.PressEnter()
	d.PressCtrlC()
	assert.True(t, d.Quitting)
}
