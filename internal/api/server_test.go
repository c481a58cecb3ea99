package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexanderramin/timeledger/internal/domain"
	"github.com/alexanderramin/timeledger/internal/repository"
	"github.com/alexanderramin/timeledger/internal/service"
	"github.com/alexanderramin/timeledger/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	handler   http.Handler
	employees repository.EmployeeRepo
	events    repository.ClockEventRepo
	logs      *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	employees := repository.NewSQLiteEmployeeRepo(database)
	events := repository.NewSQLiteClockEventRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	assignments := repository.NewSQLiteAssignmentRepo(database)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	srv := NewServer(Services{
		Employees: service.NewEmployeeService(employees),
		Clock:     service.NewClockService(events, employees),
		Stats:     service.NewStatsService(employees, events, tasks, assignments, 0),
	}, logger, 50)

	return &fixture{handler: srv.Routes(), employees: employees, events: events, logs: &logs}
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) seedEmployee(t *testing.T, first, last string) *domain.Employee {
	t.Helper()
	emp := testutil.NewTestEmployee(first, last)
	require.NoError(t, f.employees.Create(context.Background(), emp))
	return emp
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Contains(t, f.logs.String(), "msg=http_request method=GET path=/healthz status=200")
}

func TestEmployees_List(t *testing.T) {
	f := newFixture(t)
	f.seedEmployee(t, "Zoe", "Zimmer")
	f.seedEmployee(t, "Ali", "Adler")

	rec := f.do(t, http.MethodGet, "/api/employees", "")
	require.Equal(t, http.StatusOK, rec.Code)

	list := decode[[]employeeJSON](t, rec)
	require.Len(t, list, 2)
	assert.Equal(t, "Adler", list[0].LastName)
}

func TestEmployeeSummary(t *testing.T) {
	f := newFixture(t)
	emp := f.seedEmployee(t, "Sina", "Vogel")
	for _, e := range testutil.NewTestDay(emp.ID, 8, 8, 0.5) {
		require.NoError(t, f.events.Create(context.Background(), e))
	}

	rec := f.do(t, http.MethodGet, "/api/employees/"+emp.ID+"/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[reportJSON](t, rec)
	assert.InDelta(t, 7.5, body.Summary.TotalWorkedHours, 1e-9)
	require.Len(t, body.Sessions, 1)
	assert.InDelta(t, 30.0, body.Sessions[0].PausedMinutes, 1e-9)
	assert.Equal(t, "idle", body.State)
	assert.Equal(t, 0, body.IgnoredEvents)
}

func TestEmployeeSummary_Errors(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/employees/missing/summary", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)

	emp := f.seedEmployee(t, "Bad", "Log")
	require.NoError(t, f.events.Create(context.Background(), testutil.NewTestEvent(emp.ID, "lunch", testutil.At(12))))
	rec = f.do(t, http.MethodGet, "/api/employees/"+emp.ID+"/summary", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRecordAndListEvents(t *testing.T) {
	f := newFixture(t)
	emp := f.seedEmployee(t, "Post", "Man")
	base := "/api/employees/" + emp.ID + "/events"

	rec := f.do(t, http.MethodPost, base, `{"kind":"check_in","timestamp":"2025-03-10T08:00:00Z","note":"gate"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[eventJSON](t, rec)
	assert.Equal(t, "check_in", created.EntryType)
	assert.Equal(t, "gate", created.Notes)

	rec = f.do(t, http.MethodPost, base, `{"kind":"out","timestamp":"2025-03-10T12:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodGet, base+"?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]eventJSON](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "check_out", list[0].EntryType)

	rec = f.do(t, http.MethodGet, "/api/employees/"+emp.ID+"/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 4.0, decode[reportJSON](t, rec).Summary.TotalWorkedHours, 1e-9)
}

func TestRecordEvent_BadRequests(t *testing.T) {
	f := newFixture(t)
	emp := f.seedEmployee(t, "Bad", "Input")
	base := "/api/employees/" + emp.ID + "/events"

	tests := []struct {
		name string
		body string
		code int
	}{
		{"invalid json", `{"kind":`, http.StatusBadRequest},
		{"unknown kind", `{"kind":"lunch"}`, http.StatusBadRequest},
		{"bad timestamp", `{"kind":"check_in","timestamp":"tomorrow"}`, http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, base, tc.body)
			assert.Equal(t, tc.code, rec.Code)
		})
	}

	rec := f.do(t, http.MethodPost, "/api/employees/ghost/events", `{"kind":"check_in"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, base+"?limit=-3", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/employees/ghost/events", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSummaries_ReportsFailingEmployeeInline(t *testing.T) {
	f := newFixture(t)
	ok := f.seedEmployee(t, "Okay", "Person")
	bad := f.seedEmployee(t, "Broken", "Person")
	ctx := context.Background()
	for _, e := range testutil.NewTestDay(ok.ID, 9, 3, 0) {
		require.NoError(t, f.events.Create(ctx, e))
	}
	require.NoError(t, f.events.Create(ctx, testutil.NewTestEvent(bad.ID, "nap", testutil.At(13))))

	rec := f.do(t, http.MethodGet, "/api/summaries", "")
	require.Equal(t, http.StatusOK, rec.Code)

	entries := decode[[]summaryEntryJSON](t, rec)
	require.Len(t, entries, 2)
	for _, e := range entries {
		switch e.Employee.ID {
		case ok.ID:
			require.NotNil(t, e.Summary)
			assert.InDelta(t, 3.0, e.Summary.TotalWorkedHours, 1e-9)
			assert.Empty(t, e.Error)
		case bad.ID:
			assert.Nil(t, e.Summary)
			assert.Contains(t, e.Error, "nap")
		}
	}
}

func TestHours_SortedBySubjectWithInlineErrors(t *testing.T) {
	f := newFixture(t)
	ok := f.seedEmployee(t, "Okay", "Person")
	bad := f.seedEmployee(t, "Broken", "Person")
	ctx := context.Background()
	for _, e := range testutil.NewTestDay(ok.ID, 9, 3, 0) {
		require.NoError(t, f.events.Create(ctx, e))
	}
	require.NoError(t, f.events.Create(ctx, testutil.NewTestEvent(bad.ID, "nap", testutil.At(13))))

	rec := f.do(t, http.MethodGet, "/api/hours", "")
	require.Equal(t, http.StatusOK, rec.Code)

	entries := decode[[]hoursJSON](t, rec)
	require.Len(t, entries, 2)
	assert.Less(t, entries[0].SubjectID, entries[1].SubjectID)
	for _, e := range entries {
		switch e.SubjectID {
		case ok.ID:
			assert.InDelta(t, 3.0, e.Hours, 1e-9)
			assert.Equal(t, 1, e.Sessions)
			assert.Equal(t, "idle", e.State)
			assert.Empty(t, e.Error)
		case bad.ID:
			assert.Zero(t, e.Hours)
			assert.Contains(t, e.Error, "nap")
		default:
			t.Fatalf("unexpected subject %q", e.SubjectID)
		}
	}
}

func TestHours_EmptyLog(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/api/hours", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
