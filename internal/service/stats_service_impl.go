package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/timeledger/internal/domain"
	"github.com/alexanderramin/timeledger/internal/repository"
	"github.com/alexanderramin/timeledger/internal/stats"
	"github.com/alexanderramin/timeledger/internal/timetrack"
	"golang.org/x/sync/errgroup"
)

// reportConcurrency bounds how many employees AllReports loads at once.
const reportConcurrency = 4

type statsService struct {
	employees   repository.EmployeeRepo
	events      repository.ClockEventRepo
	tasks       repository.TaskRepo
	assignments repository.AssignmentRepo
	eventLimit  int
	observer    UseCaseObserver
}

// NewStatsService builds the reporting service. eventLimit caps how many of
// the newest clock events feed each report; 0 uses the whole log.
func NewStatsService(
	employees repository.EmployeeRepo,
	events repository.ClockEventRepo,
	tasks repository.TaskRepo,
	assignments repository.AssignmentRepo,
	eventLimit int,
	observers ...UseCaseObserver,
) StatsService {
	return &statsService{
		employees:   employees,
		events:      events,
		tasks:       tasks,
		assignments: assignments,
		eventLimit:  eventLimit,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *statsService) EmployeeReport(ctx context.Context, subjectID string) (report *Report, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"employee_id": subjectID}
	defer observe(ctx, s.observer, "employee-report", startedAt, fields, &err)

	var emp *domain.Employee
	emp, err = s.employees.GetByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	report, err = s.buildReport(ctx, emp)
	if err != nil {
		return nil, err
	}
	annotateReport(fields, report)
	return report, nil
}

// AllReports builds one report per employee. Employees are loaded
// concurrently; a failing employee only sets the Err of its own entry.
func (s *statsService) AllReports(ctx context.Context) (results []ReportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "all-reports", startedAt, fields, &err)

	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}

	results = make([]ReportResult, len(employees))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reportConcurrency)
	for i, emp := range employees {
		g.Go(func() error {
			report, err := s.buildReport(gctx, emp)
			results[i] = ReportResult{Employee: emp, Report: report, Err: err}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	fields["employees"] = len(results)
	fields["failed"] = failed
	return results, nil
}

func (s *statsService) WorkedHours(ctx context.Context) (results map[string]timetrack.SubjectResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "worked-hours", startedAt, fields, &err)

	events, err := s.events.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading clock events: %w", err)
	}
	results = timetrack.ComputeBatch(events)

	failed, ignored := 0, 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
		ignored += r.Result.Ignored
	}
	fields["subjects"] = len(results)
	fields["failed"] = failed
	fields["ignored_events"] = ignored
	return results, nil
}

func (s *statsService) buildReport(ctx context.Context, emp *domain.Employee) (*Report, error) {
	events, err := s.events.ListBySubject(ctx, emp.ID, s.eventLimit)
	if err != nil {
		return nil, fmt.Errorf("loading clock events: %w", err)
	}
	assignments, err := s.assignments.ListBySubject(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("loading assignments: %w", err)
	}
	var tasks []domain.Task
	if len(assignments) > 0 {
		ids := make([]string, 0, len(assignments))
		for _, a := range assignments {
			ids = append(ids, a.TaskID)
		}
		if tasks, err = s.tasks.ListByIDs(ctx, ids); err != nil {
			return nil, fmt.Errorf("loading tasks: %w", err)
		}
	}

	// Events arrive newest first; reversing restores recording order, which
	// Reduce keeps for equal timestamps.
	chronological := slices.Clone(events)
	slices.Reverse(chronological)
	result, err := timetrack.Reduce(chronological)
	if err != nil {
		return nil, err
	}

	return &Report{
		Employee:     emp,
		Summary:      stats.Summarize(result.TotalHours, tasks, assignments, emp.ID),
		Sessions:     result.Sessions,
		Ignored:      result.Ignored,
		Final:        result.Final,
		Tasks:        stats.AssignedTasks(tasks, assignments, emp.ID),
		RecentEvents: events,
	}, nil
}

func annotateReport(fields map[string]any, r *Report) {
	fields["sessions"] = len(r.Sessions)
	fields["ignored_events"] = r.Ignored
	fields["open_state"] = r.Final.String()
	fields["worked_hours"] = r.Summary.TotalWorkedHours
}
