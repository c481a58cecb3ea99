package service

import (
	"context"
	"time"

	"github.com/alexanderramin/timeledger/internal/domain"
	"github.com/alexanderramin/timeledger/internal/importer"
	"github.com/alexanderramin/timeledger/internal/timetrack"
)

type EmployeeService interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}

type ClockService interface {
	// Record appends a clock event. A zero at means now.
	Record(ctx context.Context, subjectID string, kind domain.EventKind, at time.Time, note string) (*domain.ClockEvent, error)
	// ListRecent returns the newest events first. limit <= 0 means all.
	ListRecent(ctx context.Context, subjectID string, limit int) ([]domain.ClockEvent, error)
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Assign(ctx context.Context, taskID, subjectID, notes string) (*domain.Assignment, error)
	SetStatus(ctx context.Context, taskID string, status domain.TaskStatus) (*domain.Task, error)
	ListForEmployee(ctx context.Context, subjectID string) ([]domain.AssignedTask, error)
}

// Report is everything the presentation layers show for one employee.
type Report struct {
	Employee     *domain.Employee
	Summary      domain.EmployeeSummary
	Sessions     []timetrack.Session
	Ignored      int
	Final        timetrack.State
	Tasks        []domain.AssignedTask
	RecentEvents []domain.ClockEvent
}

// ReportResult is one entry of AllReports. Exactly one of Report and Err is set.
type ReportResult struct {
	Employee *domain.Employee
	Report   *Report
	Err      error
}

type StatsService interface {
	EmployeeReport(ctx context.Context, subjectID string) (*Report, error)
	AllReports(ctx context.Context) ([]ReportResult, error)
	// WorkedHours reduces the complete event log of every subject that has
	// one, without the per-report event limit. Keys are subject IDs.
	WorkedHours(ctx context.Context) (map[string]timetrack.SubjectResult, error)
}

// ImportResult holds the outcome of an export import.
type ImportResult struct {
	EmployeeCount   int
	EventCount      int
	TaskCount       int
	AssignmentCount int
}

type ImportService interface {
	Import(ctx context.Context, filePath string) (*ImportResult, error)
	ImportSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
