package repository

import (
	"context"

	"github.com/alexanderramin/timeledger/internal/domain"
)

type EmployeeRepo interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}

type ClockEventRepo interface {
	Create(ctx context.Context, e *domain.ClockEvent) error
	// ListBySubject returns the newest events first. limit <= 0 means no limit.
	ListBySubject(ctx context.Context, subjectID string, limit int) ([]domain.ClockEvent, error)
	ListAll(ctx context.Context) ([]domain.ClockEvent, error)
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
}

type AssignmentRepo interface {
	Create(ctx context.Context, a *domain.Assignment) error
	ListBySubject(ctx context.Context, subjectID string) ([]domain.Assignment, error)
	ListByTask(ctx context.Context, taskID string) ([]domain.Assignment, error)
}
