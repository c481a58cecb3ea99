package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/timeledger/internal/db"
	"github.com/alexanderramin/timeledger/internal/domain"
	"github.com/alexanderramin/timeledger/internal/repository"
	"github.com/alexanderramin/timeledger/internal/stats"
	"github.com/google/uuid"
)

type taskService struct {
	tasks       repository.TaskRepo
	assignments repository.AssignmentRepo
	uow         db.UnitOfWork
}

func NewTaskService(tasks repository.TaskRepo, assignments repository.AssignmentRepo, uow db.UnitOfWork) TaskService {
	return &taskService{tasks: tasks, assignments: assignments, uow: uow}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return invalid("title", "is required")
	}
	if t.Status == "" {
		t.Status = domain.TaskPending
	}
	if !domain.ValidTaskStatuses[t.Status] {
		return invalid("status", "unknown task status %q", t.Status)
	}
	if c := t.SpecialCompensation; c != nil && (*c < 0 || math.IsNaN(*c) || math.IsInf(*c, 0)) {
		return invalid("special_compensation", "must be a non-negative amount")
	}

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.List(ctx)
}

// Assign links the task to the employee and promotes a pending task to
// assigned, both in one transaction.
func (s *taskService) Assign(ctx context.Context, taskID, subjectID, notes string) (*domain.Assignment, error) {
	assignment := &domain.Assignment{
		ID:            uuid.New().String(),
		TaskID:        taskID,
		SubjectID:     subjectID,
		ProgressNotes: notes,
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txEmployees := repository.NewSQLiteEmployeeRepo(tx)
		txAssignments := repository.NewSQLiteAssignmentRepo(tx)

		task, err := txTasks.GetByID(ctx, taskID)
		if err != nil {
			return fmt.Errorf("task %s: %w", taskID, err)
		}
		if task.IsTerminal() {
			return invalid("task", "%s task cannot be assigned", task.Status)
		}
		if _, err := txEmployees.GetByID(ctx, subjectID); err != nil {
			return fmt.Errorf("employee %s: %w", subjectID, err)
		}

		existing, err := txAssignments.ListByTask(ctx, taskID)
		if err != nil {
			return err
		}
		for _, a := range existing {
			if a.SubjectID == subjectID {
				return invalid("task", "already assigned to %s", subjectID)
			}
		}

		now := time.Now().UTC()
		assignment.AssignedAt = now
		if err := txAssignments.Create(ctx, assignment); err != nil {
			return err
		}
		task.MarkAssigned(now)
		return txTasks.Update(ctx, task)
	})
	if err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *taskService) SetStatus(ctx context.Context, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := task.SetStatus(status, time.Now().UTC()); err != nil {
		return nil, invalid("status", "%s", err.Error())
	}
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) ListForEmployee(ctx context.Context, subjectID string) ([]domain.AssignedTask, error) {
	assignments, err := s.assignments.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.TaskID)
	}
	tasks, err := s.tasks.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return stats.AssignedTasks(tasks, assignments, subjectID), nil
}
