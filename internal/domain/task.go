package domain

import (
	"fmt"
	"time"
)

type Task struct {
	ID                  string
	Title               string
	CustomerName        string
	Description         string
	Status              TaskStatus
	SpecialCompensation *float64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Assignment links a task to the employee working on it.
type Assignment struct {
	ID            string
	TaskID        string
	SubjectID     string
	ProgressNotes string
	AssignedAt    time.Time
}

// AssignedTask is a task joined with the assignment that gives it to one employee.
type AssignedTask struct {
	Task       Task
	Assignment Assignment
}

// IsTerminal reports whether the task can no longer change status.
func (t *Task) IsTerminal() bool {
	return t.Status == TaskCompleted || t.Status == TaskCancelled
}

// SetStatus moves the task to status. Terminal tasks only accept their
// current status again.
func (t *Task) SetStatus(status TaskStatus, now time.Time) error {
	if !ValidTaskStatuses[status] {
		return fmt.Errorf("invalid task status %q", status)
	}
	if t.Status == status {
		return nil
	}
	if t.IsTerminal() {
		return fmt.Errorf("cannot change status of %s task to %s", t.Status, status)
	}
	t.Status = status
	t.UpdatedAt = now
	return nil
}

// MarkAssigned promotes a pending task to assigned; other statuses are kept.
func (t *Task) MarkAssigned(now time.Time) {
	if t.Status == TaskPending || t.Status == "" {
		t.Status = TaskAssigned
		t.UpdatedAt = now
	}
}
