package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/timeledger/internal/domain"
	"github.com/google/uuid"
)

var testEmailCounter atomic.Int64

// Day is the reference date most fixtures are built around.
var Day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

// At returns Day plus the given hours, e.g. At(8.5) is 08:30.
func At(hours float64) time.Time {
	return Day.Add(time.Duration(hours * float64(time.Hour)))
}

// Employee options
type EmployeeOption func(*domain.Employee)

func WithRole(r domain.EmployeeRole) EmployeeOption {
	return func(e *domain.Employee) {
		e.Role = r
	}
}

func WithEmail(email string) EmployeeOption {
	return func(e *domain.Employee) {
		e.Email = email
	}
}

func NewTestEmployee(first, last string, opts ...EmployeeOption) *domain.Employee {
	n := testEmailCounter.Add(1)
	e := &domain.Employee{
		ID:        uuid.New().String(),
		FirstName: first,
		LastName:  last,
		Email:     fmt.Sprintf("employee%d@example.com", n),
		Role:      domain.RoleEmployee,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Clock event options
type EventOption func(*domain.ClockEvent)

func WithNote(note string) EventOption {
	return func(e *domain.ClockEvent) {
		e.Note = note
	}
}

func NewTestEvent(subjectID string, kind domain.EventKind, ts time.Time, opts ...EventOption) *domain.ClockEvent {
	e := &domain.ClockEvent{
		ID:        uuid.New().String(),
		SubjectID: subjectID,
		Kind:      kind,
		Timestamp: ts,
		CreatedAt: ts,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewTestDay returns a full working day for subjectID starting at startHour:
// check-in, a pause of pauseHours after two hours, and check-out after
// spanHours.
func NewTestDay(subjectID string, startHour, spanHours, pauseHours float64) []*domain.ClockEvent {
	return []*domain.ClockEvent{
		NewTestEvent(subjectID, domain.EventCheckIn, At(startHour)),
		NewTestEvent(subjectID, domain.EventPauseStart, At(startHour+2)),
		NewTestEvent(subjectID, domain.EventPauseEnd, At(startHour+2+pauseHours)),
		NewTestEvent(subjectID, domain.EventCheckOut, At(startHour+spanHours)),
	}
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithCompensation(amount float64) TaskOption {
	return func(t *domain.Task) {
		t.SpecialCompensation = &amount
	}
}

func WithCustomer(name string) TaskOption {
	return func(t *domain.Task) {
		t.CustomerName = name
	}
}

func WithCreatedAt(ts time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = ts
		t.UpdatedAt = ts
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		Title:     title,
		Status:    domain.TaskPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func NewTestAssignment(taskID, subjectID string) *domain.Assignment {
	return &domain.Assignment{
		ID:         uuid.New().String(),
		TaskID:     taskID,
		SubjectID:  subjectID,
		AssignedAt: time.Now().UTC(),
	}
}
