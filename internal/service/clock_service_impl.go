package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/timeledger/internal/domain"
	"github.com/alexanderramin/timeledger/internal/repository"
	"github.com/google/uuid"
)

type clockService struct {
	events    repository.ClockEventRepo
	employees repository.EmployeeRepo
	observer  UseCaseObserver
}

func NewClockService(events repository.ClockEventRepo, employees repository.EmployeeRepo, observers ...UseCaseObserver) ClockService {
	return &clockService{
		events:    events,
		employees: employees,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Record stores the event as given. Whether it fits the employee's current
// state is decided when hours are computed, not here.
func (s *clockService) Record(ctx context.Context, subjectID string, kind domain.EventKind, at time.Time, note string) (event *domain.ClockEvent, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"employee_id": subjectID,
		"kind":        string(kind),
	}
	defer observe(ctx, s.observer, "record-clock-event", startedAt, fields, &err)

	if subjectID == "" {
		return nil, invalid("employee_id", "is required")
	}
	if !kind.Valid() {
		return nil, invalid("kind", "unknown event kind %q", kind)
	}
	if _, err = s.employees.GetByID(ctx, subjectID); err != nil {
		return nil, fmt.Errorf("employee %s: %w", subjectID, err)
	}

	if at.IsZero() {
		at = startedAt
	}
	event = &domain.ClockEvent{
		ID:        uuid.New().String(),
		SubjectID: subjectID,
		Kind:      kind,
		Timestamp: at.UTC(),
		Note:      note,
		CreatedAt: startedAt,
	}
	if err = s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	fields["event_id"] = event.ID
	return event, nil
}

func (s *clockService) ListRecent(ctx context.Context, subjectID string, limit int) ([]domain.ClockEvent, error) {
	return s.events.ListBySubject(ctx, subjectID, limit)
}
