package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/timeledger/internal/domain"
	"github.com/google/uuid"
)

// Converted holds the domain values produced from an import file, in
// insertion order.
type Converted struct {
	Employees   []*domain.Employee
	Events      []*domain.ClockEvent
	Tasks       []*domain.Task
	Assignments []*domain.Assignment
}

// Convert transforms a validated ImportSchema into domain objects ready for persistence.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
// Row ids are kept so re-exported data stays addressable; missing
// assignment ids are generated.
func Convert(schema *ImportSchema) (*Converted, error) {
	now := time.Now().UTC()
	out := &Converted{
		Employees:   make([]*domain.Employee, 0, len(schema.Employees)),
		Events:      make([]*domain.ClockEvent, 0, len(schema.TimeEntries)),
		Tasks:       make([]*domain.Task, 0, len(schema.Tasks)),
		Assignments: make([]*domain.Assignment, 0, len(schema.TaskAssignments)),
	}

	for _, e := range schema.Employees {
		createdAt, err := optionalTime(e.CreatedAt, now)
		if err != nil {
			return nil, fmt.Errorf("employee %s created_at: %w", e.ID, err)
		}
		role := domain.EmployeeRole(domain.CoalesceStr(e.Role, string(domain.RoleEmployee)))
		out.Employees = append(out.Employees, &domain.Employee{
			ID:        e.ID,
			FirstName: e.FirstName,
			LastName:  e.LastName,
			Email:     e.Email,
			Role:      role,
			CreatedAt: createdAt,
		})
	}

	for _, e := range schema.TimeEntries {
		ts, err := parseTimestamp(e.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("time entry %s timestamp: %w", e.ID, err)
		}
		createdAt, err := optionalTime(e.CreatedAt, ts)
		if err != nil {
			return nil, fmt.Errorf("time entry %s created_at: %w", e.ID, err)
		}
		out.Events = append(out.Events, &domain.ClockEvent{
			ID:        e.ID,
			SubjectID: e.UserID,
			Kind:      domain.EventKind(e.EntryType),
			Timestamp: ts,
			Note:      e.Notes,
			CreatedAt: createdAt,
		})
	}

	for _, t := range schema.Tasks {
		createdAt, err := optionalTime(t.CreatedAt, now)
		if err != nil {
			return nil, fmt.Errorf("task %s created_at: %w", t.ID, err)
		}
		updatedAt, err := optionalTime(t.UpdatedAt, createdAt)
		if err != nil {
			return nil, fmt.Errorf("task %s updated_at: %w", t.ID, err)
		}
		status := domain.TaskStatus(domain.CoalesceStr(t.Status, string(domain.TaskPending)))
		var comp *float64
		if t.SpecialCompensation != nil {
			v := *t.SpecialCompensation
			comp = &v
		}
		out.Tasks = append(out.Tasks, &domain.Task{
			ID:                  t.ID,
			Title:               t.Title,
			CustomerName:        t.CustomerName,
			Description:         t.Description,
			Status:              status,
			SpecialCompensation: comp,
			CreatedAt:           createdAt,
			UpdatedAt:           updatedAt,
		})
	}

	for _, a := range schema.TaskAssignments {
		assignedAt, err := optionalTime(a.AssignedAt, now)
		if err != nil {
			return nil, fmt.Errorf("assignment %s/%s assigned_at: %w", a.TaskID, a.UserID, err)
		}
		id := a.ID
		if id == "" {
			id = uuid.New().String()
		}
		out.Assignments = append(out.Assignments, &domain.Assignment{
			ID:            id,
			TaskID:        a.TaskID,
			SubjectID:     a.UserID,
			ProgressNotes: a.ProgressNotes,
			AssignedAt:    assignedAt,
		})
	}

	return out, nil
}

func optionalTime(s *string, fallback time.Time) (time.Time, error) {
	if s == nil || *s == "" {
		return fallback, nil
	}
	return parseTimestamp(*s)
}
