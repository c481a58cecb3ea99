package importer

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/timeledger/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found. Time entry kinds are not
// checked; unknown kinds are stored and surface when hours are computed.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	employeeIDs := make(map[string]bool, len(schema.Employees))
	errs = append(errs, validateEmployees(schema.Employees, employeeIDs)...)
	errs = append(errs, validateTimeEntries(schema.TimeEntries, employeeIDs)...)

	taskIDs := make(map[string]bool, len(schema.Tasks))
	errs = append(errs, validateTasks(schema.Tasks, taskIDs)...)
	errs = append(errs, validateAssignments(schema.TaskAssignments, taskIDs, employeeIDs)...)

	return errs
}

func validateEmployees(employees []EmployeeImport, ids map[string]bool) []error {
	var errs []error
	for i, e := range employees {
		prefix := fmt.Sprintf("employees[%d]", i)
		if e.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[e.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, e.ID))
		} else {
			ids[e.ID] = true
		}
		if e.FirstName == "" {
			errs = append(errs, fmt.Errorf("%s.first_name is required", prefix))
		}
		if e.Role != "" && e.Role != string(domain.RoleEmployee) && e.Role != string(domain.RoleAdmin) {
			errs = append(errs, fmt.Errorf("%s.role: invalid value %q", prefix, e.Role))
		}
		errs = append(errs, validateOptionalTime(prefix+".created_at", e.CreatedAt)...)
	}
	return errs
}

func validateTimeEntries(entries []TimeEntryImport, employeeIDs map[string]bool) []error {
	var errs []error
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		prefix := fmt.Sprintf("time_entries[%d]", i)
		if e.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if seen[e.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, e.ID))
		} else {
			seen[e.ID] = true
		}
		if e.UserID == "" {
			errs = append(errs, fmt.Errorf("%s.user_id is required", prefix))
		} else if !employeeIDs[e.UserID] {
			errs = append(errs, fmt.Errorf("%s.user_id: unknown employee %q", prefix, e.UserID))
		}
		if e.EntryType == "" {
			errs = append(errs, fmt.Errorf("%s.entry_type is required", prefix))
		}
		if e.Timestamp == "" {
			errs = append(errs, fmt.Errorf("%s.timestamp is required", prefix))
		} else if _, err := parseTimestamp(e.Timestamp); err != nil {
			errs = append(errs, fmt.Errorf("%s.timestamp: invalid timestamp %q (expected RFC 3339)", prefix, e.Timestamp))
		}
		errs = append(errs, validateOptionalTime(prefix+".created_at", e.CreatedAt)...)
	}
	return errs
}

func validateTasks(tasks []TaskImport, ids map[string]bool) []error {
	var errs []error
	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[t.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, t.ID))
		} else {
			ids[t.ID] = true
		}
		if t.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if t.Status != "" && !domain.ValidTaskStatuses[domain.TaskStatus(t.Status)] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, t.Status))
		}
		if c := t.SpecialCompensation; c != nil && (*c < 0 || math.IsNaN(*c) || math.IsInf(*c, 0)) {
			errs = append(errs, fmt.Errorf("%s.special_compensation must be a non-negative amount, got %v", prefix, *c))
		}
		errs = append(errs, validateOptionalTime(prefix+".created_at", t.CreatedAt)...)
		errs = append(errs, validateOptionalTime(prefix+".updated_at", t.UpdatedAt)...)
	}
	return errs
}

func validateAssignments(assignments []AssignmentImport, taskIDs, employeeIDs map[string]bool) []error {
	var errs []error
	pairs := make(map[[2]string]bool, len(assignments))
	for i, a := range assignments {
		prefix := fmt.Sprintf("task_assignments[%d]", i)
		if a.TaskID == "" {
			errs = append(errs, fmt.Errorf("%s.task_id is required", prefix))
		} else if !taskIDs[a.TaskID] {
			errs = append(errs, fmt.Errorf("%s.task_id: unknown task %q", prefix, a.TaskID))
		}
		if a.UserID == "" {
			errs = append(errs, fmt.Errorf("%s.user_id is required", prefix))
		} else if !employeeIDs[a.UserID] {
			errs = append(errs, fmt.Errorf("%s.user_id: unknown employee %q", prefix, a.UserID))
		}
		key := [2]string{a.TaskID, a.UserID}
		if pairs[key] {
			errs = append(errs, fmt.Errorf("%s: task %q is already assigned to %q", prefix, a.TaskID, a.UserID))
		}
		pairs[key] = true
		errs = append(errs, validateOptionalTime(prefix+".assigned_at", a.AssignedAt)...)
	}
	return errs
}

func validateOptionalTime(field string, s *string) []error {
	if s == nil || *s == "" {
		return nil
	}
	if _, err := parseTimestamp(*s); err != nil {
		return []error{fmt.Errorf("%s: invalid timestamp %q (expected RFC 3339)", field, *s)}
	}
	return nil
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
