package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the JSON export of the hosted backend: one array per table.
type ImportSchema struct {
	Employees       []EmployeeImport   `json:"employees"`
	TimeEntries     []TimeEntryImport  `json:"time_entries"`
	Tasks           []TaskImport       `json:"tasks"`
	TaskAssignments []AssignmentImport `json:"task_assignments,omitempty"`
}

// EmployeeImport is a row of the employees (profiles) table.
type EmployeeImport struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email,omitempty"`
	Role      string  `json:"role,omitempty"`
	CreatedAt *string `json:"created_at,omitempty"`
}

// TimeEntryImport is a row of the time_entries table. EntryType is kept
// verbatim, even when it is not a known kind.
type TimeEntryImport struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	EntryType string  `json:"entry_type"`
	Timestamp string  `json:"timestamp"`
	Notes     string  `json:"notes,omitempty"`
	CreatedAt *string `json:"created_at,omitempty"`
}

// TaskImport is a row of the tasks table.
type TaskImport struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	CustomerName        string   `json:"customer_name,omitempty"`
	Description         string   `json:"description,omitempty"`
	Status              string   `json:"status,omitempty"`
	SpecialCompensation *float64 `json:"special_compensation,omitempty"`
	CreatedAt           *string  `json:"created_at,omitempty"`
	UpdatedAt           *string  `json:"updated_at,omitempty"`
}

// AssignmentImport is a row of the task_assignments table.
type AssignmentImport struct {
	ID            string  `json:"id,omitempty"`
	TaskID        string  `json:"task_id"`
	UserID        string  `json:"user_id"`
	ProgressNotes string  `json:"progress_notes,omitempty"`
	AssignedAt    *string `json:"assigned_at,omitempty"`
}

// LoadImportFile reads and parses an export JSON file.
func LoadImportFile(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImport(data)
}

// ParseImport parses export JSON already in memory.
func ParseImport(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
