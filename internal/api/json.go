package api

import (
	"time"

	"github.com/alexanderramin/timeledger/internal/domain"
	"github.com/alexanderramin/timeledger/internal/service"
	"github.com/alexanderramin/timeledger/internal/timetrack"
)

type employeeJSON struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type eventJSON struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	EntryType string    `json:"entry_type"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
}

type summaryJSON struct {
	CompletedCount    int     `json:"completed_count"`
	TotalCompensation float64 `json:"total_compensation"`
	TotalWorkedHours  float64 `json:"total_worked_hours"`
}

type sessionJSON struct {
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	PausedMinutes float64   `json:"paused_minutes"`
	WorkedHours   float64   `json:"worked_hours"`
}

type reportJSON struct {
	Employee      employeeJSON  `json:"employee"`
	Summary       summaryJSON   `json:"summary"`
	Sessions      []sessionJSON `json:"sessions"`
	IgnoredEvents int           `json:"ignored_events"`
	State         string        `json:"state"`
}

type summaryEntryJSON struct {
	Employee      employeeJSON `json:"employee"`
	Summary       *summaryJSON `json:"summary,omitempty"`
	IgnoredEvents int          `json:"ignored_events"`
	State         string       `json:"state,omitempty"`
	Error         string       `json:"error,omitempty"`
}

type hoursJSON struct {
	SubjectID     string  `json:"subject_id"`
	Hours         float64 `json:"hours"`
	Sessions      int     `json:"sessions"`
	IgnoredEvents int     `json:"ignored_events"`
	State         string  `json:"state,omitempty"`
	Error         string  `json:"error,omitempty"`
}

func toHoursJSON(r timetrack.SubjectResult) hoursJSON {
	if r.Err != nil {
		return hoursJSON{SubjectID: r.SubjectID, Error: r.Err.Error()}
	}
	return hoursJSON{
		SubjectID:     r.SubjectID,
		Hours:         r.Result.TotalHours,
		Sessions:      len(r.Result.Sessions),
		IgnoredEvents: r.Result.Ignored,
		State:         r.Result.Final.String(),
	}
}

func toEmployeeJSON(e *domain.Employee) employeeJSON {
	return employeeJSON{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Role:      string(e.Role),
		CreatedAt: e.CreatedAt,
	}
}

func toEventJSON(e domain.ClockEvent) eventJSON {
	return eventJSON{
		ID:        e.ID,
		UserID:    e.SubjectID,
		EntryType: string(e.Kind),
		Timestamp: e.Timestamp,
		Notes:     e.Note,
	}
}

func toReportJSON(r *service.Report) reportJSON {
	sessions := make([]sessionJSON, 0, len(r.Sessions))
	for _, s := range r.Sessions {
		sessions = append(sessions, sessionJSON{
			Start:         s.Start,
			End:           s.End,
			PausedMinutes: s.Paused.Minutes(),
			WorkedHours:   s.WorkedHours,
		})
	}
	return reportJSON{
		Employee: toEmployeeJSON(r.Employee),
		Summary: summaryJSON{
			CompletedCount:    r.Summary.CompletedCount,
			TotalCompensation: r.Summary.TotalCompensation,
			TotalWorkedHours:  r.Summary.TotalWorkedHours,
		},
		Sessions:      sessions,
		IgnoredEvents: r.Ignored,
		State:         r.Final.String(),
	}
}
