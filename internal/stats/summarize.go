// Package stats combines worked hours with task records into per-employee
// summaries.
package stats

import (
	"math"
	"slices"

	"github.com/alexanderramin/timeledger/internal/domain"
)

// Summarize builds the summary for subjectID. Only tasks linked to the subject
// through an assignment are considered; each task counts once no matter how
// many assignments point at it. Missing, negative or non-finite compensation
// amounts count as zero.
func Summarize(workedHours float64, tasks []domain.Task, assignments []domain.Assignment, subjectID string) domain.EmployeeSummary {
	owned := assignedTaskIDs(assignments, subjectID)

	var summary domain.EmployeeSummary
	for _, t := range tasks {
		if !owned[t.ID] || t.Status != domain.TaskCompleted {
			continue
		}
		// Guard against the same task appearing twice in a partial fetch.
		delete(owned, t.ID)
		summary.CompletedCount++
		summary.TotalCompensation += compensation(t)
	}

	if workedHours > 0 && !math.IsInf(workedHours, 0) {
		summary.TotalWorkedHours = workedHours
	}
	return summary
}

// AssignedTasks joins the subject's tasks with their assignments, newest task
// first. Tasks without an assignment for the subject are left out.
func AssignedTasks(tasks []domain.Task, assignments []domain.Assignment, subjectID string) []domain.AssignedTask {
	byTask := make(map[string]domain.Assignment)
	for _, a := range assignments {
		if a.SubjectID != subjectID {
			continue
		}
		if _, seen := byTask[a.TaskID]; !seen {
			byTask[a.TaskID] = a
		}
	}

	out := make([]domain.AssignedTask, 0, len(byTask))
	for _, t := range tasks {
		a, ok := byTask[t.ID]
		if !ok {
			continue
		}
		delete(byTask, t.ID)
		out = append(out, domain.AssignedTask{Task: t, Assignment: a})
	}

	slices.SortStableFunc(out, func(a, b domain.AssignedTask) int {
		return b.Task.CreatedAt.Compare(a.Task.CreatedAt)
	})
	return out
}

func assignedTaskIDs(assignments []domain.Assignment, subjectID string) map[string]bool {
	ids := make(map[string]bool)
	for _, a := range assignments {
		if a.SubjectID == subjectID {
			ids[a.TaskID] = true
		}
	}
	return ids
}

func compensation(t domain.Task) float64 {
	amount := domain.Float64FromPtrWithDefault(0, t.SpecialCompensation)
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return amount
}
