package timetrack

import "github.com/alexanderramin/timeledger/internal/domain"

// SubjectResult is the reduction of one subject inside a batch run.
type SubjectResult struct {
	SubjectID string
	Result    Result
	Err       error
}

// ComputeBatch groups events by subject and reduces each group on its own.
// A failing subject only sets its own Err.
func ComputeBatch(events []domain.ClockEvent) map[string]SubjectResult {
	groups := make(map[string][]domain.ClockEvent)
	for _, e := range events {
		groups[e.SubjectID] = append(groups[e.SubjectID], e)
	}

	out := make(map[string]SubjectResult, len(groups))
	for subjectID, subjectEvents := range groups {
		r, err := Reduce(subjectEvents)
		out[subjectID] = SubjectResult{SubjectID: subjectID, Result: r, Err: err}
	}
	return out
}
