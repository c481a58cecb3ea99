// Package timetrack derives worked hours from raw clock event logs.
//
// The pipeline is Normalize (restore chronological order, classify kinds)
// followed by a single fold over the ordered events (Reduce). Both steps are
// pure: they do no I/O and keep no state between calls.
package timetrack

import (
	"slices"

	"github.com/alexanderramin/timeledger/internal/domain"
)

// Normalize returns a copy of events ordered by ascending timestamp. Events
// with equal timestamps keep their input order. No event is dropped, and no
// sequencing rules are checked here.
func Normalize(events []domain.ClockEvent) ([]domain.ClockEvent, error) {
	for _, e := range events {
		if !e.Kind.Valid() {
			return nil, &InvalidEventKindError{SubjectID: e.SubjectID, EventID: e.ID, Kind: e.Kind}
		}
	}

	ordered := slices.Clone(events)
	slices.SortStableFunc(ordered, func(a, b domain.ClockEvent) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return ordered, nil
}
