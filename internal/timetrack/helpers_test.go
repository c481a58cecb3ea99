package timetrack

import (
	"fmt"
	"time"

	"github.com/alexanderramin/timeledger/internal/domain"
)

var base = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

// at returns base shifted by h hours.
func at(h float64) time.Time {
	return base.Add(time.Duration(h * float64(time.Hour)))
}

var eventSeq int

func ev(kind domain.EventKind, h float64) domain.ClockEvent {
	eventSeq++
	return domain.ClockEvent{
		ID:        fmt.Sprintf("ev-%d", eventSeq),
		SubjectID: "emp-1",
		Kind:      kind,
		Timestamp: at(h),
	}
}

func evFor(subject string, kind domain.EventKind, h float64) domain.ClockEvent {
	e := ev(kind, h)
	e.SubjectID = subject
	return e
}
