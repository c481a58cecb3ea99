package domain

import (
	"fmt"
	"strings"
	"time"
)

// ClockEvent is one raw entry of an employee's time log. Events are appended
// by the clock-in mechanism and never changed afterwards.
type ClockEvent struct {
	ID        string
	SubjectID string
	Kind      EventKind
	Timestamp time.Time
	Note      string
	CreatedAt time.Time
}

// ParseEventKind accepts the stored kind names plus the short aliases used on
// the command line ("in", "out", "pause", "resume").
func ParseEventKind(s string) (EventKind, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	switch normalized {
	case "in":
		return EventCheckIn, nil
	case "out":
		return EventCheckOut, nil
	case "pause":
		return EventPauseStart, nil
	case "resume":
		return EventPauseEnd, nil
	}
	k := EventKind(normalized)
	if !k.Valid() {
		return "", fmt.Errorf("unknown event kind %q (want check_in, check_out, pause_start or pause_end)", s)
	}
	return k, nil
}
