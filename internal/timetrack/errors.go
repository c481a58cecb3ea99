package timetrack

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/timeledger/internal/domain"
)

// ErrInvalidEventKind is returned when a clock event carries a kind outside
// domain.ValidEventKinds. It halts the computation for that subject only.
var ErrInvalidEventKind = errors.New("invalid event kind")

// InvalidEventKindError identifies the offending event.
type InvalidEventKindError struct {
	SubjectID string
	EventID   string
	Kind      domain.EventKind
}

func (e *InvalidEventKindError) Error() string {
	return fmt.Sprintf("%s %q in event %s of subject %s", ErrInvalidEventKind, string(e.Kind), e.EventID, e.SubjectID)
}

func (e *InvalidEventKindError) Unwrap() error {
	return ErrInvalidEventKind
}
