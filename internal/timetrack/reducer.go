package timetrack

import (
	"time"

	"github.com/alexanderramin/timeledger/internal/domain"
)

// State is the clock state of one subject while walking its event log.
type State int

const (
	StateIdle State = iota
	StateWorking
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWorking:
		return "working"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Session is one closed check_in/check_out interval.
type Session struct {
	Start       time.Time
	End         time.Time
	Paused      time.Duration
	WorkedHours float64
}

// Result is the outcome of reducing one subject's event log.
type Result struct {
	// TotalHours sums WorkedHours over Sessions. Open sessions are excluded.
	TotalHours float64
	Sessions   []Session
	// Ignored counts out-of-sequence events that were skipped.
	Ignored int
	// Final is the state after the last event; non-idle means a session is
	// still open.
	Final State
}

// tally is the fold value. Every step returns a new tally.
type tally struct {
	state      State
	checkIn    time.Time
	pauseStart time.Time
	paused     time.Duration
	total      float64
	ignored    int
	closed     []Session
}

type effect func(t tally, at time.Time) tally

type transitionKey struct {
	from State
	kind domain.EventKind
}

type transition struct {
	to    State
	apply effect
}

// transitions is the complete set of accepted moves. Any (state, kind) pair
// missing here is out of sequence and is skipped without touching the
// accumulators. A second check_in while working therefore keeps the first
// check_in as the session start, and check_out while paused is ignored
// until the pause ends.
var transitions = map[transitionKey]transition{
	{StateIdle, domain.EventCheckIn}:       {to: StateWorking, apply: openSession},
	{StateWorking, domain.EventPauseStart}: {to: StatePaused, apply: startPause},
	{StatePaused, domain.EventPauseEnd}:    {to: StateWorking, apply: endPause},
	{StateWorking, domain.EventCheckOut}:   {to: StateIdle, apply: closeSession},
}

func openSession(t tally, at time.Time) tally {
	t.checkIn = at
	t.pauseStart = time.Time{}
	t.paused = 0
	return t
}

func startPause(t tally, at time.Time) tally {
	t.pauseStart = at
	return t
}

func endPause(t tally, at time.Time) tally {
	if d := at.Sub(t.pauseStart); d > 0 {
		t.paused += d
	}
	t.pauseStart = time.Time{}
	return t
}

func closeSession(t tally, at time.Time) tally {
	worked := (at.Sub(t.checkIn) - t.paused).Hours()
	if worked < 0 {
		worked = 0
	}
	s := Session{Start: t.checkIn, End: at, Paused: t.paused, WorkedHours: worked}
	// Full slice expression so the append never writes into a previous tally's array.
	t.closed = append(t.closed[:len(t.closed):len(t.closed)], s)
	t.total += worked
	t.checkIn = time.Time{}
	t.paused = 0
	return t
}

func step(t tally, e domain.ClockEvent) tally {
	tr, ok := transitions[transitionKey{from: t.state, kind: e.Kind}]
	if !ok {
		t.ignored++
		return t
	}
	next := tr.apply(t, e.Timestamp)
	next.state = tr.to
	return next
}

// Reduce normalizes events and folds them into a Result. Only sessions closed
// by a check_out count toward TotalHours.
func Reduce(events []domain.ClockEvent) (Result, error) {
	ordered, err := Normalize(events)
	if err != nil {
		return Result{}, err
	}

	t := tally{state: StateIdle}
	for _, e := range ordered {
		t = step(t, e)
	}

	return Result{
		TotalHours: t.total,
		Sessions:   t.closed,
		Ignored:    t.ignored,
		Final:      t.state,
	}, nil
}

// ComputeWorkedHours returns the worked hours of all closed sessions in events.
func ComputeWorkedHours(events []domain.ClockEvent) (float64, error) {
	r, err := Reduce(events)
	if err != nil {
		return 0, err
	}
	return r.TotalHours, nil
}
