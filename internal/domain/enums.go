package domain

type EventKind string

const (
	EventCheckIn    EventKind = "check_in"
	EventCheckOut   EventKind = "check_out"
	EventPauseStart EventKind = "pause_start"
	EventPauseEnd   EventKind = "pause_end"
)

// ValidEventKinds is the canonical set of accepted clock event kinds.
var ValidEventKinds = map[EventKind]bool{
	EventCheckIn:    true,
	EventCheckOut:   true,
	EventPauseStart: true,
	EventPauseEnd:   true,
}

// EventKinds lists the kinds in the order a typical working day produces them.
var EventKinds = []EventKind{EventCheckIn, EventPauseStart, EventPauseEnd, EventCheckOut}

func (k EventKind) Valid() bool {
	return ValidEventKinds[k]
}

// Label returns the display label used in time entry listings.
func (k EventKind) Label() string {
	switch k {
	case EventCheckIn:
		return "Check-In"
	case EventCheckOut:
		return "Check-Out"
	case EventPauseStart:
		return "Pause Start"
	case EventPauseEnd:
		return "Pause End"
	default:
		return string(k)
	}
}

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskAssigned   TaskStatus = "assigned"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[TaskStatus]bool{
	TaskPending:    true,
	TaskAssigned:   true,
	TaskInProgress: true,
	TaskCompleted:  true,
	TaskCancelled:  true,
}

func (s TaskStatus) Label() string {
	switch s {
	case TaskPending:
		return "Pending"
	case TaskAssigned:
		return "Assigned"
	case TaskInProgress:
		return "In Progress"
	case TaskCompleted:
		return "Completed"
	case TaskCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

type EmployeeRole string

const (
	RoleEmployee EmployeeRole = "employee"
	RoleAdmin    EmployeeRole = "admin"
)
