package engine

// Status represents the lifecycle state of a booking.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusRejected   Status = "rejected"
	StatusCancelled  Status = "cancelled"
)

// transitions maps each status to the statuses an admin may move it to.
// Terminal statuses are not listed.
var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusRejected},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

// AllowedNextStatuses returns the statuses a booking in the given status
// may transition to. Terminal statuses (completed, rejected, cancelled)
// return an empty slice.
func AllowedNextStatuses(current Status) []Status {
	next, ok := transitions[current]
	if !ok {
		return []Status{}
	}
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether moving a booking from current to next is
// a permitted lifecycle transition.
func CanTransition(current, next Status) bool {
	for _, s := range transitions[current] {
		if s == next {
			return true
		}
	}
	return false
}

// Transition validates a status change and returns a StateError if the
// change is not permitted. The caller applies the change only on nil error.
func Transition(current, next Status) error {
	if !IsValidStatus(next) {
		return &StateError{From: current, To: next}
	}
	if !CanTransition(current, next) {
		return &StateError{From: current, To: next}
	}
	return nil
}

// IsTerminal reports whether no further transitions are allowed from s.
func IsTerminal(s Status) bool {
	return len(transitions[s]) == 0
}

// IsValidStatus reports whether s is a known booking status.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// IsBlocking reports whether a booking in status s reserves the
// employee's time slot against new bookings. Completed, cancelled and
// rejected bookings never block.
func IsBlocking(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress:
		return true
	}
	return false
}

// BlockingStatuses returns the set of statuses that reserve a time slot.
// Useful for building store queries that only fetch blocking bookings.
func BlockingStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusInProgress}
}
