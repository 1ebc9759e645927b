package engine

// StaffMember is the slice of an employee record the resolver needs.
type StaffMember struct {
	Name     string
	IsActive bool
}

// BookedWindow is an existing booking's claim on an employee's time.
// Callers pass the bookings already fetched for the target date.
type BookedWindow struct {
	EmployeeName string
	StartTime    string
	EndTime      string
	Status       Status
}

// Availability maps employee name to whether they are free for the
// candidate window.
type Availability map[string]bool

// ResolveAvailability decides, for every employee in the roster, whether
// they can take a booking in [start, end). An employee is available iff
// they are active and none of their blocking-status bookings on the date
// overlaps the candidate window. Completed, cancelled and rejected
// bookings never block a slot.
//
// Callers must validate the window (date, time, at least one service)
// before invoking the resolver; an empty roster yields an empty result.
func ResolveAvailability(roster []StaffMember, bookingsForDate []BookedWindow, start, end string) Availability {
	result := make(Availability, len(roster))
	for _, staff := range roster {
		result[staff.Name] = staff.IsActive &&
			!hasBlockingOverlap(staff.Name, bookingsForDate, start, end)
	}
	return result
}

// AvailableStaff returns only the names resolved as available, in roster
// order.
func AvailableStaff(roster []StaffMember, bookingsForDate []BookedWindow, start, end string) []string {
	availability := ResolveAvailability(roster, bookingsForDate, start, end)
	names := make([]string, 0, len(roster))
	for _, staff := range roster {
		if availability[staff.Name] {
			names = append(names, staff.Name)
		}
	}
	return names
}

func hasBlockingOverlap(employeeName string, bookings []BookedWindow, start, end string) bool {
	for _, b := range bookings {
		if b.EmployeeName != employeeName {
			continue
		}
		if !IsBlocking(b.Status) {
			continue
		}
		if Overlaps(start, end, b.StartTime, b.EndTime) {
			return true
		}
	}
	return false
}
