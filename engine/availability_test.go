package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAvailabilityOverlapBlocks(t *testing.T) {
	roster := []StaffMember{{Name: "Ani", IsActive: true}}
	bookings := []BookedWindow{
		{EmployeeName: "Ani", StartTime: "09:00", EndTime: "09:30", Status: StatusConfirmed},
	}

	overlapping := ResolveAvailability(roster, bookings, "09:15", "09:45")
	assert.False(t, overlapping["Ani"])

	adjacent := ResolveAvailability(roster, bookings, "09:30", "10:00")
	assert.True(t, adjacent["Ani"])
}

func TestResolveAvailabilityIgnoresNonBlockingStatuses(t *testing.T) {
	roster := []StaffMember{{Name: "Budi", IsActive: true}}

	for _, status := range []Status{StatusCompleted, StatusCancelled, StatusRejected} {
		bookings := []BookedWindow{
			{EmployeeName: "Budi", StartTime: "10:00", EndTime: "11:00", Status: status},
		}
		got := ResolveAvailability(roster, bookings, "10:00", "11:00")
		assert.True(t, got["Budi"], "status %s must not block", status)
	}

	for _, status := range []Status{StatusPending, StatusConfirmed, StatusInProgress} {
		bookings := []BookedWindow{
			{EmployeeName: "Budi", StartTime: "10:00", EndTime: "11:00", Status: status},
		}
		got := ResolveAvailability(roster, bookings, "10:00", "11:00")
		assert.False(t, got["Budi"], "status %s must block", status)
	}
}

func TestResolveAvailabilityInactiveStaffNeverAvailable(t *testing.T) {
	roster := []StaffMember{
		{Name: "Ani", IsActive: true},
		{Name: "Citra", IsActive: false},
	}

	got := ResolveAvailability(roster, nil, "09:00", "09:30")
	assert.True(t, got["Ani"])
	assert.False(t, got["Citra"])
}

func TestResolveAvailabilityOnlyChecksOwnBookings(t *testing.T) {
	roster := []StaffMember{
		{Name: "Ani", IsActive: true},
		{Name: "Budi", IsActive: true},
	}
	bookings := []BookedWindow{
		{EmployeeName: "Ani", StartTime: "09:00", EndTime: "10:00", Status: StatusPending},
	}

	got := ResolveAvailability(roster, bookings, "09:00", "10:00")
	assert.False(t, got["Ani"])
	assert.True(t, got["Budi"])
}

func TestResolveAvailabilityEmptyRoster(t *testing.T) {
	got := ResolveAvailability(nil, nil, "09:00", "09:30")
	assert.Empty(t, got)
}

// Soundness and completeness of the resolver against a brute-force
// overlap count.
func TestResolveAvailabilitySoundAndComplete(t *testing.T) {
	roster := []StaffMember{
		{Name: "Ani", IsActive: true},
		{Name: "Budi", IsActive: true},
		{Name: "Citra", IsActive: false},
		{Name: "Dewi", IsActive: true},
	}
	bookings := []BookedWindow{
		{EmployeeName: "Ani", StartTime: "09:00", EndTime: "09:45", Status: StatusConfirmed},
		{EmployeeName: "Ani", StartTime: "13:00", EndTime: "14:00", Status: StatusCancelled},
		{EmployeeName: "Budi", StartTime: "11:00", EndTime: "12:00", Status: StatusRejected},
		{EmployeeName: "Dewi", StartTime: "09:30", EndTime: "10:15", Status: StatusInProgress},
	}

	start, end := "09:30", "10:00"
	got := ResolveAvailability(roster, bookings, start, end)

	for _, staff := range roster {
		overlapping := 0
		for _, b := range bookings {
			if b.EmployeeName == staff.Name && IsBlocking(b.Status) &&
				Overlaps(start, end, b.StartTime, b.EndTime) {
				overlapping++
			}
		}
		want := staff.IsActive && overlapping == 0
		assert.Equal(t, want, got[staff.Name], "employee %s", staff.Name)
	}
}

func TestAvailableStaffPreservesRosterOrder(t *testing.T) {
	roster := []StaffMember{
		{Name: "Ani", IsActive: true},
		{Name: "Budi", IsActive: true},
		{Name: "Citra", IsActive: true},
	}
	bookings := []BookedWindow{
		{EmployeeName: "Budi", StartTime: "09:00", EndTime: "10:00", Status: StatusPending},
	}

	got := AvailableStaff(roster, bookings, "09:00", "09:30")
	assert.Equal(t, []string{"Ani", "Citra"}, got)
}
