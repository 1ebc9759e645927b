package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEndTime(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		duration int
		want     string
	}{
		{"single service", "09:00", 30, "09:30"},
		{"two services", "10:15", 75, "11:30"},
		{"hour rollover", "09:45", 30, "10:15"},
		{"zero duration", "12:00", 0, "12:00"},
		{"past midnight rolls over", "23:30", 60, "00:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, err := ComputeEndTime(tt.start, tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, end)
		})
	}
}

func TestComputeEndTimeRejectsBadInput(t *testing.T) {
	_, err := ComputeEndTime("9am", 30)
	assert.Error(t, err)

	_, err = ComputeEndTime("25:00", 30)
	assert.Error(t, err)

	_, err = ComputeEndTime("09:00", -10)
	assert.Error(t, err)
}

// Adding durations one by one must land on the same end time as adding
// their sum in one step.
func TestComputeEndTimeAdditionIsAssociative(t *testing.T) {
	durations := []int{30, 45, 15, 60}
	start := "09:00"

	total := 0
	stepwise := start
	for _, d := range durations {
		total += d
		var err error
		stepwise, err = ComputeEndTime(stepwise, d)
		require.NoError(t, err)
	}

	atOnce, err := ComputeEndTime(start, total)
	require.NoError(t, err)
	assert.Equal(t, stepwise, atOnce)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identical windows", "09:00", "10:00", "09:00", "10:00", true},
		{"partial overlap", "09:00", "09:30", "09:15", "09:45", true},
		{"containment", "09:00", "12:00", "10:00", "10:30", true},
		{"adjacent windows do not overlap", "09:00", "09:30", "09:30", "10:00", false},
		{"disjoint", "09:00", "09:30", "11:00", "11:30", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// symmetry
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestIsWithinBusinessHours(t *testing.T) {
	assert.True(t, IsWithinBusinessHours("09:00", "09:30"))
	assert.True(t, IsWithinBusinessHours("16:30", "17:00"))
	assert.False(t, IsWithinBusinessHours("08:30", "09:30"))
	assert.False(t, IsWithinBusinessHours("16:30", "17:30"))
	assert.False(t, IsWithinBusinessHours("18:00", "19:00"))
}

func TestMinuteOfDayRoundTrip(t *testing.T) {
	m, err := MinuteOfDay("14:45")
	require.NoError(t, err)
	assert.Equal(t, 14*60+45, m)
	assert.Equal(t, "14:45", FormatMinutes(m))
}
