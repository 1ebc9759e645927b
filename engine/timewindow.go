package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Time values are zero-padded 24h "HH:MM" strings, so lexicographic
// comparison matches chronological order.
const (
	TimeLayout = "15:04"

	BusinessOpen  = "09:00"
	BusinessClose = "17:00"
)

// MinuteOfDay converts an "HH:MM" string to minutes since midnight.
func MinuteOfDay(t string) (int, error) {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", t)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid time %q: bad hour", t)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q: bad minute", t)
	}
	return hour*60 + minute, nil
}

// FormatMinutes converts minutes since midnight back to "HH:MM",
// rolling over past midnight.
func FormatMinutes(m int) string {
	m %= 24 * 60
	if m < 0 {
		m += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ComputeEndTime adds totalDurationMinutes to the start time and returns
// the end as "HH:MM". Hours roll over modulo 24; multi-day bookings are
// out of domain and not modeled.
func ComputeEndTime(start string, totalDurationMinutes int) (string, error) {
	if totalDurationMinutes < 0 {
		return "", fmt.Errorf("negative duration %d", totalDurationMinutes)
	}
	startMin, err := MinuteOfDay(start)
	if err != nil {
		return "", err
	}
	return FormatMinutes(startMin + totalDurationMinutes), nil
}

// Overlaps reports whether the half-open windows [aStart, aEnd) and
// [bStart, bEnd) intersect. Adjacent windows do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// IsWithinBusinessHours reports whether both endpoints of the window lie
// inside salon opening hours.
func IsWithinBusinessHours(start, end string) bool {
	return start >= BusinessOpen && start <= BusinessClose &&
		end >= BusinessOpen && end <= BusinessClose
}
