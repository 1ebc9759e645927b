package utils

import (
	"gorm.io/gorm"

	"github.com/salonbook/salon-app/db"
	"github.com/salonbook/salon-app/engine"
	"github.com/salonbook/salon-app/models"
)

// FetchBlockingBookings loads every booking on the given date whose
// status still reserves a slot. The result feeds the availability
// resolver.
func FetchBlockingBookings(date string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.DB.
		Where("date = ? AND status IN ?", date, engine.BlockingStatuses()).
		Find(&bookings).Error
	return bookings, err
}

// CheckEmployeeAvailability re-checks, inside a transaction, that the
// employee has no blocking booking overlapping [start, end) on the date.
// Conflicting rows are locked so two concurrent submissions for the same
// slot cannot both pass.
func CheckEmployeeAvailability(tx *gorm.DB, employeeName, date, start, end string) (bool, error) {
	var conflicting models.Booking
	err := tx.Raw(`
		SELECT *
		FROM bookings
		WHERE employee_name = ? AND date = ?
		  AND status IN (?, ?, ?)
		  AND start_time < ? AND ? < end_time
		FOR UPDATE
		LIMIT 1
	`, employeeName, date,
		engine.StatusPending, engine.StatusConfirmed, engine.StatusInProgress,
		end, start).
		Scan(&conflicting).Error
	if err != nil {
		return false, err
	}

	// If there is any conflicting booking, the slot is taken
	if conflicting.ID != 0 {
		return false, nil
	}

	return true, nil
}
