package utils

import (
	"gorm.io/gorm"

	"github.com/salonbook/salon-app/db"
	"github.com/salonbook/salon-app/engine"
	"github.com/salonbook/salon-app/models"
)

// CreateBooking inserts a booking after re-checking the employee's slot
// under a row lock, so two concurrent submissions for an overlapping
// window cannot both land. When the booking belongs to a registered
// customer, their booking count goes up by one in the same transaction.
//
// Returns a ConflictError when the slot was taken in the meantime and a
// StoreError for any persistence failure.
func CreateBooking(booking *models.Booking) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		available, err := CheckEmployeeAvailability(tx,
			booking.EmployeeName, booking.Date, booking.StartTime, booking.EndTime)
		if err != nil {
			return &engine.StoreError{Op: "check availability", Err: err}
		}
		if !available {
			return &engine.ConflictError{
				EmployeeName: booking.EmployeeName,
				Date:         booking.Date,
				StartTime:    booking.StartTime,
				EndTime:      booking.EndTime,
			}
		}

		if err := tx.Create(booking).Error; err != nil {
			return &engine.StoreError{Op: "create booking", Err: err}
		}

		if booking.CustomerID != nil {
			err := tx.Model(&models.User{}).
				Where("id = ?", *booking.CustomerID).
				UpdateColumn("booking_count", gorm.Expr("booking_count + 1")).Error
			if err != nil {
				return &engine.StoreError{Op: "increment booking count", Err: err}
			}
		}

		return nil
	})
}
