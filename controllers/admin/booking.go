package admin

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/salonbook/salon-app/db"
	"github.com/salonbook/salon-app/engine"
	"github.com/salonbook/salon-app/models"
	"github.com/salonbook/salon-app/redis"
	"github.com/salonbook/salon-app/utils"
)

// BookingInput is the admin-facing booking request. Admin bookings skip
// the approval step and start out confirmed.
type BookingInput struct {
	CustomerID   *uint    `json:"customer_id"`
	CustomerName string   `json:"customer_name"`
	Phone        string   `json:"phone"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Services     []string `json:"services"`
	EmployeeName string   `json:"employee_name"`
}

// CreateBooking books an appointment on behalf of a customer or walk-in
func CreateBooking(c *fiber.Ctx) error {
	var input BookingInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.Date == "" {
		return utils.RespondEngineError(c, &engine.ValidationError{Field: "date"})
	}
	date, err := time.Parse(models.DateLayout, input.Date)
	if err != nil {
		return utils.RespondEngineError(c, &engine.ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"})
	}
	if input.Time == "" {
		return utils.RespondEngineError(c, &engine.ValidationError{Field: "time"})
	}
	if len(input.Services) == 0 {
		return utils.RespondEngineError(c, &engine.ValidationError{Field: "services", Reason: "select at least one service"})
	}
	if input.EmployeeName == "" {
		return utils.RespondEngineError(c, &engine.ValidationError{Field: "employee_name"})
	}
	if input.CustomerName == "" && input.CustomerID == nil {
		return utils.RespondEngineError(c, &engine.ValidationError{Field: "customer_name"})
	}

	catalog, err := utils.LoadCatalog()
	if err != nil {
		return utils.RespondEngineError(c, &engine.StoreError{Op: "load catalog", Err: err})
	}

	duration := engine.TotalDuration(input.Services, catalog)
	if duration == 0 {
		return utils.RespondEngineError(c, &engine.ValidationError{Field: "services", Reason: "no known services in selection"})
	}
	endTime, err := engine.ComputeEndTime(input.Time, duration)
	if err != nil {
		return utils.RespondEngineError(c, &engine.ValidationError{Field: "time", Reason: err.Error()})
	}
	if !engine.IsWithinBusinessHours(input.Time, endTime) {
		return utils.RespondEngineError(c, &engine.ValidationError{
			Field:  "time",
			Reason: fmt.Sprintf("booking must fall between %s and %s", engine.BusinessOpen, engine.BusinessClose),
		})
	}

	// Walk-ins get no loyalty discount; registered customers are priced
	// on their tier.
	tier := engine.TierBronze
	isFirstBooking := false
	customerName := input.CustomerName
	phone := input.Phone
	if input.CustomerID != nil {
		var customer models.User
		if err := db.DB.First(&customer, *input.CustomerID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Customer not found",
				Error:   err.Error(),
			})
		}
		tier = engine.TierForBookingCount(customer.BookingCount)
		isFirstBooking = customer.BookingCount == 0
		if customerName == "" {
			customerName = customer.Name
		}
		if phone == "" {
			phone = customer.Phone
		}
	}

	quote := engine.ComputePrice(input.Services, catalog, tier, date, isFirstBooking)

	booking := models.Booking{
		CustomerID:   input.CustomerID,
		CustomerName: customerName,
		Phone:        phone,
		Date:         input.Date,
		StartTime:    input.Time,
		EndTime:      endTime,
		Services:     models.ServiceNames(input.Services),
		EmployeeName: input.EmployeeName,
		GrossPrice:   quote.Gross,
		Discount:     quote.Discount,
		NetPrice:     quote.Net,
		Status:       engine.StatusConfirmed,
	}

	if err := utils.CreateBooking(&booking); err != nil {
		return utils.RespondEngineError(c, err)
	}

	if err := redis.PublishBookingChange(booking.Date); err != nil {
		log.Printf("Failed to publish booking change for %s: %v", booking.Date, err)
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// ListBookings returns bookings, optionally filtered by date and status
func ListBookings(c *fiber.Ctx) error {
	query := db.DB.Model(&models.Booking{})

	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}
	if status := c.Query("status"); status != "" {
		if !engine.IsValidStatus(engine.Status(status)) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Unknown status filter: " + status,
			})
		}
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Order("date desc, start_time").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// GetBooking returns one booking by ID
func GetBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}

// UpdateStatus moves a booking through its lifecycle. The change is
// applied as a single conditional update keyed on the current status, so
// two admins racing on the same record cannot both win.
func UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var input struct {
		Status engine.Status `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	if err := engine.Transition(booking.Status, input.Status); err != nil {
		return utils.RespondEngineError(c, err)
	}

	result := db.DB.Model(&models.Booking{}).
		Where("id = ? AND status = ?", booking.ID, booking.Status).
		Update("status", input.Status)
	if result.Error != nil {
		return utils.RespondEngineError(c, &engine.StoreError{Op: "update status", Err: result.Error})
	}
	if result.RowsAffected == 0 {
		// another admin changed the record first
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Booking was modified concurrently, reload and retry",
		})
	}

	if err := redis.PublishBookingChange(booking.Date); err != nil {
		log.Printf("Failed to publish booking change for %s: %v", booking.Date, err)
	}

	booking.Status = input.Status
	return c.JSON(fiber.Map{
		"booking":      booking,
		"allowed_next": engine.AllowedNextStatuses(booking.Status),
	})
}

// GetAllowedTransitions reports where a booking may go from its current
// status
func GetAllowedTransitions(c *fiber.Ctx) error {
	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"status":       booking.Status,
		"allowed_next": engine.AllowedNextStatuses(booking.Status),
	})
}

// DeleteBooking removes a booking for good
func DeleteBooking(c *fiber.Ctx) error {
	id := c.Params("id")

	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Delete(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete booking",
			Error:   err.Error(),
		})
	}

	if err := redis.PublishBookingChange(booking.Date); err != nil {
		log.Printf("Failed to publish booking change for %s: %v", booking.Date, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
