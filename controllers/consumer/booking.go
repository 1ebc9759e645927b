package consumer

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/salonbook/salon-app/db"
	"github.com/salonbook/salon-app/engine"
	"github.com/salonbook/salon-app/models"
	"github.com/salonbook/salon-app/redis"
	"github.com/salonbook/salon-app/utils"
)

// BookingInput is the customer-facing booking request
type BookingInput struct {
	Date         string   `json:"date"`     // "YYYY-MM-DD"
	Time         string   `json:"time"`     // "HH:MM"
	Services     []string `json:"services"` // catalog names
	EmployeeName string   `json:"employee_name"`
	Phone        string   `json:"phone"`
}

// bookingWindow is a validated, priced-ready booking request.
type bookingWindow struct {
	Date      time.Time
	StartTime string
	EndTime   string
	Catalog   engine.Catalog
}

// validateWindow checks the required fields and computes the booking
// window before any engine call runs.
func validateWindow(input *BookingInput) (*bookingWindow, error) {
	if input.Date == "" {
		return nil, &engine.ValidationError{Field: "date"}
	}
	date, err := time.Parse(models.DateLayout, input.Date)
	if err != nil {
		return nil, &engine.ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
	}
	if input.Time == "" {
		return nil, &engine.ValidationError{Field: "time"}
	}
	if len(input.Services) == 0 {
		return nil, &engine.ValidationError{Field: "services", Reason: "select at least one service"}
	}
	if input.EmployeeName == "" {
		return nil, &engine.ValidationError{Field: "employee_name"}
	}

	catalog, err := utils.LoadCatalog()
	if err != nil {
		return nil, &engine.StoreError{Op: "load catalog", Err: err}
	}

	duration := engine.TotalDuration(input.Services, catalog)
	if duration == 0 {
		return nil, &engine.ValidationError{Field: "services", Reason: "no known services in selection"}
	}

	endTime, err := engine.ComputeEndTime(input.Time, duration)
	if err != nil {
		return nil, &engine.ValidationError{Field: "time", Reason: err.Error()}
	}

	if !engine.IsWithinBusinessHours(input.Time, endTime) {
		return nil, &engine.ValidationError{
			Field:  "time",
			Reason: fmt.Sprintf("booking must fall between %s and %s", engine.BusinessOpen, engine.BusinessClose),
		}
	}

	return &bookingWindow{
		Date:      date,
		StartTime: input.Time,
		EndTime:   endTime,
		Catalog:   catalog,
	}, nil
}

// CreateBooking books an appointment for the logged-in customer. The
// slot is validated, priced for the customer's tier and written under a
// lock so a racing booking for the same employee and window loses
// cleanly with a conflict.
func CreateBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var input BookingInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	window, err := validateWindow(&input)
	if err != nil {
		return utils.RespondEngineError(c, err)
	}

	var customer models.User
	if err := db.DB.First(&customer, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Customer not found",
			Error:   err.Error(),
		})
	}

	// First pass against a snapshot; the transactional create re-checks
	// under lock.
	roster, err := utils.LoadRoster()
	if err != nil {
		return utils.RespondEngineError(c, &engine.StoreError{Op: "load roster", Err: err})
	}
	blocking, err := utils.FetchBlockingBookings(input.Date)
	if err != nil {
		return utils.RespondEngineError(c, &engine.StoreError{Op: "load bookings", Err: err})
	}
	windows := make([]engine.BookedWindow, len(blocking))
	for i := range blocking {
		windows[i] = blocking[i].Window()
	}

	availability := engine.ResolveAvailability(roster, windows, window.StartTime, window.EndTime)
	if !availability[input.EmployeeName] {
		return utils.RespondEngineError(c, &engine.ConflictError{
			EmployeeName: input.EmployeeName,
			Date:         input.Date,
			StartTime:    window.StartTime,
			EndTime:      window.EndTime,
		})
	}

	tier := engine.TierForBookingCount(customer.BookingCount)
	quote := engine.ComputePrice(input.Services, window.Catalog, tier, window.Date, customer.BookingCount == 0)

	phone := input.Phone
	if phone == "" {
		phone = customer.Phone
	}

	booking := models.Booking{
		CustomerID:   &customer.ID,
		CustomerName: customer.Name,
		Phone:        phone,
		Date:         input.Date,
		StartTime:    window.StartTime,
		EndTime:      window.EndTime,
		Services:     models.ServiceNames(input.Services),
		EmployeeName: input.EmployeeName,
		GrossPrice:   quote.Gross,
		Discount:     quote.Discount,
		NetPrice:     quote.Net,
		Status:       engine.StatusPending,
	}

	if err := utils.CreateBooking(&booking); err != nil {
		return utils.RespondEngineError(c, err)
	}

	// Let open availability views for this date recompute
	if err := redis.PublishBookingChange(booking.Date); err != nil {
		log.Printf("Failed to publish booking change for %s: %v", booking.Date, err)
	}

	if customer.Email != "" {
		go sendBookingConfirmation(&customer, &booking)
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// GetMyBookings lists the logged-in customer's bookings, newest first
func GetMyBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var bookings []models.Booking
	if err := db.DB.Where("customer_id = ?", userID).
		Order("date desc, start_time desc").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// GetAvailability resolves which employees are free for a candidate
// window: ?date=YYYY-MM-DD&time=HH:MM&services=Haircut,Manicure
func GetAvailability(c *fiber.Ctx) error {
	input := BookingInput{
		Date: c.Query("date"),
		Time: c.Query("time"),
	}
	if raw := c.Query("services"); raw != "" {
		input.Services = strings.Split(raw, ",")
	}
	// the resolver doesn't need an employee; fill a placeholder past validation
	input.EmployeeName = "-"

	window, err := validateWindow(&input)
	if err != nil {
		return utils.RespondEngineError(c, err)
	}

	roster, err := utils.LoadRoster()
	if err != nil {
		return utils.RespondEngineError(c, &engine.StoreError{Op: "load roster", Err: err})
	}
	blocking, err := utils.FetchBlockingBookings(input.Date)
	if err != nil {
		return utils.RespondEngineError(c, &engine.StoreError{Op: "load bookings", Err: err})
	}
	windows := make([]engine.BookedWindow, len(blocking))
	for i := range blocking {
		windows[i] = blocking[i].Window()
	}

	return c.JSON(fiber.Map{
		"date":         input.Date,
		"start_time":   window.StartTime,
		"end_time":     window.EndTime,
		"availability": engine.ResolveAvailability(roster, windows, window.StartTime, window.EndTime),
		"available":    engine.AvailableStaff(roster, windows, window.StartTime, window.EndTime),
	})
}

// QuoteBooking prices a selection for the logged-in customer without
// creating anything. The quote is recomputed on every call; clients must
// not cache it across selection or date changes.
func QuoteBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var input struct {
		Date     string   `json:"date"`
		Services []string `json:"services"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	date, err := time.Parse(models.DateLayout, input.Date)
	if err != nil {
		return utils.RespondEngineError(c, &engine.ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"})
	}
	if len(input.Services) == 0 {
		return utils.RespondEngineError(c, &engine.ValidationError{Field: "services", Reason: "select at least one service"})
	}

	var customer models.User
	if err := db.DB.First(&customer, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Customer not found",
			Error:   err.Error(),
		})
	}

	catalog, err := utils.LoadCatalog()
	if err != nil {
		return utils.RespondEngineError(c, &engine.StoreError{Op: "load catalog", Err: err})
	}

	tier := engine.TierForBookingCount(customer.BookingCount)
	quote := engine.ComputePrice(input.Services, catalog, tier, date, customer.BookingCount == 0)

	return c.JSON(fiber.Map{
		"tier":  tier,
		"quote": quote,
	})
}

func sendBookingConfirmation(customer *models.User, booking *models.Booking) {
	subject := "Your booking request was received"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking request has been received and is awaiting confirmation.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Services:</strong> %s</li>
			<li><strong>Stylist:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s - %s</li>
			<li><strong>Total:</strong> %d</li>
		</ul>
		<p>We will let you know as soon as the salon confirms your slot.</p>
		<p>Best regards,</p>
		<p>Your Salon Team</p>
	`, customer.Name, strings.Join(booking.Services, ", "), booking.EmployeeName,
		booking.Date, booking.StartTime, booking.EndTime, booking.NetPrice)

	if err := utils.SendEmail(customer.Email, subject, body); err != nil {
		log.Printf("Failed to send booking confirmation to %s: %v", customer.Email, err)
	}
}
