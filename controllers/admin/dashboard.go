package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/salonbook/salon-app/db"
	"github.com/salonbook/salon-app/engine"
	"github.com/salonbook/salon-app/models"
)

// GetDashboardOverview returns booking counts by status and the revenue
// split. Realized revenue only counts completed bookings; pending
// revenue counts pending and confirmed ones. Cancelled and rejected
// bookings contribute to neither.
func GetDashboardOverview(c *fiber.Ctx) error {
	var statistics struct {
		TotalBookings   int64     `json:"total_bookings"`
		PendingCount    int64     `json:"pending_count"`
		ConfirmedCount  int64     `json:"confirmed_count"`
		InProgressCount int64     `json:"in_progress_count"`
		CompletedCount  int64     `json:"completed_count"`
		CancelledCount  int64     `json:"cancelled_count"`
		RejectedCount   int64     `json:"rejected_count"`
		TotalServices   int64     `json:"total_services"`
		RealizedRevenue int64     `json:"realized_revenue"`
		PendingRevenue  int64     `json:"pending_revenue"`
		LastUpdated     time.Time `json:"last_updated"`
	}

	bookingQuery := db.DB.Model(&models.Booking{})
	bookingQuery.Count(&statistics.TotalBookings)

	countByStatus := func(status engine.Status, dst *int64) {
		db.DB.Model(&models.Booking{}).Where("status = ?", status).Count(dst)
	}
	countByStatus(engine.StatusPending, &statistics.PendingCount)
	countByStatus(engine.StatusConfirmed, &statistics.ConfirmedCount)
	countByStatus(engine.StatusInProgress, &statistics.InProgressCount)
	countByStatus(engine.StatusCompleted, &statistics.CompletedCount)
	countByStatus(engine.StatusCancelled, &statistics.CancelledCount)
	countByStatus(engine.StatusRejected, &statistics.RejectedCount)

	db.DB.Model(&models.Service{}).Count(&statistics.TotalServices)

	type RevenueResult struct {
		Total int64
	}
	var realized RevenueResult
	db.DB.Model(&models.Booking{}).
		Where("status = ?", engine.StatusCompleted).
		Select("COALESCE(SUM(net_price), 0) as total").
		Scan(&realized)
	statistics.RealizedRevenue = realized.Total

	var pending RevenueResult
	db.DB.Model(&models.Booking{}).
		Where("status IN ?", []engine.Status{engine.StatusPending, engine.StatusConfirmed}).
		Select("COALESCE(SUM(net_price), 0) as total").
		Scan(&pending)
	statistics.PendingRevenue = pending.Total

	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}

// GetRecentBookings returns the most recent bookings
func GetRecentBookings(c *fiber.Ctx) error {
	limit := 5 // Default limit
	if c.Query("limit") != "" {
		parsedLimit := c.QueryInt("limit")
		if parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var bookings []models.Booking
	if err := db.DB.
		Order("created_at desc").
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(bookings)
}
