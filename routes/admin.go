package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonbook/salon-app/controllers/admin"
	"github.com/salonbook/salon-app/middleware"
	"github.com/salonbook/salon-app/models"
)

// SetupAdminRoutes configures the admin booking and dashboard routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin",
		middleware.Protected(),
		middleware.RequireRole(models.RoleAdmin, models.RoleOwner))

	adminGroup.Get("/bookings", admin.ListBookings)
	adminGroup.Post("/bookings", admin.CreateBooking)
	adminGroup.Get("/bookings/:id", admin.GetBooking)
	adminGroup.Get("/bookings/:id/transitions", admin.GetAllowedTransitions)
	adminGroup.Patch("/bookings/:id/status", admin.UpdateStatus)
	adminGroup.Delete("/bookings/:id", admin.DeleteBooking)

	adminGroup.Get("/dashboard", admin.GetDashboardOverview)
	adminGroup.Get("/dashboard/recent", admin.GetRecentBookings)
}
