package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonbook/salon-app/controllers/consumer"
	"github.com/salonbook/salon-app/middleware"
)

// SetupConsumerRoutes configures all customer facing booking routes
func SetupConsumerRoutes(app *fiber.App) {
	consumerGroup := app.Group("/consumer", middleware.Protected())

	consumerGroup.Get("/profile", consumer.GetProfile)
	consumerGroup.Patch("/profile", consumer.UpdateProfile)

	consumerGroup.Get("/bookings", consumer.GetMyBookings)
	consumerGroup.Post("/bookings", consumer.CreateBooking)
	consumerGroup.Post("/bookings/quote", consumer.QuoteBooking)
	consumerGroup.Get("/availability", consumer.GetAvailability)
}
