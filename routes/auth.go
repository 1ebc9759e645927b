package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonbook/salon-app/controllers"
	"github.com/salonbook/salon-app/middleware"
	"github.com/salonbook/salon-app/models"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetUserProfile)
	auth.Get("/user/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin, models.RoleOwner), controllers.GetUserByID)
}
