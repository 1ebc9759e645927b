package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonbook/salon-app/controllers"
	"github.com/salonbook/salon-app/middleware"
	"github.com/salonbook/salon-app/models"
)

// SetupCatalogRoutes configures the service catalog and roster routes
func SetupCatalogRoutes(app *fiber.App) {
	services := app.Group("/services")
	services.Get("/", controllers.GetAllServices)
	services.Get("/:id", controllers.GetService)
	services.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin, models.RoleOwner), controllers.CreateService)
	services.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin, models.RoleOwner), controllers.UpdateService)
	services.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin, models.RoleOwner), controllers.DeleteService)

	employees := app.Group("/employees")
	employees.Get("/", controllers.GetRoster)
	employees.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin, models.RoleOwner), controllers.CreateEmployee)
	employees.Patch("/:id/active", middleware.Protected(), middleware.RequireRole(models.RoleAdmin, models.RoleOwner), controllers.SetEmployeeActive)
}
