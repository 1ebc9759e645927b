package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/salonbook/salon-app/cron"

	"github.com/salonbook/salon-app/db"

	"github.com/salonbook/salon-app/redis"

	"github.com/salonbook/salon-app/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()
	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Salon booking API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupCatalogRoutes(app)
	routes.SetupConsumerRoutes(app)
	routes.SetupAdminRoutes(app)

	log.Fatal(app.Listen(":8000"))
}
