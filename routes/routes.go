package routes

import (
	"github.com/gofiber/fiber/v2"

	"agentkit-backend/controllers"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Liveness
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello, world!"})
	})

	// Enquiry intake
	api.Post("/agent-enquiry", controllers.CreateEnquiry)

	// Agent-kit cache proxy
	app.Get("/agent-kit/:filename", controllers.ServeKitFile)
}
