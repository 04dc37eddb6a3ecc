package setup

import (
	"agrimind/app"
	"agrimind/handlers"
	"agrimind/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	// All API requests act as the bootstrapped demo user
	api := fiberApp.Group("/api", middleware.WithUser(application.DemoUserID))

	api.Post("/diagnose/image", handlers.DiagnoseImage(application))
	api.Get("/diagnoses", handlers.GetDiagnoses(application))
	api.Get("/diagnoses/:id", handlers.GetDiagnosis(application))
	api.Post("/voice/ask", handlers.AskQuestion(application))
	api.Get("/voice/conversations", handlers.GetConversations(application))
	api.Post("/activities", handlers.CreateActivity(application))
	api.Get("/activities", handlers.GetActivities(application))
	api.Patch("/activities/:id/status", handlers.UpdateActivityStatus(application))
	api.Get("/weather", handlers.GetWeather(application))
}
