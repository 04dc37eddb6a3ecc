package handlers

import (
	"errors"

	"agrimind/app"
	"agrimind/middleware"
	"agrimind/models"
	"agrimind/services"

	"github.com/gofiber/fiber/v2"
)

// CreateActivity schedules a new crop activity
func CreateActivity(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateActivityRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return badRequest(c, err.Error())
		}

		userID := middleware.GetUserID(c)

		activity, err := a.Activity.Create(userID, req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create activity", err)
		}

		return created(c, fiber.Map{"activity": activity})
	}
}

// GetActivities lists the user's activities, soonest first
func GetActivities(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := models.ActivityStatus(c.Query("status"))
		if status != "" && !status.Valid() {
			return badRequest(c, "status must be one of: pending, completed, cancelled")
		}

		userID := middleware.GetUserID(c)

		activities, err := a.Activity.List(userID, status)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch activities", err)
		}

		return success(c, fiber.Map{"activities": activities})
	}
}

// UpdateActivityStatus moves an activity to a new lifecycle state
func UpdateActivityStatus(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateActivityStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return badRequest(c, err.Error())
		}

		activity, err := a.Activity.UpdateStatus(c.Params("id"), models.ActivityStatus(req.Status))
		if err != nil {
			if errors.Is(err, services.ErrActivityNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Activity not found"})
			}
			return serverErrorWithDetails(c, "Failed to update activity", err)
		}

		return success(c, fiber.Map{"activity": activity})
	}
}
