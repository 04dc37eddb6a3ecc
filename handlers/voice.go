package handlers

import (
	"agrimind/app"
	"agrimind/middleware"
	"agrimind/models"

	"github.com/gofiber/fiber/v2"
)

// AskQuestion answers a farming question and stores the exchange
func AskQuestion(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.AskRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return badRequest(c, err.Error())
		}

		userID := middleware.GetUserID(c)

		conversation, err := a.Voice.Ask(c.Context(), userID, req.Question, req.Language)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to generate farming advice", err)
		}

		return created(c, fiber.Map{"conversation": conversation})
	}
}

// GetConversations lists the user's past questions, most recent first
func GetConversations(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)

		conversations, err := a.Voice.History(userID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch conversations", err)
		}

		return success(c, fiber.Map{"conversations": conversations})
	}
}
