package handlers

import (
	"agrimind/app"

	"github.com/gofiber/fiber/v2"
)

// GetWeather returns the weather report for a location, served from
// the cache when a valid entry exists. A request without a location
// falls back to a placeholder rather than failing.
func GetWeather(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		location := c.Query("location", "Default Location")

		report, err := a.Weather.Get(c.Context(), location)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch weather", err)
		}

		return success(c, fiber.Map{"weather": report})
	}
}
