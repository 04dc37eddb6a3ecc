package middleware

import "github.com/gofiber/fiber/v2"

// WithUser attaches the acting user's ID to the request context.
// The app runs single-tenant against a bootstrapped demo account,
// so every request resolves to the same user.
func WithUser(userID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	}
}

// GetUserID returns the acting user's ID from the request context.
func GetUserID(c *fiber.Ctx) string {
	if userID, ok := c.Locals("userID").(string); ok {
		return userID
	}
	return ""
}
