package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"pos/utils"
)

// Protected guards back-office routes with a bearer token.
func Protected(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
		}

		token := strings.TrimPrefix(auth, "Bearer ")
		subject, err := utils.ParseToken(secret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		c.Locals("subject", subject)
		return c.Next()
	}
}
