package controllers

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"pos/utils"
)

// Login exchanges the back-office PIN for a bearer token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var input struct {
		PIN string `json:"pin"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	if subtle.ConstantTimeCompare([]byte(input.PIN), []byte(h.Cfg.AdminPIN)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "wrong PIN"})
	}

	token, err := utils.GenerateToken(h.Cfg.JWTSecret, "admin", h.Cfg.TokenTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	utils.SetJWTCookie(c, token, h.Cfg.TokenTTL)

	return c.JSON(fiber.Map{"token": token})
}
