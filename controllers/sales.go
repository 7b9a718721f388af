package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Sales are read-only over HTTP: transactions are immutable once appended,
// so there are no update or delete handlers here.

func (h *Handler) GetSales(c *fiber.Ctx) error {
	sales, err := h.Repos.Transactions.All()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"sales": sales})
}

func (h *Handler) GetSaleByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	sale, err := h.Repos.Transactions.ByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sale)
}

func (h *Handler) GetSalesByRange(c *fiber.Ctx) error {
	start, end, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	sales, err := h.Repos.Transactions.Range(start, end)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"sales": sales})
}
