package controllers

import (
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/gofiber/fiber/v2"

	"pos/models"
)

func (h *Handler) GetExpenses(c *fiber.Ctx) error {
	expenses, err := h.Repos.Expenses.All()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"expenses": expenses})
}

func (h *Handler) GetExpensesByRange(c *fiber.Ctx) error {
	start, end, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	expenses, err := h.Repos.Expenses.Range(start, end)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"expenses": expenses})
}

func (h *Handler) CreateExpense(c *fiber.Ctx) error {
	var e models.Expense
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if !e.Amount.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "amount must be positive"})
	}
	if e.Date == "" {
		e.Date = time.Now().Format(time.RFC3339)
	}

	res, err := h.Repos.Expenses.Add(e)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Expense recorded",
		"id":      res.ID,
		"durable": res.Durable,
	})
}

func (h *Handler) DeleteExpense(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	res, err := h.Repos.Expenses.Delete(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Expense deleted", "durable": res.Durable})
}

// parseRange reads the inclusive start/end query bounds.
func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	start, err := dateparse.ParseAny(c.Query("start"))
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "invalid start date")
	}
	end, err := dateparse.ParseAny(c.Query("end"))
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "invalid end date")
	}
	return start, end, nil
}
